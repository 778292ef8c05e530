package tmc

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=tmc_repo.go -destination=mock/tmc_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, item *TMC) error
	FindAll(ctx context.Context) ([]TMC, error)
	FindByID(ctx context.Context, id string) (*TMC, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, item *TMC) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repository) FindAll(ctx context.Context) ([]TMC, error) {
	var items []TMC
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*TMC, error) {
	var item TMC
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&TMC{}).Error
}
