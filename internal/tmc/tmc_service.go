package tmc

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// Cache key for the full registry listing. The registry is master
// data read on every form view, so staleness between refreshes is
// tolerated and resolved by invalidation on write.
const TMCAllCacheKey = "tmc:all"

const tmcCacheTTL = 30 * time.Minute

//go:generate mockgen -source=tmc_service.go -destination=mock/tmc_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTMCRequest) (TMCResponse, error)
	GetAll(ctx context.Context) ([]TMCResponse, error)
	GetByID(ctx context.Context, id string) (TMCResponse, error)
	Summary(ctx context.Context) (TMCSummaryResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
	rdb  *redis.Client
	sf   *singleflight.Group
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client) Service {
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}}
}

func (s *service) Create(
	ctx context.Context,
	req CreateTMCRequest,
) (TMCResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TMCResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	item := &TMC{
		ID:                 uuid.New(),
		Name:               req.Name,
		Price:              req.Price,
		Quantity:           req.Quantity,
		AmortizationMonths: req.AmortizationMonths,
	}

	if err := qtx.Create(ctx, item); err != nil {
		return TMCResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return TMCResponse{}, err
	}

	s.invalidateCache(ctx)

	return mapToResponse(*item), nil
}

func (s *service) GetAll(ctx context.Context) ([]TMCResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, TMCAllCacheKey).Result()
		if err == nil {
			var resp []TMCResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	// Singleflight so concurrent cache misses hit the DB once
	v, err, _ := s.sf.Do(TMCAllCacheKey, func() (interface{}, error) {
		items, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(items)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, TMCAllCacheKey, jsonData, tmcCacheTTL)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]TMCResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (TMCResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TMCResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*item), nil
}

func (s *service) Summary(ctx context.Context) (TMCSummaryResponse, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return TMCSummaryResponse{}, mapRepositoryError(err)
	}

	var summary TMCSummaryResponse
	summary.TotalItems = len(items)
	for _, item := range items {
		summary.TotalQuantity += item.Quantity
		summary.TotalInvestment += item.TotalCost()
		summary.TotalMonthlyCost += item.MonthlyCost()
	}

	return summary, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateCache(ctx)

	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, TMCAllCacheKey).Err(); err != nil {
		log.Printf("ERROR: failed to invalidate cache for key %s: %v", TMCAllCacheKey, err)
	}
}

func mapToResponse(item TMC) TMCResponse {
	return TMCResponse{
		ID:                 item.ID.String(),
		Name:               item.Name,
		Price:              item.Price,
		Quantity:           item.Quantity,
		TotalCost:          item.TotalCost(),
		AmortizationMonths: item.AmortizationMonths,
		MonthlyCost:        item.MonthlyCost(),
	}
}

func mapToListResponse(items []TMC) []TMCResponse {
	res := make([]TMCResponse, len(items))
	for i, item := range items {
		res[i] = mapToResponse(item)
	}
	return res
}
