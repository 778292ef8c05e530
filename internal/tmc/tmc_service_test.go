package tmc_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/darkhan2409/security-cost-calculator/internal/tmc"
	tmcerrors "github.com/darkhan2409/security-cost-calculator/internal/tmc/errors"
	tmcmock "github.com/darkhan2409/security-cost-calculator/internal/tmc/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type tmcServiceFixture struct {
	svc       tmc.Service
	repo      *tmcmock.MockRepository
	dbMock    sqlmock.Sqlmock
	redisMock redismock.ClientMock
}

func newTMCServiceFixture(t *testing.T) *tmcServiceFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := tmcmock.NewMockRepository(ctrl)

	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()

	return &tmcServiceFixture{
		svc:       tmc.NewService(db, repo, rdb),
		repo:      repo,
		dbMock:    dbMock,
		redisMock: redisMock,
	}
}

func TestTMCService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates the listing cache", func(t *testing.T) {
		f := newTMCServiceFixture(t)

		f.dbMock.ExpectBegin()
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *tmc.TMC) error {
				assert.NotEqual(t, uuid.Nil, item.ID)
				return nil
			})
		f.dbMock.ExpectCommit()
		f.redisMock.ExpectDel(tmc.TMCAllCacheKey).SetVal(1)

		resp, err := f.svc.Create(ctx, tmc.CreateTMCRequest{
			Name:               "Radio",
			Price:              50000,
			Quantity:           10,
			AmortizationMonths: 36,
		})
		assert.NoError(t, err)
		assert.Equal(t, "Radio", resp.Name)
		assert.Equal(t, 500000.0, resp.TotalCost)
		assert.InDelta(t, 13888.89, resp.MonthlyCost, 0.01)

		assert.NoError(t, f.dbMock.ExpectationsWereMet())
		assert.NoError(t, f.redisMock.ExpectationsWereMet())
	})

	t.Run("duplicate name maps to conflict", func(t *testing.T) {
		f := newTMCServiceFixture(t)

		f.dbMock.ExpectBegin()
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_tmc_name"})
		f.dbMock.ExpectRollback()

		_, err := f.svc.Create(ctx, tmc.CreateTMCRequest{
			Name:               "Radio",
			Price:              50000,
			Quantity:           10,
			AmortizationMonths: 36,
		})
		assert.ErrorIs(t, err, tmcerrors.ErrTMCNameAlreadyExists)
	})
}

func TestTMCService_GetAll(t *testing.T) {
	ctx := context.Background()

	item := tmc.TMC{
		ID:                 uuid.New(),
		Name:               "Flashlight",
		Price:              12000,
		Quantity:           5,
		AmortizationMonths: 12,
	}

	t.Run("cache hit skips the repository", func(t *testing.T) {
		f := newTMCServiceFixture(t)

		cached := []tmc.TMCResponse{
			{ID: item.ID.String(), Name: item.Name, Price: item.Price},
		}
		payload, err := json.Marshal(cached)
		assert.NoError(t, err)

		f.redisMock.ExpectGet(tmc.TMCAllCacheKey).SetVal(string(payload))

		resp, err := f.svc.GetAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, cached, resp)

		assert.NoError(t, f.redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and refills", func(t *testing.T) {
		f := newTMCServiceFixture(t)

		f.redisMock.ExpectGet(tmc.TMCAllCacheKey).RedisNil()
		f.repo.EXPECT().FindAll(gomock.Any()).Return([]tmc.TMC{item}, nil)

		expected := []tmc.TMCResponse{
			{
				ID:                 item.ID.String(),
				Name:               item.Name,
				Price:              item.Price,
				Quantity:           item.Quantity,
				TotalCost:          item.TotalCost(),
				AmortizationMonths: item.AmortizationMonths,
				MonthlyCost:        item.MonthlyCost(),
			},
		}
		payload, err := json.Marshal(expected)
		assert.NoError(t, err)
		f.redisMock.ExpectSet(tmc.TMCAllCacheKey, payload, 30*time.Minute).SetVal("OK")

		resp, err := f.svc.GetAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
	})
}

func TestTMCService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		f := newTMCServiceFixture(t)

		id := uuid.New()
		f.repo.EXPECT().
			FindByID(gomock.Any(), id.String()).
			Return(&tmc.TMC{ID: id, Name: "Radio", Price: 50000, Quantity: 1, AmortizationMonths: 12}, nil)

		resp, err := f.svc.GetByID(ctx, id.String())
		assert.NoError(t, err)
		assert.Equal(t, id.String(), resp.ID)
	})

	t.Run("not found", func(t *testing.T) {
		f := newTMCServiceFixture(t)

		f.repo.EXPECT().
			FindByID(gomock.Any(), gomock.Any()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := f.svc.GetByID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, tmcerrors.ErrTMCNotFound)
	})
}

func TestTMCService_Summary(t *testing.T) {
	f := newTMCServiceFixture(t)

	f.repo.EXPECT().FindAll(gomock.Any()).Return([]tmc.TMC{
		{ID: uuid.New(), Name: "Radio", Price: 50000, Quantity: 10, AmortizationMonths: 36},
		{ID: uuid.New(), Name: "Flashlight", Price: 12000, Quantity: 5, AmortizationMonths: 12},
	}, nil)

	summary, err := f.svc.Summary(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, 2, summary.TotalItems)
	assert.Equal(t, 15, summary.TotalQuantity)
	assert.Equal(t, 560000.0, summary.TotalInvestment)
	assert.InDelta(t, 13888.89+5000, summary.TotalMonthlyCost, 0.01)
}

func TestTMCService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success invalidates the listing cache", func(t *testing.T) {
		f := newTMCServiceFixture(t)

		id := uuid.New()

		f.dbMock.ExpectBegin()
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().
			FindByID(gomock.Any(), id.String()).
			Return(&tmc.TMC{ID: id, Name: "Radio"}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), id.String()).Return(nil)
		f.dbMock.ExpectCommit()
		f.redisMock.ExpectDel(tmc.TMCAllCacheKey).SetVal(1)

		assert.NoError(t, f.svc.Delete(ctx, id.String()))
		assert.NoError(t, f.dbMock.ExpectationsWereMet())
		assert.NoError(t, f.redisMock.ExpectationsWereMet())
	})

	t.Run("missing item rolls back", func(t *testing.T) {
		f := newTMCServiceFixture(t)

		f.dbMock.ExpectBegin()
		f.repo.EXPECT().WithTx(gomock.Any()).Return(f.repo)
		f.repo.EXPECT().
			FindByID(gomock.Any(), gomock.Any()).
			Return(nil, gorm.ErrRecordNotFound)
		f.dbMock.ExpectRollback()

		err := f.svc.Delete(ctx, uuid.New().String())
		assert.ErrorIs(t, err, tmcerrors.ErrTMCNotFound)
		assert.NoError(t, f.dbMock.ExpectationsWereMet())
	})
}
