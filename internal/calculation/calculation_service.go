package calculation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/darkhan2409/security-cost-calculator/internal/events"
	"github.com/darkhan2409/security-cost-calculator/internal/messaging/kafka"
	"github.com/darkhan2409/security-cost-calculator/internal/shared/contextutil"
	"github.com/darkhan2409/security-cost-calculator/internal/tmc"
	tmcerrors "github.com/darkhan2409/security-cost-calculator/internal/tmc/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=calculation_service.go -destination=mock/calculation_service_mock.go -package=mock
type Service interface {
	Calculate(ctx context.Context, req CalculationRequest) (CalculationResult, error)
}

type service struct {
	db      *sql.DB
	tmcRepo tmc.Repository
	outbox  kafka.OutboxRepository
}

func NewService(tmcRepo tmc.Repository) Service {
	return &service{tmcRepo: tmcRepo}
}

func NewServiceWithOutbox(db *sql.DB, tmcRepo tmc.Repository, outbox kafka.OutboxRepository) Service {
	return &service{db: db, tmcRepo: tmcRepo, outbox: outbox}
}

// Calculate resolves equipment selections against the registry and
// runs the pure calculator. Registry state is read, never mutated.
func (s *service) Calculate(
	ctx context.Context,
	req CalculationRequest,
) (CalculationResult, error) {
	markupPercent := DefaultMarkupPercent
	if req.MarkupPercent != nil {
		markupPercent = *req.MarkupPercent
	}

	selections := make([]ResolvedSelection, 0, len(req.TMCItems))
	for _, sel := range req.TMCItems {
		// A malformed id can never resolve; treating it as unknown keeps
		// Postgres uuid syntax errors out of the response. Draft
		// serialization bypasses binding, so this guard cannot live in
		// the DTO alone.
		if _, err := uuid.Parse(sel.ItemID); err != nil {
			return CalculationResult{}, tmcerrors.ErrTMCNotFound
		}

		item, err := s.tmcRepo.FindByID(ctx, sel.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return CalculationResult{}, tmcerrors.ErrTMCNotFound
			}
			return CalculationResult{}, err
		}
		selections = append(selections, ResolvedSelection{
			Item:     *item,
			Quantity: sel.Quantity,
		})
	}

	result, err := Calculate(req.Posts, selections, markupPercent)
	if err != nil {
		return CalculationResult{}, err
	}

	// Audit trail only; a failed event never fails the calculation
	s.emitCalculationPerformed(ctx, result)

	return result, nil
}

func (s *service) emitCalculationPerformed(ctx context.Context, result CalculationResult) {
	if s.db == nil || s.outbox == nil {
		return
	}

	logger := contextutil.GetLogger(ctx, zap.L()).Named("calculation")

	calculationID := uuid.New().String()
	event := events.CalculationPerformedEvent{
		EventType:         "calculation.performed",
		CalculationID:     calculationID,
		TotalPosts:        result.Summary.TotalPosts,
		TotalMonthlyHours: result.Summary.TotalMonthlyHours,
		Subtotal:          result.Summary.Subtotal,
		FinalPrice:        result.Summary.FinalPrice,
		OccurredAt:        time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Warn("marshal calculation event failed", zap.Error(err))
		return
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Warn("begin outbox tx failed", zap.Error(err))
		return
	}
	defer tx.Rollback()

	err = s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "calculation",
		AggregateID:   calculationID,
		EventType:     event.EventType,
		Topic:         events.CalculationPerformedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
	if err != nil {
		logger.Warn("enqueue calculation event failed", zap.Error(err))
		return
	}

	if err := tx.Commit(); err != nil {
		logger.Warn("commit outbox tx failed", zap.Error(err))
	}
}
