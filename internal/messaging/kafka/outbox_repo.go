package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/darkhan2409/security-cost-calculator/internal/events"
)

// Pricing events go through a transactional outbox: the API enqueues a
// row in the same transaction as the work it describes, and the worker
// binary drains rows to kafka. The table is owned by this service.
const outboxTable = "pricing_outbox"

// OutboxStatus is the delivery state of a pricing event row.
type OutboxStatus string

const (
	OutboxStatusPending OutboxStatus = "pending"
	OutboxStatusSent    OutboxStatus = "sent"
	OutboxStatusFailed  OutboxStatus = "failed"
)

// deliverableTopics lists every topic this service publishes. A row
// with any other topic would sit in the outbox forever, so Create
// rejects it up front.
var deliverableTopics = map[string]struct{}{
	events.CalculationPerformedTopic: {},
}

type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        OutboxStatus
	RetryCount    int
	NextRetryAt   time.Time
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if err := ValidateOutboxEvent(event); err != nil {
		return fmt.Errorf("outbox event rejected: %w", err)
	}

	query := fmt.Sprintf(`
INSERT INTO %s (
	id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, outboxTable)

	_, err := r.execer().ExecContext(
		ctx, query,
		event.ID, event.RequestID, event.AggregateType,
		event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status,
	)
	return err
}

func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	query := fmt.Sprintf(`
SELECT
	id::text,
	aggregate_type,
	aggregate_id::text,
	event_type,
	topic,
	payload,
	status,
	retry_count,
	COALESCE(next_retry_at, created_at)
FROM %s
WHERE status IN ($1, $2)
	AND (next_retry_at IS NULL OR next_retry_at <= NOW())
ORDER BY created_at ASC
LIMIT $3
`, outboxTable)

	rows, err := r.db.QueryContext(ctx, query, OutboxStatusPending, OutboxStatusFailed, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pending := make([]OutboxEvent, 0, limit)
	for rows.Next() {
		var e OutboxEvent
		if err := rows.Scan(
			&e.ID,
			&e.AggregateType,
			&e.AggregateID,
			&e.EventType,
			&e.Topic,
			&e.Payload,
			&e.Status,
			&e.RetryCount,
			&e.NextRetryAt,
		); err != nil {
			return nil, err
		}
		pending = append(pending, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return pending, nil
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
UPDATE %s
SET
	status = $2,
	processed_at = NOW(),
	error_message = NULL,
	updated_at = NOW()
WHERE id = $1
`, outboxTable)

	_, err := r.db.ExecContext(ctx, query, id, OutboxStatusSent)
	return err
}

// MarkFailed records the failure and schedules the next attempt with a
// doubling backoff, capped at roughly ten minutes.
func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	query := fmt.Sprintf(`
UPDATE %s
SET
	status = $2,
	retry_count = retry_count + 1,
	error_message = LEFT($3, 500),
	next_retry_at = NOW() + (POWER(2, LEAST(retry_count, 6)) * INTERVAL '10 seconds'),
	updated_at = NOW()
WHERE id = $1
`, outboxTable)

	_, err := r.db.ExecContext(ctx, query, id, OutboxStatusFailed, reason)
	return err
}

func (r *outboxRepository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// ValidateOutboxEvent rejects rows the worker could never deliver: an
// unknown topic, an event type outside its aggregate's namespace, or a
// row with no payload.
func ValidateOutboxEvent(event OutboxEvent) error {
	if event.ID == "" {
		return errors.New("outbox id is required")
	}
	if _, ok := deliverableTopics[event.Topic]; !ok {
		return fmt.Errorf("topic %q is not published by this service", event.Topic)
	}
	if event.AggregateType == "" {
		return errors.New("aggregate type is required")
	}
	if !strings.HasPrefix(event.EventType, event.AggregateType+".") {
		return fmt.Errorf("event type %q does not belong to aggregate %q", event.EventType, event.AggregateType)
	}
	if len(event.Payload) == 0 {
		return errors.New("outbox payload is required")
	}
	switch event.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
