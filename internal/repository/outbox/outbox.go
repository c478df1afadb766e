package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/events"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Add пишет событие в outbox. Вызывается внутри транзакции изменения заказа.
func (r *Repository) Add(ctx context.Context, event entities.OrderStatusChanged) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	query := `
		INSERT INTO order_events (id, order_id, event_type, payload, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = r.querier.Exec(
		ctx,
		query,
		event.EventID,
		event.OrderID,
		entities.EventOrderStatusChanged,
		payload,
		string(entities.OrderEventPending),
		event.OccurredAt,
	)
	if err != nil {
		return mapError("add", err)
	}
	return nil
}

// FetchPending блокирует пачку неопубликованных событий. Строки, занятые
// другим relay, пропускаются.
func (r *Repository) FetchPending(ctx context.Context, limit, maxAttempts int) ([]entities.OrderEvent, error) {
	query := `
		SELECT id, order_id, event_type, payload, status, attempts, last_error, created_at, published_at
		FROM order_events
		WHERE status = 'pending' AND attempts < $2
		ORDER BY created_at, id
		LIMIT $1
		FOR UPDATE SKIP LOCKED
	`

	rows, err := r.querier.Query(ctx, query, limit, maxAttempts)
	if err != nil {
		return nil, mapError("fetch pending", err)
	}
	defer rows.Close()

	eventModels := make([]OrderEventDB, 0, limit)
	for rows.Next() {
		var eventModel OrderEventDB
		err := rows.Scan(
			&eventModel.ID,
			&eventModel.OrderID,
			&eventModel.EventType,
			&eventModel.Payload,
			&eventModel.Status,
			&eventModel.Attempts,
			&eventModel.LastError,
			&eventModel.CreatedAt,
			&eventModel.PublishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected outbox repository fetch pending error: %w", err)
		}
		eventModels = append(eventModels, eventModel)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError("fetch pending", err)
	}

	return ToDomainList(eventModels), nil
}

func (r *Repository) MarkPublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) error {
	query := `
		UPDATE order_events
		SET status = 'published', published_at = $2, attempts = attempts + 1, last_error = NULL
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id, publishedAt)
	if err != nil {
		return mapError("mark published", err)
	}
	if result.RowsAffected() == 0 {
		return events.ErrEventNotFound
	}
	return nil
}

func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	query := `
		UPDATE order_events
		SET attempts = attempts + 1, last_error = $2
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id, reason)
	if err != nil {
		return mapError("mark failed", err)
	}
	if result.RowsAffected() == 0 {
		return events.ErrEventNotFound
	}
	return nil
}

func (r *Repository) CountPending(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM order_events WHERE status = 'pending'`

	var count int64
	if err := r.querier.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, mapError("count pending", err)
	}
	return count, nil
}

func mapError(op string, err error) error {
	if repository.IsUnavailable(err) {
		return fmt.Errorf("outbox repository %s: %w: %w", op, events.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("unexpected outbox repository %s error: %w", op, err)
}
