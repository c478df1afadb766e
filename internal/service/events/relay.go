package events

import (
	"context"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"marketplace/internal/entities"
)

const maxErrorLength = 512

// RelayResult итог одного прохода relay.
type RelayResult struct {
	Published int
	Failed    int
}

type Relay struct {
	repository  Repository
	publisher   Publisher
	txManager   TxManager
	topic       string
	batchSize   int
	maxAttempts int
	now         func() time.Time
}

func New(
	repository Repository,
	publisher Publisher,
	txManager TxManager,
	topic string,
	batchSize int,
	maxAttempts int,
) (*Relay, error) {
	if topic == "" || batchSize <= 0 || maxAttempts <= 0 {
		return nil, fmt.Errorf("%w: topic=%q batch=%d attempts=%d", ErrInvalidRelayParam, topic, batchSize, maxAttempts)
	}

	return &Relay{
		repository:  repository,
		publisher:   publisher,
		txManager:   txManager,
		topic:       topic,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}, nil
}

// PublishPending публикует одну пачку событий outbox.
// Строки пачки заблокированы до конца транзакции, поэтому несколько
// relay не публикуют одно событие дважды. Ошибка публикации одного
// события не прерывает пачку: оно остаётся pending с last_error.
func (r *Relay) PublishPending(ctx context.Context) (RelayResult, error) {
	var result RelayResult

	err := r.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		result = RelayResult{}

		pending, err := r.repository.FetchPending(ctx, r.batchSize, r.maxAttempts)
		if err != nil {
			return fmt.Errorf("fetch pending events: %w", err)
		}

		for _, event := range pending {
			if err := r.publish(ctx, event); err != nil {
				result.Failed++

				markErr := r.repository.MarkFailed(ctx, event.ID, truncate(err.Error(), maxErrorLength))
				if markErr != nil {
					return fmt.Errorf("mark event %s failed: %w", event.ID, markErr)
				}
				continue
			}

			if err := r.repository.MarkPublished(ctx, event.ID, r.now().UTC()); err != nil {
				return fmt.Errorf("mark event %s published: %w", event.ID, err)
			}
			result.Published++
		}
		return nil
	})
	if err != nil {
		return RelayResult{}, err
	}

	return result, nil
}

func (r *Relay) CountPending(ctx context.Context) (int64, error) {
	count, err := r.repository.CountPending(ctx)
	if err != nil {
		return 0, fmt.Errorf("count pending events: %w", err)
	}
	return count, nil
}

func (r *Relay) publish(ctx context.Context, event entities.OrderEvent) error {
	// ключ по заказу: события одного заказа попадают в одну партицию по порядку
	key := strconv.FormatInt(event.OrderID, 10)
	if err := r.publisher.Publish(ctx, r.topic, key, event.Payload); err != nil {
		return fmt.Errorf("publish event %s: %w", event.ID, err)
	}
	return nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	// last_error в TEXT, обрезаем по границе руны
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
