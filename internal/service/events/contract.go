//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=events_test
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

type Repository interface {
	FetchPending(ctx context.Context, limit, maxAttempts int) ([]entities.OrderEvent, error)
	MarkPublished(ctx context.Context, id uuid.UUID, publishedAt time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
	CountPending(ctx context.Context) (int64, error)
}

type Publisher interface {
	Publish(ctx context.Context, topic, key string, value []byte) error
}

type TxManager interface {
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
