package outbox

import (
	"time"

	"github.com/google/uuid"
)

type OrderEventDB struct {
	ID          uuid.UUID
	OrderID     int64
	EventType   string
	Payload     []byte
	Status      string
	Attempts    int
	LastError   *string
	CreatedAt   time.Time
	PublishedAt *time.Time
}
