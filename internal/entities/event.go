package entities

import (
	"time"

	"github.com/google/uuid"
)

const EventOrderStatusChanged = "order.status.changed"

type OrderEventStatus string

const (
	OrderEventPending   OrderEventStatus = "pending"
	OrderEventPublished OrderEventStatus = "published"
)

// OrderStatusChanged полезная нагрузка события, уходит в kafka как есть.
type OrderStatusChanged struct {
	EventID        uuid.UUID        `json:"event_id"`
	OrderID        int64            `json:"order_id"`
	CustomerID     int64            `json:"customer_id"`
	RestaurantID   int64            `json:"restaurant_id"`
	PartnerID      *int64           `json:"partner_id,omitempty"`
	Status         OrderStatusType  `json:"status"`
	PreviousStatus *OrderStatusType `json:"previous_status,omitempty"`
	OccurredAt     time.Time        `json:"occurred_at"`
}

// OrderEvent строка outbox.
type OrderEvent struct {
	ID          uuid.UUID
	OrderID     int64
	EventType   string
	Payload     []byte
	Status      OrderEventStatus
	Attempts    int
	LastError   *string
	CreatedAt   time.Time
	PublishedAt *time.Time
}

func NewOrderStatusChanged(order *Order, previous *OrderStatusType, occurredAt time.Time) OrderStatusChanged {
	return OrderStatusChanged{
		EventID:        uuid.New(),
		OrderID:        order.ID,
		CustomerID:     order.CustomerID,
		RestaurantID:   order.RestaurantID,
		PartnerID:      order.PartnerID,
		Status:         order.Status,
		PreviousStatus: previous,
		OccurredAt:     occurredAt,
	}
}
