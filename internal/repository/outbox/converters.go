package outbox

import "marketplace/internal/entities"

func ToDomain(e *OrderEventDB) *entities.OrderEvent {
	if e == nil {
		return nil
	}
	return &entities.OrderEvent{
		ID:          e.ID,
		OrderID:     e.OrderID,
		EventType:   e.EventType,
		Payload:     e.Payload,
		Status:      entities.OrderEventStatus(e.Status),
		Attempts:    e.Attempts,
		LastError:   e.LastError,
		CreatedAt:   e.CreatedAt,
		PublishedAt: e.PublishedAt,
	}
}

func ToDomainList(eventsDB []OrderEventDB) []entities.OrderEvent {
	result := make([]entities.OrderEvent, len(eventsDB))
	for i := range eventsDB {
		result[i] = *ToDomain(&eventsDB[i])
	}
	return result
}
