package order

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"marketplace/internal/entities"
)

var transitions = map[entities.OrderStatusType][]entities.OrderStatusType{
	entities.OrderPending:    {entities.OrderProcessing, entities.OrderCancelled},
	entities.OrderProcessing: {entities.OrderPreparing, entities.OrderCancelled},
	entities.OrderPreparing:  {entities.OrderReady, entities.OrderCancelled},
	entities.OrderReady:      {entities.OrderPicked, entities.OrderCancelled},
	entities.OrderPicked:     {entities.OrderDelivered},
	entities.OrderDelivered:  {},
	entities.OrderCancelled:  {},
}

// AllowedTransitions статусы, в которые можно перейти из from по таблице переходов.
func AllowedTransitions(from entities.OrderStatusType) []entities.OrderStatusType {
	return slices.Clone(transitions[from])
}

func IsLegalTransition(from, to entities.OrderStatusType) bool {
	return slices.Contains(transitions[from], to)
}

// Plan проверяет переход и считает побочные эффекты, ничего не записывая.
// Сначала таблица переходов (ErrInvalidTransition), затем права роли
// (ErrPermissionDenied), поэтому из терминальных статусов всегда ErrInvalidTransition.
func Plan(
	order *entities.Order,
	actor entities.Actor,
	to entities.OrderStatusType,
	reason string,
	now time.Time,
) (*entities.OrderTransition, error) {
	if !IsLegalTransition(order.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, to)
	}

	if err := authorize(actor, order, to); err != nil {
		return nil, err
	}

	transition := &entities.OrderTransition{
		OrderID:         order.ID,
		FromStatus:      order.Status,
		ExpectPartnerID: order.PartnerID,
		ToStatus:        to,
		PartnerID:       order.PartnerID,
		UpdatedAt:       now,
	}

	switch to {
	case entities.OrderPicked:
		// назначение: первый партнёр, взявший заказ из пула
		if partner, ok := actor.(entities.PartnerActor); ok && order.PartnerID == nil {
			partnerID := partner.PartnerID
			transition.PartnerID = &partnerID
		}
	case entities.OrderDelivered:
		minutes := deliveryMinutes(order.CreatedAt, now)
		transition.ActualDeliveryTime = &minutes
	case entities.OrderCancelled:
		cancelReason := strings.TrimSpace(reason)
		if cancelReason == "" {
			cancelReason = "Cancelled by " + actor.Role().String()
		}
		transition.CancelReason = &cancelReason
	}

	return transition, nil
}

func authorize(actor entities.Actor, order *entities.Order, to entities.OrderStatusType) error {
	from := order.Status

	switch a := actor.(type) {
	case entities.CustomerActor:
		if order.CustomerID != a.CustomerID {
			return fmt.Errorf("%w: order belongs to another customer", ErrPermissionDenied)
		}
		if to != entities.OrderCancelled {
			return fmt.Errorf("%w: customer cannot move order to %s", ErrPermissionDenied, to)
		}
		if from != entities.OrderPending && from != entities.OrderProcessing {
			return fmt.Errorf("%w: cancellation window closed at %s", ErrPermissionDenied, from)
		}
		return nil

	case entities.OwnerActor:
		if order.RestaurantID != a.RestaurantID {
			return fmt.Errorf("%w: order belongs to another restaurant", ErrPermissionDenied)
		}
		switch {
		case from == entities.OrderPending && to == entities.OrderProcessing,
			from == entities.OrderProcessing && to == entities.OrderPreparing,
			from == entities.OrderPreparing && to == entities.OrderReady:
			return nil
		case to == entities.OrderCancelled &&
			(from == entities.OrderPending || from == entities.OrderProcessing || from == entities.OrderPreparing):
			return nil
		}
		return fmt.Errorf("%w: owner cannot move order from %s to %s", ErrPermissionDenied, from, to)

	case entities.PartnerActor:
		if !(from == entities.OrderReady && to == entities.OrderPicked) &&
			!(from == entities.OrderPicked && to == entities.OrderDelivered) {
			return fmt.Errorf("%w: partner cannot move order from %s to %s", ErrPermissionDenied, from, to)
		}
		if order.PartnerID != nil && *order.PartnerID != a.PartnerID {
			return fmt.Errorf("%w: order is assigned to another partner", ErrPermissionDenied)
		}
		return nil

	case entities.AdminActor:
		return nil

	default:
		return fmt.Errorf("%w: unknown actor %T", ErrPermissionDenied, actor)
	}
}

// CanView видимость заказа для роли: свой заказ, заказ своего ресторана,
// назначенный партнёру или лежащий в пуле. Админ видит всё.
func CanView(actor entities.Actor, order *entities.Order) bool {
	switch a := actor.(type) {
	case entities.CustomerActor:
		return order.CustomerID == a.CustomerID
	case entities.OwnerActor:
		return order.RestaurantID == a.RestaurantID
	case entities.PartnerActor:
		if order.PartnerID != nil {
			return *order.PartnerID == a.PartnerID
		}
		return order.Status == entities.OrderReady
	case entities.AdminActor:
		return true
	default:
		return false
	}
}

func deliveryMinutes(createdAt, deliveredAt time.Time) int {
	elapsed := deliveredAt.Sub(createdAt)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / time.Minute)
}
