package partner

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/entities"
)

type Service struct {
	repository    Repository
	orders        OrderReader
	statusFactory HandlerFactory
}

func New(repository Repository, orders OrderReader, statusFactory HandlerFactory) *Service {
	return &Service{
		repository:    repository,
		orders:        orders,
		statusFactory: statusFactory,
	}
}

func (s *Service) GetPartner(ctx context.Context, id int64) (*entities.Partner, error) {
	partner, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}
	return partner, nil
}

// SetStatus партнёр сам меняет свою доступность.
func (s *Service) SetStatus(ctx context.Context, actor entities.Actor, status entities.PartnerStatusType) (*entities.Partner, error) {
	partnerActor, ok := actor.(entities.PartnerActor)
	if !ok {
		return nil, fmt.Errorf("%w: only partners can change availability", ErrPermissionDenied)
	}

	if !isValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	partner, err := s.repository.UpdateStatus(ctx, partnerActor.PartnerID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update partner status: %w", err)
	}
	return partner, nil
}

// ProcessOrderStatusChange синхронизирует доступность партнёра с событием заказа.
// Статус берётся из хранилища, а не из события: события могут приходить с опозданием.
func (s *Service) ProcessOrderStatusChange(ctx context.Context, event entities.OrderStatusChanged) (*entities.Order, error) {
	if !isValidOrderEvent(event) {
		return nil, fmt.Errorf("order id and status are required: %w", ErrMissingRequiredFields)
	}

	order, err := s.orders.GetByID(ctx, event.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	executeFn, err := s.statusFactory.GetHandler(order.Status)
	if err != nil {
		// необрабатываемые статусы просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return order, nil
		}
		return order, err
	}

	if err := executeFn(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}
