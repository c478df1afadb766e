package order_handle

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/internal/service/partner"
)

type StatusHandlerFactory struct {
	repository partner.Repository
}

func NewStatusHandlerFactory(repository partner.Repository) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		repository: repository,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (partner.ExecuteFn, error) {
	switch status {
	case entities.OrderPicked:
		return f.pickedHandler, nil
	case entities.OrderDelivered:
		return f.deliveredHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", partner.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) pickedHandler(ctx context.Context, order *entities.Order) error {
	if order.PartnerID == nil {
		return nil
	}

	_, err := f.repository.UpdateStatus(ctx, *order.PartnerID, entities.PartnerBusy, entities.PartnerAvailable)
	if err != nil && !errors.Is(err, partner.ErrStatusUnchanged) {
		return fmt.Errorf("mark partner busy for picked order %d: %w", order.ID, err)
	}
	return nil
}

// offline партнёра не трогаем, он сам выбрал статус
func (f *StatusHandlerFactory) deliveredHandler(ctx context.Context, order *entities.Order) error {
	if order.PartnerID == nil {
		return nil
	}

	_, err := f.repository.UpdateStatus(ctx, *order.PartnerID, entities.PartnerAvailable, entities.PartnerBusy)
	if err != nil && !errors.Is(err, partner.ErrStatusUnchanged) {
		return fmt.Errorf("free partner for delivered order %d: %w", order.ID, err)
	}
	return nil
}
