//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=partner_test
package partner

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Partner, error)
	UpdateStatus(
		ctx context.Context,
		id int64,
		status entities.PartnerStatusType,
		fromStatuses ...entities.PartnerStatusType,
	) (*entities.Partner, error)
}

type OrderReader interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
}

type (
	ExecuteFn      func(ctx context.Context, order *entities.Order) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
