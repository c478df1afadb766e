//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	GetAvailable(ctx context.Context) ([]entities.AvailableOrder, error)
	CountAvailable(ctx context.Context) (int64, error)
	ApplyTransition(ctx context.Context, transition entities.OrderTransition) (*entities.Order, error)
}

type Catalog interface {
	GetRestaurant(ctx context.Context, id int64) (*entities.Restaurant, error)
	GetFoodItems(ctx context.Context, restaurantID int64, ids []int64) ([]entities.FoodItem, error)
}

type PartnerDirectory interface {
	GetPartner(ctx context.Context, id int64) (*entities.Partner, error)
}

type EventWriter interface {
	Add(ctx context.Context, event entities.OrderStatusChanged) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
