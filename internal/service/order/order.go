package order

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"marketplace/internal/entities"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const sqlStateSerializationFailure = "40001"

type Service struct {
	repository Repository
	catalog    Catalog
	partners   PartnerDirectory
	events     EventWriter
	txManager  TxManager
	now        func() time.Time
}

type Option func(*Service)

// WithNow подменяет часы сервиса, нужен тестам на время доставки.
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(
	repository Repository,
	catalog Catalog,
	partners PartnerDirectory,
	events EventWriter,
	txManager TxManager,
	opts ...Option,
) *Service {
	s := &Service{
		repository: repository,
		catalog:    catalog,
		partners:   partners,
		events:     events,
		txManager:  txManager,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) CreateOrder(ctx context.Context, actor entities.Actor, create entities.OrderCreate) (*entities.Order, error) {
	customer, ok := actor.(entities.CustomerActor)
	if !ok {
		return nil, fmt.Errorf("%w: only customers can place orders", ErrPermissionDenied)
	}

	if err := validateOrderCreate(create); err != nil {
		return nil, err
	}

	restaurant, err := s.catalog.GetRestaurant(ctx, create.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	if !restaurant.Status.AcceptsOrders() {
		return nil, fmt.Errorf("%w: restaurant %d is %s", ErrRestaurantNotAccepting, restaurant.ID, restaurant.Status)
	}

	items, total, err := s.priceItems(ctx, create)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	order := entities.Order{
		CustomerID:            customer.CustomerID,
		RestaurantID:          restaurant.ID,
		Status:                entities.OrderPending,
		Total:                 total,
		DeliveryFee:           max(create.DeliveryFee, entities.MinDeliveryFee),
		Address:               create.Address,
		Phone:                 create.Phone,
		PaymentMethod:         create.PaymentMethod,
		EstimatedDeliveryTime: entities.DefaultEstimatedDeliveryTime,
		CreatedAt:             now,
		UpdatedAt:             now,
		Items:                 items,
	}

	var created *entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err = s.repository.Create(ctx, order)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		err = s.events.Add(ctx, entities.NewOrderStatusChanged(created, nil, now))
		if err != nil {
			return fmt.Errorf("add order event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// priceItems берёт цены из каталога, цены клиента не учитываются.
func (s *Service) priceItems(ctx context.Context, create entities.OrderCreate) ([]entities.OrderItem, int64, error) {
	ids := make([]int64, 0, len(create.Items))
	for _, item := range create.Items {
		ids = append(ids, item.FoodItemID)
	}

	foodItems, err := s.catalog.GetFoodItems(ctx, create.RestaurantID, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("get food items: %w", err)
	}

	byID := make(map[int64]entities.FoodItem, len(foodItems))
	for _, foodItem := range foodItems {
		byID[foodItem.ID] = foodItem
	}

	var (
		fields []string
		total  int64
		items  = make([]entities.OrderItem, 0, len(create.Items))
	)
	for i, item := range create.Items {
		foodItem, ok := byID[item.FoodItemID]
		if !ok || foodItem.RestaurantID != create.RestaurantID || !foodItem.IsAvailable {
			fields = append(fields, fmt.Sprintf("items[%d].foodItemId", i))
			continue
		}

		sum, ok := addLineTotal(total, foodItem.Price, item.Quantity)
		if !ok {
			return nil, 0, newValidationError("items")
		}
		total = sum
		items = append(items, entities.OrderItem{
			FoodItemID: foodItem.ID,
			Quantity:   item.Quantity,
			Price:      foodItem.Price,
		})
	}

	if len(fields) > 0 {
		return nil, 0, newValidationError(fields...)
	}
	return items, total, nil
}

// ListOrders заказы в зоне видимости роли, новые первыми.
func (s *Service) ListOrders(ctx context.Context, actor entities.Actor, status *entities.OrderStatusType) ([]entities.Order, error) {
	if status != nil && !status.IsValid() {
		return nil, newValidationError("status")
	}

	switch a := actor.(type) {
	case entities.CustomerActor:
		return s.GetOrdersForCustomer(ctx, a.CustomerID, status)
	case entities.OwnerActor:
		return s.GetOrdersForRestaurant(ctx, a.RestaurantID, status)
	case entities.PartnerActor:
		return s.GetOrdersForPartner(ctx, a.PartnerID, status)
	case entities.AdminActor:
		return s.GetAllOrders(ctx, status)
	default:
		return nil, fmt.Errorf("%w: unknown actor %T", ErrPermissionDenied, actor)
	}
}

func (s *Service) GetOrdersForCustomer(ctx context.Context, customerID int64, status *entities.OrderStatusType) ([]entities.Order, error) {
	return s.list(ctx, entities.OrderFilter{CustomerID: &customerID, Status: status})
}

func (s *Service) GetOrdersForRestaurant(ctx context.Context, restaurantID int64, status *entities.OrderStatusType) ([]entities.Order, error) {
	return s.list(ctx, entities.OrderFilter{RestaurantID: &restaurantID, Status: status})
}

func (s *Service) GetOrdersForPartner(ctx context.Context, partnerID int64, status *entities.OrderStatusType) ([]entities.Order, error) {
	return s.list(ctx, entities.OrderFilter{PartnerID: &partnerID, Status: status})
}

func (s *Service) GetAllOrders(ctx context.Context, status *entities.OrderStatusType) ([]entities.Order, error) {
	return s.list(ctx, entities.OrderFilter{Status: status})
}

func (s *Service) list(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	orders, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// GetAvailableOrders пул назначения. Партнёр в статусе offline получает пустой пул.
func (s *Service) GetAvailableOrders(ctx context.Context, actor entities.Actor) ([]entities.AvailableOrder, error) {
	switch a := actor.(type) {
	case entities.PartnerActor:
		partner, err := s.partners.GetPartner(ctx, a.PartnerID)
		if err != nil {
			return nil, fmt.Errorf("get partner: %w", err)
		}
		if partner.Status == entities.PartnerOffline {
			return []entities.AvailableOrder{}, nil
		}
	case entities.AdminActor:
	default:
		return nil, fmt.Errorf("%w: only partners can view available orders", ErrPermissionDenied)
	}

	orders, err := s.repository.GetAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("get available orders: %w", err)
	}
	return orders, nil
}

// CountAvailable размер пула назначения для метрик.
func (s *Service) CountAvailable(ctx context.Context) (int64, error) {
	count, err := s.repository.CountAvailable(ctx)
	if err != nil {
		return 0, fmt.Errorf("count available orders: %w", err)
	}
	return count, nil
}

func (s *Service) GetOrder(ctx context.Context, actor entities.Actor, orderID int64) (*entities.Order, error) {
	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if !CanView(actor, order) {
		return nil, fmt.Errorf("%w: order %d is not visible to %s", ErrPermissionDenied, orderID, actor.Role())
	}
	return order, nil
}

// ApplyTransition единственная точка изменения статуса заказа.
// Чтение, проверка и условная запись идут в одной транзакции, вместе с
// событием в outbox. Проигравший гонку получает ErrAssignmentConflict вместе
// с причиной по перечитанному состоянию заказа.
func (s *Service) ApplyTransition(
	ctx context.Context,
	actor entities.Actor,
	orderID int64,
	requested entities.OrderStatusType,
	reason string,
) (*entities.Order, error) {
	if !requested.IsValid() {
		return nil, newValidationError("status")
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		transition, err := s.plan(ctx, actor, order, requested, reason)
		if err != nil {
			return err
		}

		updated, err = s.repository.ApplyTransition(ctx, *transition)
		if err != nil {
			return fmt.Errorf("apply transition: %w", err)
		}

		previous := order.Status
		err = s.events.Add(ctx, entities.NewOrderStatusChanged(updated, &previous, transition.UpdatedAt))
		if err != nil {
			return fmt.Errorf("add order event: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAssignmentConflict) || isSerializationFailure(err) {
			return nil, s.explainConflict(ctx, actor, orderID, requested, reason)
		}
		return nil, err
	}

	return updated, nil
}

func (s *Service) plan(
	ctx context.Context,
	actor entities.Actor,
	order *entities.Order,
	requested entities.OrderStatusType,
	reason string,
) (*entities.OrderTransition, error) {
	transition, err := Plan(order, actor, requested, reason, s.now().UTC())
	if err != nil {
		return nil, err
	}

	if partner, ok := actor.(entities.PartnerActor); ok && transition.ToStatus == entities.OrderPicked {
		profile, err := s.partners.GetPartner(ctx, partner.PartnerID)
		if err != nil {
			return nil, fmt.Errorf("get partner: %w", err)
		}
		if profile.Status == entities.PartnerOffline {
			return nil, fmt.Errorf("%w: partner is offline", ErrPermissionDenied)
		}
	}

	return transition, nil
}

// explainConflict перечитывает заказ после проигранной условной записи и
// повторно проверяет запрос. Сам запрос не повторяется.
func (s *Service) explainConflict(
	ctx context.Context,
	actor entities.Actor,
	orderID int64,
	requested entities.OrderStatusType,
	reason string,
) error {
	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAssignmentConflict, err)
	}

	_, err = s.plan(ctx, actor, order, requested, reason)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAssignmentConflict, err)
	}

	return fmt.Errorf("%w: order %d was modified concurrently, re-fetch it", ErrAssignmentConflict, orderID)
}

// addLineTotal прибавляет price*quantity к total, false при переполнении int64.
func addLineTotal(total, price int64, quantity int) (int64, bool) {
	if price < 0 || quantity <= 0 {
		return 0, false
	}
	if price > (math.MaxInt64-total)/int64(quantity) {
		return 0, false
	}
	return total + price*int64(quantity), true
}

func isSerializationFailure(err error) bool {
	var sqlErr interface{ SQLState() string }
	if errors.As(err, &sqlErr) {
		return sqlErr.SQLState() == sqlStateSerializationFailure
	}
	return false
}
