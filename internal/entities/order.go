package entities

import "time"

const (
	// MinDeliveryFee нижняя граница стоимости доставки в минимальных единицах валюты.
	MinDeliveryFee int64 = 50

	// DefaultEstimatedDeliveryTime ожидаемое время доставки в минутах.
	DefaultEstimatedDeliveryTime = 30
)

type Order struct {
	ID                    int64
	CustomerID            int64
	RestaurantID          int64
	PartnerID             *int64
	Status                OrderStatusType
	Total                 int64
	DeliveryFee           int64
	Address               string
	Phone                 string
	PaymentMethod         PaymentMethod
	EstimatedDeliveryTime int
	ActualDeliveryTime    *int
	CancelReason          *string
	CreatedAt             time.Time
	UpdatedAt             time.Time
	Items                 []OrderItem
}

type OrderItem struct {
	ID         int64
	OrderID    int64
	FoodItemID int64
	Quantity   int
	Price      int64
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderProcessing OrderStatusType = "processing"
	OrderPreparing  OrderStatusType = "preparing"
	OrderReady      OrderStatusType = "ready"
	OrderPicked     OrderStatusType = "picked"
	OrderDelivered  OrderStatusType = "delivered"
	OrderCancelled  OrderStatusType = "cancelled"
)

// OrderStatuses все статусы в порядке жизненного цикла, cancelled последним.
var OrderStatuses = []OrderStatusType{
	OrderPending,
	OrderProcessing,
	OrderPreparing,
	OrderReady,
	OrderPicked,
	OrderDelivered,
	OrderCancelled,
}

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderPreparing, OrderReady,
		OrderPicked, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentEsewa  PaymentMethod = "esewa"
	PaymentKhalti PaymentMethod = "khalti"
)

func (p PaymentMethod) String() string {
	return string(p)
}

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCash, PaymentEsewa, PaymentKhalti:
		return true
	default:
		return false
	}
}

// OrderCreate входные данные размещения заказа. Цена позиций и total от клиента
// не принимаются, их считает сервис по каталогу.
type OrderCreate struct {
	RestaurantID  int64
	Items         []OrderItemCreate
	DeliveryFee   int64
	Address       string
	Phone         string
	PaymentMethod PaymentMethod
}

type OrderItemCreate struct {
	FoodItemID int64
	Quantity   int
}

// OrderFilter ограничивает выборку заказов. Нулевые поля не фильтруют.
type OrderFilter struct {
	CustomerID   *int64
	RestaurantID *int64
	PartnerID    *int64
	Status       *OrderStatusType
}

// OrderTransition результат планирования перехода: что и при каком условии записать.
type OrderTransition struct {
	OrderID int64

	// условие записи
	FromStatus      OrderStatusType
	ExpectPartnerID *int64

	// новые значения
	ToStatus           OrderStatusType
	PartnerID          *int64
	ActualDeliveryTime *int
	CancelReason       *string
	UpdatedAt          time.Time
}

// AvailableOrder заказ из пула назначения вместе с данными ресторана.
type AvailableOrder struct {
	Order
	RestaurantName     string
	RestaurantLocation string
}
