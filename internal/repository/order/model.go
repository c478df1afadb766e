package order

import "time"

type OrderDB struct {
	ID                    int64
	CustomerID            int64
	RestaurantID          int64
	PartnerID             *int64
	Status                string
	Total                 int64
	DeliveryFee           int64
	Address               string
	Phone                 string
	PaymentMethod         string
	EstimatedDeliveryTime int
	ActualDeliveryTime    *int
	CancelReason          *string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type OrderItemDB struct {
	ID         int64
	OrderID    int64
	FoodItemID int64
	Quantity   int
	Price      int64
}

type AvailableOrderDB struct {
	OrderDB
	RestaurantName     string
	RestaurantLocation string
}
