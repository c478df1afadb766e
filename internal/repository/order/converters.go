package order

import "marketplace/internal/entities"

func ToDomain(o *OrderDB, items []OrderItemDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:                    o.ID,
		CustomerID:            o.CustomerID,
		RestaurantID:          o.RestaurantID,
		PartnerID:             o.PartnerID,
		Status:                entities.OrderStatusType(o.Status),
		Total:                 o.Total,
		DeliveryFee:           o.DeliveryFee,
		Address:               o.Address,
		Phone:                 o.Phone,
		PaymentMethod:         entities.PaymentMethod(o.PaymentMethod),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		ActualDeliveryTime:    o.ActualDeliveryTime,
		CancelReason:          o.CancelReason,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
		Items:                 ToDomainItems(items),
	}
}

func ToDomainItems(items []OrderItemDB) []entities.OrderItem {
	result := make([]entities.OrderItem, len(items))
	for i, item := range items {
		result[i] = entities.OrderItem{
			ID:         item.ID,
			OrderID:    item.OrderID,
			FoodItemID: item.FoodItemID,
			Quantity:   item.Quantity,
			Price:      item.Price,
		}
	}
	return result
}

func ToDomainList(ordersDB []OrderDB, items map[int64][]OrderItemDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i := range ordersDB {
		result[i] = *ToDomain(&ordersDB[i], items[ordersDB[i].ID])
	}
	return result
}

func ToAvailableDomainList(ordersDB []AvailableOrderDB, items map[int64][]OrderItemDB) []entities.AvailableOrder {
	result := make([]entities.AvailableOrder, len(ordersDB))
	for i := range ordersDB {
		result[i] = entities.AvailableOrder{
			Order:              *ToDomain(&ordersDB[i].OrderDB, items[ordersDB[i].ID]),
			RestaurantName:     ordersDB[i].RestaurantName,
			RestaurantLocation: ordersDB[i].RestaurantLocation,
		}
	}
	return result
}

func FromDomain(o *entities.Order) *OrderDB {
	if o == nil {
		return nil
	}

	return &OrderDB{
		ID:                    o.ID,
		CustomerID:            o.CustomerID,
		RestaurantID:          o.RestaurantID,
		PartnerID:             o.PartnerID,
		Status:                o.Status.String(),
		Total:                 o.Total,
		DeliveryFee:           o.DeliveryFee,
		Address:               o.Address,
		Phone:                 o.Phone,
		PaymentMethod:         o.PaymentMethod.String(),
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
		ActualDeliveryTime:    o.ActualDeliveryTime,
		CancelReason:          o.CancelReason,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
}
