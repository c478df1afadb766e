package respond

import (
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
)

func Order(order *entities.Order) dto.Order {
	return dto.Order{
		ID:                    order.ID,
		CustomerID:            order.CustomerID,
		RestaurantID:          order.RestaurantID,
		PartnerID:             order.PartnerID,
		Status:                dto.OrderStatus(order.Status),
		Total:                 order.Total,
		DeliveryFee:           order.DeliveryFee,
		Address:               order.Address,
		Phone:                 order.Phone,
		PaymentMethod:         dto.PaymentMethod(order.PaymentMethod),
		EstimatedDeliveryTime: order.EstimatedDeliveryTime,
		ActualDeliveryTime:    order.ActualDeliveryTime,
		CancelReason:          order.CancelReason,
		CreatedAt:             order.CreatedAt,
		UpdatedAt:             order.UpdatedAt,
		Items:                 orderItems(order.Items),
	}
}

func Orders(orders []entities.Order) []dto.Order {
	result := make([]dto.Order, len(orders))
	for i := range orders {
		result[i] = Order(&orders[i])
	}
	return result
}

func AvailableOrders(orders []entities.AvailableOrder) []dto.AvailableOrder {
	result := make([]dto.AvailableOrder, len(orders))
	for i, o := range orders {
		result[i] = dto.AvailableOrder{
			ID:                 o.ID,
			CustomerID:         o.CustomerID,
			RestaurantID:       o.RestaurantID,
			RestaurantName:     o.RestaurantName,
			RestaurantLocation: o.RestaurantLocation,
			Total:              o.Total,
			DeliveryFee:        o.DeliveryFee,
			Address:            o.Address,
			Phone:              o.Phone,
			CreatedAt:          o.CreatedAt,
			UpdatedAt:          o.UpdatedAt,
			Items:              orderItems(o.Items),
		}
	}
	return result
}

func Partner(partner *entities.Partner) dto.Partner {
	return dto.Partner{
		ID:        partner.ID,
		UserID:    partner.UserID,
		Status:    dto.PartnerStatus(partner.Status),
		UpdatedAt: partner.UpdatedAt,
	}
}

func orderItems(items []entities.OrderItem) []dto.OrderItem {
	result := make([]dto.OrderItem, len(items))
	for i, item := range items {
		result[i] = dto.OrderItem{
			ID:         item.ID,
			FoodItemID: item.FoodItemID,
			Quantity:   item.Quantity,
			Price:      item.Price,
		}
	}
	return result
}
