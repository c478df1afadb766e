package order

import (
	"fmt"
	"strings"

	"marketplace/internal/entities"
)

const (
	minPhoneDigits = 7

	// MaxItemQuantity верхняя граница количества одной позиции заказа
	MaxItemQuantity = 1000
)

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	phone = strings.TrimPrefix(phone, "+")
	if len(phone) < minPhoneDigits {
		return false
	}

	for _, char := range phone {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func validateOrderCreate(create entities.OrderCreate) error {
	var fields []string

	if create.RestaurantID <= 0 {
		fields = append(fields, "restaurantId")
	}
	if len(create.Items) == 0 {
		fields = append(fields, "items")
	}
	for i, item := range create.Items {
		if item.FoodItemID <= 0 {
			fields = append(fields, fmt.Sprintf("items[%d].foodItemId", i))
		}
		if item.Quantity <= 0 || item.Quantity > MaxItemQuantity {
			fields = append(fields, fmt.Sprintf("items[%d].quantity", i))
		}
	}
	if create.DeliveryFee < 0 {
		fields = append(fields, "deliveryFee")
	}
	if !isValidAddress(create.Address) {
		fields = append(fields, "address")
	}
	if !isValidPhone(create.Phone) {
		fields = append(fields, "phone")
	}
	if !create.PaymentMethod.IsValid() {
		fields = append(fields, "paymentMethod")
	}

	if len(fields) > 0 {
		return newValidationError(fields...)
	}
	return nil
}
