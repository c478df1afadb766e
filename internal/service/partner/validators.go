package partner

import "marketplace/internal/entities"

func isValidStatus(status entities.PartnerStatusType) bool {
	return status.IsValid()
}

func isValidOrderEvent(event entities.OrderStatusChanged) bool {
	return event.OrderID > 0 && event.Status != ""
}
