package respond

import (
	"errors"
	"net/http"

	"marketplace/internal/service/order"
	"marketplace/internal/service/partner"
)

// ServiceError переводит ошибки сервисов в HTTP статус.
// InvalidTransition и PermissionDenied проверяются раньше конфликта:
// проигравший гонку получает причину по актуальному состоянию заказа.
func ServiceError(w http.ResponseWriter, log handlerLogger, err error) {
	status, kind := classify(err)
	if errors.Is(err, order.ErrAssignmentConflict) && status < http.StatusInternalServerError {
		kind = KindConflict
	}
	Error(w, log, status, kind, err)
}

func classify(err error) (int, string) {
	var requestErr *RequestError

	switch {
	case errors.As(err, &requestErr),
		errors.Is(err, order.ErrValidation),
		errors.Is(err, partner.ErrInvalidStatus),
		errors.Is(err, partner.ErrMissingRequiredFields):
		return http.StatusBadRequest, KindValidation
	case errors.Is(err, order.ErrInvalidTransition):
		return http.StatusBadRequest, KindInvalidTransition
	case errors.Is(err, order.ErrPermissionDenied),
		errors.Is(err, partner.ErrPermissionDenied):
		return http.StatusForbidden, KindPermissionDenied
	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, order.ErrRestaurantNotFound),
		errors.Is(err, partner.ErrPartnerNotFound):
		return http.StatusNotFound, KindNotFound
	case errors.Is(err, order.ErrAssignmentConflict),
		errors.Is(err, order.ErrRestaurantNotAccepting):
		return http.StatusConflict, KindConflict
	case errors.Is(err, order.ErrStoreUnavailable),
		errors.Is(err, partner.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, KindUnavailable
	default:
		return http.StatusInternalServerError, KindInternal
	}
}
