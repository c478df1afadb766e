package orders_get

import (
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/respond"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := respond.Actor(w, r, h.log)
	if !ok {
		return
	}

	var status *entities.OrderStatusType
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := entities.OrderStatusType(raw)
		status = &s
	}

	orders, err := h.service.ListOrders(r.Context(), actor, status)
	if err != nil {
		respond.ServiceError(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, respond.Orders(orders))
}
