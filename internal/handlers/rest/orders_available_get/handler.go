package orders_available_get

import (
	"net/http"

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

	orders, err := h.service.GetAvailableOrders(r.Context(), actor)
	if err != nil {
		respond.ServiceError(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, respond.AvailableOrders(orders))
}
