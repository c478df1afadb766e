package order_status_patch

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/respond"
	"marketplace/pkg/logger"
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

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		respond.ServiceError(w, h.log, &respond.RequestError{
			Message: "order id must be a positive integer",
			Fields:  []string{"id"},
		})
		return
	}

	var statusUpdateDTO dto.OrderStatusUpdate
	if err := respond.DecodeJSON(r, &statusUpdateDTO); err != nil {
		respond.ServiceError(w, h.log, err)
		return
	}

	var reason string
	if statusUpdateDTO.Reason != nil {
		reason = *statusUpdateDTO.Reason
	}

	order, err := h.service.ApplyTransition(r.Context(), actor, id, entities.OrderStatusType(statusUpdateDTO.Status), reason)
	if err != nil {
		h.log.With(
			logger.NewField("order", id),
			logger.NewField("role", actor.Role().String()),
			logger.NewField("status", string(statusUpdateDTO.Status)),
			logger.NewField("error", err),
		).Info("order transition rejected")
		respond.ServiceError(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, respond.Order(order))
}
