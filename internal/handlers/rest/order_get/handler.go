package order_get

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"marketplace/internal/handlers/rest/respond"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
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

	order, err := h.service.GetOrder(r.Context(), actor, id)
	if err != nil {
		respond.ServiceError(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, respond.Order(order))
}
