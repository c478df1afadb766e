package partner_status_patch

import (
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
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

	var statusUpdateDTO dto.PartnerStatusUpdate
	if err := respond.DecodeJSON(r, &statusUpdateDTO); err != nil {
		respond.ServiceError(w, h.log, err)
		return
	}

	partner, err := h.service.SetStatus(r.Context(), actor, entities.PartnerStatusType(statusUpdateDTO.Status))
	if err != nil {
		respond.ServiceError(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, respond.Partner(partner))
}
