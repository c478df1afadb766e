package ping_get

import (
	"encoding/json"
	"net/http"

	"github.com/AlekSi/pointer"
	"marketplace/internal/generated/dto"
	"marketplace/internal/pkg/middlewares/request_id"
	"marketplace/pkg/logger"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(logger.NewField("handler", "ping_get")),
	}
}

// ServeHTTP отвечает pong и id запроса, по нему клиент находит запрос в логах.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := dto.PingResponse{
		Message: pointer.To("pong"),
	}
	if requestID := request_id.FromContext(r.Context()); requestID != "" {
		res.RequestId = pointer.To(requestID)
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
