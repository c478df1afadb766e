package respond

import (
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/pkg/middlewares/auth"
)

// Actor актор запроса. Без него пишет 401 и возвращает false.
func Actor(w http.ResponseWriter, r *http.Request, log handlerLogger) (entities.Actor, bool) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		Error(w, log, http.StatusUnauthorized, KindUnauthorized, auth.ErrMissingToken)
		return nil, false
	}
	return actor, true
}
