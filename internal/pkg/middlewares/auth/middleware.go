package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/repository/account"
	"marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

const UserIDClaim = "user_id"

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

type ctxKey struct{}

// Middleware проверяет bearer JWT (HS256) и кладёт в контекст актора,
// найденного по claim user_id.
func Middleware(log handlerLogger, secret []byte, resolver ActorResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := ParseUserID(r.Header.Get("Authorization"), secret)
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Warn("authentication failed")
				writeError(w, log, http.StatusUnauthorized, "unauthorized", err.Error())
				return
			}

			actor, err := resolver.ResolveActor(r.Context(), userID)
			if err != nil {
				switch {
				case errors.Is(err, account.ErrActorNotFound), errors.Is(err, account.ErrUnknownRole):
					log.With(
						logger.NewField("error", err),
						logger.NewField("user_id", userID),
					).Warn("actor not resolved")
					writeError(w, log, http.StatusUnauthorized, "unauthorized", "user has no active role")
				case errors.Is(err, order.ErrStoreUnavailable):
					writeError(w, log, http.StatusServiceUnavailable, "store_unavailable", http.StatusText(http.StatusServiceUnavailable))
				default:
					log.With(
						logger.NewField("error", err),
						logger.NewField("user_id", userID),
					).Error("resolve actor")
					writeError(w, log, http.StatusInternalServerError, "internal_error", http.StatusText(http.StatusInternalServerError))
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// ParseUserID достаёт user_id из заголовка Authorization: Bearer <jwt>.
func ParseUserID(header string, secret []byte) (int64, error) {
	raw := strings.TrimSpace(header)
	if raw == "" {
		return 0, ErrMissingToken
	}

	parts := strings.Split(raw, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return 0, fmt.Errorf("%w: expected Bearer scheme", ErrInvalidToken)
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("%w: unexpected claims", ErrInvalidToken)
	}

	var userID int64
	switch v := claims[UserIDClaim].(type) {
	case float64:
		if v != math.Trunc(v) || v >= math.MaxInt64 {
			return 0, fmt.Errorf("%w: user_id is not an integer", ErrInvalidToken)
		}
		userID = int64(v)
	case string:
		userID, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: user_id is not a number", ErrInvalidToken)
		}
	default:
		return 0, fmt.Errorf("%w: user_id claim missing", ErrInvalidToken)
	}

	if userID <= 0 {
		return 0, fmt.Errorf("%w: user_id must be positive", ErrInvalidToken)
	}
	return userID, nil
}

func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, actor)
}

func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(ctxKey{}).(entities.Actor)
	return actor, ok
}

func writeError(w http.ResponseWriter, log handlerLogger, status int, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(dto.Error{Error: kind, Message: message})
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
