package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/order"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// ResolveActor роль пользователя и id профиля этой роли.
func (r *Repository) ResolveActor(ctx context.Context, userID int64) (entities.Actor, error) {
	query := `
		SELECT u.id, u.role, c.id, o.id, rest.id, p.id
		FROM users u
		LEFT JOIN customers c ON c.user_id = u.id
		LEFT JOIN owners o ON o.user_id = u.id
		LEFT JOIN LATERAL (
			SELECT id FROM restaurants WHERE owner_id = o.id ORDER BY id LIMIT 1
		) rest ON TRUE
		LEFT JOIN partners p ON p.user_id = u.id
		WHERE u.id = $1
	`

	var actorModel ActorDB
	err := r.querier.QueryRow(ctx, query, userID).Scan(
		&actorModel.UserID,
		&actorModel.Role,
		&actorModel.CustomerID,
		&actorModel.OwnerID,
		&actorModel.RestaurantID,
		&actorModel.PartnerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrActorNotFound
		}
		if repository.IsUnavailable(err) {
			return nil, fmt.Errorf("account repository resolve actor: %w: %w", order.ErrStoreUnavailable, err)
		}
		return nil, fmt.Errorf("unexpected account repository resolve actor error: %w", err)
	}

	return ToDomain(&actorModel)
}
