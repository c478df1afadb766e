package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/order"
)

// Repository читает рестораны и меню. Владелец данных другой сервис,
// здесь только выборки.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetRestaurant(ctx context.Context, id int64) (*entities.Restaurant, error) {
	query := `
		SELECT id, owner_id, name, location, status
		FROM restaurants
		WHERE id = $1
	`

	var restaurantModel RestaurantDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&restaurantModel.ID,
		&restaurantModel.OwnerID,
		&restaurantModel.Name,
		&restaurantModel.Location,
		&restaurantModel.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrRestaurantNotFound
		}
		if repository.IsUnavailable(err) {
			return nil, fmt.Errorf("catalog repository get restaurant: %w: %w", order.ErrStoreUnavailable, err)
		}
		return nil, fmt.Errorf("unexpected catalog repository get restaurant error: %w", err)
	}

	return ToDomainRestaurant(&restaurantModel), nil
}

// GetFoodItems позиции меню ресторана из списка ids. Чужие и
// несуществующие позиции в ответ не попадают.
func (r *Repository) GetFoodItems(ctx context.Context, restaurantID int64, ids []int64) ([]entities.FoodItem, error) {
	if len(ids) == 0 {
		return []entities.FoodItem{}, nil
	}

	query := `
		SELECT id, restaurant_id, name, price, is_available
		FROM food_items
		WHERE restaurant_id = $1 AND id = ANY($2)
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, restaurantID, ids)
	if err != nil {
		if repository.IsUnavailable(err) {
			return nil, fmt.Errorf("catalog repository get food items: %w: %w", order.ErrStoreUnavailable, err)
		}
		return nil, fmt.Errorf("unexpected catalog repository get food items error: %w", err)
	}
	defer rows.Close()

	itemModels := make([]FoodItemDB, 0, len(ids))
	for rows.Next() {
		var itemModel FoodItemDB
		err := rows.Scan(
			&itemModel.ID,
			&itemModel.RestaurantID,
			&itemModel.Name,
			&itemModel.Price,
			&itemModel.IsAvailable,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected catalog repository get food items error: %w", err)
		}
		itemModels = append(itemModels, itemModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected catalog repository get food items error: %w", err)
	}

	return ToDomainFoodItems(itemModels), nil
}
