package catalog

import "marketplace/internal/entities"

func ToDomainRestaurant(r *RestaurantDB) *entities.Restaurant {
	if r == nil {
		return nil
	}
	return &entities.Restaurant{
		ID:       r.ID,
		OwnerID:  r.OwnerID,
		Name:     r.Name,
		Location: r.Location,
		Status:   entities.RestaurantStatusType(r.Status),
	}
}

func ToDomainFoodItems(items []FoodItemDB) []entities.FoodItem {
	result := make([]entities.FoodItem, len(items))
	for i, item := range items {
		result[i] = entities.FoodItem{
			ID:           item.ID,
			RestaurantID: item.RestaurantID,
			Name:         item.Name,
			Price:        item.Price,
			IsAvailable:  item.IsAvailable,
		}
	}
	return result
}
