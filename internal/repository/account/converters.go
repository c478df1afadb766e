package account

import (
	"fmt"

	"marketplace/internal/entities"
)

// ToDomain собирает вариант Actor по роли. Роль без профиля считается
// неизвестным пользователем.
func ToDomain(a *ActorDB) (entities.Actor, error) {
	switch entities.Role(a.Role) {
	case entities.RoleCustomer:
		if a.CustomerID == nil {
			return nil, fmt.Errorf("%w: user %d has no customer profile", ErrActorNotFound, a.UserID)
		}
		return entities.CustomerActor{UserID: a.UserID, CustomerID: *a.CustomerID}, nil
	case entities.RoleOwner:
		if a.OwnerID == nil || a.RestaurantID == nil {
			return nil, fmt.Errorf("%w: user %d has no restaurant", ErrActorNotFound, a.UserID)
		}
		return entities.OwnerActor{UserID: a.UserID, OwnerID: *a.OwnerID, RestaurantID: *a.RestaurantID}, nil
	case entities.RolePartner:
		if a.PartnerID == nil {
			return nil, fmt.Errorf("%w: user %d has no partner profile", ErrActorNotFound, a.UserID)
		}
		return entities.PartnerActor{UserID: a.UserID, PartnerID: *a.PartnerID}, nil
	case entities.RoleAdmin:
		return entities.AdminActor{UserID: a.UserID}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, a.Role)
	}
}
