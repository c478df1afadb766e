package account

type ActorDB struct {
	UserID       int64
	Role         string
	CustomerID   *int64
	OwnerID      *int64
	RestaurantID *int64
	PartnerID    *int64
}
