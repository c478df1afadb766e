package entities

type Restaurant struct {
	ID       int64
	OwnerID  int64
	Name     string
	Location string
	Status   RestaurantStatusType
}

type RestaurantStatusType string

const (
	RestaurantPending  RestaurantStatusType = "pending"
	RestaurantOpen     RestaurantStatusType = "open"
	RestaurantBusy     RestaurantStatusType = "busy"
	RestaurantClosed   RestaurantStatusType = "closed"
	RestaurantRejected RestaurantStatusType = "rejected"
)

func (t RestaurantStatusType) String() string {
	return string(t)
}

// AcceptsOrders true для ресторанов, которые могут принимать новые заказы.
func (t RestaurantStatusType) AcceptsOrders() bool {
	return t == RestaurantOpen || t == RestaurantBusy
}

type FoodItem struct {
	ID           int64
	RestaurantID int64
	Name         string
	Price        int64
	IsAvailable  bool
}
