package catalog

type RestaurantDB struct {
	ID       int64
	OwnerID  int64
	Name     string
	Location string
	Status   string
}

type FoodItemDB struct {
	ID           int64
	RestaurantID int64
	Name         string
	Price        int64
	IsAvailable  bool
}
