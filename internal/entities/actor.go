package entities

// Role имя роли, используется в сообщениях и причине отмены по умолчанию.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleOwner    Role = "owner"
	RolePartner  Role = "partner"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// Actor аутентифицированный пользователь вместе с профилем его роли.
// Реализуют только типы этого пакета.
type Actor interface {
	Role() Role
	User() int64
	actor()
}

type CustomerActor struct {
	UserID     int64
	CustomerID int64
}

type OwnerActor struct {
	UserID       int64
	OwnerID      int64
	RestaurantID int64
}

type PartnerActor struct {
	UserID    int64
	PartnerID int64
}

type AdminActor struct {
	UserID int64
}

func (CustomerActor) Role() Role { return RoleCustomer }
func (OwnerActor) Role() Role    { return RoleOwner }
func (PartnerActor) Role() Role  { return RolePartner }
func (AdminActor) Role() Role    { return RoleAdmin }

func (a CustomerActor) User() int64 { return a.UserID }
func (a OwnerActor) User() int64    { return a.UserID }
func (a PartnerActor) User() int64  { return a.UserID }
func (a AdminActor) User() int64    { return a.UserID }

func (CustomerActor) actor() {}
func (OwnerActor) actor()    {}
func (PartnerActor) actor()  {}
func (AdminActor) actor()    {}
