package partner

import "time"

type PartnerDB struct {
	ID        int64
	UserID    int64
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
