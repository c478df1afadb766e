package entities

import (
	"time"
)

type Partner struct {
	ID        int64
	UserID    int64
	Status    PartnerStatusType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PartnerStatusType string

const (
	PartnerAvailable PartnerStatusType = "available"
	PartnerBusy      PartnerStatusType = "busy"
	PartnerOffline   PartnerStatusType = "offline"
)

func (t PartnerStatusType) String() string {
	return string(t)
}

func (t PartnerStatusType) IsValid() bool {
	switch t {
	case PartnerAvailable, PartnerBusy, PartnerOffline:
		return true
	default:
		return false
	}
}
