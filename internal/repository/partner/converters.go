package partner

import (
	"marketplace/internal/entities"
)

func ToDomain(p *PartnerDB) *entities.Partner {
	if p == nil {
		return nil
	}

	return &entities.Partner{
		ID:        p.ID,
		UserID:    p.UserID,
		Status:    entities.PartnerStatusType(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
