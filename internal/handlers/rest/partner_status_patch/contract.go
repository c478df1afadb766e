//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=partner_status_patch_test
package partner_status_patch

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SetStatus(ctx context.Context, actor entities.Actor, status entities.PartnerStatusType) (*entities.Partner, error)
}
