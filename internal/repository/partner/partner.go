package partner

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/partner"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Partner, error) {
	query := `SELECT id, user_id, status, created_at, updated_at
		FROM partners
		WHERE id = $1`

	var partnerModel PartnerDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&partnerModel.ID,
			&partnerModel.UserID,
			&partnerModel.Status,
			&partnerModel.CreatedAt,
			&partnerModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, partner.ErrPartnerNotFound
		}
		if repository.IsUnavailable(err) {
			return nil, fmt.Errorf("partner repository getbyid: %w: %w", partner.ErrStoreUnavailable, err)
		}
		return nil, fmt.Errorf("unexpected partner repository getbyid error: %w", err)
	}

	return ToDomain(&partnerModel), nil
}

// UpdateStatus меняет доступность партнёра. Пустой fromStatuses обновляет
// безусловно, иначе только если текущий статус из списка.
func (r *Repository) UpdateStatus(
	ctx context.Context,
	id int64,
	status entities.PartnerStatusType,
	fromStatuses ...entities.PartnerStatusType,
) (*entities.Partner, error) {
	builder := qb.
		Update("partners").
		Set("status", status.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id})

	if len(fromStatuses) > 0 {
		from := make([]string, len(fromStatuses))
		for i, s := range fromStatuses {
			from[i] = s.String()
		}
		builder = builder.Where(sq.Eq{"status": from})
	}

	query, args, err := builder.
		Suffix("RETURNING id, user_id, status, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected partner repository update status error: %w", err)
	}

	var partnerModel PartnerDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&partnerModel.ID,
			&partnerModel.UserID,
			&partnerModel.Status,
			&partnerModel.CreatedAt,
			&partnerModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if len(fromStatuses) > 0 {
				return nil, partner.ErrStatusUnchanged
			}
			return nil, partner.ErrPartnerNotFound
		}
		if repository.IsUnavailable(err) {
			return nil, fmt.Errorf("partner repository update status: %w: %w", partner.ErrStoreUnavailable, err)
		}
		return nil, fmt.Errorf("unexpected partner repository update status error: %w", err)
	}

	return ToDomain(&partnerModel), nil
}
