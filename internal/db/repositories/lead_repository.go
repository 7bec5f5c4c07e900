package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"autokomis/backoffice/internal/constants"
	"autokomis/backoffice/internal/models/entities"
)

type LeadRepository struct {
	db *sqlx.DB
}

func NewLeadRepository(db *sqlx.DB) *LeadRepository {
	return &LeadRepository{db}
}

func (r *LeadRepository) InsertLead(ctx context.Context, lead *entities.Lead) error {
	return r.db.QueryRowxContext(
		ctx,
		constants.InsertLead,
		lead.ID,
		lead.Kind,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Message,
		lead.CarID,
		lead.CreatedAt).StructScan(lead)
}

func (r *LeadRepository) ListLeads(ctx context.Context) ([]entities.Lead, error) {
	var leads []entities.Lead
	if err := r.db.SelectContext(ctx, &leads, constants.ListLeads); err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *LeadRepository) ListLeadsByKind(ctx context.Context, kind entities.LeadKind) ([]entities.Lead, error) {
	var leads []entities.Lead
	if err := r.db.SelectContext(ctx, &leads, constants.ListLeadsByKind, kind); err != nil {
		return nil, err
	}
	return leads, nil
}
