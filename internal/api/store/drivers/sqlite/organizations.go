package sqlite

import (
	"context"

	"github.com/aussiebroadwan/eventplanner/internal/api/domain"
)

type organizationsRepo struct {
	q querier
}

func (r *organizationsRepo) CreateOrganization(ctx context.Context, o domain.Organization) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO organizations (id, name, slug, owner_id, created_at) VALUES (?, ?, ?, ?, ?)`,
		o.ID, o.Name, o.Slug, o.OwnerID, unix(o.CreatedAt),
	)
	return mapInsertErr(err)
}

func (r *organizationsRepo) GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error) {
	var (
		o         domain.Organization
		createdAt int64
	)
	err := r.q.QueryRowContext(ctx,
		`SELECT id, name, slug, owner_id, created_at FROM organizations WHERE id = ?`, id,
	).Scan(&o.ID, &o.Name, &o.Slug, &o.OwnerID, &createdAt)
	if err != nil {
		return domain.Organization{}, mapNotFound(err)
	}
	o.CreatedAt = fromUnix(createdAt)
	return o, nil
}
