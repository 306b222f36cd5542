package sqlite

import (
	"context"

	"github.com/aussiebroadwan/eventplanner/internal/api/domain"
)

type usersRepo struct {
	q querier
}

const userColumns = `id, email, full_name, password_hash, role, organization_id, created_at`

func scanUser(row scanner) (domain.User, error) {
	var (
		u         domain.User
		role      string
		createdAt int64
	)
	if err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &role, &u.OrganizationID, &createdAt); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Role = domain.OrgRole(role)
	u.CreatedAt = fromUnix(createdAt)
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.FullName, u.PasswordHash, string(u.Role), u.OrganizationID, unix(u.CreatedAt),
	)
	return mapInsertErr(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return scanUser(r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email))
}

func (r *usersRepo) ListUsersByOrganization(ctx context.Context, orgID string) ([]domain.User, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE organization_id = ? ORDER BY created_at, id`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) DeleteUser(ctx context.Context, id, successorID string) error {
	reassign := []string{
		`UPDATE events SET created_by = ? WHERE created_by = ?`,
		`UPDATE invitations SET invited_by = ? WHERE invited_by = ?`,
		`UPDATE attendee_invitations SET invited_by = ? WHERE invited_by = ?`,
	}
	for _, stmt := range reassign {
		if _, err := r.q.ExecContext(ctx, stmt, successorID, id); err != nil {
			return err
		}
	}
	if _, err := r.q.ExecContext(ctx,
		`UPDATE invitations SET accepted_by = NULL WHERE accepted_by = ?`, id); err != nil {
		return err
	}

	return expectRow(r.q.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id))
}
