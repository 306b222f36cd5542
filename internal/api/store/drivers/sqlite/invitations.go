package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/eventplanner/internal/api/domain"
)

type invitationsRepo struct {
	q querier
}

const invitationSelect = `SELECT i.id, i.email, i.role, i.token, i.organization_id, i.invited_by, i.status,
	i.created_at, i.expires_at, i.accepted_at, i.accepted_by,
	COALESCE(o.name, ''), COALESCE(u.full_name, '')
FROM invitations i
LEFT JOIN organizations o ON o.id = i.organization_id
LEFT JOIN users u ON u.id = i.invited_by`

func scanInvitation(row scanner) (domain.Invitation, error) {
	var (
		inv                  domain.Invitation
		role, status         string
		createdAt, expiresAt int64
		acceptedAt           sql.NullInt64
		acceptedBy           sql.NullString
	)
	err := row.Scan(&inv.ID, &inv.Email, &role, &inv.Token, &inv.OrganizationID, &inv.InvitedBy, &status,
		&createdAt, &expiresAt, &acceptedAt, &acceptedBy,
		&inv.OrganizationName, &inv.InviterName)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	inv.Role = domain.OrgRole(role)
	inv.Status = domain.InvitationStatus(status)
	inv.CreatedAt = fromUnix(createdAt)
	inv.ExpiresAt = fromUnix(expiresAt)
	inv.AcceptedAt = fromNullUnix(acceptedAt)
	inv.AcceptedBy = fromNullString(acceptedBy)
	return inv, nil
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	status := inv.Status
	if status == "" {
		status = domain.StatusPending
	}
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO invitations (id, email, role, token, organization_id, invited_by, status, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Email, string(inv.Role), inv.Token, inv.OrganizationID, inv.InvitedBy, string(status),
		unix(inv.CreatedAt), unix(inv.ExpiresAt),
	)
	return mapInsertErr(err)
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error) {
	return scanInvitation(r.q.QueryRowContext(ctx, invitationSelect+` WHERE i.id = ?`, id))
}

func (r *invitationsRepo) GetInvitationByToken(ctx context.Context, token string) (domain.Invitation, error) {
	return scanInvitation(r.q.QueryRowContext(ctx, invitationSelect+` WHERE i.token = ?`, token))
}

func (r *invitationsRepo) ListInvitationsByOrganization(ctx context.Context, orgID string) ([]domain.Invitation, error) {
	rows, err := r.q.QueryContext(ctx,
		invitationSelect+` WHERE i.organization_id = ? ORDER BY i.created_at DESC, i.id DESC`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invitationsRepo) GetLivePendingInvitationByEmail(
	ctx context.Context,
	orgID, email string,
	now time.Time,
) (domain.Invitation, error) {
	return scanInvitation(r.q.QueryRowContext(ctx,
		invitationSelect+` WHERE i.organization_id = ? AND i.email = ? AND i.status = 'pending' AND i.expires_at >= ?
		ORDER BY i.created_at DESC LIMIT 1`,
		orgID, email, unix(now)))
}

func (r *invitationsRepo) TransitionInvitation(
	ctx context.Context,
	id string,
	status domain.InvitationStatus,
	at time.Time,
	by string,
) error {
	if status == domain.StatusAccepted {
		return expectOne(r.q.ExecContext(ctx,
			`UPDATE invitations SET status = ?, accepted_at = ?, accepted_by = ?
			 WHERE id = ? AND status = 'pending'`,
			string(status), unix(at), nullString(by), id))
	}
	return expectOne(r.q.ExecContext(ctx,
		`UPDATE invitations SET status = ? WHERE id = ? AND status = 'pending'`,
		string(status), id))
}

func (r *invitationsRepo) ExpireStaleInvitations(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`UPDATE invitations SET status = 'expired' WHERE status = 'pending' AND expires_at < ?`, unix(now))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
