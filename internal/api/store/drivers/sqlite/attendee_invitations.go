package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/eventplanner/internal/api/domain"
)

type attendeeInvitationsRepo struct {
	q querier
}

const attendeeInvitationColumns = `id, event_id, email, full_name, token, invited_by, message, is_vip,
	bypass_capacity, status, created_at, expires_at, responded_at, attendee_id, reject_reason`

func scanAttendeeInvitation(row scanner) (domain.AttendeeInvitation, error) {
	var (
		inv                  domain.AttendeeInvitation
		status               string
		createdAt, expiresAt int64
		respondedAt          sql.NullInt64
		attendeeID           sql.NullString
	)
	err := row.Scan(&inv.ID, &inv.EventID, &inv.Email, &inv.FullName, &inv.Token, &inv.InvitedBy,
		&inv.Message, &inv.IsVIP, &inv.BypassCapacity, &status, &createdAt, &expiresAt,
		&respondedAt, &attendeeID, &inv.RejectReason)
	if err != nil {
		return domain.AttendeeInvitation{}, mapNotFound(err)
	}
	inv.Status = domain.InvitationStatus(status)
	inv.CreatedAt = fromUnix(createdAt)
	inv.ExpiresAt = fromUnix(expiresAt)
	inv.RespondedAt = fromNullUnix(respondedAt)
	inv.AttendeeID = fromNullString(attendeeID)
	return inv, nil
}

func (r *attendeeInvitationsRepo) CreateAttendeeInvitation(ctx context.Context, inv domain.AttendeeInvitation) error {
	status := inv.Status
	if status == "" {
		status = domain.StatusPending
	}
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO attendee_invitations (id, event_id, email, full_name, token, invited_by, message,
			is_vip, bypass_capacity, status, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.EventID, inv.Email, inv.FullName, inv.Token, inv.InvitedBy, inv.Message,
		inv.IsVIP, inv.BypassCapacity, string(status), unix(inv.CreatedAt), unix(inv.ExpiresAt),
	)
	return mapInsertErr(err)
}

func (r *attendeeInvitationsRepo) GetAttendeeInvitationByID(ctx context.Context, id string) (domain.AttendeeInvitation, error) {
	return scanAttendeeInvitation(r.q.QueryRowContext(ctx,
		`SELECT `+attendeeInvitationColumns+` FROM attendee_invitations WHERE id = ?`, id))
}

func (r *attendeeInvitationsRepo) GetAttendeeInvitationByToken(ctx context.Context, token string) (domain.AttendeeInvitation, error) {
	return scanAttendeeInvitation(r.q.QueryRowContext(ctx,
		`SELECT `+attendeeInvitationColumns+` FROM attendee_invitations WHERE token = ?`, token))
}

func (r *attendeeInvitationsRepo) ListAttendeeInvitationsByEvent(ctx context.Context, eventID string) ([]domain.AttendeeInvitation, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+attendeeInvitationColumns+` FROM attendee_invitations
		 WHERE event_id = ? ORDER BY created_at DESC, id DESC`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AttendeeInvitation
	for rows.Next() {
		inv, err := scanAttendeeInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *attendeeInvitationsRepo) GetLivePendingAttendeeInvitationByEmail(
	ctx context.Context,
	eventID, email string,
	now time.Time,
) (domain.AttendeeInvitation, error) {
	return scanAttendeeInvitation(r.q.QueryRowContext(ctx,
		`SELECT `+attendeeInvitationColumns+` FROM attendee_invitations
		 WHERE event_id = ? AND email = ? AND status = 'pending' AND expires_at >= ?
		 ORDER BY created_at DESC LIMIT 1`,
		eventID, email, unix(now)))
}

func (r *attendeeInvitationsRepo) RespondAttendeeInvitation(
	ctx context.Context,
	id string,
	status domain.InvitationStatus,
	at time.Time,
	attendeeID, reason string,
) error {
	return expectOne(r.q.ExecContext(ctx,
		`UPDATE attendee_invitations
		 SET status = ?, responded_at = ?, attendee_id = ?, reject_reason = ?
		 WHERE id = ? AND status = 'pending'`,
		string(status), unix(at), nullString(attendeeID), reason, id))
}

func (r *attendeeInvitationsRepo) ExpireStaleAttendeeInvitations(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`UPDATE attendee_invitations SET status = 'expired' WHERE status = 'pending' AND expires_at < ?`, unix(now))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
