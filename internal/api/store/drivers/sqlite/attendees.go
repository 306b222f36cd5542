package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/eventplanner/internal/api/domain"
)

type attendeesRepo struct {
	q querier
}

func (r *attendeesRepo) CreateAttendee(ctx context.Context, a domain.Attendee) error {
	status := a.Status
	if status == "" {
		status = domain.AttendeeConfirmed
	}
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO attendees (id, event_id, email, full_name, phone, status, invitation_id, registered_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.EventID, a.Email, a.FullName, a.Phone, status, nullString(a.InvitationID), unix(a.RegisteredAt),
	)
	return mapInsertErr(err)
}

func (r *attendeesRepo) GetAttendeeByEventAndEmail(ctx context.Context, eventID, email string) (domain.Attendee, error) {
	var (
		a            domain.Attendee
		invitationID sql.NullString
		registeredAt int64
	)
	err := r.q.QueryRowContext(ctx,
		`SELECT id, event_id, email, full_name, phone, status, invitation_id, registered_at
		 FROM attendees WHERE event_id = ? AND email = ?`, eventID, email,
	).Scan(&a.ID, &a.EventID, &a.Email, &a.FullName, &a.Phone, &a.Status, &invitationID, &registeredAt)
	if err != nil {
		return domain.Attendee{}, mapNotFound(err)
	}
	a.InvitationID = fromNullString(invitationID)
	a.RegisteredAt = fromUnix(registeredAt)
	return a, nil
}

func (r *attendeesRepo) CountEventAttendees(ctx context.Context, eventID string) (int, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM attendees WHERE event_id = ? AND status = ?`, eventID, domain.AttendeeConfirmed,
	).Scan(&n)
	return n, err
}
