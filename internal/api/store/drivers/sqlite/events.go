package sqlite

import (
	"context"

	"github.com/aussiebroadwan/eventplanner/internal/api/domain"
)

type eventsRepo struct {
	q querier
}

const eventColumns = `id, organization_id, created_by, name, description, start_at,
	venue_name, venue_address, capacity, created_at`

func scanEvent(row scanner) (domain.Event, error) {
	var (
		e                  domain.Event
		startAt, createdAt int64
	)
	err := row.Scan(&e.ID, &e.OrganizationID, &e.CreatedBy, &e.Name, &e.Description, &startAt,
		&e.VenueName, &e.VenueAddress, &e.Capacity, &createdAt)
	if err != nil {
		return domain.Event{}, mapNotFound(err)
	}
	e.StartAt = fromUnix(startAt)
	e.CreatedAt = fromUnix(createdAt)
	return e, nil
}

func (r *eventsRepo) CreateEvent(ctx context.Context, e domain.Event) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO events (`+eventColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.OrganizationID, e.CreatedBy, e.Name, e.Description, unix(e.StartAt),
		e.VenueName, e.VenueAddress, e.Capacity, unix(e.CreatedAt),
	)
	return mapInsertErr(err)
}

func (r *eventsRepo) GetEventByID(ctx context.Context, id string) (domain.Event, error) {
	return scanEvent(r.q.QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = ?`, id))
}

func (r *eventsRepo) ListEventsByOrganization(ctx context.Context, orgID string) ([]domain.Event, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE organization_id = ? ORDER BY start_at, id`, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventsRepo) UpdateEvent(ctx context.Context, e domain.Event) error {
	return expectRow(r.q.ExecContext(ctx,
		`UPDATE events SET name = ?, description = ?, start_at = ?, venue_name = ?, venue_address = ?, capacity = ?
		 WHERE id = ?`,
		e.Name, e.Description, unix(e.StartAt), e.VenueName, e.VenueAddress, e.Capacity, e.ID,
	))
}

// DeleteEvent clears the attendee side explicitly: attendee invitations
// reference attendees without a cascade.
func (r *eventsRepo) DeleteEvent(ctx context.Context, id string) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM attendee_invitations WHERE event_id = ?`, id); err != nil {
		return err
	}
	if _, err := r.q.ExecContext(ctx, `DELETE FROM attendees WHERE event_id = ?`, id); err != nil {
		return err
	}
	return expectRow(r.q.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id))
}
