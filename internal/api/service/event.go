package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/eventplanner/internal/api/domain"
	"github.com/aussiebroadwan/eventplanner/internal/api/store"
	"github.com/aussiebroadwan/eventplanner/pkg/idx"
	"github.com/aussiebroadwan/eventplanner/pkg/slogx"
)

// EventService is the minimal event CRUD attendee invitations hang off.
type EventService struct {
	Store store.Store
	Now   func() time.Time
}

type CreateEventInput struct {
	Name         string
	Description  string
	StartAt      time.Time
	VenueName    string
	VenueAddress string
	Capacity     int
}

func (in CreateEventInput) check() error {
	for _, f := range []struct{ field, value string }{
		{"name", in.Name},
		{"venue_name", in.VenueName},
		{"venue_address", in.VenueAddress},
	} {
		if err := checkSingleLine(f.field, f.value); err != nil {
			return err
		}
	}
	return nil
}

func (in CreateEventInput) apply(ev *domain.Event) {
	ev.Name = strings.TrimSpace(in.Name)
	ev.Description = strings.TrimSpace(in.Description)
	ev.StartAt = in.StartAt.UTC().Truncate(time.Second)
	ev.VenueName = strings.TrimSpace(in.VenueName)
	ev.VenueAddress = strings.TrimSpace(in.VenueAddress)
	ev.Capacity = max(in.Capacity, 0)
}

// Create adds an event to the actor's organization.
func (s *EventService) Create(ctx context.Context, actorID string, in CreateEventInput) (domain.Event, error) {
	ts := now(s.Now)

	if err := in.check(); err != nil {
		return domain.Event{}, err
	}
	actor, err := s.Store.Users().GetUserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Event{}, ErrForbidden
		}
		return domain.Event{}, err
	}

	ev := domain.Event{
		ID:             idx.NewAt(ts).String(),
		OrganizationID: actor.OrganizationID,
		CreatedBy:      actor.ID,
		CreatedAt:      ts,
	}
	in.apply(&ev)
	if err := s.Store.Events().CreateEvent(ctx, ev); err != nil {
		return domain.Event{}, err
	}

	slogx.FromContext(ctx).Info("event created",
		slog.String("event_id", ev.ID),
		slog.String("organization_id", ev.OrganizationID),
	)
	return ev, nil
}

// Update replaces the editable fields of an event. Only owners and admins
// may edit, and a limited capacity cannot drop below the guests already
// registered.
func (s *EventService) Update(ctx context.Context, actorID, eventID string, in CreateEventInput) (domain.Event, error) {
	if err := in.check(); err != nil {
		return domain.Event{}, err
	}

	var ev domain.Event
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		ev, err = loadEditableEvent(ctx, tx, actorID, eventID)
		if err != nil {
			return err
		}
		in.apply(&ev)

		if ev.Capacity > 0 {
			n, err := tx.Attendees().CountEventAttendees(ctx, ev.ID)
			if err != nil {
				return err
			}
			if n > ev.Capacity {
				return ErrCapacityBelowAttendees
			}
		}
		return tx.Events().UpdateEvent(ctx, ev)
	})
	if err != nil {
		return domain.Event{}, err
	}

	slogx.FromContext(ctx).Info("event updated",
		slog.String("event_id", ev.ID),
		slog.String("user_id", actorID),
	)
	return ev, nil
}

// Delete removes an event along with its attendees and attendee
// invitations.
func (s *EventService) Delete(ctx context.Context, actorID, eventID string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := loadEditableEvent(ctx, tx, actorID, eventID); err != nil {
			return err
		}
		return tx.Events().DeleteEvent(ctx, eventID)
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("event deleted",
		slog.String("event_id", eventID),
		slog.String("user_id", actorID),
	)
	return nil
}

// List returns the actor's organization events.
func (s *EventService) List(ctx context.Context, actorID string) ([]domain.Event, error) {
	actor, err := s.Store.Users().GetUserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	return s.Store.Events().ListEventsByOrganization(ctx, actor.OrganizationID)
}

// Get returns an event of the actor's organization. Events of other
// organizations are reported as not found.
func (s *EventService) Get(ctx context.Context, actorID, eventID string) (domain.Event, error) {
	ev, _, err := loadManagedEvent(ctx, s.Store, actorID, eventID)
	return ev, err
}

// loadManagedEvent returns the event and actor when the actor belongs to the
// event's organization.
func loadManagedEvent(ctx context.Context, st store.Store, actorID, eventID string) (domain.Event, domain.User, error) {
	ev, err := st.Events().GetEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Event{}, domain.User{}, ErrEventNotFound
		}
		return domain.Event{}, domain.User{}, err
	}
	actor, err := loadMember(ctx, st, actorID, ev.OrganizationID)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			return domain.Event{}, domain.User{}, ErrEventNotFound
		}
		return domain.Event{}, domain.User{}, err
	}
	return ev, actor, nil
}

// loadEditableEvent is loadManagedEvent restricted to owners and admins.
// Plain members see ErrForbidden since they can already read the event.
func loadEditableEvent(ctx context.Context, st store.Store, actorID, eventID string) (domain.Event, error) {
	ev, actor, err := loadManagedEvent(ctx, st, actorID, eventID)
	if err != nil {
		return domain.Event{}, err
	}
	if !actor.Role.ManagesEvents() {
		slogx.FromContext(ctx).Warn("member attempted to edit an event",
			slog.String("user_id", actorID),
			slog.String("event_id", eventID),
		)
		return domain.Event{}, ErrForbidden
	}
	return ev, nil
}
