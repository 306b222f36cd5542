package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/eventplanner/pkg/eventsdk"
	"github.com/aussiebroadwan/eventplanner/pkg/inviteflow"
	"github.com/aussiebroadwan/eventplanner/pkg/validate"
)

func cmdEventCreate(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet(c, "event-create")
	name := fs.String("name", "", "event name")
	description := fs.String("description", "", "event description")
	start := fs.String("start", "", "start time, RFC 3339 (e.g. 2030-06-01T18:30:00Z)")
	venue := fs.String("venue", "", "venue name")
	address := fs.String("address", "", "venue address")
	capacity := fs.Int("capacity", 0, "maximum attendees, 0 for unlimited")
	if _, err := positional(fs, args, 0); err != nil {
		return err
	}

	req := eventsdk.EventRequest{
		Name:         *name,
		Description:  *description,
		VenueName:    *venue,
		VenueAddress: *address,
		Capacity:     *capacity,
	}
	if *start != "" {
		t, err := time.Parse(time.RFC3339, *start)
		if err != nil {
			return fmt.Errorf("--start: %w", err)
		}
		req.StartAt = t
	}
	if err := validate.Struct(req); err != nil {
		printFieldErrors(c.out, err)
		return errReported
	}

	session, err := c.session(ctx)
	if err != nil {
		return err
	}
	ev, err := session.CreateEvent(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Created event %s (id %s).\n", ev.Name, ev.ID)
	return nil
}

// cmdEventUpdate starts from the stored event so only the flags given change.
func cmdEventUpdate(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet(c, "event-update")
	name := fs.String("name", "", "event name")
	description := fs.String("description", "", "event description")
	start := fs.String("start", "", "start time, RFC 3339")
	venue := fs.String("venue", "", "venue name")
	address := fs.String("address", "", "venue address")
	capacity := fs.Int("capacity", 0, "maximum attendees, 0 for unlimited")
	rest, err := positional(fs, args, 1, "EVENT_ID")
	if err != nil {
		return err
	}

	session, err := c.session(ctx)
	if err != nil {
		return err
	}
	ev, err := session.GetEvent(ctx, rest[0])
	if err != nil {
		return err
	}

	req := eventsdk.EventRequest{
		Name:         ev.Name,
		Description:  ev.Description,
		StartAt:      ev.StartAt,
		VenueName:    ev.VenueName,
		VenueAddress: ev.VenueAddress,
		Capacity:     ev.Capacity,
	}
	if fs.Changed("name") {
		req.Name = *name
	}
	if fs.Changed("description") {
		req.Description = *description
	}
	if fs.Changed("venue") {
		req.VenueName = *venue
	}
	if fs.Changed("address") {
		req.VenueAddress = *address
	}
	if fs.Changed("capacity") {
		req.Capacity = *capacity
	}
	if fs.Changed("start") {
		t, err := time.Parse(time.RFC3339, *start)
		if err != nil {
			return fmt.Errorf("--start: %w", err)
		}
		req.StartAt = t
	}
	if err := validate.Struct(req); err != nil {
		printFieldErrors(c.out, err)
		return errReported
	}

	updated, err := session.UpdateEvent(ctx, rest[0], req)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Updated event %s.\n", updated.Name)
	return nil
}

func cmdEventDelete(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet(c, "event-delete")
	rest, err := positional(fs, args, 1, "EVENT_ID")
	if err != nil {
		return err
	}

	session, err := c.session(ctx)
	if err != nil {
		return err
	}
	if err := session.DeleteEvent(ctx, rest[0]); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Event %s deleted.\n", rest[0])
	return nil
}

func cmdEvents(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet(c, "events")
	if _, err := positional(fs, args, 0); err != nil {
		return err
	}

	session, err := c.session(ctx)
	if err != nil {
		return err
	}
	events, err := session.ListEvents(ctx)
	if err != nil {
		return err
	}

	printEvents(c.out, events)
	return nil
}

func cmdInviteAttendees(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet(c, "invite-attendees")
	emails := fs.StringSlice("email", nil, "guest address, repeatable or comma separated")
	fullName := fs.String("name", "", "guest name used in the greeting")
	message := fs.String("message", "", "personal message included in the email")
	vip := fs.Bool("vip", false, "mark the guests as VIP")
	bypass := fs.Bool("bypass-capacity", false, "let these guests register even when the event is full")
	rest, err := positional(fs, args, 1, "EVENT_ID")
	if err != nil {
		return err
	}

	session, err := c.session(ctx)
	if err != nil {
		return err
	}
	res, err := session.InviteAttendees(ctx, rest[0], eventsdk.InviteAttendeesRequest{
		Emails:         *emails,
		FullName:       *fullName,
		Message:        *message,
		IsVIP:          *vip,
		BypassCapacity: *bypass,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Sent %d of %d invitations, %d skipped.\n", res.SentCount, res.TotalAttempted, res.SkippedCount)
	for _, e := range res.Errors {
		fmt.Fprintf(c.out, "  - %s\n", e)
	}
	return nil
}

func cmdAttendees(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet(c, "attendees")
	rest, err := positional(fs, args, 1, "EVENT_ID")
	if err != nil {
		return err
	}

	session, err := c.session(ctx)
	if err != nil {
		return err
	}
	invs, err := session.ListAttendeeInvitations(ctx, rest[0])
	if err != nil {
		return err
	}
	stats, err := session.AttendeeInvitationStats(ctx, rest[0])
	if err != nil {
		return err
	}

	printAttendeeInvitations(c.out, invs, stats)
	return nil
}

func cmdAttendeeVerify(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet(c, "attendee-verify")
	rest, err := positional(fs, args, 1, "TOKEN")
	if err != nil {
		return err
	}

	flow := inviteflow.NewAttendeeAcceptance(ctx, c.client)
	defer flow.Close()

	view, err := flow.Load(rest[0])
	if err != nil {
		return err
	}
	printAttendeeView(c.out, view)
	if view.Phase != inviteflow.PhaseReady {
		return errReported
	}
	return nil
}

func cmdAttendeeAccept(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet(c, "attendee-accept")
	name := fs.String("name", "", "your full name")
	phone := fs.String("phone", "", "contact phone number")
	rest, err := positional(fs, args, 1, "TOKEN")
	if err != nil {
		return err
	}

	flow := inviteflow.NewAttendeeAcceptance(ctx, c.client)
	defer flow.Close()

	view, err := flow.Load(rest[0])
	if err != nil {
		return err
	}
	if view.Phase == inviteflow.PhaseReady {
		view, err = flow.Submit(inviteflow.AttendeeAcceptInput{FullName: *name, Phone: *phone})
		if err != nil {
			return err
		}
	}

	printAttendeeView(c.out, view)
	if view.Phase != inviteflow.PhaseAccepted {
		return errReported
	}
	return nil
}

func cmdAttendeeReject(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet(c, "attendee-reject")
	reason := fs.String("reason", "", "optional note for the organizer")
	rest, err := positional(fs, args, 1, "TOKEN")
	if err != nil {
		return err
	}

	flow := inviteflow.NewAttendeeAcceptance(ctx, c.client)
	defer flow.Close()

	view, err := flow.Load(rest[0])
	if err != nil {
		return err
	}
	if view.Phase == inviteflow.PhaseReady || view.Phase == inviteflow.PhaseUnavailable {
		view, err = flow.Reject(*reason)
		if err != nil {
			return err
		}
	}

	printAttendeeView(c.out, view)
	if view.Phase != inviteflow.PhaseRejected {
		return errReported
	}
	return nil
}
