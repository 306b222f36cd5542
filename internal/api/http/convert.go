package http

import (
	"time"

	"github.com/aussiebroadwan/eventplanner/internal/api/domain"
	"github.com/aussiebroadwan/eventplanner/internal/api/service"
	"github.com/aussiebroadwan/eventplanner/pkg/eventsdk"
)

const (
	eventDateLayout = "2006-01-02"
	eventTimeLayout = "15:04"
)

func toUser(u domain.User) eventsdk.UserResponse {
	return eventsdk.UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		Role:           string(u.Role),
		OrganizationID: u.OrganizationID,
		CreatedAt:      u.CreatedAt,
	}
}

func toAuthResponse(u domain.User, tp *domain.TokenPair) eventsdk.AuthResponse {
	resp := eventsdk.AuthResponse{User: toUser(u)}
	if tp != nil {
		resp.Token = tp.AccessToken
		resp.RefreshToken = tp.RefreshToken
		resp.ExpiresIn = int(tp.ExpiresIn.Seconds())
	}
	return resp
}

func toInvitation(inv domain.Invitation) eventsdk.Invitation {
	return eventsdk.Invitation{
		ID:               inv.ID,
		Email:            inv.Email,
		Role:             string(inv.Role),
		OrganizationID:   inv.OrganizationID,
		OrganizationName: inv.OrganizationName,
		InvitedBy:        inv.InvitedBy,
		InvitedByName:    inv.InviterName,
		Status:           string(inv.Status),
		CreatedAt:        inv.CreatedAt,
		ExpiresAt:        inv.ExpiresAt,
		AcceptedAt:       inv.AcceptedAt,
	}
}

// toInvitationDetails expects inv.Status to already hold the effective
// status.
func toInvitationDetails(inv domain.Invitation) eventsdk.InvitationDetails {
	d := eventsdk.InvitationDetails{
		Email:            inv.Email,
		Role:             string(inv.Role),
		OrganizationName: inv.OrganizationName,
		InvitedBy:        inv.InviterName,
		Status:           string(inv.Status),
		ExpiresAt:        inv.ExpiresAt,
		IsExpired:        inv.Status == domain.StatusExpired,
	}
	if d.IsExpired {
		at := inv.ExpiresAt
		d.ExpiredAt = &at
	}
	return d
}

func toEvent(ev domain.Event) eventsdk.Event {
	return eventsdk.Event{
		ID:             ev.ID,
		OrganizationID: ev.OrganizationID,
		Name:           ev.Name,
		Description:    ev.Description,
		StartAt:        ev.StartAt,
		VenueName:      ev.VenueName,
		VenueAddress:   ev.VenueAddress,
		Capacity:       ev.Capacity,
		CreatedBy:      ev.CreatedBy,
		CreatedAt:      ev.CreatedAt,
	}
}

func toAttendeeInvitation(inv domain.AttendeeInvitation) eventsdk.AttendeeInvitation {
	return eventsdk.AttendeeInvitation{
		ID:             inv.ID,
		EventID:        inv.EventID,
		Email:          inv.Email,
		FullName:       inv.FullName,
		Message:        inv.Message,
		IsVIP:          inv.IsVIP,
		BypassCapacity: inv.BypassCapacity,
		InvitedBy:      inv.InvitedBy,
		Status:         string(inv.Status),
		CreatedAt:      inv.CreatedAt,
		ExpiresAt:      inv.ExpiresAt,
		RespondedAt:    inv.RespondedAt,
		RejectReason:   inv.RejectReason,
	}
}

func toAttendeeInvitationDetails(v service.AttendeeInvitationView) eventsdk.AttendeeInvitationDetails {
	inv, ev := v.Invitation, v.Snapshot.Event
	start := ev.StartAt.UTC()

	d := eventsdk.AttendeeInvitationDetails{
		Email:            inv.Email,
		FullName:         inv.FullName,
		Message:          inv.Message,
		IsVIP:            inv.IsVIP,
		Status:           string(inv.Status),
		ExpiresAt:        inv.ExpiresAt,
		EventName:        ev.Name,
		EventDescription: ev.Description,
		EventDate:        start.Format(eventDateLayout),
		EventTime:        start.Format(eventTimeLayout),
		VenueName:        ev.VenueName,
		VenueAddress:     ev.VenueAddress,
		InviterName:      v.Snapshot.InviterName,
		OrganizationName: v.Snapshot.OrganizationName,
		CanAccept:        v.CanAccept,
		IsExpired:        inv.Status == domain.StatusExpired,
	}
	if d.IsExpired {
		at := inv.ExpiresAt
		d.ExpiredAt = &at
	}
	return d
}

func toAttendee(a domain.Attendee) eventsdk.Attendee {
	return eventsdk.Attendee{
		ID:           a.ID,
		EventID:      a.EventID,
		Email:        a.Email,
		FullName:     a.FullName,
		Phone:        a.Phone,
		Status:       a.Status,
		RegisteredAt: a.RegisteredAt,
	}
}

func toStats(s domain.InvitationStats) eventsdk.InvitationStats {
	return eventsdk.InvitationStats{
		Total:        s.Total,
		Pending:      s.Pending,
		Accepted:     s.Accepted,
		Rejected:     s.Rejected,
		Expired:      s.Expired,
		Canceled:     s.Canceled,
		ResponseRate: s.ResponseRate,
	}
}

func toEventInput(req eventsdk.EventRequest) service.CreateEventInput {
	return service.CreateEventInput{
		Name:         req.Name,
		Description:  req.Description,
		StartAt:      req.StartAt.UTC().Truncate(time.Second),
		VenueName:    req.VenueName,
		VenueAddress: req.VenueAddress,
		Capacity:     req.Capacity,
	}
}
