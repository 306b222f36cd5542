package domain

import (
	"math"
	"time"
)

// AttendeeInvitation invites one guest to one event.
type AttendeeInvitation struct {
	ID             string
	EventID        string
	Email          string
	FullName       string
	Token          string
	InvitedBy      string
	Message        string
	IsVIP          bool
	BypassCapacity bool
	Status         InvitationStatus
	CreatedAt      time.Time
	ExpiresAt      time.Time
	RespondedAt    *time.Time
	AttendeeID     string
	RejectReason   string
}

// EffectiveStatus returns the status as of now.
func (a AttendeeInvitation) EffectiveStatus(now time.Time) InvitationStatus {
	return EffectiveStatus(a.Status, a.ExpiresAt, now)
}

// IsExpired reports whether the invitation expired without a response.
func (a AttendeeInvitation) IsExpired(now time.Time) bool {
	return a.EffectiveStatus(now) == StatusExpired
}

// CanAccept reports whether the guest can still accept given the event's
// registration state.
func (a AttendeeInvitation) CanAccept(now time.Time, snap EventSnapshot) bool {
	if a.EffectiveStatus(now) != StatusPending {
		return false
	}
	return a.BypassCapacity || !snap.Full()
}

// EventSnapshot is the denormalized event data shown alongside an attendee
// invitation so the acceptance screen needs no further calls.
type EventSnapshot struct {
	Event            Event
	OrganizationName string
	InviterName      string
	Registered       int
}

// Full reports whether the event has reached capacity. Zero capacity means
// unlimited.
func (s EventSnapshot) Full() bool {
	return s.Event.Capacity > 0 && s.Registered >= s.Event.Capacity
}

// InvitationStats summarises the guest list for an event.
type InvitationStats struct {
	Total        int
	Pending      int
	Accepted     int
	Rejected     int
	Expired      int
	Canceled     int
	ResponseRate float64
}

// ComputeInvitationStats tallies effective statuses. Response rate is the
// share of invitations that were accepted or rejected, as a percentage
// rounded to one decimal place.
func ComputeInvitationStats(invs []AttendeeInvitation, now time.Time) InvitationStats {
	var s InvitationStats
	for _, inv := range invs {
		s.Total++
		switch inv.EffectiveStatus(now) {
		case StatusPending:
			s.Pending++
		case StatusAccepted:
			s.Accepted++
		case StatusRejected:
			s.Rejected++
		case StatusExpired:
			s.Expired++
		case StatusCanceled:
			s.Canceled++
		}
	}
	if s.Total > 0 {
		rate := float64(s.Accepted+s.Rejected) / float64(s.Total) * 100
		s.ResponseRate = math.Round(rate*10) / 10
	}
	return s
}
