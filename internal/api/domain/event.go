package domain

import "time"

type Event struct {
	ID             string
	OrganizationID string
	CreatedBy      string
	Name           string
	Description    string
	StartAt        time.Time
	VenueName      string
	VenueAddress   string
	// Capacity of zero means unlimited.
	Capacity  int
	CreatedAt time.Time
}

const AttendeeConfirmed = "confirmed"

type Attendee struct {
	ID           string
	EventID      string
	Email        string
	FullName     string
	Phone        string
	Status       string
	InvitationID string
	RegisteredAt time.Time
}
