package notify_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/eventplanner/internal/api/domain"
	"github.com/aussiebroadwan/eventplanner/internal/api/notify"
	"github.com/aussiebroadwan/eventplanner/pkg/mailx"
	"github.com/stretchr/testify/require"
)

func TestOrgInvitationEmail(t *testing.T) {
	mailer := &mailx.LogMailer{From: "no-reply@example.com"}
	n := &notify.MailNotifier{Mailer: mailer, PublicURL: "https://app.example.com/"}

	err := n.OrgInvitation(context.Background(), domain.Invitation{
		Email:            "new@example.com",
		Role:             domain.RoleAdmin,
		Token:            "tok/1",
		ExpiresAt:        time.Date(2024, 3, 8, 10, 0, 0, 0, time.UTC),
		OrganizationName: "Acme Events",
		InviterName:      "Olivia Owner",
	})
	require.NoError(t, err)

	sent := mailer.Sent()
	require.Len(t, sent, 1)
	require.Equal(t, []string{"new@example.com"}, sent[0].To)
	require.Equal(t, "You're invited to join Acme Events", sent[0].Subject)
	require.Contains(t, sent[0].Body, "Olivia Owner has invited you to join Acme Events as an administrator.")
	require.Contains(t, sent[0].Body, "https://app.example.com/invite/tok%2F1")
	require.Contains(t, sent[0].Body, "March 8, 2024 at 10:00 AM UTC")
}

func TestAttendeeInvitationEmail(t *testing.T) {
	mailer := &mailx.LogMailer{From: "no-reply@example.com"}
	n := &notify.MailNotifier{Mailer: mailer, PublicURL: "https://app.example.com"}

	snap := domain.EventSnapshot{
		Event: domain.Event{
			Name:      "Launch Party",
			StartAt:   time.Date(2024, 4, 1, 19, 30, 0, 0, time.UTC),
			VenueName: "The Loft",
		},
		InviterName: "Olivia Owner",
	}
	err := n.AttendeeInvitation(context.Background(), domain.AttendeeInvitation{
		Email:     "jane.doe@example.com",
		Token:     "att-1",
		Message:   "Bring a friend",
		IsVIP:     true,
		ExpiresAt: time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC),
	}, snap)
	require.NoError(t, err)

	sent := mailer.Sent()
	require.Len(t, sent, 1)
	require.Equal(t, "[VIP] You're invited: Launch Party", sent[0].Subject)
	require.Contains(t, sent[0].Body, "Hi jane.doe,")
	require.Contains(t, sent[0].Body, "When: April 1, 2024 at 7:30 PM")
	require.Contains(t, sent[0].Body, "Where: The Loft\n")
	require.Contains(t, sent[0].Body, "Bring a friend")
	require.Contains(t, sent[0].Body, "https://app.example.com/invitations/attendee/accept?token=att-1")
}
