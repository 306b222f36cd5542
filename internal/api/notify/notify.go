// Package notify renders invitation emails and hands them to a mailer.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"text/template"
	"time"

	"github.com/aussiebroadwan/eventplanner/internal/api/domain"
	"github.com/aussiebroadwan/eventplanner/pkg/mailx"
	"github.com/aussiebroadwan/eventplanner/pkg/slogx"
)

// Notifier delivers invitation links to recipients.
type Notifier interface {
	OrgInvitation(ctx context.Context, inv domain.Invitation) error
	AttendeeInvitation(ctx context.Context, inv domain.AttendeeInvitation, snap domain.EventSnapshot) error
}

var (
	orgSubject      = template.Must(template.New("org_subject").Parse(`You're invited to join {{.OrganizationName}}`))
	orgBody         = template.Must(template.New("org_body").Parse(orgBodyText))
	attendeeSubject = template.Must(template.New("attendee_subject").Parse(`{{if .IsVIP}}[VIP] {{end}}You're invited: {{.EventName}}`))
	attendeeBody    = template.Must(template.New("attendee_body").Parse(attendeeBodyText))
)

const orgBodyText = `Hi,

{{.InviterName}} has invited you to join {{.OrganizationName}} as {{.Role}}.

Accept the invitation here:
{{.Link}}

This invitation expires on {{.ExpiresAt}}.
`

const attendeeBodyText = `Hi {{.RecipientName}},

{{.InviterName}} has invited you to {{.EventName}}.
{{- if .Description}}

{{.Description}}
{{- end}}

When: {{.EventDate}} at {{.EventTime}}
{{- if .VenueName}}
Where: {{.VenueName}}{{if .VenueAddress}}, {{.VenueAddress}}{{end}}
{{- end}}
{{- if .Message}}

Message from the organizer:
{{.Message}}
{{- end}}

Respond here:
{{.Link}}

This invitation expires on {{.ExpiresAt}}.
`

const expiryLayout = "January 2, 2006 at 3:04 PM MST"

// MailNotifier builds messages from templates and sends them with Mailer.
// PublicURL is the base of the links recipients follow.
type MailNotifier struct {
	Mailer    mailx.Mailer
	From      string
	PublicURL string
}

func (n *MailNotifier) OrgInvitation(ctx context.Context, inv domain.Invitation) error {
	data := struct {
		InviterName      string
		OrganizationName string
		Role             string
		Link             string
		ExpiresAt        string
	}{
		InviterName:      fallback(inv.InviterName, "An organizer"),
		OrganizationName: fallback(inv.OrganizationName, "an organization"),
		Role:             roleLabel(inv.Role),
		Link:             OrgInvitationLink(n.PublicURL, inv.Token),
		ExpiresAt:        inv.ExpiresAt.UTC().Format(expiryLayout),
	}
	return n.send(ctx, inv.Email, orgSubject, orgBody, data)
}

func (n *MailNotifier) AttendeeInvitation(ctx context.Context, inv domain.AttendeeInvitation, snap domain.EventSnapshot) error {
	recipient := inv.FullName
	if recipient == "" {
		local, _, _ := strings.Cut(inv.Email, "@")
		recipient = local
	}

	data := struct {
		RecipientName string
		InviterName   string
		EventName     string
		Description   string
		EventDate     string
		EventTime     string
		VenueName     string
		VenueAddress  string
		Message       string
		IsVIP         bool
		Link          string
		ExpiresAt     string
	}{
		RecipientName: recipient,
		InviterName:   fallback(snap.InviterName, "The event organizer"),
		EventName:     snap.Event.Name,
		Description:   snap.Event.Description,
		EventDate:     snap.Event.StartAt.UTC().Format("January 2, 2006"),
		EventTime:     snap.Event.StartAt.UTC().Format("3:04 PM"),
		VenueName:     snap.Event.VenueName,
		VenueAddress:  snap.Event.VenueAddress,
		Message:       inv.Message,
		IsVIP:         inv.IsVIP,
		Link:          AttendeeInvitationLink(n.PublicURL, inv.Token),
		ExpiresAt:     inv.ExpiresAt.UTC().Format(expiryLayout),
	}
	return n.send(ctx, inv.Email, attendeeSubject, attendeeBody, data)
}

func (n *MailNotifier) send(ctx context.Context, to string, subject, body *template.Template, data any) error {
	var subj, text bytes.Buffer
	if err := subject.Execute(&subj, data); err != nil {
		return fmt.Errorf("render subject: %w", err)
	}
	if err := body.Execute(&text, data); err != nil {
		return fmt.Errorf("render body: %w", err)
	}

	start := time.Now()
	err := n.Mailer.Send(ctx, mailx.Message{
		From:    n.From,
		To:      []string{to},
		Subject: subj.String(),
		Body:    text.String(),
	})
	if err != nil {
		slogx.FromContext(ctx).Error("invitation email failed",
			slog.String("to", to),
			slog.Any("error", err),
		)
		return err
	}

	slogx.FromContext(ctx).Debug("invitation email sent",
		slog.String("to", to),
		slog.Duration("took", time.Since(start)),
	)
	return nil
}

// OrgInvitationLink is the web client URL for accepting an organization
// invitation.
func OrgInvitationLink(base, token string) string {
	return strings.TrimRight(base, "/") + "/invite/" + url.PathEscape(token)
}

// AttendeeInvitationLink is the web client URL for responding to an event
// invitation.
func AttendeeInvitationLink(base, token string) string {
	return strings.TrimRight(base, "/") + "/invitations/attendee/accept?token=" + url.QueryEscape(token)
}

func roleLabel(r domain.OrgRole) string {
	switch r {
	case domain.RoleAdmin:
		return "an administrator"
	case domain.RoleMember:
		return "a team member"
	}
	return string(r)
}

func fallback(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
