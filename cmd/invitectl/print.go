package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/aussiebroadwan/eventplanner/pkg/eventsdk"
	"github.com/aussiebroadwan/eventplanner/pkg/inviteflow"
	"github.com/aussiebroadwan/eventplanner/pkg/validate"
)

const timeLayout = "2006-01-02 15:04 MST"

func printFieldErrors(w io.Writer, err error) {
	ve, ok := validate.AsErrors(err)
	if !ok {
		fmt.Fprintf(w, "%v\n", err)
		return
	}
	msgs := ve.Messages()
	fields := make([]string, 0, len(msgs))
	for f := range msgs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	fmt.Fprintln(w, "Please correct the following:")
	for _, f := range fields {
		fmt.Fprintf(w, "  %s: %s\n", f, msgs[f])
	}
}

func printUser(w io.Writer, u *eventsdk.UserResponse) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", u.FullName)
	fmt.Fprintf(tw, "Email:\t%s\n", u.Email)
	fmt.Fprintf(tw, "Role:\t%s\n", u.Role)
	fmt.Fprintf(tw, "Organization:\t%s\n", u.OrganizationID)
	_ = tw.Flush()
}

func printOrgView(w io.Writer, v inviteflow.OrgView) {
	fmt.Fprintln(w, v.Phase.Title())

	if inv := v.Invitation; inv != nil && v.Phase.ShowsForm() {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  Organization:\t%s\n", inv.OrganizationName)
		fmt.Fprintf(tw, "  Email:\t%s\n", inv.Email)
		fmt.Fprintf(tw, "  Role:\t%s\n", inv.Role)
		fmt.Fprintf(tw, "  Invited by:\t%s\n", inv.InvitedBy)
		fmt.Fprintf(tw, "  Expires:\t%s\n", inv.ExpiresAt.Local().Format(timeLayout))
		_ = tw.Flush()
	}
	if v.Message != "" {
		fmt.Fprintln(w, v.Message)
	}
	printFields(w, v.FieldErrors)
}

func printAttendeeView(w io.Writer, v inviteflow.AttendeeView) {
	fmt.Fprintln(w, v.Phase.Title())

	if inv := v.Invitation; inv != nil && v.Phase != inviteflow.PhaseInvalid {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  Event:\t%s\n", v.EventName())
		fmt.Fprintf(tw, "  When:\t%s %s UTC\n", inv.EventDate, inv.EventTime)
		if inv.VenueName != "" {
			fmt.Fprintf(tw, "  Where:\t%s %s\n", inv.VenueName, inv.VenueAddress)
		}
		fmt.Fprintf(tw, "  Host:\t%s, %s\n", inv.InviterName, inv.OrganizationName)
		if inv.Message != "" {
			fmt.Fprintf(tw, "  Message:\t%s\n", inv.Message)
		}
		_ = tw.Flush()
	}
	if v.Message != "" {
		fmt.Fprintln(w, v.Message)
	}
	printFields(w, v.FieldErrors)
}

func printFields(w io.Writer, fields map[string]string) {
	names := make([]string, 0, len(fields))
	for f := range fields {
		names = append(names, f)
	}
	sort.Strings(names)
	for _, f := range names {
		fmt.Fprintf(w, "  %s: %s\n", f, fields[f])
	}
}

func printPending(w io.Writer, v inviteflow.PendingView) {
	if len(v.Items) == 0 {
		fmt.Fprintln(w, "No pending invitations.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMAIL\tROLE\tINVITED BY\tEXPIRES")
	for _, item := range v.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", item.ID, item.Email, item.Role, item.InvitedByName, item.TimeLeft)
	}
	_ = tw.Flush()
}

// printNotices prints the notice recorded by the last action and reports
// failure notices as errors.
func printNotices(w io.Writer, v inviteflow.PendingView) error {
	if len(v.Notices) == 0 {
		return nil
	}
	last := v.Notices[len(v.Notices)-1]
	fmt.Fprintln(w, last)
	if strings.HasPrefix(last, "Could not") {
		return errReported
	}
	return nil
}

func printMembers(w io.Writer, members []eventsdk.UserResponse) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tJOINED")
	for _, m := range members {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", m.ID, m.FullName, m.Email, m.Role, m.CreatedAt.Local().Format(timeLayout))
	}
	_ = tw.Flush()
}

func printEvents(w io.Writer, events []eventsdk.Event) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No events.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSTARTS\tVENUE\tCAPACITY")
	for _, ev := range events {
		capacity := "unlimited"
		if ev.Capacity > 0 {
			capacity = fmt.Sprint(ev.Capacity)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", ev.ID, ev.Name, ev.StartAt.Local().Format(timeLayout), ev.VenueName, capacity)
	}
	_ = tw.Flush()
}

func printAttendeeInvitations(w io.Writer, invs []eventsdk.AttendeeInvitation, stats *eventsdk.InvitationStats) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMAIL\tSTATUS\tVIP")
	for _, inv := range invs {
		vip := ""
		if inv.IsVIP {
			vip = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", inv.ID, inv.Email, inv.Status, vip)
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "\n%d invited: %d pending, %d accepted, %d declined, %d expired, %d canceled (%.0f%% responded)\n",
		stats.Total, stats.Pending, stats.Accepted, stats.Rejected, stats.Expired, stats.Canceled, stats.ResponseRate)
}
