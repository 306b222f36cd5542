package main

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/eventplanner/pkg/eventsdk"
	"github.com/aussiebroadwan/eventplanner/pkg/inviteflow"
	"github.com/aussiebroadwan/eventplanner/pkg/validate"
)

func cmdInvite(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet(c, "invite")
	email := fs.String("email", "", "address to invite")
	role := fs.String("role", "MEMBER", "MEMBER or ORG_ADMIN")
	if _, err := positional(fs, args, 0); err != nil {
		return err
	}

	req := eventsdk.InviteMemberRequest{Email: *email, Role: *role}
	if err := validate.Struct(req); err != nil {
		printFieldErrors(c.out, err)
		return errReported
	}

	session, err := c.session(ctx)
	if err != nil {
		return err
	}
	inv, err := session.InviteMember(ctx, session.User().OrganizationID, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Invited %s as %s (id %s, expires %s).\n",
		inv.Email, inv.Role, inv.ID, inv.ExpiresAt.Local().Format(timeLayout))
	return nil
}

// pendingList opens the session and loads the pending list screen.
func (c *cli) pendingList(ctx context.Context) (*inviteflow.PendingList, inviteflow.PendingView, error) {
	session, err := c.session(ctx)
	if err != nil {
		return nil, inviteflow.PendingView{}, err
	}

	list := inviteflow.NewPendingList(ctx, session, session.User().OrganizationID)
	view, err := list.Load()
	if err != nil {
		list.Close()
		return nil, view, err
	}
	if view.Phase == inviteflow.PhaseError {
		list.Close()
		return nil, view, fmt.Errorf("load pending invitations: %s", view.Message)
	}
	return list, view, nil
}

func cmdPending(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet(c, "pending")
	if _, err := positional(fs, args, 0); err != nil {
		return err
	}

	list, view, err := c.pendingList(ctx)
	if err != nil {
		return err
	}
	defer list.Close()

	printPending(c.out, view)
	return nil
}

func cmdResend(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet(c, "resend")
	rest, err := positional(fs, args, 1, "ID")
	if err != nil {
		return err
	}

	list, err := c.pendingItem(ctx, rest[0])
	if err != nil {
		return err
	}
	defer list.Close()

	view, err := list.Resend(rest[0])
	if err != nil {
		return err
	}
	return printNotices(c.out, view)
}

func cmdCancel(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet(c, "cancel")
	rest, err := positional(fs, args, 1, "ID")
	if err != nil {
		return err
	}

	list, err := c.pendingItem(ctx, rest[0])
	if err != nil {
		return err
	}
	defer list.Close()

	view, err := list.Cancel(rest[0])
	if err != nil {
		return err
	}
	if len(view.Notices) == 0 {
		fmt.Fprintf(c.out, "Invitation %s canceled.\n", rest[0])
		return nil
	}
	return printNotices(c.out, view)
}

// pendingItem loads the pending list and requires id to be on it.
func (c *cli) pendingItem(ctx context.Context, id string) (*inviteflow.PendingList, error) {
	list, view, err := c.pendingList(ctx)
	if err != nil {
		return nil, err
	}
	if !containsID(view, id) {
		list.Close()
		return nil, fmt.Errorf("no pending invitation with id %s", id)
	}
	return list, nil
}

func cmdVerify(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet(c, "verify")
	rest, err := positional(fs, args, 1, "TOKEN")
	if err != nil {
		return err
	}

	flow := inviteflow.NewOrgAcceptance(ctx, c.client)
	defer flow.Close()

	view, err := flow.Load(rest[0])
	if err != nil {
		return err
	}
	printOrgView(c.out, view)
	if view.Phase != inviteflow.PhaseReady {
		return errReported
	}
	return nil
}

func cmdAccept(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet(c, "accept")
	name := fs.String("name", "", "your full name")
	password := fs.String("password", "", "choose a password, at least 8 characters")
	confirm := fs.String("confirm", "", "repeat the password")
	rest, err := positional(fs, args, 1, "TOKEN")
	if err != nil {
		return err
	}

	flow := inviteflow.NewOrgAcceptance(ctx, c.client)
	defer flow.Close()

	view, err := flow.Load(rest[0])
	if err != nil {
		return err
	}
	if view.Phase != inviteflow.PhaseReady {
		printOrgView(c.out, view)
		return errReported
	}

	view, err = flow.Submit(inviteflow.OrgAcceptInput{
		FullName:        *name,
		Password:        *password,
		ConfirmPassword: *confirm,
	})
	if err != nil {
		return err
	}
	printOrgView(c.out, view)
	if view.Phase != inviteflow.PhaseAccepted {
		return errReported
	}

	session, err := eventsdk.Open(ctx, c.client, c.store)
	if err != nil {
		return err
	}
	return session.Adopt(view.Auth)
}

func containsID(view inviteflow.PendingView, id string) bool {
	for _, item := range view.Items {
		if item.ID == id {
			return true
		}
	}
	return false
}
