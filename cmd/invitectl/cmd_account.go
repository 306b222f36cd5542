package main

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/eventplanner/pkg/eventsdk"
	"github.com/aussiebroadwan/eventplanner/pkg/validate"
)

func cmdRegister(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet(c, "register")
	name := fs.String("name", "", "your full name")
	email := fs.String("email", "", "your email address")
	password := fs.String("password", "", "password, at least 8 characters")
	org := fs.String("org", "", "organization name")
	if _, err := positional(fs, args, 0); err != nil {
		return err
	}

	req := eventsdk.RegisterOwnerRequest{
		FullName:     *name,
		Email:        *email,
		Password:     *password,
		Organization: eventsdk.OrganizationInput{Name: *org},
	}
	if err := validate.Struct(req); err != nil {
		printFieldErrors(c.out, err)
		return errReported
	}

	session, err := eventsdk.Open(ctx, c.client, c.store)
	if err != nil {
		return err
	}
	auth, err := c.client.RegisterOwner(ctx, req)
	if err != nil {
		return err
	}
	if err := session.Adopt(auth); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Registered %s as owner of %s.\n", auth.User.Email, *org)
	return nil
}

func cmdLogin(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet(c, "login")
	email := fs.String("email", "", "your email address")
	password := fs.String("password", "", "your password")
	if _, err := positional(fs, args, 0); err != nil {
		return err
	}

	req := eventsdk.LoginRequest{Email: *email, Password: *password}
	if err := validate.Struct(req); err != nil {
		printFieldErrors(c.out, err)
		return errReported
	}

	session, err := eventsdk.Open(ctx, c.client, c.store)
	if err != nil {
		return err
	}
	user, err := session.Login(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Signed in as %s (%s).\n", user.Email, user.Role)
	return nil
}

func cmdLogout(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet(c, "logout")
	if _, err := positional(fs, args, 0); err != nil {
		return err
	}

	session, err := eventsdk.Open(ctx, c.client, c.store)
	if err != nil {
		// A corrupt session file is still removed.
		return c.store.Clear()
	}
	if err := session.Logout(ctx); err != nil {
		c.logger.Warn("server side logout failed", "error", err)
	}

	fmt.Fprintln(c.out, "Signed out.")
	return nil
}

func cmdWhoami(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet(c, "whoami")
	if _, err := positional(fs, args, 0); err != nil {
		return err
	}

	session, err := c.session(ctx)
	if err != nil {
		return err
	}
	user, err := session.Me(ctx)
	if err != nil {
		return err
	}

	printUser(c.out, user)
	return nil
}
