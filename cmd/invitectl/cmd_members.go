package main

import (
	"context"
	"fmt"
)

func cmdMembers(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet(c, "members")
	if _, err := positional(fs, args, 0); err != nil {
		return err
	}

	session, err := c.session(ctx)
	if err != nil {
		return err
	}
	members, err := session.ListMembers(ctx, session.User().OrganizationID)
	if err != nil {
		return err
	}

	printMembers(c.out, members)
	return nil
}

func cmdRemoveMember(ctx context.Context, c *cli, args []string) error {
	fs := newFlagSet(c, "remove-member")
	rest, err := positional(fs, args, 1, "USER_ID")
	if err != nil {
		return err
	}

	session, err := c.session(ctx)
	if err != nil {
		return err
	}
	if err := session.RemoveMember(ctx, rest[0]); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Member %s removed.\n", rest[0])
	return nil
}
