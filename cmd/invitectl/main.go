// invitectl is a command line client for the event planner API. It signs in
// once, keeps the session in a file and drives the invitation flows from the
// terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/aussiebroadwan/eventplanner/pkg/eventsdk"
	"github.com/aussiebroadwan/eventplanner/pkg/slogx"
	"github.com/spf13/pflag"
)

const version = "v0.1.0"

// errReported means the failure was already printed as part of a view.
var errReported = errors.New("reported")

type command struct {
	name    string
	usage   string
	summary string
	run     func(ctx context.Context, c *cli, args []string) error
}

var commands = []command{
	{"register", "register --name NAME --email EMAIL --password PW --org ORG", "create an organization and sign in as its owner", cmdRegister},
	{"login", "login --email EMAIL --password PW", "sign in", cmdLogin},
	{"logout", "logout", "sign out and forget the saved session", cmdLogout},
	{"whoami", "whoami", "show the signed-in user", cmdWhoami},
	{"invite", "invite --email EMAIL [--role MEMBER|ORG_ADMIN]", "invite someone to your organization", cmdInvite},
	{"pending", "pending", "list pending organization invitations", cmdPending},
	{"resend", "resend ID", "resend a pending invitation", cmdResend},
	{"cancel", "cancel ID", "cancel a pending invitation", cmdCancel},
	{"verify", "verify TOKEN", "show an organization invitation", cmdVerify},
	{"accept", "accept TOKEN --name NAME --password PW --confirm PW", "join an organization", cmdAccept},
	{"members", "members", "list the people in your organization", cmdMembers},
	{"remove-member", "remove-member USER_ID", "remove someone from your organization", cmdRemoveMember},
	{"event-create", "event-create --name NAME --start RFC3339 [--venue V] [--address A] [--capacity N]", "create an event", cmdEventCreate},
	{"event-update", "event-update EVENT_ID [--name NAME] [--start RFC3339] [--venue V] [--address A] [--capacity N]", "change an event", cmdEventUpdate},
	{"event-delete", "event-delete EVENT_ID", "delete an event and its invitations", cmdEventDelete},
	{"events", "events", "list your organization's events", cmdEvents},
	{"invite-attendees", "invite-attendees EVENT_ID --email A [--email B ...]", "invite guests to an event", cmdInviteAttendees},
	{"attendees", "attendees EVENT_ID", "list an event's invitations and statistics", cmdAttendees},
	{"attendee-verify", "attendee-verify TOKEN", "show an event invitation", cmdAttendeeVerify},
	{"attendee-accept", "attendee-accept TOKEN --name NAME [--phone PHONE]", "accept an event invitation", cmdAttendeeAccept},
	{"attendee-reject", "attendee-reject TOKEN [--reason TEXT]", "decline an event invitation", cmdAttendeeReject},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// cli carries what every command needs.
type cli struct {
	cfg    Config
	out    io.Writer
	errOut io.Writer
	logger *slog.Logger
	client *eventsdk.SDKClient
	store  eventsdk.SessionStore
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printUsage(stdout)
		return nil
	}
	if args[0] == "--version" || args[0] == "version" {
		fmt.Fprintf(stdout, "invitectl %s\n", version)
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := slogx.New(slogx.Config{
		Service: "invitectl",
		Version: version,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  stderr,
	})

	c := &cli{
		cfg:    cfg,
		out:    stdout,
		errOut: stderr,
		logger: logger,
		client: eventsdk.NewSDKClient(cfg.APIURL),
		store:  eventsdk.NewFileStore(cfg.SessionFile),
	}

	name := args[0]
	for _, cmd := range commands {
		if cmd.name == name {
			ctx = slogx.WithContext(ctx, logger.With("command", name))
			err := cmd.run(ctx, c, args[1:])
			if errors.Is(err, pflag.ErrHelp) {
				fmt.Fprintf(stderr, "\nUsage: invitectl %s\n", cmd.usage)
				return nil
			}
			return err
		}
	}

	if s := suggest(name); s != "" {
		return fmt.Errorf("unknown command %q (did you mean %q?)", name, s)
	}
	return fmt.Errorf("unknown command %q, run 'invitectl --help' for usage", name)
}

// session opens the saved session and requires it to be signed in.
func (c *cli) session(ctx context.Context) (*eventsdk.Session, error) {
	s, err := eventsdk.Open(ctx, c.client, c.store)
	if err != nil {
		return nil, err
	}
	if !s.Authenticated() {
		return nil, errors.New("not signed in, run 'invitectl login' first")
	}
	return s, nil
}

func newFlagSet(c *cli, name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(c.errOut)
	fs.SortFlags = false
	return fs
}

// positional parses flags and returns exactly n positional arguments.
func positional(fs *pflag.FlagSet, args []string, n int, what ...string) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	rest := fs.Args()
	if len(rest) != n {
		if n == 0 {
			return nil, fmt.Errorf("%s: unexpected argument %q", fs.Name(), rest[0])
		}
		return nil, fmt.Errorf("%s: expected %s", fs.Name(), strings.Join(what, " "))
	}
	return rest, nil
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `invitectl manages event planner invitations from the terminal.

Usage:
  invitectl <command> [flags] [args]

Commands:
`)
	width := 0
	for _, cmd := range commands {
		width = max(width, len(cmd.name))
	}
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-*s  %s\n", width, cmd.name, cmd.summary)
	}
	fmt.Fprint(w, `
Environment:
  EVENTPLANNER_API_URL       API base URL (default http://localhost:8080)
  EVENTPLANNER_SESSION_FILE  where the session is kept (default in the user config dir)
  EVENTPLANNER_LOG_LEVEL     debug, info, warn or error (default warn)

Run 'invitectl <command> --help' for a command's flags.
`)
}

// suggest returns the closest command name by shared prefix length.
func suggest(name string) string {
	type candidate struct {
		name  string
		score int
	}
	var cands []candidate
	for _, cmd := range commands {
		score := 0
		for score < len(name) && score < len(cmd.name) && name[score] == cmd.name[score] {
			score++
		}
		if score >= 2 {
			cands = append(cands, candidate{cmd.name, score})
		}
	}
	if len(cands) == 0 {
		return ""
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].score > cands[j].score })
	return cands[0].name
}
