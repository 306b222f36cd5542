package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/eventplanner/internal/api/domain"
	"github.com/aussiebroadwan/eventplanner/internal/api/store/drivers/sqlite"
	"github.com/aussiebroadwan/eventplanner/pkg/cryptox"
	"github.com/aussiebroadwan/eventplanner/pkg/jwtx"
	"github.com/aussiebroadwan/eventplanner/pkg/slogx"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu       sync.Mutex
	org      []domain.Invitation
	attendee []domain.AttendeeInvitation
	fail     error
}

func (n *recordingNotifier) OrgInvitation(_ context.Context, inv domain.Invitation) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail != nil {
		return n.fail
	}
	n.org = append(n.org, inv)
	return nil
}

func (n *recordingNotifier) AttendeeInvitation(_ context.Context, inv domain.AttendeeInvitation, _ domain.EventSnapshot) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail != nil {
		return n.fail
	}
	n.attendee = append(n.attendee, inv)
	return nil
}

type fixture struct {
	store    *sqlite.Store
	notifier *recordingNotifier
	now      time.Time

	auth      *AuthService
	orgInvs   *OrgInvitationService
	attInvs   *AttendeeInvitationService
	events    *EventService
	members   *MemberService
	housekeep *HousekeepingService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSigner("test", pemKey)
	require.NoError(t, err)

	f := &fixture{
		store:    st,
		notifier: &recordingNotifier{},
		now:      time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	clock := func() time.Time { return f.now }

	f.auth = &AuthService{Store: st, Signer: signer, Issuer: "test", Now: clock}
	f.orgInvs = &OrgInvitationService{Store: st, Auth: f.auth, Notifier: f.notifier, Now: clock}
	f.attInvs = &AttendeeInvitationService{Store: st, Notifier: f.notifier, Now: clock}
	f.events = &EventService{Store: st, Now: clock}
	f.members = &MemberService{Store: st, Now: clock}
	f.housekeep = NewHousekeepingService(st, slogx.Discard(), "")
	f.housekeep.Now = clock
	return f
}

func (f *fixture) advance(d time.Duration) { f.now = f.now.Add(d) }

// registerOwner creates an organization and returns its owner.
func (f *fixture) registerOwner(t *testing.T, email string) domain.User {
	t.Helper()
	owner, _, err := f.auth.RegisterOwner(context.Background(), RegisterOwnerInput{
		FullName:         "Olivia Owner",
		Email:            email,
		Password:         "correct horse",
		OrganizationName: "Acme Events",
	})
	require.NoError(t, err)
	return owner
}

// addMember invites email into owner's organization and accepts on their
// behalf.
func (f *fixture) addMember(t *testing.T, owner domain.User, email string, role domain.OrgRole) domain.User {
	t.Helper()
	ctx := context.Background()
	inv, err := f.orgInvs.Issue(ctx, owner.ID, owner.OrganizationID, email, role)
	require.NoError(t, err)
	res, err := f.orgInvs.Accept(ctx, AcceptInput{Token: inv.Token, FullName: "Team Mate", Password: "long enough"})
	require.NoError(t, err)
	return res.User
}

func (f *fixture) createEvent(t *testing.T, actorID string, capacity int) domain.Event {
	t.Helper()
	ev, err := f.events.Create(context.Background(), actorID, CreateEventInput{
		Name:      "Launch Party",
		StartAt:   f.now.Add(30 * 24 * time.Hour),
		VenueName: "The Loft",
		Capacity:  capacity,
	})
	require.NoError(t, err)
	return ev
}

var errSMTPDown = errors.New("smtp down")
