package inviteflow

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/eventplanner/pkg/eventsdk"
	"github.com/stretchr/testify/require"
)

func TestTimeRemaining(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		inv  eventsdk.Invitation
		want string
	}{
		{"several days", eventsdk.Invitation{ExpiresAt: now.Add(50 * time.Hour)}, "2 days left"},
		{"one day", eventsdk.Invitation{ExpiresAt: now.Add(25 * time.Hour)}, "1 day left"},
		{"hours", eventsdk.Invitation{ExpiresAt: now.Add(3*time.Hour + 10*time.Minute)}, "3 hours left"},
		{"one hour", eventsdk.Invitation{ExpiresAt: now.Add(90 * time.Minute)}, "1 hour left"},
		{"under an hour", eventsdk.Invitation{ExpiresAt: now.Add(10 * time.Minute)}, "Expires soon"},
		{"exactly now", eventsdk.Invitation{ExpiresAt: now}, "Expired"},
		{"past", eventsdk.Invitation{ExpiresAt: now.Add(-time.Hour)}, "Expired"},
		{"status wins", eventsdk.Invitation{Status: "expired", ExpiresAt: now.Add(time.Hour * 48)}, "Expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, TimeRemaining(tt.inv, now))
		})
	}
}

func TestLifetime(t *testing.T) {
	t.Parallel()

	l := NewLifetime(t.Context())

	_, done, err := l.begin()
	require.NoError(t, err)

	_, _, err = l.begin()
	require.ErrorIs(t, err, ErrBusy)

	done()
	_, done, err = l.begin()
	require.NoError(t, err)
	done()

	l.Close()
	require.True(t, l.Closed())
	_, _, err = l.begin()
	require.ErrorIs(t, err, ErrClosed)
}
