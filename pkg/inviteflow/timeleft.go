package inviteflow

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/eventplanner/pkg/eventsdk"
)

// TimeRemaining renders how long an invitation stays valid: "3 days left",
// "1 hour left", "Expires soon" under an hour, and "Expired".
func TimeRemaining(inv eventsdk.Invitation, now time.Time) string {
	if inv.Status == "expired" {
		return "Expired"
	}
	return timeLeft(inv.ExpiresAt, now)
}

func timeLeft(expiresAt, now time.Time) string {
	diff := expiresAt.Sub(now)
	if diff <= 0 {
		return "Expired"
	}

	days := int(diff / (24 * time.Hour))
	hours := int((diff % (24 * time.Hour)) / time.Hour)

	switch {
	case days > 0:
		return fmt.Sprintf("%d %s left", days, plural(days, "day"))
	case hours > 0:
		return fmt.Sprintf("%d %s left", hours, plural(hours, "hour"))
	default:
		return "Expires soon"
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
