package events

import "strings"

const (
	StreamName   = "ECODRIVE_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectTripRecorded(tripID string) string { return "ecodrive.trip." + tripID + ".recorded" }

// SubjectBadgeUnlocked slugs the badge name: NATS subject tokens cannot
// contain spaces.
func SubjectBadgeUnlocked(badge string) string {
	return "ecodrive.badge." + strings.ReplaceAll(strings.ToLower(badge), " ", "-") + ".unlocked"
}
