package entity

import (
	"time"

	"github.com/google/uuid"
)

// PresenceWindow is how recently a profile must have been seen to count as
// online.
const PresenceWindow = 2 * time.Minute

// Presence statuses derived at read time; never stored.
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// Presence is the durable last-seen row for a profile, plus a manual
// forced-offline override.
type Presence struct {
	ProfileID     uuid.UUID `json:"profile_id"`
	LastSeen      time.Time `json:"last_seen"`
	ForcedOffline bool      `json:"forced_offline"`
}

// Status derives the online/offline label at the given instant. A profile is
// online iff it is not forced offline and was seen strictly less than
// PresenceWindow ago; exactly at the window boundary it is offline.
func (p *Presence) Status(now time.Time) string {
	if p == nil || p.ForcedOffline {
		return StatusOffline
	}
	if now.Sub(p.LastSeen) < PresenceWindow {
		return StatusOnline
	}

	return StatusOffline
}

// PresenceView is a presence row annotated with its derived status.
type PresenceView struct {
	Presence
	Status string `json:"status"`
}
