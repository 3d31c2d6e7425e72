package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPresence_Status(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		presence *Presence
		want     string
	}{
		{
			name:     "seen just now",
			presence: &Presence{LastSeen: now},
			want:     StatusOnline,
		},
		{
			name:     "seen within the window",
			presence: &Presence{LastSeen: now.Add(-119 * time.Second)},
			want:     StatusOnline,
		},
		{
			name:     "exactly at the window boundary",
			presence: &Presence{LastSeen: now.Add(-PresenceWindow)},
			want:     StatusOffline,
		},
		{
			name:     "seen three minutes ago",
			presence: &Presence{LastSeen: now.Add(-3 * time.Minute)},
			want:     StatusOffline,
		},
		{
			name:     "forced offline despite recent activity",
			presence: &Presence{LastSeen: now, ForcedOffline: true},
			want:     StatusOffline,
		},
		{
			name:     "nil presence",
			presence: nil,
			want:     StatusOffline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.presence.Status(now))
		})
	}
}
