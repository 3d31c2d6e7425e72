package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the durable user row, 1:1 with an Identity. It is created
// lazily after the first successful resolution when name, role or avatar are
// still missing.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url"`
	Role      string    `json:"role"`
	Location  string    `json:"location"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Complete reports whether the bootstrap fields are all populated.
func (p *Profile) Complete() bool {
	return p != nil && p.Name != "" && p.Role != "" && p.AvatarURL != ""
}

// ProfileMetrics are the aggregate counters shown on a profile page.
type ProfileMetrics struct {
	PostCount      int64 `json:"post_count"`
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
}
