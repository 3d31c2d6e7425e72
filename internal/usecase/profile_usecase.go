package usecase

import (
	"context"

	"suja/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines profile and presence operations.
type ProfileUsecase interface {
	// Bootstrap ensures a profile row exists for a freshly resolved
	// identity, seeding missing fields from provider metadata, and touches
	// the presence row. It runs on every authenticated root fetch.
	Bootstrap(ctx context.Context, identity *entity.Identity) (*entity.Profile, error)

	// GetProfile returns a profile with its aggregate metrics and, when a
	// viewer is given, whether the viewer follows it.
	GetProfile(ctx context.Context, id uuid.UUID, viewer *uuid.UUID) (*ProfileOutput, error)

	// UpdateProfile patches the caller's own profile.
	UpdateProfile(ctx context.Context, id uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)

	// GetPresence returns the presence row annotated with its derived
	// status.
	GetPresence(ctx context.Context, id uuid.UUID) (*entity.PresenceView, error)
}

// --- DTOs ---

// ProfileOutput is a profile page payload.
type ProfileOutput struct {
	Profile     *entity.Profile       `json:"profile"`
	Metrics     entity.ProfileMetrics `json:"metrics"`
	IsFollowing bool                  `json:"is_following"`
}

// UpdateProfileInput defines the patchable profile fields. Nil fields are
// left untouched.
type UpdateProfileInput struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Location  *string `json:"location,omitempty" validate:"omitempty,max=255"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}
