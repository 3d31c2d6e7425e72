// Package repository defines the persistence interfaces the domain depends
// on. Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"suja/internal/domain/entity"
	"suja/internal/errors"

	"github.com/google/uuid"
)

// Sentinel errors returned by repositories so use cases can branch on them.
var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrPostNotFound     = errors.New("post not found")
	ErrMessageNotFound  = errors.New("message not found")
	ErrPresenceNotFound = errors.New("presence not found")
)

// ProfileRepository provides access to the profiles table.
type ProfileRepository interface {
	// FindByID retrieves a profile by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// Upsert inserts the profile or updates it in place when the ID already
	// exists (conflict target: id).
	Upsert(ctx context.Context, profile *entity.Profile) error
}
