package usecase

import (
	"context"

	"github.com/google/uuid"
)

// EngagementUsecase defines like and follow operations. All of them are
// idempotent: repeating a call leaves the stored state unchanged.
type EngagementUsecase interface {
	// SetLike applies the desired liked state for (profileID, postID).
	SetLike(ctx context.Context, profileID, postID uuid.UUID, liked bool) error

	// Follow makes followerID follow followingID.
	Follow(ctx context.Context, followerID, followingID uuid.UUID) error

	// Unfollow removes the follow edge.
	Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error
}
