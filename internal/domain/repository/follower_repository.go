package repository

import (
	"context"

	"suja/internal/domain/entity"

	"github.com/google/uuid"
)

// FollowerRepository provides access to the followers table.
type FollowerRepository interface {
	// Follow inserts a follow edge; an existing edge is ignored.
	Follow(ctx context.Context, followerID, followingID uuid.UUID) error

	// Unfollow deletes the follow edge. Removing a missing edge is a no-op.
	Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error

	// IsFollowing reports whether the edge exists.
	IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)

	// CountFollowers returns how many profiles follow the given one.
	CountFollowers(ctx context.Context, followingID uuid.UUID) (int64, error)

	// CountFollowing returns how many profiles the given one follows.
	CountFollowing(ctx context.Context, followerID uuid.UUID) (int64, error)

	// SearchMutuals finds profiles that mutually follow the given profile
	// and whose name matches the query, case-insensitively.
	SearchMutuals(ctx context.Context, profileID uuid.UUID, query string) ([]*entity.Profile, error)
}
