package repository

import (
	"context"

	"suja/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedPageSize is the nominal page size for feed pagination.
const FeedPageSize = 10

// PostQuery filters a feed page. AuthorID narrows the feed to a single
// profile's posts when set.
type PostQuery struct {
	Page     int
	AuthorID *uuid.UUID
}

// PostRepository provides access to the posts table.
type PostRepository interface {
	// List returns one feed page, newest first, with each post's creator
	// populated. Pagination is offset-based with no cursor stability
	// guarantee across concurrent inserts.
	List(ctx context.Context, query PostQuery) ([]*entity.Post, error)

	// Create inserts a new post.
	Create(ctx context.Context, post *entity.Post) error

	// Delete removes a post, scoped to its owner. Deleting someone else's
	// post matches zero rows and returns ErrPostNotFound.
	Delete(ctx context.Context, id, profileID uuid.UUID) error

	// CountByAuthor returns the number of posts a profile has created.
	CountByAuthor(ctx context.Context, profileID uuid.UUID) (int64, error)
}

// LikeRepository provides access to the likes table.
type LikeRepository interface {
	// Set applies the desired liked state for (profileID, postID). Setting
	// true inserts with duplicates ignored, setting false deletes; both are
	// idempotent at the storage layer.
	Set(ctx context.Context, profileID, postID uuid.UUID, liked bool) error

	// Count returns the number of likes on a post.
	Count(ctx context.Context, postID uuid.UUID) (int64, error)

	// HasLiked reports whether the profile has liked the post.
	HasLiked(ctx context.Context, profileID, postID uuid.UUID) (bool, error)
}
