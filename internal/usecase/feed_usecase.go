package usecase

import (
	"context"

	"suja/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedUsecase defines the post feed operations.
type FeedUsecase interface {
	// ListFeed returns one page of posts, newest first, each annotated with
	// its like count and whether the optional viewer liked it. An empty page
	// signals the end of the feed.
	ListFeed(ctx context.Context, input *ListFeedInput) ([]*entity.PostView, error)

	// CreatePost publishes a new post for the given profile.
	CreatePost(ctx context.Context, profileID uuid.UUID, input *CreatePostInput) (*entity.Post, error)

	// DeletePost removes a post owned by the given profile.
	DeletePost(ctx context.Context, postID, profileID uuid.UUID) error
}

// --- Input DTOs ---

// ListFeedInput selects a feed page. AuthorID narrows the feed to one
// profile; Viewer, when set, drives the per-post liked annotation.
type ListFeedInput struct {
	Page     int
	AuthorID *uuid.UUID
	Viewer   *uuid.UUID
}

// CreatePostInput defines the data required to publish a post. Title is
// optional; only the body is required.
type CreatePostInput struct {
	Title    string `json:"title,omitempty"`
	Body     string `json:"body" validate:"required"`
	ImageURL string `json:"image_url,omitempty"`
}
