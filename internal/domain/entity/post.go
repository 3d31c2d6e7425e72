package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a single feed entry.
type Post struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	ImageURL  string    `json:"image_url"`
	ProfileID uuid.UUID `json:"profile_id"`
	Creator   *Profile  `json:"creator,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PostView is a post annotated for a specific viewer. The annotation is
// computed per read and is not atomic with concurrent likes.
type PostView struct {
	Post
	TotalLikes int64 `json:"total_likes"`
	Liked      bool  `json:"liked"`
}

// Like marks that a profile liked a post. The (ProfileID, PostID) pair is
// unique; duplicate inserts are ignored at the storage layer.
type Like struct {
	ID        int64     `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`
	PostID    uuid.UUID `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Follower is a directed follow edge, unique per (FollowerID, FollowingID).
type Follower struct {
	FollowerID  uuid.UUID `json:"follower_id"`
	FollowingID uuid.UUID `json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}
