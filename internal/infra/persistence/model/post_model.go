package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table. PostgreSQL generates UUIDs via
// gen_random_uuid().
type PostModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title     string    `gorm:"type:text"`
	Body      string    `gorm:"type:text;not null"`
	ImageURL  string    `gorm:"type:text"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"index"`

	Creator *ProfileModel `gorm:"foreignKey:ProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}

// LikeModel mirrors the 'likes' table, unique per (profile_id, post_id).
type LikeModel struct {
	ID        int64     `gorm:"primary_key;autoIncrement"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_profile_post"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_profile_post"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}

// FollowerModel mirrors the 'followers' table, unique per
// (follower_id, following_id).
type FollowerModel struct {
	FollowerID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	FollowingID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FollowerModel) TableName() string {
	return "followers"
}
