// Package model contains the GORM persistence models mirroring the hosted
// tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. The ID is the identity
// provider's user ID, not a locally generated one.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(100)"`
	AvatarURL string    `gorm:"type:text"`
	Role      string    `gorm:"type:varchar(32)"`
	Location  string    `gorm:"type:varchar(255)"`
	Email     string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}

// PresenceModel mirrors the 'presences' table, one row per profile.
type PresenceModel struct {
	ProfileID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	LastSeen      time.Time
	ForcedOffline bool
}

// TableName explicitly sets the table name for GORM.
func (PresenceModel) TableName() string {
	return "presences"
}
