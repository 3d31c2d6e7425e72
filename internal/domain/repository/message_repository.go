package repository

import (
	"context"

	"suja/internal/domain/entity"

	"github.com/google/uuid"
)

// ConversationLimit caps how many messages a conversation fetch returns.
const ConversationLimit = 10

// MessageRepository provides access to the messages table.
type MessageRepository interface {
	// Create inserts a new message.
	Create(ctx context.Context, message *entity.Message) error

	// FindByID retrieves a single message.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)

	// Delete removes a message by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// Conversation returns messages exchanged between the two profiles in
	// either direction, oldest first, capped at ConversationLimit.
	Conversation(ctx context.Context, profileID, otherID uuid.UUID) ([]*entity.Message, error)
}

// PresenceRepository provides access to the presences table.
type PresenceRepository interface {
	// Upsert inserts or replaces the presence row for its profile
	// (conflict target: profile_id).
	Upsert(ctx context.Context, presence *entity.Presence) error

	// FindByProfileID retrieves the presence row for a profile.
	FindByProfileID(ctx context.Context, profileID uuid.UUID) (*entity.Presence, error)
}
