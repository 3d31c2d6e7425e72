package usecase

import (
	"context"

	"suja/internal/domain/entity"

	"github.com/google/uuid"
)

// ChatUsecase defines the direct-messaging operations.
type ChatUsecase interface {
	// Conversation returns the first window of messages between the caller and the
	// other profile, oldest first, together with the other profile and its
	// presence.
	Conversation(ctx context.Context, profileID, otherID uuid.UUID) (*ConversationOutput, error)

	// SendMessage delivers a message from sender to receiver. Empty text is
	// accepted; the client owns text validation.
	SendMessage(ctx context.Context, senderID, receiverID uuid.UUID, input *SendMessageInput) (*entity.Message, error)

	// DeleteMessage removes a message the caller sent.
	DeleteMessage(ctx context.Context, messageID, profileID uuid.UUID) error

	// SearchMutuals finds mutual followers of the caller by name. Mutuals
	// are the profiles a conversation can be started with.
	SearchMutuals(ctx context.Context, profileID uuid.UUID, query string) ([]*entity.Profile, error)
}

// --- DTOs ---

// ConversationOutput is one chat screen payload.
type ConversationOutput struct {
	Messages  []*entity.Message    `json:"messages"`
	Recipient *entity.Profile      `json:"recipient"`
	Presence  *entity.PresenceView `json:"presence"`
}

// SendMessageInput defines the data for one outgoing message.
type SendMessageInput struct {
	Text      string   `json:"text"`
	ImageURLs []string `json:"image_urls,omitempty"`
	VoiceURL  string   `json:"voice_url,omitempty"`
}
