package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is a direct message between two profiles.
type Message struct {
	ID         uuid.UUID `json:"id"`
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Text       string    `json:"text"`
	ImageURLs  []string  `json:"image_urls"`
	VoiceURL   string    `json:"voice_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
