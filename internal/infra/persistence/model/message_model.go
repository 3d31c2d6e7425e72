package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ImageURLList stores message attachment URLs as a jsonb column.
type ImageURLList []string

// Value implements driver.Valuer.
func (l ImageURLList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, errors.Wrap(err, "marshal image urls")
	}

	return string(data), nil
}

// Scan implements sql.Scanner.
func (l *ImageURLList) Scan(value any) error {
	if value == nil {
		*l = nil

		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("unsupported image url list type %T", value)
	}

	return errors.Wrap(json.Unmarshal(data, l), "unmarshal image urls")
}

// MessageModel mirrors the 'messages' table.
type MessageModel struct {
	ID         uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SenderID   uuid.UUID    `gorm:"type:uuid;not null;index"`
	ReceiverID uuid.UUID    `gorm:"type:uuid;not null;index"`
	Text       string       `gorm:"type:text"`
	ImageURLs  ImageURLList `gorm:"type:jsonb"`
	VoiceURL   string       `gorm:"type:text"`
	CreatedAt  time.Time    `gorm:"index"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
