package postgres

import (
	"context"

	"suja/internal/domain/entity"
	domainerrors "suja/internal/domain/errors"
	"suja/internal/domain/repository"
	"suja/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the domain MessageRepository interface using GORM.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// Create inserts a new message and backfills the generated ID and timestamps.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("message recipient does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required message fields")
		}

		return domainerrors.NewQueryError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt
	message.UpdatedAt = messageM.UpdatedAt

	return nil
}

// FindByID retrieves a single message.
func (repo *messageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	var messageM model.MessageModel
	if err := repo.db.WithContext(ctx).First(&messageM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find message by id")
	}

	return toMessageDomain(&messageM), nil
}

// Delete removes a message by ID.
func (repo *messageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MessageModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete message")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

// Conversation returns the messages exchanged between the two profiles, in
// either direction, oldest first.
func (repo *messageRepository) Conversation(ctx context.Context, profileID, otherID uuid.UUID) ([]*entity.Message, error) {
	var messageMs []*model.MessageModel

	// The upstream conversation read keeps the first ConversationLimit rows
	// of the exchange, not the latest window. Existing clients expect that
	// window, so it is kept as-is.
	err := conversationScope(repo.db.WithContext(ctx), profileID, otherID).
		Find(&messageMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load conversation")
	}

	messages := make([]*entity.Message, len(messageMs))
	for i, messageM := range messageMs {
		messages[i] = toMessageDomain(messageM)
	}

	return messages, nil
}

// conversationScope selects both directions of an exchange, oldest rows
// first, capped at the conversation window.
func conversationScope(db *gorm.DB, profileID, otherID uuid.UUID) *gorm.DB {
	return db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			profileID, otherID, otherID, profileID).
		Order("created_at ASC").
		Limit(repository.ConversationLimit)
}

// --- Mapper Functions ---

func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:         data.ID,
		SenderID:   data.SenderID,
		ReceiverID: data.ReceiverID,
		Text:       data.Text,
		ImageURLs:  data.ImageURLs,
		VoiceURL:   data.VoiceURL,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:         data.ID,
		SenderID:   data.SenderID,
		ReceiverID: data.ReceiverID,
		Text:       data.Text,
		ImageURLs:  model.ImageURLList(data.ImageURLs),
		VoiceURL:   data.VoiceURL,
	}
}
