package impl

import (
	"context"
	"log/slog"
	"time"

	"suja/internal/domain/entity"
	domainerrors "suja/internal/domain/errors"
	"suja/internal/domain/repository"
	"suja/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// chatService implements the ChatUsecase interface.
type chatService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// NewChatService is the constructor for chatService.
func NewChatService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ChatUsecase {
	return &chatService{
		txManager: txManager,
		logger:    logger,
		now:       time.Now,
	}
}

// Conversation loads one chat screen: the message window plus the
// other profile and its presence.
func (srv *chatService) Conversation(ctx context.Context, profileID, otherID uuid.UUID) (*usecase.ConversationOutput, error) {
	output := &usecase.ConversationOutput{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipient, err := repoFactory.ProfileRepo().FindByID(ctx, otherID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to find chat recipient")
		}
		output.Recipient = recipient

		messages, err := repoFactory.MessageRepo().Conversation(ctx, profileID, otherID)
		if err != nil {
			return errors.Wrap(err, "failed to load conversation")
		}
		output.Messages = messages

		presence, err := repoFactory.PresenceRepo().FindByProfileID(ctx, otherID)
		if err != nil {
			if errors.Is(err, repository.ErrPresenceNotFound) {
				output.Presence = &entity.PresenceView{
					Presence: entity.Presence{ProfileID: otherID},
					Status:   entity.StatusOffline,
				}

				return nil
			}

			return errors.Wrap(err, "failed to load recipient presence")
		}
		output.Presence = &entity.PresenceView{
			Presence: *presence,
			Status:   presence.Status(srv.now()),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// SendMessage delivers one message. Text is stored as given, empty included;
// the client owns text validation.
func (srv *chatService) SendMessage(ctx context.Context, senderID, receiverID uuid.UUID, input *usecase.SendMessageInput) (*entity.Message, error) {
	message := &entity.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       input.Text,
		ImageURLs:  input.ImageURLs,
		VoiceURL:   input.VoiceURL,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.MessageRepo().Create(ctx, message)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send message")
	}

	srv.logger.Debug("message sent", "messageID", message.ID, "senderID", senderID)

	return message, nil
}

// DeleteMessage removes a message the caller sent. Deleting someone else's
// message is forbidden, not a silent no-op.
func (srv *chatService) DeleteMessage(ctx context.Context, messageID, profileID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		messageRepo := repoFactory.MessageRepo()

		message, err := messageRepo.FindByID(ctx, messageID)
		if err != nil {
			if errors.Is(err, repository.ErrMessageNotFound) {
				return domainerrors.ErrMessageNotFound
			}

			return errors.Wrap(err, "failed to find message")
		}

		if message.SenderID != profileID {
			return domainerrors.ErrForbidden
		}

		return messageRepo.Delete(ctx, messageID)
	})
	if err != nil {
		return err
	}

	return nil
}

// SearchMutuals finds mutual followers of the caller by name.
func (srv *chatService) SearchMutuals(ctx context.Context, profileID uuid.UUID, query string) ([]*entity.Profile, error) {
	var profiles []*entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.FollowerRepo().SearchMutuals(ctx, profileID, query)
		if err != nil {
			return errors.Wrap(err, "failed to search mutual followers")
		}
		profiles = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return profiles, nil
}
