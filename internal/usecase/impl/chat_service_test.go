package impl

import (
	"context"
	"testing"
	"time"

	"suja/internal/domain/entity"
	domainerrors "suja/internal/domain/errors"
	"suja/internal/domain/repository"
	mockRepo "suja/internal/mocks/repository"
	"suja/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newChatService(t *testing.T, factory repository.RepositoryFactory, now time.Time) usecase.ChatUsecase {
	t.Helper()

	service := NewChatService(&stubTxManager{factory: factory}, newDiscardLogger())
	service.(*chatService).now = func() time.Time { return now }

	return service
}

func TestChatService_Conversation(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	profileID := uuid.New()
	otherID := uuid.New()
	recipient := &entity.Profile{ID: otherID, Name: "Sam"}
	messages := []*entity.Message{
		{ID: uuid.New(), SenderID: otherID, ReceiverID: profileID, Text: "hi"},
		{ID: uuid.New(), SenderID: profileID, ReceiverID: otherID, Text: "hello"},
	}

	profileRepo := mockRepo.NewMockProfileRepository(t)
	messageRepo := mockRepo.NewMockMessageRepository(t)
	presenceRepo := mockRepo.NewMockPresenceRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("ProfileRepo").Return(profileRepo)
	factory.On("MessageRepo").Return(messageRepo)
	factory.On("PresenceRepo").Return(presenceRepo)

	profileRepo.On("FindByID", ctx, otherID).Return(recipient, nil)
	messageRepo.On("Conversation", ctx, profileID, otherID).Return(messages, nil)
	presenceRepo.On("FindByProfileID", ctx, otherID).Return(&entity.Presence{
		ProfileID: otherID,
		LastSeen:  now.Add(-10 * time.Second),
	}, nil)

	service := newChatService(t, factory, now)

	output, err := service.Conversation(ctx, profileID, otherID)

	require.NoError(t, err)
	assert.Equal(t, recipient, output.Recipient)
	assert.Equal(t, messages, output.Messages)
	assert.Equal(t, entity.StatusOnline, output.Presence.Status)
}

func TestChatService_Conversation_RecipientMissing(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()
	otherID := uuid.New()

	profileRepo := mockRepo.NewMockProfileRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("ProfileRepo").Return(profileRepo)

	profileRepo.On("FindByID", ctx, otherID).Return(nil, repository.ErrProfileNotFound)

	service := newChatService(t, factory, time.Now())

	_, err := service.Conversation(ctx, profileID, otherID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PROFILE_NOT_FOUND", appErr.ErrorCode())
}

func TestChatService_SendMessage_EmptyTextAccepted(t *testing.T) {
	ctx := context.Background()
	senderID := uuid.New()
	receiverID := uuid.New()

	messageRepo := mockRepo.NewMockMessageRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("MessageRepo").Return(messageRepo)

	messageRepo.On("Create", ctx, mock.MatchedBy(func(message *entity.Message) bool {
		return message.SenderID == senderID &&
			message.ReceiverID == receiverID &&
			message.Text == ""
	})).Return(nil)

	service := newChatService(t, factory, time.Now())

	message, err := service.SendMessage(ctx, senderID, receiverID, &usecase.SendMessageInput{})

	require.NoError(t, err)
	assert.Empty(t, message.Text)
}

func TestChatService_DeleteMessage_NotSenderForbidden(t *testing.T) {
	ctx := context.Background()
	messageID := uuid.New()
	senderID := uuid.New()
	intruderID := uuid.New()

	messageRepo := mockRepo.NewMockMessageRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("MessageRepo").Return(messageRepo)

	messageRepo.On("FindByID", ctx, messageID).Return(&entity.Message{
		ID:       messageID,
		SenderID: senderID,
	}, nil)

	service := newChatService(t, factory, time.Now())

	err := service.DeleteMessage(ctx, messageID, intruderID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
	messageRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestChatService_DeleteMessage_Sender(t *testing.T) {
	ctx := context.Background()
	messageID := uuid.New()
	senderID := uuid.New()

	messageRepo := mockRepo.NewMockMessageRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("MessageRepo").Return(messageRepo)

	messageRepo.On("FindByID", ctx, messageID).Return(&entity.Message{
		ID:       messageID,
		SenderID: senderID,
	}, nil)
	messageRepo.On("Delete", ctx, messageID).Return(nil)

	service := newChatService(t, factory, time.Now())

	require.NoError(t, service.DeleteMessage(ctx, messageID, senderID))
}

func TestChatService_SearchMutuals(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()
	matches := []*entity.Profile{{ID: uuid.New(), Name: "Sam"}}

	followerRepo := mockRepo.NewMockFollowerRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("FollowerRepo").Return(followerRepo)

	followerRepo.On("SearchMutuals", ctx, profileID, "sa").Return(matches, nil)

	service := newChatService(t, factory, time.Now())

	profiles, err := service.SearchMutuals(ctx, profileID, "sa")

	require.NoError(t, err)
	assert.Equal(t, matches, profiles)
}
