package impl

import (
	"context"
	"testing"
	"time"

	"suja/internal/domain/entity"
	"suja/internal/domain/repository"
	mockRepo "suja/internal/mocks/repository"
	"suja/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProfileService(t *testing.T, factory repository.RepositoryFactory, now time.Time) usecase.ProfileUsecase {
	t.Helper()

	service := NewProfileService(&stubTxManager{factory: factory}, newDiscardLogger())
	service.(*profileService).now = func() time.Time { return now }

	return service
}

func TestProfileService_Bootstrap_CreatesMissingProfile(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	identity := &entity.Identity{
		ID:    uuid.New(),
		Email: "sam@example.com",
		Metadata: entity.IdentityMetadata{
			FullName:  "Sam Doe",
			AvatarURL: "https://cdn.example.com/sam.png",
		},
	}

	profileRepo := mockRepo.NewMockProfileRepository(t)
	presenceRepo := mockRepo.NewMockPresenceRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("ProfileRepo").Return(profileRepo)
	factory.On("PresenceRepo").Return(presenceRepo)

	profileRepo.On("FindByID", ctx, identity.ID).Return(nil, repository.ErrProfileNotFound)
	profileRepo.On("Upsert", ctx, mock.MatchedBy(func(profile *entity.Profile) bool {
		return profile.ID == identity.ID &&
			profile.Name == "Sam Doe" &&
			profile.AvatarURL == "https://cdn.example.com/sam.png" &&
			profile.Role == "user" &&
			profile.Email == "sam@example.com"
	})).Return(nil)
	presenceRepo.On("Upsert", ctx, mock.MatchedBy(func(presence *entity.Presence) bool {
		return presence.ProfileID == identity.ID &&
			presence.LastSeen.Equal(now) &&
			!presence.ForcedOffline
	})).Return(nil)

	service := newProfileService(t, factory, now)

	profile, err := service.Bootstrap(ctx, identity)

	require.NoError(t, err)
	assert.True(t, profile.Complete())
}

func TestProfileService_Bootstrap_NameFallsBackToEmail(t *testing.T) {
	ctx := context.Background()
	identity := &entity.Identity{ID: uuid.New(), Email: "sam@example.com"}

	profileRepo := mockRepo.NewMockProfileRepository(t)
	presenceRepo := mockRepo.NewMockPresenceRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("ProfileRepo").Return(profileRepo)
	factory.On("PresenceRepo").Return(presenceRepo)

	profileRepo.On("FindByID", ctx, identity.ID).Return(nil, repository.ErrProfileNotFound)
	profileRepo.On("Upsert", ctx, mock.MatchedBy(func(profile *entity.Profile) bool {
		return profile.Name == "sam@example.com"
	})).Return(nil)
	presenceRepo.On("Upsert", ctx, mock.Anything).Return(nil)

	service := newProfileService(t, factory, time.Now())

	_, err := service.Bootstrap(ctx, identity)

	require.NoError(t, err)
}

func TestProfileService_Bootstrap_CompleteProfileUntouched(t *testing.T) {
	ctx := context.Background()
	identity := &entity.Identity{ID: uuid.New(), Email: "sam@example.com"}
	existing := &entity.Profile{
		ID:        identity.ID,
		Name:      "Sam",
		AvatarURL: "https://cdn.example.com/sam.png",
		Role:      "user",
	}

	profileRepo := mockRepo.NewMockProfileRepository(t)
	presenceRepo := mockRepo.NewMockPresenceRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("ProfileRepo").Return(profileRepo)
	factory.On("PresenceRepo").Return(presenceRepo)

	profileRepo.On("FindByID", ctx, identity.ID).Return(existing, nil)
	presenceRepo.On("Upsert", ctx, mock.Anything).Return(nil)

	service := newProfileService(t, factory, time.Now())

	profile, err := service.Bootstrap(ctx, identity)

	require.NoError(t, err)
	assert.Equal(t, existing, profile)
	profileRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestProfileService_GetProfile_WithViewer(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()
	viewer := uuid.New()
	existing := &entity.Profile{ID: profileID, Name: "Sam"}

	profileRepo := mockRepo.NewMockProfileRepository(t)
	postRepo := mockRepo.NewMockPostRepository(t)
	followerRepo := mockRepo.NewMockFollowerRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("ProfileRepo").Return(profileRepo)
	factory.On("PostRepo").Return(postRepo)
	factory.On("FollowerRepo").Return(followerRepo)

	profileRepo.On("FindByID", ctx, profileID).Return(existing, nil)
	postRepo.On("CountByAuthor", ctx, profileID).Return(int64(4), nil)
	followerRepo.On("CountFollowers", ctx, profileID).Return(int64(12), nil)
	followerRepo.On("CountFollowing", ctx, profileID).Return(int64(7), nil)
	followerRepo.On("IsFollowing", ctx, viewer, profileID).Return(true, nil)

	service := newProfileService(t, factory, time.Now())

	output, err := service.GetProfile(ctx, profileID, &viewer)

	require.NoError(t, err)
	assert.Equal(t, existing, output.Profile)
	assert.Equal(t, int64(4), output.Metrics.PostCount)
	assert.Equal(t, int64(12), output.Metrics.FollowerCount)
	assert.Equal(t, int64(7), output.Metrics.FollowingCount)
	assert.True(t, output.IsFollowing)
}

func TestProfileService_GetProfile_SelfViewSkipsFollowCheck(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()
	existing := &entity.Profile{ID: profileID, Name: "Sam"}

	profileRepo := mockRepo.NewMockProfileRepository(t)
	postRepo := mockRepo.NewMockPostRepository(t)
	followerRepo := mockRepo.NewMockFollowerRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("ProfileRepo").Return(profileRepo)
	factory.On("PostRepo").Return(postRepo)
	factory.On("FollowerRepo").Return(followerRepo)

	profileRepo.On("FindByID", ctx, profileID).Return(existing, nil)
	postRepo.On("CountByAuthor", ctx, profileID).Return(int64(0), nil)
	followerRepo.On("CountFollowers", ctx, profileID).Return(int64(0), nil)
	followerRepo.On("CountFollowing", ctx, profileID).Return(int64(0), nil)

	service := newProfileService(t, factory, time.Now())

	output, err := service.GetProfile(ctx, profileID, &profileID)

	require.NoError(t, err)
	assert.False(t, output.IsFollowing)
	followerRepo.AssertNotCalled(t, "IsFollowing", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileService_UpdateProfile_PatchesOnlyGivenFields(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()
	existing := &entity.Profile{ID: profileID, Name: "Sam", Location: "Oslo"}
	newName := "Samantha"

	profileRepo := mockRepo.NewMockProfileRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("ProfileRepo").Return(profileRepo)

	profileRepo.On("FindByID", ctx, profileID).Return(existing, nil)
	profileRepo.On("Upsert", ctx, mock.MatchedBy(func(profile *entity.Profile) bool {
		return profile.Name == "Samantha" && profile.Location == "Oslo"
	})).Return(nil)

	service := newProfileService(t, factory, time.Now())

	profile, err := service.UpdateProfile(ctx, profileID, &usecase.UpdateProfileInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "Samantha", profile.Name)
	assert.Equal(t, "Oslo", profile.Location)
}

func TestProfileService_GetPresence_MissingRowIsOffline(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()

	presenceRepo := mockRepo.NewMockPresenceRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("PresenceRepo").Return(presenceRepo)

	presenceRepo.On("FindByProfileID", ctx, profileID).Return(nil, repository.ErrPresenceNotFound)

	service := newProfileService(t, factory, time.Now())

	view, err := service.GetPresence(ctx, profileID)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusOffline, view.Status)
}

func TestProfileService_GetPresence_RecentSeenIsOnline(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	profileID := uuid.New()

	presenceRepo := mockRepo.NewMockPresenceRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("PresenceRepo").Return(presenceRepo)

	presenceRepo.On("FindByProfileID", ctx, profileID).Return(&entity.Presence{
		ProfileID: profileID,
		LastSeen:  now.Add(-30 * time.Second),
	}, nil)

	service := newProfileService(t, factory, now)

	view, err := service.GetPresence(ctx, profileID)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusOnline, view.Status)
}
