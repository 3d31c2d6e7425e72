package impl

import (
	"context"
	"testing"

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

func TestFeedService_ListFeed_AnnotatesPosts(t *testing.T) {
	ctx := context.Background()
	viewer := uuid.New()
	posts := []*entity.Post{
		{ID: uuid.New(), Body: "first"},
		{ID: uuid.New(), Body: "second"},
	}

	postRepo := mockRepo.NewMockPostRepository(t)
	likeRepo := mockRepo.NewMockLikeRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("PostRepo").Return(postRepo)
	factory.On("LikeRepo").Return(likeRepo)

	postRepo.On("List", ctx, repository.PostQuery{Page: 0}).Return(posts, nil)
	likeRepo.On("Count", ctx, posts[0].ID).Return(int64(3), nil)
	likeRepo.On("Count", ctx, posts[1].ID).Return(int64(0), nil)
	likeRepo.On("HasLiked", ctx, viewer, posts[0].ID).Return(true, nil)
	likeRepo.On("HasLiked", ctx, viewer, posts[1].ID).Return(false, nil)

	service := NewFeedService(&stubTxManager{factory: factory}, newDiscardLogger())

	views, err := service.ListFeed(ctx, &usecase.ListFeedInput{Viewer: &viewer})

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(3), views[0].TotalLikes)
	assert.True(t, views[0].Liked)
	assert.Equal(t, int64(0), views[1].TotalLikes)
	assert.False(t, views[1].Liked)
}

func TestFeedService_ListFeed_AnonymousViewer(t *testing.T) {
	ctx := context.Background()
	posts := []*entity.Post{{ID: uuid.New(), Body: "hello"}}

	postRepo := mockRepo.NewMockPostRepository(t)
	likeRepo := mockRepo.NewMockLikeRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("PostRepo").Return(postRepo)
	factory.On("LikeRepo").Return(likeRepo)

	postRepo.On("List", ctx, repository.PostQuery{Page: 0}).Return(posts, nil)
	likeRepo.On("Count", ctx, posts[0].ID).Return(int64(1), nil)

	service := NewFeedService(&stubTxManager{factory: factory}, newDiscardLogger())

	views, err := service.ListFeed(ctx, &usecase.ListFeedInput{})

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.False(t, views[0].Liked, "anonymous viewers never see a liked flag")
	likeRepo.AssertNotCalled(t, "HasLiked", mock.Anything, mock.Anything, mock.Anything)
}

func TestFeedService_ListFeed_EmptyPage(t *testing.T) {
	ctx := context.Background()

	postRepo := mockRepo.NewMockPostRepository(t)
	likeRepo := mockRepo.NewMockLikeRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("PostRepo").Return(postRepo)
	factory.On("LikeRepo").Return(likeRepo)

	postRepo.On("List", ctx, repository.PostQuery{Page: 7}).Return([]*entity.Post{}, nil)

	service := NewFeedService(&stubTxManager{factory: factory}, newDiscardLogger())

	views, err := service.ListFeed(ctx, &usecase.ListFeedInput{Page: 7})

	require.NoError(t, err)
	assert.Empty(t, views, "an empty page is the end-of-feed signal, not an error")
}

func TestFeedService_CreatePost(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()

	postRepo := mockRepo.NewMockPostRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("PostRepo").Return(postRepo)

	postRepo.On("Create", ctx, mock.MatchedBy(func(post *entity.Post) bool {
		return post.Title == "greeting" && post.Body == "hello" && post.ProfileID == profileID
	})).Return(nil)

	service := NewFeedService(&stubTxManager{factory: factory}, newDiscardLogger())

	post, err := service.CreatePost(ctx, profileID, &usecase.CreatePostInput{Title: "greeting", Body: "hello"})

	require.NoError(t, err)
	assert.Equal(t, "greeting", post.Title)
	assert.Equal(t, "hello", post.Body)
	assert.Equal(t, profileID, post.ProfileID)
}

func TestFeedService_DeletePost_NotOwned(t *testing.T) {
	ctx := context.Background()
	postID := uuid.New()
	profileID := uuid.New()

	postRepo := mockRepo.NewMockPostRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("PostRepo").Return(postRepo)

	postRepo.On("Delete", ctx, postID, profileID).Return(repository.ErrPostNotFound)

	service := NewFeedService(&stubTxManager{factory: factory}, newDiscardLogger())

	err := service.DeletePost(ctx, postID, profileID)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "POST_NOT_FOUND", appErr.ErrorCode())
}
