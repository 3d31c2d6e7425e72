package impl

import (
	"context"
	"log/slog"

	"suja/internal/domain/entity"
	domainerrors "suja/internal/domain/errors"
	"suja/internal/domain/repository"
	"suja/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// feedService implements the FeedUsecase interface.
type feedService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewFeedService is the constructor for feedService.
func NewFeedService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.FeedUsecase {
	return &feedService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListFeed returns one annotated feed page. The per-post like counts are
// independent reads with no snapshot guarantee between them; the counts are
// authoritative per query, not per page.
func (srv *feedService) ListFeed(ctx context.Context, input *usecase.ListFeedInput) ([]*entity.PostView, error) {
	var views []*entity.PostView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()
		likeRepo := repoFactory.LikeRepo()

		posts, err := postRepo.List(ctx, repository.PostQuery{
			Page:     input.Page,
			AuthorID: input.AuthorID,
		})
		if err != nil {
			return errors.Wrap(err, "failed to list feed page")
		}

		views = make([]*entity.PostView, 0, len(posts))
		for _, post := range posts {
			view := &entity.PostView{Post: *post}

			view.TotalLikes, err = likeRepo.Count(ctx, post.ID)
			if err != nil {
				return errors.Wrap(err, "failed to count post likes")
			}

			if input.Viewer != nil {
				view.Liked, err = likeRepo.HasLiked(ctx, *input.Viewer, post.ID)
				if err != nil {
					return errors.Wrap(err, "failed to check viewer like")
				}
			}

			views = append(views, view)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return views, nil
}

// CreatePost publishes a new post.
func (srv *feedService) CreatePost(ctx context.Context, profileID uuid.UUID, input *usecase.CreatePostInput) (*entity.Post, error) {
	post := &entity.Post{
		Title:     input.Title,
		Body:      input.Body,
		ImageURL:  input.ImageURL,
		ProfileID: profileID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.PostRepo().Create(ctx, post)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.logger.Info("post created", "postID", post.ID, "profileID", profileID)

	return post, nil
}

// DeletePost removes a post owned by the given profile. Deleting someone
// else's post is indistinguishable from deleting a missing one.
func (srv *feedService) DeletePost(ctx context.Context, postID, profileID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.PostRepo().Delete(ctx, postID, profileID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrPostNotFound
		}

		return errors.Wrap(err, "failed to delete post")
	}

	return nil
}
