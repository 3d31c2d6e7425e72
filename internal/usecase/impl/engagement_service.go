package impl

import (
	"context"
	"log/slog"

	"suja/internal/domain/repository"
	"suja/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// engagementService implements the EngagementUsecase interface.
type engagementService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewEngagementService is the constructor for engagementService.
func NewEngagementService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.EngagementUsecase {
	return &engagementService{
		txManager: txManager,
		logger:    logger,
	}
}

// SetLike applies the desired liked state. The storage layer ignores
// duplicate inserts and missing deletes, so the operation is idempotent.
func (srv *engagementService) SetLike(ctx context.Context, profileID, postID uuid.UUID, liked bool) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.LikeRepo().Set(ctx, profileID, postID, liked)
	})
	if err != nil {
		return errors.Wrap(err, "failed to set like")
	}

	return nil
}

// Follow makes followerID follow followingID.
func (srv *engagementService) Follow(ctx context.Context, followerID, followingID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.FollowerRepo().Follow(ctx, followerID, followingID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to follow")
	}

	srv.logger.Debug("follow edge set", "followerID", followerID, "followingID", followingID)

	return nil
}

// Unfollow removes the follow edge.
func (srv *engagementService) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.FollowerRepo().Unfollow(ctx, followerID, followingID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to unfollow")
	}

	return nil
}
