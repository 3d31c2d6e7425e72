package postgres

import (
	"context"

	domainerrors "suja/internal/domain/errors"
	"suja/internal/domain/repository"
	"suja/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// likeRepository implements the domain LikeRepository interface using GORM.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

// Set applies the desired liked state. Inserts ignore duplicate rows and
// deletes tolerate missing rows, so repeating either direction is a no-op.
func (repo *likeRepository) Set(ctx context.Context, profileID, postID uuid.UUID, liked bool) error {
	if liked {
		likeM := &model.LikeModel{ProfileID: profileID, PostID: postID}
		err := repo.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(likeM).Error
		if err != nil {
			if isForeignKeyConstraintViolation(err) {
				return domainerrors.ErrPostNotFound.WrapMessage("liked post does not exist")
			}

			return domainerrors.NewQueryError(err, "failed to insert like")
		}

		return nil
	}

	err := repo.db.WithContext(ctx).
		Where("profile_id = ? AND post_id = ?", profileID, postID).
		Delete(&model.LikeModel{}).Error
	if err != nil {
		return domainerrors.NewQueryError(err, "failed to delete like")
	}

	return nil
}

// Count returns the number of likes on a post.
func (repo *likeRepository) Count(ctx context.Context, postID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count likes")
	}

	return count, nil
}

// HasLiked reports whether the profile has liked the post.
func (repo *likeRepository) HasLiked(ctx context.Context, profileID, postID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("profile_id = ? AND post_id = ?", profileID, postID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check like")
	}

	return count > 0, nil
}
