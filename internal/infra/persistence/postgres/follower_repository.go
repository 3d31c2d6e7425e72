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
	"gorm.io/gorm/clause"
)

// followerRepository implements the domain FollowerRepository interface using GORM.
type followerRepository struct {
	db *gorm.DB
}

// NewFollowerRepository is the constructor for followerRepository.
func NewFollowerRepository(db *gorm.DB) repository.FollowerRepository {
	return &followerRepository{db: db}
}

// Follow inserts the follow edge; a duplicate edge is ignored.
func (repo *followerRepository) Follow(ctx context.Context, followerID, followingID uuid.UUID) error {
	followerM := &model.FollowerModel{FollowerID: followerID, FollowingID: followingID}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(followerM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("followed profile does not exist")
		}

		return domainerrors.NewQueryError(err, "failed to insert follow")
	}

	return nil
}

// Unfollow deletes the follow edge; removing a missing edge is a no-op.
func (repo *followerRepository) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.FollowerModel{}).Error
	if err != nil {
		return domainerrors.NewQueryError(err, "failed to delete follow")
	}

	return nil
}

// IsFollowing reports whether the edge exists.
func (repo *followerRepository) IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.FollowerModel{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check follow")
	}

	return count > 0, nil
}

// CountFollowers returns how many profiles follow the given one.
func (repo *followerRepository) CountFollowers(ctx context.Context, followingID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.FollowerModel{}).
		Where("following_id = ?", followingID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count followers")
	}

	return count, nil
}

// CountFollowing returns how many profiles the given one follows.
func (repo *followerRepository) CountFollowing(ctx context.Context, followerID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.FollowerModel{}).
		Where("follower_id = ?", followerID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count following")
	}

	return count, nil
}

// SearchMutuals finds profiles that both follow and are followed by the
// given profile, filtered by a case-insensitive name match. Mutuals are the
// only profiles a user can start a conversation with.
func (repo *followerRepository) SearchMutuals(ctx context.Context, profileID uuid.UUID, query string) ([]*entity.Profile, error) {
	var profileMs []*model.ProfileModel

	err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Joins("JOIN followers f1 ON f1.follower_id = profiles.id AND f1.following_id = ?", profileID).
		Joins("JOIN followers f2 ON f2.following_id = profiles.id AND f2.follower_id = ?", profileID).
		Where("profiles.name ILIKE ?", "%"+query+"%").
		Order("profiles.name ASC").
		Find(&profileMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search mutual followers")
	}

	profiles := make([]*entity.Profile, 0, len(profileMs))
	for _, profileM := range profileMs {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}
