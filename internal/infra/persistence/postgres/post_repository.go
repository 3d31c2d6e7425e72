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

// postRepository implements the domain PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// List returns one feed page, newest first, with creators preloaded.
func (repo *postRepository) List(ctx context.Context, query repository.PostQuery) ([]*entity.Post, error) {
	page := query.Page
	if page < 0 {
		page = 0
	}

	// The upstream range query is inclusive on both ends, so a "page" is
	// actually pageSize+1 rows. Existing clients rely on the overlap row to
	// detect the end of the feed, so the window is kept as-is.
	tx := repo.db.WithContext(ctx).
		Preload("Creator").
		Order("created_at DESC").
		Offset(page * repository.FeedPageSize).
		Limit(repository.FeedPageSize + 1)

	if query.AuthorID != nil {
		tx = tx.Where("profile_id = ?", *query.AuthorID)
	}

	var postMs []*model.PostModel
	if err := tx.Find(&postMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	posts := make([]*entity.Post, 0, len(postMs))
	for _, postM := range postMs {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// Create inserts a new post and backfills the generated ID and timestamp.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("post creator does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required post fields")
		}

		return domainerrors.NewQueryError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt

	return nil
}

// Delete removes a post scoped to its owner. A missing row and a row owned
// by someone else look the same: zero rows affected.
func (repo *postRepository) Delete(ctx context.Context, id, profileID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", id, profileID).
		Delete(&model.PostModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// CountByAuthor returns how many posts a profile has created.
func (repo *postRepository) CountByAuthor(ctx context.Context, profileID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("profile_id = ?", profileID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count posts")
	}

	return count, nil
}

// --- Mapper Functions ---

func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:        data.ID,
		Title:     data.Title,
		Body:      data.Body,
		ImageURL:  data.ImageURL,
		ProfileID: data.ProfileID,
		Creator:   toProfileDomain(data.Creator),
		CreatedAt: data.CreatedAt,
	}
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:        data.ID,
		Title:     data.Title,
		Body:      data.Body,
		ImageURL:  data.ImageURL,
		ProfileID: data.ProfileID,
		CreatedAt: data.CreatedAt,
	}
}
