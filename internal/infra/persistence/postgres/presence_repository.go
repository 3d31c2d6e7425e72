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

// presenceRepository implements the domain PresenceRepository interface using GORM.
type presenceRepository struct {
	db *gorm.DB
}

// NewPresenceRepository is the constructor for presenceRepository.
func NewPresenceRepository(db *gorm.DB) repository.PresenceRepository {
	return &presenceRepository{db: db}
}

// Upsert inserts or replaces the presence row for its profile.
func (repo *presenceRepository) Upsert(ctx context.Context, presence *entity.Presence) error {
	presenceM := &model.PresenceModel{
		ProfileID:     presence.ProfileID,
		LastSeen:      presence.LastSeen,
		ForcedOffline: presence.ForcedOffline,
	}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_seen", "forced_offline"}),
	}).Create(presenceM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("presence profile does not exist")
		}

		return domainerrors.NewQueryError(err, "failed to upsert presence")
	}

	return nil
}

// FindByProfileID retrieves the presence row for a profile.
func (repo *presenceRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID) (*entity.Presence, error) {
	var presenceM model.PresenceModel
	if err := repo.db.WithContext(ctx).First(&presenceM, "profile_id = ?", profileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPresenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find presence")
	}

	return &entity.Presence{
		ProfileID:     presenceM.ProfileID,
		LastSeen:      presenceM.LastSeen,
		ForcedOffline: presenceM.ForcedOffline,
	}, nil
}
