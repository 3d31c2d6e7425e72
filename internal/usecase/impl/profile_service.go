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

// defaultRole is assigned to every profile created through bootstrap.
const defaultRole = "user"

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
		now:       time.Now,
	}
}

// Bootstrap ensures the profile row behind an identity exists and is seeded,
// then touches the presence row. Both writes share one transaction so a
// half-bootstrapped profile is never visible.
func (srv *profileService) Bootstrap(ctx context.Context, identity *entity.Identity) (*entity.Profile, error) {
	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		found, err := profileRepo.FindByID(ctx, identity.ID)
		if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to load profile")
		}

		if found == nil {
			found = &entity.Profile{ID: identity.ID}
		}

		if !found.Complete() {
			seedProfile(found, identity)

			if err := profileRepo.Upsert(ctx, found); err != nil {
				return errors.Wrap(err, "failed to bootstrap profile")
			}
			srv.logger.Info("profile bootstrapped", "profileID", identity.ID)
		}
		profile = found

		return repoFactory.PresenceRepo().Upsert(ctx, &entity.Presence{
			ProfileID:     identity.ID,
			LastSeen:      srv.now(),
			ForcedOffline: false,
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to bootstrap session profile")
	}

	return profile, nil
}

// seedProfile fills the missing bootstrap fields from provider metadata.
// Fields the user already set are never overwritten.
func seedProfile(profile *entity.Profile, identity *entity.Identity) {
	profile.Email = identity.Email
	if profile.Name == "" {
		profile.Name = identity.Metadata.FullName
	}
	if profile.Name == "" {
		profile.Name = identity.Email
	}
	if profile.AvatarURL == "" {
		profile.AvatarURL = identity.Metadata.AvatarURL
	}
	if profile.Role == "" {
		profile.Role = defaultRole
	}
}

// GetProfile returns a profile with its aggregate metrics and the viewer's
// follow state.
func (srv *profileService) GetProfile(ctx context.Context, id uuid.UUID, viewer *uuid.UUID) (*usecase.ProfileOutput, error) {
	output := &usecase.ProfileOutput{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()
		postRepo := repoFactory.PostRepo()
		followerRepo := repoFactory.FollowerRepo()

		profile, err := profileRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to find profile")
		}
		output.Profile = profile

		if output.Metrics.PostCount, err = postRepo.CountByAuthor(ctx, id); err != nil {
			return errors.Wrap(err, "failed to count posts")
		}
		if output.Metrics.FollowerCount, err = followerRepo.CountFollowers(ctx, id); err != nil {
			return errors.Wrap(err, "failed to count followers")
		}
		if output.Metrics.FollowingCount, err = followerRepo.CountFollowing(ctx, id); err != nil {
			return errors.Wrap(err, "failed to count following")
		}

		if viewer != nil && *viewer != id {
			if output.IsFollowing, err = followerRepo.IsFollowing(ctx, *viewer, id); err != nil {
				return errors.Wrap(err, "failed to check follow state")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// UpdateProfile patches the caller's own profile. Nil input fields are left
// untouched.
func (srv *profileService) UpdateProfile(ctx context.Context, id uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		found, err := profileRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to find profile")
		}

		if input.Name != nil {
			found.Name = *input.Name
		}
		if input.Location != nil {
			found.Location = *input.Location
		}
		if input.AvatarURL != nil {
			found.AvatarURL = *input.AvatarURL
		}

		if err := profileRepo.Upsert(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// GetPresence returns the presence row annotated with its derived status.
// A profile with no presence row yet is simply offline, not an error.
func (srv *profileService) GetPresence(ctx context.Context, id uuid.UUID) (*entity.PresenceView, error) {
	view := &entity.PresenceView{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		presence, err := repoFactory.PresenceRepo().FindByProfileID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPresenceNotFound) {
				view.ProfileID = id
				view.Status = entity.StatusOffline

				return nil
			}

			return errors.Wrap(err, "failed to load presence")
		}

		view.Presence = *presence
		view.Status = presence.Status(srv.now())

		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}
