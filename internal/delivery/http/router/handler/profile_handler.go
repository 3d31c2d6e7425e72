package handler

import (
	"log/slog"
	"net/http"

	"suja/internal/delivery/http/middleware"
	"suja/internal/delivery/http/response"
	"suja/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile, follow and presence
// handlers.
type ProfileHandler struct {
	profileUC    usecase.ProfileUsecase
	engagementUC usecase.EngagementUsecase
	logger       *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(
	profileUC usecase.ProfileUsecase,
	engagementUC usecase.EngagementUsecase,
	logger *slog.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		profileUC:    profileUC,
		engagementUC: engagementUC,
		logger:       logger,
	}
}

// Get returns a profile page: the profile, its counters and the viewer's
// follow state.
func (h *ProfileHandler) Get(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "user id must be a UUID")
	}

	var viewer *uuid.UUID
	if identity := middleware.CurrentIdentity(c); identity != nil {
		viewer = &identity.ID
	}

	output, err := h.profileUC.GetProfile(c.Request().Context(), profileID, viewer)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile retrieved")
}

// UpdateMe patches the caller's own profile.
func (h *ProfileHandler) UpdateMe(c echo.Context) error {
	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	identity := middleware.CurrentIdentity(c)

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), identity.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated")
}

// Presence returns a profile's presence row with its derived status.
func (h *ProfileHandler) Presence(c echo.Context) error {
	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "user id must be a UUID")
	}

	view, err := h.profileUC.GetPresence(c.Request().Context(), profileID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Presence retrieved")
}

// Follow makes the caller follow the given profile.
func (h *ProfileHandler) Follow(c echo.Context) error {
	followingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "user id must be a UUID")
	}

	identity := middleware.CurrentIdentity(c)
	if identity.ID == followingID {
		return response.BadRequest(c, "INVALID_INPUT", "cannot follow yourself")
	}

	if err := h.engagementUC.Follow(c.Request().Context(), identity.ID, followingID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Followed")
}

// Unfollow removes the caller's follow edge to the given profile.
func (h *ProfileHandler) Unfollow(c echo.Context) error {
	followingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "user id must be a UUID")
	}

	identity := middleware.CurrentIdentity(c)

	if err := h.engagementUC.Unfollow(c.Request().Context(), identity.ID, followingID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Unfollowed")
}
