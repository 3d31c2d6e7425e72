// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"suja/internal/delivery/http/middleware"
	"suja/internal/delivery/http/response"
	"suja/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for session lifecycle handlers.
type AuthHandler struct {
	authUC     usecase.AuthUsecase
	profileUC  usecase.ProfileUsecase
	sessionMgr *middleware.SessionMiddleware
	logger     *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(
	authUC usecase.AuthUsecase,
	profileUC usecase.ProfileUsecase,
	sessionMgr *middleware.SessionMiddleware,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUC:     authUC,
		profileUC:  profileUC,
		sessionMgr: sessionMgr,
		logger:     logger,
	}
}

// callbackInput carries the provider tokens from the OAuth callback, bound
// from JSON or form fields.
type callbackInput struct {
	AccessToken  string `json:"access_token" form:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" form:"refresh_token" validate:"required"`
	RedirectTo   string `json:"redirect_to" form:"redirect_to"`
}

// Callback handles the OAuth callback: the provider tokens go into the
// cookie session and the client is sent back where it came from.
func (h *AuthHandler) Callback(c echo.Context) error {
	var input callbackInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid callback input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	sess := middleware.CurrentSession(c)
	sess.SetTokens(input.AccessToken, input.RefreshToken)

	if err := h.sessionMgr.SetSessionCookie(c, sess); err != nil {
		return errors.Wrap(err, "failed to store session")
	}

	redirectTo := input.RedirectTo
	if redirectTo == "" {
		redirectTo = "/"
	}

	return c.Redirect(http.StatusSeeOther, redirectTo)
}

// SignOut revokes the access token upstream and destroys the cookie. The
// cookie goes away even when revocation fails, so the client is signed out
// locally either way.
func (h *AuthHandler) SignOut(c echo.Context) error {
	sess := middleware.CurrentSession(c)

	err := h.authUC.SignOut(c.Request().Context(), sess)
	h.sessionMgr.DestroySessionCookie(c)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Signed out"}, "Sign-out successful")
}

// meOutput is the root payload: who the caller is, if anyone.
type meOutput struct {
	User    any `json:"user"`
	Profile any `json:"profile"`
}

// Me resolves the caller and, when signed in, bootstraps the profile row and
// touches presence. Anonymous callers get a null user, not an error.
func (h *AuthHandler) Me(c echo.Context) error {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		return response.Success(c, http.StatusOK, meOutput{}, "Anonymous session")
	}

	profile, err := h.profileUC.Bootstrap(c.Request().Context(), identity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, meOutput{User: identity, Profile: profile}, "Session resolved")
}
