// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"suja/internal/domain/entity"
	domainerrors "suja/internal/domain/errors"
	"suja/internal/domain/service"
	"suja/internal/usecase"
)

// maxRefreshAttempts caps token refreshes per resolution. The provider
// rotates the refresh token on every exchange, so a second refresh with the
// same token can never succeed anyway.
const maxRefreshAttempts = 1

// authService implements the AuthUsecase interface.
type authService struct {
	provider service.IdentityProvider
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	provider service.IdentityProvider,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		provider: provider,
		logger:   logger,
	}
}

// Resolve turns a decoded session into a user. The loop below is the whole
// token lifecycle: validate, refresh at most once, validate again. Every
// failure path collapses to an unauthenticated resolution; the reasons are
// logged, never surfaced.
func (srv *authService) Resolve(ctx context.Context, session *entity.Session) usecase.Resolution {
	if !session.HasAccessToken() {
		return usecase.Resolution{Reason: "no access token in session"}
	}

	refreshes := 0
	for {
		identity, err := srv.provider.GetUser(ctx, session.AccessToken)
		if err == nil {
			return usecase.Resolution{Identity: identity}
		}

		if refreshes >= maxRefreshAttempts {
			srv.logger.Debug("session resolution failed after refresh", "error", err)

			return usecase.Resolution{Reason: "access token rejected after refresh"}
		}

		srv.logger.Debug("access token rejected, attempting refresh", "error", err)

		pair, refreshErr := srv.provider.RefreshAccessToken(ctx, session.RefreshToken)
		if refreshErr != nil {
			srv.logger.Debug("token refresh failed", "error", refreshErr)

			return usecase.Resolution{Reason: "token refresh failed"}
		}

		// The refreshed pair replaces both tokens; the delivery layer sees
		// the mutation and re-issues the cookie.
		session.SetTokens(pair.AccessToken, pair.RefreshToken)
		refreshes++
	}
}

// SignOut revokes the access token upstream. The cookie is destroyed by the
// caller whether or not revocation succeeds.
func (srv *authService) SignOut(ctx context.Context, session *entity.Session) error {
	if !session.HasAccessToken() {
		return nil
	}

	if err := srv.provider.SignOut(ctx, session.AccessToken); err != nil {
		srv.logger.Error("upstream sign-out failed", "error", err)

		return domainerrors.ErrSignOutFailed.WithDetails(err.Error())
	}

	return nil
}
