// Package service defines interfaces for external collaborators the domain
// depends on.
package service

import (
	"context"

	"suja/internal/domain/entity"
)

// IdentityProvider is the hosted auth backend: it owns token semantics and
// is the only authority on whether an access token is valid. Every method
// performs network I/O and honors context cancellation.
type IdentityProvider interface {
	// GetUser resolves the identity behind an access token. Any provider
	// failure (expired token, revoked token, network error) is returned as
	// an error; callers must not distinguish between the causes.
	GetUser(ctx context.Context, accessToken string) (*entity.Identity, error)

	// RefreshAccessToken exchanges a refresh token for a new token pair.
	RefreshAccessToken(ctx context.Context, refreshToken string) (*entity.TokenPair, error)

	// SignOut revokes the access token upstream.
	SignOut(ctx context.Context, accessToken string) error
}
