package impl

import (
	"context"
	"testing"

	"suja/internal/domain/entity"
	domainerrors "suja/internal/domain/errors"
	"suja/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider scripts the identity provider and counts every call, so tests
// can pin down exactly how many validations and refreshes a resolution made.
type fakeProvider struct {
	getUserFn   func(accessToken string) (*entity.Identity, error)
	refreshFn   func(refreshToken string) (*entity.TokenPair, error)
	signOutFn   func(accessToken string) error
	getUserCall int
	refreshCall int
	signOutCall int
}

func (p *fakeProvider) GetUser(_ context.Context, accessToken string) (*entity.Identity, error) {
	p.getUserCall++

	return p.getUserFn(accessToken)
}

func (p *fakeProvider) RefreshAccessToken(_ context.Context, refreshToken string) (*entity.TokenPair, error) {
	p.refreshCall++

	return p.refreshFn(refreshToken)
}

func (p *fakeProvider) SignOut(_ context.Context, accessToken string) error {
	p.signOutCall++
	if p.signOutFn != nil {
		return p.signOutFn(accessToken)
	}

	return nil
}

func TestAuthService_Resolve_NoAccessToken(t *testing.T) {
	provider := &fakeProvider{}
	service := NewAuthService(provider, newDiscardLogger())

	session := entity.NewSession("", "")
	resolution := service.Resolve(context.Background(), session)

	assert.False(t, resolution.Authenticated())
	assert.False(t, session.Mutated())
	assert.Zero(t, provider.getUserCall)
	assert.Zero(t, provider.refreshCall)
}

func TestAuthService_Resolve_ValidToken(t *testing.T) {
	identity := &entity.Identity{ID: uuid.New(), Email: "sam@example.com"}
	provider := &fakeProvider{
		getUserFn: func(accessToken string) (*entity.Identity, error) {
			assert.Equal(t, "a1", accessToken)

			return identity, nil
		},
	}
	service := NewAuthService(provider, newDiscardLogger())

	session := entity.NewSession("a1", "r1")
	resolution := service.Resolve(context.Background(), session)

	require.True(t, resolution.Authenticated())
	assert.Equal(t, identity, resolution.Identity)
	assert.False(t, session.Mutated(), "a valid token must not mutate the session")
	assert.Equal(t, 1, provider.getUserCall)
	assert.Zero(t, provider.refreshCall)
}

func TestAuthService_Resolve_ExpiredTokenRefreshed(t *testing.T) {
	identity := &entity.Identity{ID: uuid.New(), Email: "sam@example.com"}
	provider := &fakeProvider{
		getUserFn: func(accessToken string) (*entity.Identity, error) {
			if accessToken == "a2" {
				return identity, nil
			}

			return nil, errors.New("JWT expired")
		},
		refreshFn: func(refreshToken string) (*entity.TokenPair, error) {
			assert.Equal(t, "r1", refreshToken)

			return &entity.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil
		},
	}
	service := NewAuthService(provider, newDiscardLogger())

	session := entity.NewSession("a1", "r1")
	resolution := service.Resolve(context.Background(), session)

	require.True(t, resolution.Authenticated())

	// The provider rotates both tokens; the session must hold the new pair
	// and report the mutation so the cookie gets re-issued.
	assert.Equal(t, "a2", session.AccessToken)
	assert.Equal(t, "r2", session.RefreshToken)
	assert.True(t, session.Mutated())

	assert.Equal(t, 2, provider.getUserCall)
	assert.Equal(t, 1, provider.refreshCall)
}

func TestAuthService_Resolve_RefreshFails(t *testing.T) {
	provider := &fakeProvider{
		getUserFn: func(string) (*entity.Identity, error) {
			return nil, errors.New("JWT expired")
		},
		refreshFn: func(string) (*entity.TokenPair, error) {
			return nil, errors.New("refresh token revoked")
		},
	}
	service := NewAuthService(provider, newDiscardLogger())

	session := entity.NewSession("a1", "r1")
	resolution := service.Resolve(context.Background(), session)

	assert.False(t, resolution.Authenticated())
	assert.NotEmpty(t, resolution.Reason)
	assert.False(t, session.Mutated())
	assert.Equal(t, 1, provider.getUserCall)
	assert.Equal(t, 1, provider.refreshCall)
}

func TestAuthService_Resolve_RefreshedTokenStillRejected(t *testing.T) {
	provider := &fakeProvider{
		getUserFn: func(string) (*entity.Identity, error) {
			return nil, errors.New("JWT expired")
		},
		refreshFn: func(string) (*entity.TokenPair, error) {
			return &entity.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil
		},
	}
	service := NewAuthService(provider, newDiscardLogger())

	session := entity.NewSession("a1", "r1")
	resolution := service.Resolve(context.Background(), session)

	assert.False(t, resolution.Authenticated())

	// Exactly one refresh per resolution, no matter how the re-check ends.
	assert.Equal(t, 1, provider.refreshCall)
	assert.Equal(t, 2, provider.getUserCall)
}

func TestAuthService_SignOut_NoToken(t *testing.T) {
	provider := &fakeProvider{}
	service := NewAuthService(provider, newDiscardLogger())

	require.NoError(t, service.SignOut(context.Background(), entity.NewSession("", "")))
	assert.Zero(t, provider.signOutCall)
}

func TestAuthService_SignOut_UpstreamFailure(t *testing.T) {
	provider := &fakeProvider{
		signOutFn: func(string) error {
			return errors.New("identity provider: revocation failed (status 500)")
		},
	}
	service := NewAuthService(provider, newDiscardLogger())

	err := service.SignOut(context.Background(), entity.NewSession("a1", "r1"))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SIGN_OUT_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "revocation failed")
}

func TestAuthService_SignOut_Success(t *testing.T) {
	provider := &fakeProvider{}
	service := NewAuthService(provider, newDiscardLogger())

	require.NoError(t, service.SignOut(context.Background(), entity.NewSession("a1", "r1")))
	assert.Equal(t, 1, provider.signOutCall)
}
