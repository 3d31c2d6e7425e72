package entity

import "github.com/google/uuid"

// IdentityMetadata is the provider-supplied user metadata attached to an
// identity. It seeds the profile on first sign-in.
type IdentityMetadata struct {
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
}

// Identity is the user record resolved from a valid access token. It is
// derived from the identity provider on every request and never persisted.
type Identity struct {
	ID       uuid.UUID        `json:"id"`
	Email    string           `json:"email"`
	Metadata IdentityMetadata `json:"user_metadata"`
}

// TokenPair is the result of a successful token refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
