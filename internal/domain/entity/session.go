// Package entity contains the pure domain objects of the application.
package entity

// Session is the cookie-backed auth session. Both tokens are optional: a
// fresh visitor has neither, a signed-in user has both. The session is
// mutated only by the auth resolver when a refresh succeeds; the delivery
// layer re-issues the cookie only when Mutated reports true, so an untouched
// session never produces a Set-Cookie header.
type Session struct {
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`

	mutated bool
}

// NewSession builds a session from previously stored token values.
func NewSession(accessToken, refreshToken string) *Session {
	return &Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
}

// HasAccessToken reports whether an access token is present at all.
func (s *Session) HasAccessToken() bool {
	return s != nil && s.AccessToken != ""
}

// SetTokens replaces both tokens and marks the session as mutated.
func (s *Session) SetTokens(accessToken, refreshToken string) {
	s.AccessToken = accessToken
	s.RefreshToken = refreshToken
	s.mutated = true
}

// Mutated reports whether the session changed since it was decoded.
func (s *Session) Mutated() bool {
	return s != nil && s.mutated
}
