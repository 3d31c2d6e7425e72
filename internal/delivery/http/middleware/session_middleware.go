package middleware

import (
	"log/slog"

	"suja/internal/domain/entity"
	domainerrors "suja/internal/domain/errors"
	"suja/internal/infra/session"
	"suja/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys for the decoded session and the resolved identity.
const (
	keySession  = "auth_session"
	keyIdentity = "auth_identity"
)

// SessionMiddleware decodes the session cookie, resolves it to a user and
// owns the cookie side of the refresh contract: the cookie is re-issued if
// and only if the resolution mutated the session.
type SessionMiddleware struct {
	codec  *session.Codec
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(codec *session.Codec, authUC usecase.AuthUsecase, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		codec:  codec,
		authUC: authUC,
		logger: logger,
	}
}

// Load resolves the session on every request. Anonymous requests pass
// through with no identity set; handlers that need one use RequireUser.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := m.decode(c)
		resolution := m.authUC.Resolve(c.Request().Context(), sess)

		if sess.Mutated() {
			cookie, err := m.codec.Cookie(sess)
			if err != nil {
				m.logger.Error("failed to seal refreshed session", "error", err)
			} else {
				c.SetCookie(cookie)
			}
		}

		c.Set(keySession, sess)
		if resolution.Authenticated() {
			c.Set(keyIdentity, resolution.Identity)
		}

		return next(c)
	}
}

// RequireUser rejects requests whose session did not resolve to a user. The
// stale cookie is destroyed so the client stops replaying it.
func (m *SessionMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentIdentity(c) == nil {
			c.SetCookie(m.codec.DestroyCookie())

			return domainerrors.ErrUnauthorized
		}

		return next(c)
	}
}

func (m *SessionMiddleware) decode(c echo.Context) *entity.Session {
	cookie, err := c.Cookie(m.codec.CookieName())
	if err != nil || cookie.Value == "" {
		return entity.NewSession("", "")
	}

	sess, err := m.codec.Decode(cookie.Value)
	if err != nil {
		// A cookie that fails to open is the same as no cookie.
		m.logger.Debug("session cookie rejected", "error", err)

		return entity.NewSession("", "")
	}

	return sess
}

// CurrentSession returns the decoded session. The Load middleware always
// sets one.
func CurrentSession(c echo.Context) *entity.Session {
	if sess, ok := c.Get(keySession).(*entity.Session); ok {
		return sess
	}

	return entity.NewSession("", "")
}

// CurrentIdentity returns the resolved identity, or nil for anonymous
// requests.
func CurrentIdentity(c echo.Context) *entity.Identity {
	if identity, ok := c.Get(keyIdentity).(*entity.Identity); ok {
		return identity
	}

	return nil
}

// SetSessionCookie seals the session and attaches it to the response.
func (m *SessionMiddleware) SetSessionCookie(c echo.Context, sess *entity.Session) error {
	cookie, err := m.codec.Cookie(sess)
	if err != nil {
		return err
	}
	c.SetCookie(cookie)

	return nil
}

// DestroySessionCookie attaches the removal cookie to the response.
func (m *SessionMiddleware) DestroySessionCookie(c echo.Context) {
	c.SetCookie(m.codec.DestroyCookie())
}
