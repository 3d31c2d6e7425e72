// Package session implements the cookie-backed session store: an encrypted,
// authenticated blob holding the auth token pair, opaque to the client.
package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"suja/config"
	"suja/internal/domain/entity"

	"github.com/pkg/errors"
	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

// Codec seals sessions into cookie values and opens them again. secretbox
// both encrypts and authenticates, so a tampered or foreign cookie fails to
// open rather than decoding to garbage.
type Codec struct {
	key        [32]byte
	cookieName string
	maxAge     time.Duration
	secure     bool
}

// NewCodec derives the sealing key from the configured session secret.
func NewCodec(cfg *config.Config) *Codec {
	return &Codec{
		key:        sha256.Sum256([]byte(cfg.Session.Secret)),
		cookieName: cfg.Session.CookieName,
		maxAge:     cfg.Session.MaxAge,
		secure:     cfg.Session.Secure,
	}
}

// CookieName returns the configured cookie name.
func (c *Codec) CookieName() string {
	return c.cookieName
}

// Encode seals the session into an opaque cookie value.
func (c *Codec) Encode(sess *entity.Session) (string, error) {
	payload, err := json.Marshal(sess)
	if err != nil {
		return "", errors.Wrap(err, "marshal session")
	}

	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", errors.Wrap(err, "generate nonce")
	}

	sealed := secretbox.Seal(nonce[:], payload, &nonce, &c.key)

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Decode opens a cookie value back into a session. Any failure (bad
// encoding, wrong key, tampering) returns an error; callers treat that the
// same as no session.
func (c *Codec) Decode(value string) (*entity.Session, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, errors.Wrap(err, "decode session cookie")
	}
	if len(sealed) < nonceSize {
		return nil, errors.New("session cookie too short")
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])

	payload, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &c.key)
	if !ok {
		return nil, errors.New("session cookie failed verification")
	}

	sess := new(entity.Session)
	if err := json.Unmarshal(payload, sess); err != nil {
		return nil, errors.Wrap(err, "unmarshal session")
	}

	return sess, nil
}

// Cookie builds the Set-Cookie value for a session.
func (c *Codec) Cookie(sess *entity.Session) (*http.Cookie, error) {
	value, err := c.Encode(sess)
	if err != nil {
		return nil, err
	}

	return &http.Cookie{
		Name:     c.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// DestroyCookie builds the Set-Cookie value that removes the session.
func (c *Codec) DestroyCookie() *http.Cookie {
	return &http.Cookie{
		Name:     c.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
