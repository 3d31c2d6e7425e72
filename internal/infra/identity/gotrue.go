// Package identity implements the IdentityProvider interface against a
// GoTrue-style hosted auth API.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"suja/config"
	"suja/internal/domain/entity"
	"suja/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const requestTimeout = 10 * time.Second

// serviceRole is the claim value a server-side API key is expected to carry.
const serviceRole = "service_role"

// Client talks to the hosted auth API over plain HTTP. It is stateless and
// safe to share across requests.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient constructs the provider client from configuration. It warns when
// the configured service key does not carry the service role, which usually
// means the anon key was pasted into the wrong slot.
func NewClient(cfg *config.Config, logger *slog.Logger) service.IdentityProvider {
	client := &Client{
		baseURL:    strings.TrimRight(cfg.Identity.URL, "/"),
		anonKey:    cfg.Identity.AnonKey,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}

	if role := keyRole(cfg.Identity.ServiceKey); role != "" && role != serviceRole {
		logger.Warn("identity service key does not carry the service role",
			slog.String("role", role))
	}

	return client
}

// keyRole peeks at the role claim of a provider API key without verifying the
// signature; the key is verified by the provider, this is a local sanity
// check only.
func keyRole(key string) string {
	token, _, err := jwt.NewParser().ParseUnverified(key, jwt.MapClaims{})
	if err != nil {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	role, _ := claims["role"].(string)

	return role
}

// gotrueUser is the wire shape of the /user endpoint.
type gotrueUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		FullName  string `json:"full_name"`
		AvatarURL string `json:"avatar_url"`
	} `json:"user_metadata"`
}

// gotrueError is the wire shape of a provider error body.
type gotrueError struct {
	Message          string `json:"msg"`
	ErrorDescription string `json:"error_description"`
}

func (e *gotrueError) text() string {
	if e.Message != "" {
		return e.Message
	}
	if e.ErrorDescription != "" {
		return e.ErrorDescription
	}

	return "something went wrong"
}

// GetUser resolves the identity behind an access token.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*entity.Identity, error) {
	var user gotrueUser
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", accessToken, nil, &user); err != nil {
		return nil, err
	}

	return toIdentity(&user)
}

// RefreshAccessToken exchanges a refresh token for a new token pair.
func (c *Client) RefreshAccessToken(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	body := map[string]string{"refresh_token": refreshToken}

	var pair entity.TokenPair
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=refresh_token", "", body, &pair); err != nil {
		return nil, err
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		return nil, errors.New("provider returned an incomplete token pair")
	}

	return &pair, nil
}

// SignOut revokes the access token upstream.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, http.MethodPost, "/auth/v1/logout", accessToken, nil, nil)
}

// do performs one provider call. The anon key rides along as the apikey
// header; the bearer token, when present, identifies the end user.
func (c *Client) do(ctx context.Context, method, path, bearer string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "marshal request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "build provider request")
	}
	req.Header.Set("apikey", c.anonKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "call identity provider")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var provErr gotrueError
		_ = json.NewDecoder(resp.Body).Decode(&provErr)

		return errors.Errorf("identity provider: %s (status %d)", provErr.text(), resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode provider response")
	}

	return nil
}

func toIdentity(user *gotrueUser) (*entity.Identity, error) {
	if user.ID == "" || user.Email == "" {
		return nil, errors.New("provider returned an incomplete user")
	}
	id, err := uuid.Parse(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "parse provider user id")
	}

	return &entity.Identity{
		ID:    id,
		Email: user.Email,
		Metadata: entity.IdentityMetadata{
			FullName:  user.UserMetadata.FullName,
			AvatarURL: user.UserMetadata.AvatarURL,
		},
	}, nil
}
