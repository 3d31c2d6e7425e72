// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"suja/internal/domain/entity"
)

// Resolution is the outcome of resolving a session to a user. A nil Identity
// means "no user"; Reason carries the log-only explanation and never reaches
// the client.
type Resolution struct {
	Identity *entity.Identity
	Reason   string
}

// Authenticated reports whether the resolution produced a user.
func (r Resolution) Authenticated() bool {
	return r.Identity != nil
}

// AuthUsecase defines the session and token lifecycle operations.
type AuthUsecase interface {
	// Resolve turns a decoded session into a user, refreshing the access
	// token at most once. It never returns an error: every provider failure
	// collapses to an unauthenticated resolution. A successful refresh
	// mutates the session in place; callers re-issue the cookie only then.
	Resolve(ctx context.Context, session *entity.Session) Resolution

	// SignOut revokes the access token upstream. The caller destroys the
	// cookie regardless; a revocation failure is surfaced to the client.
	SignOut(ctx context.Context, session *entity.Session) error
}
