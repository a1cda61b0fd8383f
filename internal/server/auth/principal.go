// Package auth resolves session tokens into the identity of the caller.
package auth

import (
	"context"

	"github.com/dmitrijs2005/teamboard/internal/server/models"
)

// Principal is who is making a request: either nobody or exactly one user.
type Principal struct {
	user          models.User
	authenticated bool
}

func Anonymous() Principal {
	return Principal{}
}

func Authenticated(u models.User) Principal {
	return Principal{user: u, authenticated: true}
}

// User returns the authenticated user, or false for an anonymous principal.
func (p Principal) User() (models.User, bool) {
	return p.user, p.authenticated
}

// UserID is empty for an anonymous principal.
func (p Principal) UserID() string {
	if !p.authenticated {
		return ""
	}
	return p.user.ID
}

func (p Principal) IsAuthenticated() bool {
	return p.authenticated
}

type ctxKey struct{}

// WithPrincipal stores p in ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext returns the principal stored in ctx, or Anonymous.
func FromContext(ctx context.Context) Principal {
	if p, ok := ctx.Value(ctxKey{}).(Principal); ok {
		return p
	}
	return Anonymous()
}
