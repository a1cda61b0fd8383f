package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/teamboard/internal/logging"
	"github.com/dmitrijs2005/teamboard/internal/server/models"
	"github.com/dmitrijs2005/teamboard/internal/server/repositories/sessions"
)

// UserFinder looks a user up by id.
type UserFinder interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Resolver maps session tokens to principals and manages the session
// lifecycle.
type Resolver struct {
	sessions sessions.Repository
	users    UserFinder
	secret   []byte
	validity time.Duration
	logger   logging.Logger
}

func NewResolver(s sessions.Repository, u UserFinder, secretKey string, validity time.Duration, l logging.Logger) *Resolver {
	return &Resolver{
		sessions: s,
		users:    u,
		secret:   []byte(secretKey),
		validity: validity,
		logger:   l.With("module", "auth"),
	}
}

// Resolve never fails: anything short of a valid token for a live session
// of an existing user yields Anonymous.
func (r *Resolver) Resolve(ctx context.Context, token string) Principal {
	if token == "" {
		return Anonymous()
	}

	claims, err := ParseToken(token, r.secret)
	if err != nil {
		r.logger.Debug(ctx, "rejected session token", "error", err)
		return Anonymous()
	}

	s, err := r.sessions.Find(ctx, claims.SessionID)
	if err != nil || s.UserID != claims.UserID {
		r.logger.Debug(ctx, "session not found", "session", claims.SessionID)
		return Anonymous()
	}

	u, err := r.users.GetByID(ctx, s.UserID)
	if err != nil {
		r.logger.Debug(ctx, "session user not found", "user", s.UserID, "error", err)
		return Anonymous()
	}

	return Authenticated(*u)
}

// Establish opens a session for userID and returns its token.
func (r *Resolver) Establish(ctx context.Context, userID string) (string, error) {
	s, err := r.sessions.Create(ctx, userID, r.validity)
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	token, err := GenerateToken(s.ID, userID, r.secret, r.validity)
	if err != nil {
		_ = r.sessions.Delete(ctx, s.ID)
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Destroy revokes the session behind token. Invalid tokens are ignored.
func (r *Resolver) Destroy(ctx context.Context, token string) error {
	claims, err := ParseToken(token, r.secret)
	if err != nil {
		return nil
	}
	return r.sessions.Delete(ctx, claims.SessionID)
}
