// Package sessions keeps the server-side registry of login sessions.
package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/teamboard/internal/server/models"
)

// Repository issues, looks up and revokes sessions.
type Repository interface {
	Create(ctx context.Context, userID string, validity time.Duration) (*models.Session, error)
	Find(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}
