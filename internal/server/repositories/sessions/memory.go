package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/teamboard/internal/common"
	"github.com/dmitrijs2005/teamboard/internal/logging"
	"github.com/dmitrijs2005/teamboard/internal/server/models"
)

// MemoryRepository stores sessions in process memory. Sessions do not survive
// a restart; users simply log in again.
type MemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]models.Session
	now      func() time.Time
	logger   logging.Logger
}

func NewMemoryRepository(logger logging.Logger) *MemoryRepository {
	return &MemoryRepository{
		sessions: make(map[string]models.Session),
		now:      time.Now,
		logger:   logger.With("module", "sessions"),
	}
}

// Create registers a new session for userID valid for validity from now.
func (r *MemoryRepository) Create(ctx context.Context, userID string, validity time.Duration) (*models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := models.Session{
		ID:      models.NewID(),
		UserID:  userID,
		Expires: r.now().Add(validity),
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()

	return &s, nil
}

// Find returns the live session with the given id. Unknown and expired
// sessions yield common.ErrorNotFound; an expired one is dropped on the way.
func (r *MemoryRepository) Find(ctx context.Context, id string) (*models.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if s.Expired(r.now()) {
		delete(r.sessions, id)
		return nil, common.ErrorNotFound
	}
	return &s, nil
}

// Delete revokes a session. Deleting an unknown id is not an error.
func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
	return nil
}

// Purge drops every expired session and returns how many were removed.
func (r *MemoryRepository) Purge() int {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

// RunJanitor purges expired sessions every interval until ctx is done.
func (r *MemoryRepository) RunJanitor(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := r.Purge(); n > 0 {
				r.logger.Debug(ctx, "purged expired sessions", "count", n)
			}
		}
	}
}
