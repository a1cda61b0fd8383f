// Package docstore persists whole collections of records as a single JSON
// array per collection.
//
// Every mutation is "read everything, compute the next full state, write
// everything". The document is handed to the Backend in one Write call and
// each Backend has a single commit point, so a reader sees either the
// previous or the next document, never a mix.
//
// Collection.Update serialises read-modify-write round trips within one
// process. Two processes sharing the same backend still race with
// last-writer-wins at document granularity.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/teamboard/internal/common"
	"github.com/dmitrijs2005/teamboard/internal/logging"
)

// ErrNotExist is returned by Backend.Read when the document was never written.
var ErrNotExist = errors.New("document does not exist")

// Backend stores one opaque document.
type Backend interface {
	// Name identifies the document in logs, e.g. "projects".
	Name() string
	// Read returns the last committed document or ErrNotExist.
	Read(ctx context.Context) ([]byte, error)
	// Write replaces the document. It either fully succeeds or leaves the
	// previous document in place.
	Write(ctx context.Context, data []byte) error
}

// Collection is the load/replace-all primitive over one Backend.
type Collection[T any] struct {
	backend Backend
	logger  logging.Logger
	mu      sync.Mutex
}

func NewCollection[T any](backend Backend, logger logging.Logger) *Collection[T] {
	return &Collection[T]{
		backend: backend,
		logger:  logger.With("module", "docstore", "collection", backend.Name()),
	}
}

// Name returns the backend's document name.
func (c *Collection[T]) Name() string {
	return c.backend.Name()
}

// Load returns every record. It never fails: a missing, unreadable or
// malformed document yields an empty slice.
func (c *Collection[T]) Load(ctx context.Context) []T {
	records, err := c.read(ctx)
	if err != nil {
		c.logger.Warn(ctx, "collection unreadable, treating as empty", "error", err)
		return []T{}
	}
	return records
}

// read decodes the document. Only a backend failure other than ErrNotExist
// is reported; a malformed document still decodes as empty.
func (c *Collection[T]) read(ctx context.Context) ([]T, error) {
	data, err := c.backend.Read(ctx)
	if err != nil {
		if errors.Is(err, ErrNotExist) {
			c.logger.Debug(ctx, "collection absent, starting empty")
			return []T{}, nil
		}
		return nil, err
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		c.logger.Warn(ctx, "collection is not a valid JSON array, treating as empty", "error", err)
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// ReplaceAll serialises records and overwrites the document. Any encoding
// or write failure is returned wrapped in common.ErrorStorage.
func (c *Collection[T]) ReplaceAll(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", common.ErrorStorage, c.backend.Name(), err)
	}

	if err := c.backend.Write(ctx, data); err != nil {
		c.logger.Error(ctx, "collection write failed", "error", err)
		return fmt.Errorf("%w: write %s: %w", common.ErrorStorage, c.backend.Name(), err)
	}

	c.logger.Debug(ctx, "collection written", "records", len(records))
	return nil
}

// Update runs one read-modify-write round trip while holding the
// collection's writer lock. fn receives the loaded records and returns the
// next full state; if fn fails nothing is written and its error is
// returned unchanged.
//
// Unlike Load, a backend read failure aborts the update with
// common.ErrorStorage so a transient outage cannot overwrite the stored
// document with a state computed from nothing.
func (c *Collection[T]) Update(ctx context.Context, fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.read(ctx)
	if err != nil {
		c.logger.Error(ctx, "collection read failed, update aborted", "error", err)
		return fmt.Errorf("%w: read %s: %w", common.ErrorStorage, c.backend.Name(), err)
	}

	next, err := fn(records)
	if err != nil {
		return err
	}
	return c.ReplaceAll(ctx, next)
}
