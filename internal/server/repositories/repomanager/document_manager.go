package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/teamboard/internal/logging"
	"github.com/dmitrijs2005/teamboard/internal/server/config"
	"github.com/dmitrijs2005/teamboard/internal/server/docstore"
	"github.com/dmitrijs2005/teamboard/internal/server/models"
	"github.com/dmitrijs2005/teamboard/internal/server/repositories/projects"
	"github.com/dmitrijs2005/teamboard/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/teamboard/internal/server/repositories/users"
)

// BackendFactory returns the backend holding the named collection.
type BackendFactory func(name string) docstore.Backend

// DocumentManager serves repositories backed by docstore collections.
type DocumentManager struct {
	users    *users.DocumentRepository
	projects *projects.DocumentRepository
	sessions *sessions.MemoryRepository
	db       *sql.DB
}

// NewDocumentManager builds one collection per name using factory.
func NewDocumentManager(factory BackendFactory, l logging.Logger) *DocumentManager {
	return &DocumentManager{
		users:    users.NewDocumentRepository(docstore.NewCollection[models.User](factory(CollectionUsers), l)),
		projects: projects.NewDocumentRepository(docstore.NewCollection[models.Project](factory(CollectionProjects), l)),
		sessions: sessions.NewMemoryRepository(l),
	}
}

func (m *DocumentManager) Users() users.Repository {
	return m.users
}

func (m *DocumentManager) Projects() projects.Repository {
	return m.projects
}

func (m *DocumentManager) Sessions() sessions.Repository {
	return m.sessions
}

// SessionJanitor exposes the in-memory session registry for periodic
// purging.
func (m *DocumentManager) SessionJanitor() *sessions.MemoryRepository {
	return m.sessions
}

// Close releases the database handle of the SQL backends.
func (m *DocumentManager) Close() error {
	if m.db == nil {
		return nil
	}
	return m.db.Close()
}

var (
	openSQL     = docstore.OpenSQL
	newS3Client = func(ctx context.Context, o docstore.S3Options) (docstore.S3API, error) {
		return docstore.NewS3Client(ctx, o)
	}
)

// New builds a DocumentManager for cfg.StorageBackend.
func New(ctx context.Context, cfg *config.Config, l logging.Logger) (*DocumentManager, error) {
	switch cfg.StorageBackend {
	case config.BackendFile, "":
		return NewDocumentManager(func(name string) docstore.Backend {
			return docstore.NewFileBackendIn(cfg.DataDir, name)
		}, l), nil

	case config.BackendS3:
		client, err := newS3Client(ctx, docstore.S3Options{
			Region:       cfg.S3Region,
			AccessKey:    cfg.S3RootUser,
			SecretKey:    cfg.S3RootPassword,
			BaseEndpoint: cfg.S3BaseEndpoint,
		})
		if err != nil {
			return nil, fmt.Errorf("s3 client: %w", err)
		}
		return NewDocumentManager(func(name string) docstore.Backend {
			return docstore.NewS3Backend(client, cfg.S3Bucket, cfg.S3Prefix, name)
		}, l), nil

	case config.BackendPostgres, config.BackendSQLite:
		d, err := docstore.DialectByName(cfg.StorageBackend)
		if err != nil {
			return nil, err
		}
		db, err := openSQL(ctx, d, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		m := NewDocumentManager(func(name string) docstore.Backend {
			return docstore.NewSQLBackend(db, d, name)
		}, l)
		m.db = db
		return m, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
