// Package repomanager assembles the repositories on top of the configured
// storage backend.
package repomanager

import (
	"github.com/dmitrijs2005/teamboard/internal/server/repositories/projects"
	"github.com/dmitrijs2005/teamboard/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/teamboard/internal/server/repositories/users"
)

// Collection names, also the document names in every backend.
const (
	CollectionUsers    = "users"
	CollectionProjects = "projects"
)

type RepositoryManager interface {
	Users() users.Repository
	Projects() projects.Repository
	Sessions() sessions.Repository
	Close() error
}
