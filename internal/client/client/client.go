// Package client talks to the teamboard gRPC service and keeps the session
// token between runs.
package client

import (
	"context"

	"github.com/dmitrijs2005/teamboard/internal/client/models"
)

type Client interface {
	Close() error
	SetToken(token string)
	Ping(ctx context.Context) error
	Register(ctx context.Context, name, email string, password, confirm []byte) (*models.Session, error)
	Login(ctx context.Context, email string, password []byte) (*models.Session, error)
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateProject(ctx context.Context, in models.ProjectInput) (*models.Project, error)
	GetProject(ctx context.Context, id string) (*models.ProjectDetails, error)
	UpdateProject(ctx context.Context, id string, in models.ProjectInput) (*models.Project, error)
	UpdateWork(ctx context.Context, id, completedWork string) (*models.Project, error)
	ToggleArchive(ctx context.Context, id string) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error
	ListProjects(ctx context.Context) (*models.Dashboard, error)
	ListArchived(ctx context.Context) ([]models.Project, error)
}
