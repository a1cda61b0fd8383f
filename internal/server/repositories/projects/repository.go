// Package projects stores projects in the projects collection.
package projects

import (
	"context"

	"github.com/dmitrijs2005/teamboard/internal/server/models"
)

// MutateFunc inspects and changes one stored project in place. Returning an
// error aborts the write.
type MutateFunc func(p *models.Project) error

// CheckFunc approves or rejects an operation on a stored project.
type CheckFunc func(p models.Project) error

type Repository interface {
	List(ctx context.Context) []models.Project
	Get(ctx context.Context, id string) (*models.Project, error)
	Create(ctx context.Context, p models.Project) (*models.Project, error)
	Mutate(ctx context.Context, id string, fn MutateFunc) (*models.Project, error)
	Delete(ctx context.Context, id string, check CheckFunc) error
}
