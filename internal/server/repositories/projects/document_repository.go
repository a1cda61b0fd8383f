package projects

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/teamboard/internal/common"
	"github.com/dmitrijs2005/teamboard/internal/server/docstore"
	"github.com/dmitrijs2005/teamboard/internal/server/models"
)

// DocumentRepository keeps projects in a docstore collection. Every write is
// one Collection.Update round trip.
type DocumentRepository struct {
	c *docstore.Collection[models.Project]
}

func NewDocumentRepository(c *docstore.Collection[models.Project]) *DocumentRepository {
	return &DocumentRepository{c: c}
}

func (r *DocumentRepository) List(ctx context.Context) []models.Project {
	return r.c.Load(ctx)
}

func (r *DocumentRepository) Get(ctx context.Context, id string) (*models.Project, error) {
	projects := r.c.Load(ctx)
	i := models.FindProject(projects, id)
	if i < 0 {
		return nil, fmt.Errorf("project %s: %w", id, common.ErrorNotFound)
	}
	p := projects[i].Clone()
	return &p, nil
}

// Create appends p, assigning an id when it has none.
func (r *DocumentRepository) Create(ctx context.Context, p models.Project) (*models.Project, error) {
	p = p.Clone()
	if p.ID == "" {
		p.ID = models.NewID()
	}

	err := r.c.Update(ctx, func(projects []models.Project) ([]models.Project, error) {
		return append(projects, p), nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Mutate finds the project by id and applies fn to it. fn runs on a copy;
// the stored record only changes if fn succeeds and the write commits.
func (r *DocumentRepository) Mutate(ctx context.Context, id string, fn MutateFunc) (*models.Project, error) {
	var out models.Project

	err := r.c.Update(ctx, func(projects []models.Project) ([]models.Project, error) {
		i := models.FindProject(projects, id)
		if i < 0 {
			return nil, fmt.Errorf("project %s: %w", id, common.ErrorNotFound)
		}

		p := projects[i].Clone()
		if err := fn(&p); err != nil {
			return nil, err
		}
		p.ID = projects[i].ID

		projects[i] = p
		out = p.Clone()
		return projects, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the project by id once check approves it.
func (r *DocumentRepository) Delete(ctx context.Context, id string, check CheckFunc) error {
	return r.c.Update(ctx, func(projects []models.Project) ([]models.Project, error) {
		i := models.FindProject(projects, id)
		if i < 0 {
			return nil, fmt.Errorf("project %s: %w", id, common.ErrorNotFound)
		}
		if check != nil {
			if err := check(projects[i]); err != nil {
				return nil, err
			}
		}
		return slices.Delete(projects, i, i+1), nil
	})
}
