package users

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/teamboard/internal/common"
	"github.com/dmitrijs2005/teamboard/internal/server/docstore"
	"github.com/dmitrijs2005/teamboard/internal/server/models"
)

// DocumentRepository keeps users in a docstore collection.
type DocumentRepository struct {
	c *docstore.Collection[models.User]
}

func NewDocumentRepository(c *docstore.Collection[models.User]) *DocumentRepository {
	return &DocumentRepository{c: c}
}

func (r *DocumentRepository) List(ctx context.Context) []models.User {
	return r.c.Load(ctx)
}

func (r *DocumentRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	users := r.c.Load(ctx)
	i := models.FindUser(users, id)
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	return &users[i], nil
}

// GetByEmail matches case-insensitively.
func (r *DocumentRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	users := r.c.Load(ctx)
	i := slices.IndexFunc(users, func(u models.User) bool { return u.HasEmail(email) })
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	return &users[i], nil
}

// Create appends user, assigning an id when it has none. The email
// uniqueness check runs under the collection's writer lock, so two
// concurrent registrations of one address cannot both succeed.
func (r *DocumentRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	u := *user
	if u.ID == "" {
		u.ID = models.NewID()
	}

	err := r.c.Update(ctx, func(users []models.User) ([]models.User, error) {
		if slices.ContainsFunc(users, func(x models.User) bool { return x.HasEmail(u.Email) }) {
			return nil, fmt.Errorf("email %q: %w", u.Email, common.ErrorAlreadyExists)
		}
		return append(users, u), nil
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}
