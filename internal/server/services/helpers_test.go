package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/teamboard/internal/logging"
	"github.com/dmitrijs2005/teamboard/internal/server/auth"
	"github.com/dmitrijs2005/teamboard/internal/server/docstore"
	"github.com/dmitrijs2005/teamboard/internal/server/models"
	"github.com/dmitrijs2005/teamboard/internal/server/password"
	"github.com/dmitrijs2005/teamboard/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type env struct {
	dir      string
	manager  *repomanager.DocumentManager
	resolver *auth.Resolver
	users    *UserService
	projects *ProjectService
}

func newEnv(t *testing.T, locale string) *env {
	t.Helper()
	dir := t.TempDir()
	m := repomanager.NewDocumentManager(func(name string) docstore.Backend {
		return docstore.NewFileBackendIn(dir, name)
	}, logging.Nop())
	r := auth.NewResolver(m.Sessions(), m.Users(), "test-secret", time.Hour, logging.Nop())
	return &env{
		dir:      dir,
		manager:  m,
		resolver: r,
		users:    NewUserService(m.Users(), r, password.NewBcryptHasher(bcrypt.MinCost), locale, logging.Nop()),
		projects: NewProjectService(m.Projects(), m.Users(), logging.Nop()),
	}
}

// register creates a user and returns the principal their token resolves to.
func (e *env) register(t *testing.T, name, email string) auth.Principal {
	t.Helper()
	ctx := context.Background()
	_, token, err := e.users.Register(ctx, RegisterInput{
		Name: name, Email: email, Password: "secret1", ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	p := e.resolver.Resolve(ctx, token)
	require.True(t, p.IsAuthenticated())
	return p
}

func (e *env) create(t *testing.T, leader auth.Principal, title string, members ...string) *models.Project {
	t.Helper()
	p, err := e.projects.Create(context.Background(), leader, models.ProjectForm{
		Title:       title,
		TeamMembers: members,
	})
	require.NoError(t, err)
	return p
}
