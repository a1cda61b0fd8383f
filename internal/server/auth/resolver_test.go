package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/teamboard/internal/common"
	"github.com/dmitrijs2005/teamboard/internal/logging"
	"github.com/dmitrijs2005/teamboard/internal/server/models"
	"github.com/dmitrijs2005/teamboard/internal/server/repositories/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers map[string]models.User

func (f fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

type failingSessions struct{ sessions.Repository }

func (failingSessions) Create(context.Context, string, time.Duration) (*models.Session, error) {
	return nil, errors.New("boom")
}

func newResolver(users fakeUsers) *Resolver {
	return NewResolver(sessions.NewMemoryRepository(logging.Nop()), users, "secret", time.Hour, logging.Nop())
}

func TestResolver_EstablishResolveDestroy(t *testing.T) {
	ctx := context.Background()
	ana := models.User{ID: "u-ana", Name: "Ana", Email: "ana@x.hr"}
	r := newResolver(fakeUsers{ana.ID: ana})

	token, err := r.Establish(ctx, ana.ID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	p := r.Resolve(ctx, token)
	u, ok := p.User()
	require.True(t, ok)
	assert.Equal(t, ana, u)
	assert.Equal(t, ana.ID, p.UserID())

	require.NoError(t, r.Destroy(ctx, token))
	assert.False(t, r.Resolve(ctx, token).IsAuthenticated(), "logged-out token must not resolve")
}

func TestResolver_AnonymousCases(t *testing.T) {
	ctx := context.Background()
	ana := models.User{ID: "u-ana"}
	r := newResolver(fakeUsers{ana.ID: ana})

	forged, err := GenerateToken("s-unknown", ana.ID, []byte("secret"), time.Hour)
	require.NoError(t, err)
	otherSecret, err := GenerateToken("s", ana.ID, []byte("other"), time.Hour)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":           "",
		"garbage":         "abc",
		"wrong signature": otherSecret,
		"unknown session": forged,
	} {
		t.Run(name, func(t *testing.T) {
			p := r.Resolve(ctx, token)
			_, ok := p.User()
			assert.False(t, ok)
			assert.Empty(t, p.UserID())
		})
	}
}

func TestResolver_DeletedUserIsAnonymous(t *testing.T) {
	ctx := context.Background()
	users := fakeUsers{"u1": {ID: "u1"}}
	r := newResolver(users)

	token, err := r.Establish(ctx, "u1")
	require.NoError(t, err)

	delete(users, "u1")
	assert.False(t, r.Resolve(ctx, token).IsAuthenticated())
}

func TestResolver_SessionUserMismatch(t *testing.T) {
	ctx := context.Background()
	repo := sessions.NewMemoryRepository(logging.Nop())
	r := NewResolver(repo, fakeUsers{"u1": {ID: "u1"}, "u2": {ID: "u2"}}, "secret", time.Hour, logging.Nop())

	s, err := repo.Create(ctx, "u1", time.Hour)
	require.NoError(t, err)
	token, err := GenerateToken(s.ID, "u2", []byte("secret"), time.Hour)
	require.NoError(t, err)

	assert.False(t, r.Resolve(ctx, token).IsAuthenticated())
}

func TestResolver_EstablishFails(t *testing.T) {
	r := NewResolver(failingSessions{}, fakeUsers{}, "secret", time.Hour, logging.Nop())
	_, err := r.Establish(context.Background(), "u1")
	assert.Error(t, err)
}

func TestResolver_DestroyIgnoresInvalidToken(t *testing.T) {
	r := newResolver(fakeUsers{})
	assert.NoError(t, r.Destroy(context.Background(), "garbage"))
}

func TestPrincipalContext(t *testing.T) {
	ctx := context.Background()
	assert.False(t, FromContext(ctx).IsAuthenticated())

	ctx = WithPrincipal(ctx, Authenticated(models.User{ID: "u1"}))
	assert.Equal(t, "u1", FromContext(ctx).UserID())

	_, ok := Anonymous().User()
	assert.False(t, ok)
}
