package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/teamboard/internal/client/client"
	"github.com/dmitrijs2005/teamboard/internal/client/models"
	"github.com/dmitrijs2005/teamboard/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	token  string
	closed bool
	err    error

	gotPasswords [][]byte
	gotInput     models.ProjectInput
	gotID        string
	gotWork      string

	project models.Project
	details models.ProjectDetails
	dash    models.Dashboard
	users   []models.User
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func (f *fakeClient) SetToken(token string) { f.token = token }

func (f *fakeClient) Ping(context.Context) error { return f.err }

func (f *fakeClient) session(name string) (*models.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.token = "tok-" + name
	return &models.Session{User: models.User{ID: "u1", Name: name}, Token: f.token}, nil
}

func (f *fakeClient) Register(_ context.Context, name, _ string, password, confirm []byte) (*models.Session, error) {
	f.gotPasswords = append(f.gotPasswords, password, confirm)
	return f.session(name)
}

func (f *fakeClient) Login(_ context.Context, email string, password []byte) (*models.Session, error) {
	f.gotPasswords = append(f.gotPasswords, password)
	return f.session(strings.Split(email, "@")[0])
}

func (f *fakeClient) Logout(context.Context) error {
	f.token = ""
	return f.err
}

func (f *fakeClient) WhoAmI(context.Context) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &f.users[0], nil
}

func (f *fakeClient) ListUsers(context.Context) ([]models.User, error) {
	return f.users, f.err
}

func (f *fakeClient) CreateProject(_ context.Context, in models.ProjectInput) (*models.Project, error) {
	f.gotInput = in
	if f.err != nil {
		return nil, f.err
	}
	return &models.Project{ID: "p-new"}, nil
}

func (f *fakeClient) GetProject(_ context.Context, id string) (*models.ProjectDetails, error) {
	f.gotID = id
	if f.err != nil {
		return nil, f.err
	}
	return &f.details, nil
}

func (f *fakeClient) UpdateProject(_ context.Context, id string, in models.ProjectInput) (*models.Project, error) {
	f.gotID, f.gotInput = id, in
	return &f.project, f.err
}

func (f *fakeClient) UpdateWork(_ context.Context, id, work string) (*models.Project, error) {
	f.gotID, f.gotWork = id, work
	return &f.project, f.err
}

func (f *fakeClient) ToggleArchive(_ context.Context, id string) (*models.Project, error) {
	f.gotID = id
	f.project.ID = id
	f.project.Archived = !f.project.Archived
	return &f.project, f.err
}

func (f *fakeClient) DeleteProject(_ context.Context, id string) error {
	f.gotID = id
	return f.err
}

func (f *fakeClient) ListProjects(context.Context) (*models.Dashboard, error) {
	return &f.dash, f.err
}

func (f *fakeClient) ListArchived(context.Context) ([]models.Project, error) {
	return f.dash.Led, f.err
}

var _ client.Client = (*fakeClient)(nil)

func stubPasswords(t *testing.T, pw ...string) {
	t.Helper()
	old := getPassword
	t.Cleanup(func() { getPassword = old })

	i := 0
	getPassword = func(string, io.Writer) ([]byte, error) {
		if i >= len(pw) {
			return nil, fmt.Errorf("no more passwords")
		}
		i++
		return []byte(pw[i-1]), nil
	}
}

func newTestApp(t *testing.T, fc *fakeClient, input string) (*App, *bytes.Buffer, *client.TokenStore) {
	t.Helper()
	store, err := client.NewTokenStore(filepath.Join(t.TempDir(), ".teamboard"))
	require.NoError(t, err)

	var out bytes.Buffer
	a, err := newApp(fc, store, strings.NewReader(input), &out, 0, logging.Nop())
	require.NoError(t, err)
	return a, &out, store
}

func loggedIn(t *testing.T, fc *fakeClient, input string) (*App, *bytes.Buffer) {
	t.Helper()
	a, out, store := newTestApp(t, fc, input)
	require.NoError(t, store.Save("tok"))
	a.loggedIn = true
	return a, out
}

func TestNewApp_RestoresSavedToken(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".teamboard")
	store, err := client.NewTokenStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save("saved"))

	fc := &fakeClient{}
	a, err := newApp(fc, store, strings.NewReader(""), io.Discard, 0, logging.Nop())
	require.NoError(t, err)

	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "saved", fc.token)
	assert.Equal(t, " (logged in)", a.status())
}

func TestRegister_SavesSessionAndWipesPasswords(t *testing.T) {
	stubPasswords(t, "secret1", "secret1")
	fc := &fakeClient{}
	a, out, store := newTestApp(t, fc, "Ana\nana@x.hr\n")

	require.NoError(t, a.execute(context.Background(), "register", nil))

	assert.Contains(t, out.String(), "Welcome, Ana! Your user id is u1")
	tok, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-Ana", tok)
	assert.Equal(t, " (Ana)", a.status())

	require.Len(t, fc.gotPasswords, 2)
	for _, pw := range fc.gotPasswords {
		assert.Equal(t, make([]byte, len("secret1")), pw)
	}
}

func TestLogin_FailureKeepsLoggedOut(t *testing.T) {
	stubPasswords(t, "bad")
	fc := &fakeClient{err: fmt.Errorf("%w: invalid email or password", client.ErrUnauthorized)}
	a, _, store := newTestApp(t, fc, "ana@x.hr\n")

	err := a.execute(context.Background(), "login", nil)
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.False(t, a.isLoggedIn())

	tok, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestLoginThenLogout(t *testing.T) {
	stubPasswords(t, "pw")
	fc := &fakeClient{}
	a, out, store := newTestApp(t, fc, "ana@x.hr\n")
	ctx := context.Background()

	require.NoError(t, a.execute(ctx, "login", nil))
	assert.Contains(t, out.String(), "Logged in as ana (id u1)")

	require.NoError(t, a.execute(ctx, "logout", nil))
	assert.False(t, a.isLoggedIn())
	assert.Empty(t, fc.token)
	tok, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestLogout_ServerErrorStillForgets(t *testing.T) {
	fc := &fakeClient{err: client.ErrUnavailable}
	a, _ := loggedIn(t, fc, "")

	require.NoError(t, a.execute(context.Background(), "logout", nil))
	assert.False(t, a.isLoggedIn())
}

func TestExecute_Guards(t *testing.T) {
	fc := &fakeClient{}
	a, _, _ := newTestApp(t, fc, "")
	ctx := context.Background()

	assert.ErrorContains(t, a.execute(ctx, "frobnicate", nil), "unknown command")
	assert.ErrorIs(t, a.execute(ctx, "list", nil), errNotLoggedIn)

	a.loggedIn = true
	assert.ErrorContains(t, a.execute(ctx, "show", nil), "usage: show <id>")
}

func TestExecute_UnauthorizedForgetsSession(t *testing.T) {
	fc := &fakeClient{err: fmt.Errorf("%w: login required", client.ErrUnauthorized)}
	a, _ := loggedIn(t, fc, "")

	err := a.execute(context.Background(), "list", nil)
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.ErrorContains(t, err, "session expired")
	assert.False(t, a.isLoggedIn())

	tok, err := a.store.Load()
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestList(t *testing.T) {
	fc := &fakeClient{dash: models.Dashboard{
		Led: []models.Project{{ID: "p1", Title: "Website", Price: 1200}},
	}}
	a, out := loggedIn(t, fc, "")

	require.NoError(t, a.execute(context.Background(), "list", nil))

	s := out.String()
	assert.Contains(t, s, "Projects you lead")
	assert.Contains(t, s, "Website")
	assert.Contains(t, s, "1200.00")
	assert.Contains(t, s, "Projects you work on")
	assert.Contains(t, s, "(none)")
}

func TestArchived(t *testing.T) {
	fc := &fakeClient{dash: models.Dashboard{Led: []models.Project{{ID: "p9", Title: "Old"}}}}
	a, out := loggedIn(t, fc, "")

	require.NoError(t, a.execute(context.Background(), "archived", nil))
	assert.Contains(t, out.String(), "Archived projects")
	assert.Contains(t, out.String(), "p9")
}

func TestShow(t *testing.T) {
	fc := &fakeClient{details: models.ProjectDetails{
		Project: models.Project{
			ID: "p1", Title: "Website", Description: "landing page",
			CompletedWork: "mockups", Archived: true, LeaderID: "u1",
		},
		LeaderName: "Ana",
		Members:    []models.Member{{ID: "u2", Name: "Bob"}, {ID: "u3", Name: "Cid"}},
	}}
	a, out := loggedIn(t, fc, "")

	require.NoError(t, a.execute(context.Background(), "show", []string{"p1"}))

	s := out.String()
	assert.Equal(t, "p1", fc.gotID)
	for _, want := range []string{"Website", "Ana (u1)", "Bob (u2), Cid (u3)", "archived", "landing page", "mockups"} {
		assert.Contains(t, s, want)
	}
}

func TestCreate(t *testing.T) {
	input := strings.Join([]string{
		"Website",
		"line one", "line two", "",
		"99.5",
		"2025-01-01",
		"2025-02-01",
		"u2,u3",
	}, "\n") + "\n"

	fc := &fakeClient{}
	a, out := loggedIn(t, fc, input)

	require.NoError(t, a.execute(context.Background(), "create", nil))

	assert.Equal(t, models.ProjectInput{
		Title:       "Website",
		Description: "line one\nline two",
		Price:       "99.5",
		StartDate:   "2025-01-01",
		EndDate:     "2025-02-01",
		TeamMembers: "u2,u3",
	}, fc.gotInput)
	assert.Contains(t, out.String(), "Created project p-new")
}

func TestEdit_KeepsCurrentValuesOnEmptyInput(t *testing.T) {
	fc := &fakeClient{details: models.ProjectDetails{Project: models.Project{
		ID: "p1", Title: "Website", Description: "old", Price: 10,
		StartDate: "2025-01-01", EndDate: "2025-02-01", TeamMembers: []string{"u2", "u3"},
	}}}
	a, _ := loggedIn(t, fc, "New title\n\n\n\n\n\n")

	require.NoError(t, a.execute(context.Background(), "edit", []string{"p1"}))

	assert.Equal(t, "p1", fc.gotID)
	assert.Equal(t, models.ProjectInput{
		Title:       "New title",
		Description: "old",
		Price:       "10",
		StartDate:   "2025-01-01",
		EndDate:     "2025-02-01",
		TeamMembers: "u2,u3",
	}, fc.gotInput)
}

func TestWork(t *testing.T) {
	fc := &fakeClient{details: models.ProjectDetails{Project: models.Project{ID: "p1", CompletedWork: "draft"}}}
	a, out := loggedIn(t, fc, "draft\nfinal\n\n")

	require.NoError(t, a.execute(context.Background(), "work", []string{"p1"}))

	assert.Equal(t, "draft\nfinal", fc.gotWork)
	assert.Contains(t, out.String(), "Completed work so far")
	assert.Contains(t, out.String(), "Completed work saved")
}

func TestWork_ForbiddenIsReturned(t *testing.T) {
	fc := &fakeClient{err: fmt.Errorf("%w: only team members can record work", client.ErrForbidden)}
	a, _ := loggedIn(t, fc, "")

	err := a.execute(context.Background(), "work", []string{"p1"})
	assert.ErrorIs(t, err, client.ErrForbidden)
	assert.True(t, a.isLoggedIn())
}

func TestArchiveToggles(t *testing.T) {
	fc := &fakeClient{}
	a, out := loggedIn(t, fc, "")
	ctx := context.Background()

	require.NoError(t, a.execute(ctx, "archive", []string{"p1"}))
	require.NoError(t, a.execute(ctx, "archive", []string{"p1"}))

	assert.Contains(t, out.String(), "Project p1 archived")
	assert.Contains(t, out.String(), "Project p1 restored")
}

func TestDelete(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		fc := &fakeClient{}
		a, out := loggedIn(t, fc, "y\n")
		require.NoError(t, a.execute(context.Background(), "delete", []string{"p1"}))
		assert.Equal(t, "p1", fc.gotID)
		assert.Contains(t, out.String(), "Project deleted")
	})

	t.Run("cancelled", func(t *testing.T) {
		fc := &fakeClient{}
		a, out := loggedIn(t, fc, "n\n")
		require.NoError(t, a.execute(context.Background(), "delete", []string{"p1"}))
		assert.Empty(t, fc.gotID)
		assert.Contains(t, out.String(), "Cancelled")
	})
}

func TestRun_OneShotAndREPL(t *testing.T) {
	fc := &fakeClient{dash: models.Dashboard{Led: []models.Project{{ID: "p1", Title: "Website"}}}}
	a, out := loggedIn(t, fc, "")

	require.NoError(t, a.Run(context.Background(), []string{"list"}))
	assert.Contains(t, out.String(), "Website")
	assert.True(t, fc.closed)

	fc = &fakeClient{}
	a, out = loggedIn(t, fc, "help\narchive p2\nquit\n")

	require.NoError(t, a.Run(context.Background(), nil))
	assert.Contains(t, out.String(), "Welcome to teamboard")
	assert.Contains(t, out.String(), "Project p2 archived")
	assert.Contains(t, out.String(), "Bye!")
}

func TestWhoAmI(t *testing.T) {
	fc := &fakeClient{users: []models.User{{ID: "u-ana", Name: "Ana", Email: "ana@x.hr"}}}
	a, out := loggedIn(t, fc, "")

	require.NoError(t, a.execute(context.Background(), "whoami", nil))

	assert.Contains(t, out.String(), "u-ana")
	assert.Contains(t, out.String(), "ana@x.hr")
	assert.Equal(t, " (Ana)", a.status())
}

func TestUsers_ListsIdsForTeamMembers(t *testing.T) {
	fc := &fakeClient{users: []models.User{
		{ID: "u-ana", Name: "Ana", Email: "ana@x.hr"},
		{ID: "u-bob", Name: "Bob", Email: "bob@x.hr"},
	}}
	a, out := loggedIn(t, fc, "")
	ctx := context.Background()

	require.NoError(t, a.execute(ctx, "users", nil))
	s := out.String()
	assert.Contains(t, s, "u-bob")
	assert.Contains(t, s, "bob@x.hr")

	assert.ErrorIs(t, (&App{}).execute(ctx, "users", nil), errNotLoggedIn)
}

func TestHelp_DescribesArchivedListing(t *testing.T) {
	var out bytes.Buffer
	printHelp(&out, true)

	assert.Contains(t, out.String(), "archived projects you lead or work on")
	assert.Contains(t, out.String(), "whoami")
	assert.Contains(t, out.String(), "users")
}
