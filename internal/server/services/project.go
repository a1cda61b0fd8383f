package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/teamboard/internal/common"
	"github.com/dmitrijs2005/teamboard/internal/logging"
	"github.com/dmitrijs2005/teamboard/internal/server/access"
	"github.com/dmitrijs2005/teamboard/internal/server/auth"
	"github.com/dmitrijs2005/teamboard/internal/server/models"
	"github.com/dmitrijs2005/teamboard/internal/server/repositories/projects"
	"github.com/dmitrijs2005/teamboard/internal/server/repositories/users"
)

// Member is a resolved team member.
type Member struct {
	ID   string
	Name string
}

// ProjectView is a project together with the display names of the people on
// it. Member ids with no matching user are left out.
type ProjectView struct {
	Project    models.Project
	LeaderName string
	Members    []Member
}

// Dashboard is the default project listing of one user.
type Dashboard struct {
	Led         []models.Project
	Memberships []models.Project
}

// ProjectService implements the project use cases. Every method requires an
// authenticated principal and checks the access policy before touching data.
type ProjectService struct {
	projects projects.Repository
	users    users.Repository
	logger   logging.Logger
}

func NewProjectService(p projects.Repository, u users.Repository, l logging.Logger) *ProjectService {
	return &ProjectService{
		projects: p,
		users:    u,
		logger:   l.With("module", "project_service"),
	}
}

func caller(p auth.Principal) (string, error) {
	u, ok := p.User()
	if !ok {
		return "", common.ErrorUnauthenticated
	}
	return u.ID, nil
}

// Create stores a new project led by the caller.
func (s *ProjectService) Create(ctx context.Context, p auth.Principal, form models.ProjectForm) (*models.Project, error) {
	uid, err := caller(p)
	if err != nil {
		return nil, err
	}

	project, err := s.projects.Create(ctx, form.NewProject(uid))
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.logger.Info(ctx, "project created", "project", project.ID, "leader", uid)
	return project, nil
}

// Get returns the project with its leader and member names resolved.
func (s *ProjectService) Get(ctx context.Context, p auth.Principal, id string) (*ProjectView, error) {
	uid, err := caller(p)
	if err != nil {
		return nil, err
	}

	project, err := s.projects.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(access.ActionView, *project, uid); err != nil {
		return nil, err
	}

	return s.view(ctx, *project), nil
}

func (s *ProjectService) view(ctx context.Context, project models.Project) *ProjectView {
	all := s.users.List(ctx)
	names := make(map[string]string, len(all))
	for _, u := range all {
		names[u.ID] = u.Name
	}

	v := &ProjectView{Project: project, LeaderName: names[project.LeaderID], Members: []Member{}}
	for _, id := range project.TeamMembers {
		if name, ok := names[id]; ok {
			v.Members = append(v.Members, Member{ID: id, Name: name})
		}
	}
	return v
}

// Update replaces the leader-editable fields from form. Completed work and
// the archive flag are left as they are.
func (s *ProjectService) Update(ctx context.Context, p auth.Principal, id string, form models.ProjectForm) (*models.Project, error) {
	return s.mutate(ctx, p, id, access.ActionEdit, func(project *models.Project) {
		form.ApplyCore(project)
	})
}

// UpdateWork sets the completed-work text.
func (s *ProjectService) UpdateWork(ctx context.Context, p auth.Principal, id string, completedWork string) (*models.Project, error) {
	return s.mutate(ctx, p, id, access.ActionUpdateWork, func(project *models.Project) {
		project.CompletedWork = completedWork
	})
}

// ToggleArchive flips the archived flag.
func (s *ProjectService) ToggleArchive(ctx context.Context, p auth.Principal, id string) (*models.Project, error) {
	return s.mutate(ctx, p, id, access.ActionArchive, func(project *models.Project) {
		project.Archived = !project.Archived
	})
}

func (s *ProjectService) mutate(ctx context.Context, p auth.Principal, id string, action access.Action, change func(*models.Project)) (*models.Project, error) {
	uid, err := caller(p)
	if err != nil {
		return nil, err
	}

	project, err := s.projects.Mutate(ctx, id, func(project *models.Project) error {
		if err := access.Authorize(action, *project, uid); err != nil {
			return err
		}
		change(project)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "project changed", "project", id, "action", string(action), "user", uid)
	return project, nil
}

// Delete removes the project for good.
func (s *ProjectService) Delete(ctx context.Context, p auth.Principal, id string) error {
	uid, err := caller(p)
	if err != nil {
		return err
	}

	err = s.projects.Delete(ctx, id, func(project models.Project) error {
		return access.Authorize(access.ActionDelete, project, uid)
	})
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "project deleted", "project", id, "user", uid)
	return nil
}

// List returns the caller's active projects: the ones they lead and the
// ones they are a member of but do not lead.
func (s *ProjectService) List(ctx context.Context, p auth.Principal) (*Dashboard, error) {
	uid, err := caller(p)
	if err != nil {
		return nil, err
	}

	var active []models.Project
	for _, project := range s.projects.List(ctx) {
		if !project.Archived {
			active = append(active, project)
		}
	}

	d := &Dashboard{
		Led:         access.Filter(access.ActionListLed, active, uid),
		Memberships: []models.Project{},
	}
	for _, project := range access.Filter(access.ActionListMemberships, active, uid) {
		if !access.IsLeader(project, uid) {
			d.Memberships = append(d.Memberships, project)
		}
	}
	return d, nil
}

// ListArchived returns archived projects the caller leads or belongs to.
func (s *ProjectService) ListArchived(ctx context.Context, p auth.Principal) ([]models.Project, error) {
	uid, err := caller(p)
	if err != nil {
		return nil, err
	}

	out := []models.Project{}
	for _, project := range s.projects.List(ctx) {
		if project.Archived && access.HasAccess(project, uid) {
			out = append(out, project)
		}
	}
	return out, nil
}
