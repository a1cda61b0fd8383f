package grpc

import (
	"encoding/json"

	"github.com/dmitrijs2005/teamboard/internal/server/models"
	"github.com/dmitrijs2005/teamboard/internal/server/services"
	"google.golang.org/protobuf/types/known/structpb"
)

// asMap renders v through its JSON form so that structpb sees the same
// field names as the stored documents.
func asMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func projectList(projects []models.Project) ([]any, error) {
	out := make([]any, 0, len(projects))
	for _, p := range projects {
		m, err := asMap(p.Clone())
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// userMap never includes the password digest.
func userMap(u *models.User) map[string]any {
	return map[string]any{"id": u.ID, "name": u.Name, "email": u.Email}
}

func usersStruct(list []models.User) (*structpb.Struct, error) {
	users := make([]any, 0, len(list))
	for i := range list {
		users = append(users, userMap(&list[i]))
	}
	return structpb.NewStruct(map[string]any{"users": users})
}

func sessionStruct(u *models.User, token string) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{"user": userMap(u), "token": token})
}

func projectStruct(p *models.Project) (*structpb.Struct, error) {
	m, err := asMap(p.Clone())
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(map[string]any{"project": m})
}

func viewStruct(v *services.ProjectView) (*structpb.Struct, error) {
	m, err := asMap(v.Project.Clone())
	if err != nil {
		return nil, err
	}
	members := make([]any, 0, len(v.Members))
	for _, mb := range v.Members {
		members = append(members, map[string]any{"id": mb.ID, "name": mb.Name})
	}
	return structpb.NewStruct(map[string]any{
		"project":    m,
		"leaderName": v.LeaderName,
		"members":    members,
	})
}

func dashboardStruct(d *services.Dashboard) (*structpb.Struct, error) {
	led, err := projectList(d.Led)
	if err != nil {
		return nil, err
	}
	memberships, err := projectList(d.Memberships)
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(map[string]any{"led": led, "memberships": memberships})
}

func archivedStruct(projects []models.Project) (*structpb.Struct, error) {
	list, err := projectList(projects)
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(map[string]any{"projects": list})
}

// fields returns req as a plain map; a nil request is empty.
func fields(req *structpb.Struct) map[string]any {
	if req == nil {
		return map[string]any{}
	}
	return req.AsMap()
}
