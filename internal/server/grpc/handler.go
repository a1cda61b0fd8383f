package grpc

import (
	"context"

	"github.com/dmitrijs2005/teamboard/internal/server/auth"
	"github.com/dmitrijs2005/teamboard/internal/server/models"
	"github.com/dmitrijs2005/teamboard/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

func (s *GRPCServer) encodeFailed(ctx context.Context, err error) error {
	s.logger.Error(ctx, "response encoding failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}

func (s *GRPCServer) Ping(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{"status": "OK"})
}

func (s *GRPCServer) Register(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := fields(req)

	s.logger.Info(ctx, "Registration request")

	user, token, err := s.users.Register(ctx, services.RegisterInput{
		Name:            models.Text(f["name"]),
		Email:           models.Text(f["email"]),
		Password:        models.Text(f["password"]),
		ConfirmPassword: models.Text(f["confirmPassword"]),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	out, err := sessionStruct(user, token)
	if err != nil {
		return nil, s.encodeFailed(ctx, err)
	}
	return out, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := fields(req)

	user, token, err := s.users.Login(ctx, models.Text(f["email"]), models.Text(f["password"]))
	if err != nil {
		return nil, toStatus(err)
	}

	out, err := sessionStruct(user, token)
	if err != nil {
		return nil, s.encodeFailed(ctx, err)
	}
	return out, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	if err := s.users.Logout(ctx, sessionToken(ctx)); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) WhoAmI(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	u, err := s.users.Me(ctx, auth.FromContext(ctx))
	if err != nil {
		return nil, toStatus(err)
	}

	out, err := structpb.NewStruct(map[string]any{"user": userMap(u)})
	if err != nil {
		return nil, s.encodeFailed(ctx, err)
	}
	return out, nil
}

func (s *GRPCServer) ListUsers(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	list, err := s.users.Directory(ctx, auth.FromContext(ctx))
	if err != nil {
		return nil, toStatus(err)
	}

	out, err := usersStruct(list)
	if err != nil {
		return nil, s.encodeFailed(ctx, err)
	}
	return out, nil
}

func (s *GRPCServer) CreateProject(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	p, err := s.projects.Create(ctx, auth.FromContext(ctx), models.ParseProjectForm(fields(req)))
	if err != nil {
		return nil, toStatus(err)
	}
	return s.project(ctx, p)
}

func (s *GRPCServer) GetProject(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	v, err := s.projects.Get(ctx, auth.FromContext(ctx), models.Text(fields(req)["id"]))
	if err != nil {
		return nil, toStatus(err)
	}

	out, err := viewStruct(v)
	if err != nil {
		return nil, s.encodeFailed(ctx, err)
	}
	return out, nil
}

func (s *GRPCServer) UpdateProject(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := fields(req)
	p, err := s.projects.Update(ctx, auth.FromContext(ctx), models.Text(f["id"]), models.ParseProjectForm(f))
	if err != nil {
		return nil, toStatus(err)
	}
	return s.project(ctx, p)
}

func (s *GRPCServer) UpdateWork(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := fields(req)
	p, err := s.projects.UpdateWork(ctx, auth.FromContext(ctx), models.Text(f["id"]), models.Text(f["completedWork"]))
	if err != nil {
		return nil, toStatus(err)
	}
	return s.project(ctx, p)
}

func (s *GRPCServer) ToggleArchive(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	p, err := s.projects.ToggleArchive(ctx, auth.FromContext(ctx), models.Text(fields(req)["id"]))
	if err != nil {
		return nil, toStatus(err)
	}
	return s.project(ctx, p)
}

func (s *GRPCServer) DeleteProject(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	if err := s.projects.Delete(ctx, auth.FromContext(ctx), models.Text(fields(req)["id"])); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) ListProjects(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	d, err := s.projects.List(ctx, auth.FromContext(ctx))
	if err != nil {
		return nil, toStatus(err)
	}

	out, err := dashboardStruct(d)
	if err != nil {
		return nil, s.encodeFailed(ctx, err)
	}
	return out, nil
}

func (s *GRPCServer) ListArchived(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	list, err := s.projects.ListArchived(ctx, auth.FromContext(ctx))
	if err != nil {
		return nil, toStatus(err)
	}

	out, err := archivedStruct(list)
	if err != nil {
		return nil, s.encodeFailed(ctx, err)
	}
	return out, nil
}

func (s *GRPCServer) project(ctx context.Context, p *models.Project) (*structpb.Struct, error) {
	out, err := projectStruct(p)
	if err != nil {
		return nil, s.encodeFailed(ctx, err)
	}
	return out, nil
}
