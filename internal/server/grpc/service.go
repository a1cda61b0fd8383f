package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "teamboard.v1.TeamBoard"

// Method names.
const (
	MethodPing          = "Ping"
	MethodRegister      = "Register"
	MethodLogin         = "Login"
	MethodLogout        = "Logout"
	MethodWhoAmI        = "WhoAmI"
	MethodListUsers     = "ListUsers"
	MethodCreateProject = "CreateProject"
	MethodGetProject    = "GetProject"
	MethodUpdateProject = "UpdateProject"
	MethodUpdateWork    = "UpdateWork"
	MethodToggleArchive = "ToggleArchive"
	MethodDeleteProject = "DeleteProject"
	MethodListProjects  = "ListProjects"
	MethodListArchived  = "ListArchived"
)

// FullMethod returns "/teamboard.v1.TeamBoard/<name>".
func FullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// TeamBoardServer is the server API. Requests and responses are
// google.protobuf.Struct documents.
type TeamBoardServer interface {
	Ping(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Register(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Login(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Logout(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	WhoAmI(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListUsers(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateProject(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetProject(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateProject(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateWork(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ToggleArchive(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteProject(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	ListProjects(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListArchived(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func unary[R any](name string, call func(TeamBoardServer, context.Context, *structpb.Struct) (R, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			s := srv.(TeamBoardServer)
			if interceptor == nil {
				return call(s, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(name)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(s, ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes TeamBoard for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TeamBoardServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodPing, TeamBoardServer.Ping),
		unary(MethodRegister, TeamBoardServer.Register),
		unary(MethodLogin, TeamBoardServer.Login),
		unary(MethodLogout, TeamBoardServer.Logout),
		unary(MethodWhoAmI, TeamBoardServer.WhoAmI),
		unary(MethodListUsers, TeamBoardServer.ListUsers),
		unary(MethodCreateProject, TeamBoardServer.CreateProject),
		unary(MethodGetProject, TeamBoardServer.GetProject),
		unary(MethodUpdateProject, TeamBoardServer.UpdateProject),
		unary(MethodUpdateWork, TeamBoardServer.UpdateWork),
		unary(MethodToggleArchive, TeamBoardServer.ToggleArchive),
		unary(MethodDeleteProject, TeamBoardServer.DeleteProject),
		unary(MethodListProjects, TeamBoardServer.ListProjects),
		unary(MethodListArchived, TeamBoardServer.ListArchived),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "teamboard/v1/teamboard.proto",
}
