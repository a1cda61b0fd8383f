package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/teamboard/internal/logging"
	"github.com/dmitrijs2005/teamboard/internal/server/auth"
	"github.com/dmitrijs2005/teamboard/internal/server/models"
	"github.com/dmitrijs2005/teamboard/internal/server/services"
	"google.golang.org/grpc"
)

// UserService is the account API the transport needs.
type UserService interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, p auth.Principal) (*models.User, error)
	Directory(ctx context.Context, p auth.Principal) ([]models.User, error)
}

// ProjectService is the project API the transport needs.
type ProjectService interface {
	Create(ctx context.Context, p auth.Principal, form models.ProjectForm) (*models.Project, error)
	Get(ctx context.Context, p auth.Principal, id string) (*services.ProjectView, error)
	Update(ctx context.Context, p auth.Principal, id string, form models.ProjectForm) (*models.Project, error)
	UpdateWork(ctx context.Context, p auth.Principal, id string, completedWork string) (*models.Project, error)
	ToggleArchive(ctx context.Context, p auth.Principal, id string) (*models.Project, error)
	Delete(ctx context.Context, p auth.Principal, id string) error
	List(ctx context.Context, p auth.Principal) (*services.Dashboard, error)
	ListArchived(ctx context.Context, p auth.Principal) ([]models.Project, error)
}

// PrincipalResolver turns a session token into a principal.
type PrincipalResolver interface {
	Resolve(ctx context.Context, token string) auth.Principal
}

type GRPCServer struct {
	address  string
	users    UserService
	projects ProjectService
	resolver PrincipalResolver
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us UserService, ps ProjectService, r PrincipalResolver) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		users:    us,
		projects: ps,
		resolver: r,
	}
}

// NewServer returns a grpc.Server with the TeamBoard service and the
// session interceptor registered.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.sessionInterceptor))
	srv.RegisterService(&ServiceDesc, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis and stops gracefully when ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
