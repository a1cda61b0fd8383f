package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/teamboard/internal/client/models"
	"github.com/dmitrijs2005/teamboard/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const serviceName = "teamboard.v1.TeamBoard"

func method(name string) string {
	return "/" + serviceName + "/" + name
}

type GRPCClient struct {
	endpointURL string
	conn        grpc.ClientConnInterface
	closer      func() error

	mu    sync.RWMutex
	token string
}

func withSessionToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.SessionTokenHeaderName)
	if token != "" {
		md.Set(common.SessionTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) sessionTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withSessionToken(ctx, s.Token()), method, req, reply, cc, opts...)
}

func NewTeamBoardClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	conn, err := grpc.NewClient(endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.sessionTokenInterceptor),
	)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.closer = conn.Close
	return c, nil
}

func (s *GRPCClient) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

func (s *GRPCClient) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *GRPCClient) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrForbidden, st.Message())
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

// call sends req to the named method and decodes the Struct response into
// out (skipped when out is nil).
func (s *GRPCClient) call(ctx context.Context, name string, req map[string]any, out any) error {
	in, err := structpb.NewStruct(req)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	resp := new(structpb.Struct)
	if err := s.conn.Invoke(ctx, method(name), in, resp); err != nil {
		return s.mapError(err)
	}
	if out == nil {
		return nil
	}
	return decode(resp, out)
}

// callEmpty is call for methods answering google.protobuf.Empty.
func (s *GRPCClient) callEmpty(ctx context.Context, name string, req map[string]any) error {
	in, err := structpb.NewStruct(req)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	if err := s.conn.Invoke(ctx, method(name), in, new(emptypb.Empty)); err != nil {
		return s.mapError(err)
	}
	return nil
}

func decode(m proto.Message, out any) error {
	b, err := protojson.Marshal(m)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func projectFields(in models.ProjectInput) map[string]any {
	return map[string]any{
		"title":       in.Title,
		"description": in.Description,
		"price":       in.Price,
		"startDate":   in.StartDate,
		"endDate":     in.EndDate,
		"teamMembers": in.TeamMembers,
	}
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := s.call(ctx, "Ping", nil, &resp); err != nil {
		return err
	}
	if resp.Status != "OK" {
		return fmt.Errorf("unexpected ping status %q", resp.Status)
	}
	return nil
}

// Register creates the account and keeps the returned session token.
func (s *GRPCClient) Register(ctx context.Context, name, email string, password, confirm []byte) (*models.Session, error) {
	var out models.Session
	err := s.call(ctx, "Register", map[string]any{
		"name":            name,
		"email":           email,
		"password":        string(password),
		"confirmPassword": string(confirm),
	}, &out)
	if err != nil {
		return nil, err
	}
	s.SetToken(out.Token)
	return &out, nil
}

// Login authenticates and keeps the returned session token.
func (s *GRPCClient) Login(ctx context.Context, email string, password []byte) (*models.Session, error) {
	var out models.Session
	err := s.call(ctx, "Login", map[string]any{"email": email, "password": string(password)}, &out)
	if err != nil {
		return nil, err
	}
	s.SetToken(out.Token)
	return &out, nil
}

// Logout revokes the session on the server and forgets the token.
func (s *GRPCClient) Logout(ctx context.Context) error {
	if err := s.callEmpty(ctx, "Logout", nil); err != nil {
		return err
	}
	s.SetToken("")
	return nil
}

func (s *GRPCClient) WhoAmI(ctx context.Context) (*models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := s.call(ctx, "WhoAmI", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// ListUsers returns every account, for picking team member ids.
func (s *GRPCClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var out struct {
		Users []models.User `json:"users"`
	}
	if err := s.call(ctx, "ListUsers", nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (s *GRPCClient) CreateProject(ctx context.Context, in models.ProjectInput) (*models.Project, error) {
	var out struct {
		Project models.Project `json:"project"`
	}
	if err := s.call(ctx, "CreateProject", projectFields(in), &out); err != nil {
		return nil, err
	}
	return &out.Project, nil
}

func (s *GRPCClient) GetProject(ctx context.Context, id string) (*models.ProjectDetails, error) {
	var out models.ProjectDetails
	if err := s.call(ctx, "GetProject", map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *GRPCClient) UpdateProject(ctx context.Context, id string, in models.ProjectInput) (*models.Project, error) {
	req := projectFields(in)
	req["id"] = id

	var out struct {
		Project models.Project `json:"project"`
	}
	if err := s.call(ctx, "UpdateProject", req, &out); err != nil {
		return nil, err
	}
	return &out.Project, nil
}

func (s *GRPCClient) UpdateWork(ctx context.Context, id, completedWork string) (*models.Project, error) {
	var out struct {
		Project models.Project `json:"project"`
	}
	if err := s.call(ctx, "UpdateWork", map[string]any{"id": id, "completedWork": completedWork}, &out); err != nil {
		return nil, err
	}
	return &out.Project, nil
}

func (s *GRPCClient) ToggleArchive(ctx context.Context, id string) (*models.Project, error) {
	var out struct {
		Project models.Project `json:"project"`
	}
	if err := s.call(ctx, "ToggleArchive", map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	return &out.Project, nil
}

func (s *GRPCClient) DeleteProject(ctx context.Context, id string) error {
	return s.callEmpty(ctx, "DeleteProject", map[string]any{"id": id})
}

func (s *GRPCClient) ListProjects(ctx context.Context) (*models.Dashboard, error) {
	var out models.Dashboard
	if err := s.call(ctx, "ListProjects", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *GRPCClient) ListArchived(ctx context.Context) ([]models.Project, error) {
	var out struct {
		Projects []models.Project `json:"projects"`
	}
	if err := s.call(ctx, "ListArchived", nil, &out); err != nil {
		return nil, err
	}
	return out.Projects, nil
}
