// Package server initializes and runs the teamboard server: it picks the
// storage backend, wires the services and serves gRPC until a shutdown
// signal arrives.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/teamboard/internal/logging"
	"github.com/dmitrijs2005/teamboard/internal/server/auth"
	"github.com/dmitrijs2005/teamboard/internal/server/config"
	"github.com/dmitrijs2005/teamboard/internal/server/password"
	"github.com/dmitrijs2005/teamboard/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/teamboard/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/teamboard/internal/server/grpc"
)

const sessionPurgeInterval = 10 * time.Minute

type App struct {
	config         *config.Config
	logger         logging.Logger
	manager        *repomanager.DocumentManager
	resolver       *auth.Resolver
	userService    *services.UserService
	projectService *services.ProjectService
}

// NewApp builds the repositories and services described by c. Log lines go
// to w.
func NewApp(ctx context.Context, c *config.Config, w io.Writer) (*App, error) {
	logger := logging.NewJSONLogger(w, c.LogLevel)

	hasher, err := password.New(c.PasswordAlgorithm, c.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("password hasher: %w", err)
	}

	m, err := repomanager.New(ctx, c, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	r := auth.NewResolver(m.Sessions(), m.Users(), c.SecretKey, c.SessionValidityDuration, logger)

	return &App{
		config:         c,
		logger:         logger,
		manager:        m,
		resolver:       r,
		userService:    services.NewUserService(m.Users(), r, hasher, c.Locale, logger),
		projectService: services.NewProjectService(m.Projects(), m.Users(), logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a shutdown signal arrives, then
// releases storage.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "backend", app.config.StorageBackend)

	app.initSignalHandler(cancelFunc)

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.projectService, app.resolver)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Run(ctx)
	})
	g.Go(func() error {
		return app.manager.SessionJanitor().RunJanitor(ctx, sessionPurgeInterval)
	})

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, "server stopped with error", "error", err)
	}

	if cerr := app.manager.Close(); cerr != nil {
		app.logger.Error(ctx, "storage close error", "error", cerr)
	}

	app.logger.Info(ctx, "App stopped")
	return err
}
