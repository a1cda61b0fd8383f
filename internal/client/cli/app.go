package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/teamboard/internal/client/client"
	"github.com/dmitrijs2005/teamboard/internal/client/config"
	"github.com/dmitrijs2005/teamboard/internal/logging"
)

var errNotLoggedIn = errors.New("not logged in: run 'login' or 'register' first")

type App struct {
	client  client.Client
	store   *client.TokenStore
	reader  *bufio.Reader
	out     io.Writer
	timeout time.Duration
	log     logging.Logger

	loggedIn bool
	userName string
}

// NewApp connects to the configured server and restores a saved session.
func NewApp(cfg *config.Config, l logging.Logger) (*App, error) {
	c, err := client.NewTeamBoardClient(cfg.ServerEndpointAddr)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.ServerEndpointAddr, err)
	}

	store, err := client.NewTokenStore(cfg.SessionDir)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	return newApp(c, store, os.Stdin, os.Stdout, cfg.RequestTimeout, l)
}

func newApp(c client.Client, store *client.TokenStore, in io.Reader, out io.Writer, timeout time.Duration, l logging.Logger) (*App, error) {
	a := &App{
		client:  c,
		store:   store,
		reader:  bufio.NewReader(in),
		out:     out,
		timeout: timeout,
		log:     l.With("module", "cli"),
	}

	token, err := store.Load()
	if err != nil {
		return nil, err
	}
	if token != "" {
		c.SetToken(token)
		a.loggedIn = true
	}
	return a, nil
}

// Run executes args as a single command, or starts the REPL when args is
// empty.
func (a *App) Run(ctx context.Context, args []string) error {
	defer func() {
		if err := a.client.Close(); err != nil {
			a.log.Warn(ctx, "closing connection", "error", err)
		}
	}()

	if len(args) > 0 {
		if args[0] == "help" {
			printHelp(a.out, true)
			return nil
		}
		return a.execute(ctx, args[0], args[1:])
	}

	fmt.Fprintln(a.out, "Welcome to teamboard (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader, a.out)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) status() string {
	switch {
	case !a.loggedIn:
		return ""
	case a.userName != "":
		return " (" + a.userName + ")"
	default:
		return " (logged in)"
	}
}

// rpc bounds a single server call by the configured timeout.
func (a *App) rpc(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}

func (a *App) execute(ctx context.Context, name string, args []string) error {
	c, ok := commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q (type 'help')", name)
	}
	if len(args) < c.args {
		return fmt.Errorf("usage: %s", c.usage)
	}
	if c.auth && !a.loggedIn {
		return errNotLoggedIn
	}

	err := c.run(a, ctx, args)
	if c.auth && errors.Is(err, client.ErrUnauthorized) {
		a.forget(ctx)
		return fmt.Errorf("%w: session expired, please login again", err)
	}
	return err
}

// remember stores a freshly issued session.
func (a *App) remember(ctx context.Context, token, userName string) {
	a.loggedIn = true
	a.userName = userName
	if err := a.store.Save(token); err != nil {
		a.log.Warn(ctx, "session not saved", "path", a.store.Path(), "error", err)
	}
}

// forget drops the local session.
func (a *App) forget(ctx context.Context) {
	a.loggedIn = false
	a.userName = ""
	a.client.SetToken("")
	if err := a.store.Clear(); err != nil {
		a.log.Warn(ctx, "session not cleared", "path", a.store.Path(), "error", err)
	}
}
