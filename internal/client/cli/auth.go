package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/teamboard/internal/common"
)

// getSimpleText and getPassword are test seams for the interactive input
// helpers.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

func (a *App) register(ctx context.Context, _ []string) error {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	rctx, cancel := a.rpc(ctx)
	defer cancel()

	s, err := a.client.Register(rctx, name, email, password, confirm)
	if err != nil {
		return err
	}

	a.remember(ctx, s.Token, s.User.Name)
	fmt.Fprintf(a.out, "Welcome, %s! Your user id is %s\n", s.User.Name, s.User.ID)
	return nil
}

func (a *App) login(ctx context.Context, _ []string) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	rctx, cancel := a.rpc(ctx)
	defer cancel()

	s, err := a.client.Login(rctx, email, password)
	if err != nil {
		return err
	}

	a.remember(ctx, s.Token, s.User.Name)
	fmt.Fprintf(a.out, "Logged in as %s (id %s)\n", s.User.Name, s.User.ID)
	return nil
}

// logout always drops the local session; a failed server call is only
// reported.
func (a *App) logout(ctx context.Context, _ []string) error {
	rctx, cancel := a.rpc(ctx)
	defer cancel()

	err := a.client.Logout(rctx)
	a.forget(ctx)
	if err != nil {
		a.log.Warn(ctx, "server logout failed", "error", err)
	}

	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) whoami(ctx context.Context, _ []string) error {
	rctx, cancel := a.rpc(ctx)
	defer cancel()

	u, err := a.client.WhoAmI(rctx)
	if err != nil {
		return err
	}

	a.userName = u.Name
	renderUser(a.out, u)
	return nil
}

func (a *App) users(ctx context.Context, _ []string) error {
	rctx, cancel := a.rpc(ctx)
	defer cancel()

	list, err := a.client.ListUsers(rctx)
	if err != nil {
		return err
	}

	renderSection(a.out, "Users")
	renderUsers(a.out, list)
	return nil
}
