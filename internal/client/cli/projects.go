package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/teamboard/internal/client/models"
)

// getMultiline is a test seam for GetMultiline.
var getMultiline = GetMultiline

func (a *App) list(ctx context.Context, _ []string) error {
	rctx, cancel := a.rpc(ctx)
	defer cancel()

	d, err := a.client.ListProjects(rctx)
	if err != nil {
		return err
	}

	renderSection(a.out, "Projects you lead")
	renderProjects(a.out, d.Led)
	renderSection(a.out, "Projects you work on")
	renderProjects(a.out, d.Memberships)
	return nil
}

func (a *App) archived(ctx context.Context, _ []string) error {
	rctx, cancel := a.rpc(ctx)
	defer cancel()

	projects, err := a.client.ListArchived(rctx)
	if err != nil {
		return err
	}

	renderSection(a.out, "Archived projects")
	renderProjects(a.out, projects)
	return nil
}

func (a *App) show(ctx context.Context, args []string) error {
	rctx, cancel := a.rpc(ctx)
	defer cancel()

	d, err := a.client.GetProject(rctx, args[0])
	if err != nil {
		return err
	}

	renderDetails(a.out, d)
	return nil
}

// readForm prompts for every project field, offering cur as the default.
func (a *App) readForm(cur models.ProjectInput) (models.ProjectInput, error) {
	var (
		in  models.ProjectInput
		err error
	)

	if in.Title, err = GetDefaultText(a.reader, "Title", cur.Title, a.out); err != nil {
		return in, err
	}
	if in.Description, err = getMultiline(a.reader, "Description (empty keeps the current one)", a.out); err != nil {
		return in, err
	}
	if in.Description == "" {
		in.Description = cur.Description
	}
	if in.Price, err = GetDefaultText(a.reader, "Price", cur.Price, a.out); err != nil {
		return in, err
	}
	if in.StartDate, err = GetDefaultText(a.reader, "Start date (YYYY-MM-DD)", cur.StartDate, a.out); err != nil {
		return in, err
	}
	if in.EndDate, err = GetDefaultText(a.reader, "End date (YYYY-MM-DD)", cur.EndDate, a.out); err != nil {
		return in, err
	}
	if in.TeamMembers, err = GetDefaultText(a.reader, "Team member ids, comma separated (see 'users')", cur.TeamMembers, a.out); err != nil {
		return in, err
	}
	return in, nil
}

func (a *App) create(ctx context.Context, _ []string) error {
	in, err := a.readForm(models.ProjectInput{})
	if err != nil {
		return err
	}

	rctx, cancel := a.rpc(ctx)
	defer cancel()

	p, err := a.client.CreateProject(rctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created project %s\n", p.ID)
	return nil
}

func inputOf(p models.Project) models.ProjectInput {
	return models.ProjectInput{
		Title:       p.Title,
		Description: p.Description,
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		TeamMembers: strings.Join(p.TeamMembers, ","),
	}
}

func (a *App) edit(ctx context.Context, args []string) error {
	rctx, cancel := a.rpc(ctx)
	d, err := a.client.GetProject(rctx, args[0])
	cancel()
	if err != nil {
		return err
	}

	in, err := a.readForm(inputOf(d.Project))
	if err != nil {
		return err
	}

	rctx, cancel = a.rpc(ctx)
	defer cancel()

	if _, err := a.client.UpdateProject(rctx, args[0], in); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Project updated")
	return nil
}

func (a *App) work(ctx context.Context, args []string) error {
	rctx, cancel := a.rpc(ctx)
	d, err := a.client.GetProject(rctx, args[0])
	cancel()
	if err != nil {
		return err
	}

	if d.Project.CompletedWork != "" {
		renderSection(a.out, "Completed work so far")
		fmt.Fprintln(a.out, d.Project.CompletedWork)
	}

	text, err := getMultiline(a.reader, "Completed work", a.out)
	if err != nil {
		return err
	}

	rctx, cancel = a.rpc(ctx)
	defer cancel()

	if _, err := a.client.UpdateWork(rctx, args[0], text); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Completed work saved")
	return nil
}

func (a *App) archive(ctx context.Context, args []string) error {
	rctx, cancel := a.rpc(ctx)
	defer cancel()

	p, err := a.client.ToggleArchive(rctx, args[0])
	if err != nil {
		return err
	}
	if p.Archived {
		fmt.Fprintf(a.out, "Project %s archived\n", p.ID)
	} else {
		fmt.Fprintf(a.out, "Project %s restored\n", p.ID)
	}
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete project %s? [y/N]", args[0]), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	rctx, cancel := a.rpc(ctx)
	defer cancel()

	if err := a.client.DeleteProject(rctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Project deleted")
	return nil
}
