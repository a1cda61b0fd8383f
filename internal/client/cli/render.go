package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/teamboard/internal/client/models"
)

var (
	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

func renderSection(w io.Writer, title string) {
	fmt.Fprintln(w, sectionStyle.Render(title))
}

func price(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}

func renderProjects(w io.Writer, projects []models.Project) {
	if len(projects) == 0 {
		fmt.Fprintln(w, dimStyle.Render("  (none)"))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tTITLE\tPRICE\tSTART\tEND")
	for _, p := range projects {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\n", p.ID, p.Title, price(p.Price), p.StartDate, p.EndDate)
	}
	_ = tw.Flush()
}

func renderDetails(w io.Writer, d *models.ProjectDetails) {
	p := d.Project

	field := func(label, value string) {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-14s", label+":")), value)
	}

	renderSection(w, p.Title)
	field("ID", p.ID)
	field("Leader", fmt.Sprintf("%s (%s)", d.LeaderName, p.LeaderID))
	field("Price", price(p.Price))
	field("Start", p.StartDate)
	field("End", p.EndDate)
	if p.Archived {
		field("Status", "archived")
	} else {
		field("Status", "active")
	}

	names := make([]string, 0, len(d.Members))
	for _, m := range d.Members {
		names = append(names, fmt.Sprintf("%s (%s)", m.Name, m.ID))
	}
	field("Team", strings.Join(names, ", "))

	if p.Description != "" {
		renderSection(w, "Description")
		fmt.Fprintln(w, p.Description)
	}
	if p.CompletedWork != "" {
		renderSection(w, "Completed work")
		fmt.Fprintln(w, p.CompletedWork)
	}
}

func renderUser(w io.Writer, u *models.User) {
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-14s", "Name:")), u.Name)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-14s", "Email:")), u.Email)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-14s", "ID:")), u.ID)
}

func renderUsers(w io.Writer, users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(w, dimStyle.Render("  (none)"))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tNAME\tEMAIL")
	for _, u := range users {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", u.ID, u.Name, u.Email)
	}
	_ = tw.Flush()
}
