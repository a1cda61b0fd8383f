package cli

import "context"

type command struct {
	usage string
	help  string
	args  int
	auth  bool
	run   func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"register": {usage: "register", help: "create an account", run: (*App).register},
	"login":    {usage: "login", help: "start a session", run: (*App).login},
	"logout":   {usage: "logout", help: "end the session", auth: true, run: (*App).logout},
	"whoami":   {usage: "whoami", help: "your name, email and id", auth: true, run: (*App).whoami},
	"users":    {usage: "users", help: "everyone's id, for team member lists", auth: true, run: (*App).users},
	"list":     {usage: "list", help: "projects you lead or work on", auth: true, run: (*App).list},
	"archived": {usage: "archived", help: "archived projects you lead or work on", auth: true, run: (*App).archived},
	"show":     {usage: "show <id>", help: "project details", args: 1, auth: true, run: (*App).show},
	"create":   {usage: "create", help: "new project", auth: true, run: (*App).create},
	"edit":     {usage: "edit <id>", help: "edit a project you lead", args: 1, auth: true, run: (*App).edit},
	"work":     {usage: "work <id>", help: "record completed work", args: 1, auth: true, run: (*App).work},
	"archive":  {usage: "archive <id>", help: "archive or restore a project", args: 1, auth: true, run: (*App).archive},
	"delete":   {usage: "delete <id>", help: "delete a project", args: 1, auth: true, run: (*App).delete},
}

var commandOrder = []string{
	"register", "login", "whoami", "users", "list", "archived", "show",
	"create", "edit", "work", "archive", "delete", "logout",
}
