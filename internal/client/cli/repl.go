package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL drives. *App satisfies it.
type execIface interface {
	isLoggedIn() bool
	execute(ctx context.Context, name string, args []string) error
}

// runREPL reads commands from reader until EOF, "exit" or "quit", or ctx
// cancellation. Command errors are reported to out and the loop goes on.
//
// Commands prompt for their input on the same reader, so the REPL must not
// buffer ahead of them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(out, "teamboard%s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printHelp(out, a.isLoggedIn())

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			if err := a.execute(ctx, cmd, args); err != nil {
				fmt.Fprintln(out, "Error:", err)
			}
		}
	}
}

func printHelp(out io.Writer, loggedIn bool) {
	if !loggedIn {
		fmt.Fprintln(out, "Available commands: register, login, exit")
		return
	}
	fmt.Fprintln(out, "Available commands:")
	for _, c := range commandOrder {
		if c == "register" || c == "login" {
			continue
		}
		fmt.Fprintf(out, "  %-18s %s\n", commands[c].usage, commands[c].help)
	}
	fmt.Fprintf(out, "  %-18s %s\n", "exit", "leave the program")
}
