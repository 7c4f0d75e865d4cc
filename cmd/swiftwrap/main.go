// Package main is the entry point for the swiftwrap compiler wrapper.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"swiftwrap/cmd/swiftwrap/commands"
	"swiftwrap/internal/app"
	"swiftwrap/internal/core/domain"
	_ "swiftwrap/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available if initialization failed; write directly
		// to stderr.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components.App)
	cli.SetArgs(commands.NormalizeArgs(args))

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrCompileFailed) {
			// The compiler's own diagnostics and exit code speak for
			// themselves.
			return cli.ExitCode()
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
