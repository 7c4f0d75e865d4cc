// Package commands implements the CLI commands for the swiftwrap compiler
// wrapper.
package commands

import (
	"context"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"swiftwrap/internal/app"
)

// CLI represents the command line interface for swiftwrap.
type CLI struct {
	app      *app.App
	rootCmd  *cobra.Command
	exitCode int
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "swiftwrap",
		Short:         "A Swift compiler wrapper that keeps incremental state alive across builds",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCompileCmd())
	rootCmd.AddCommand(c.newWorkerCmd())
	rootCmd.AddCommand(c.newRewriteCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// ExitCode returns the exit code of the last compile run. Zero unless a
// compilation was attempted and failed.
func (c *CLI) ExitCode() int {
	return c.exitCode
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects the command tree's stdout and stderr. Used for
// testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// NormalizeArgs maps a raw build-system invocation onto the CLI's
// subcommands. Build systems invoke the wrapper the way they would invoke
// the compiler, so an argument vector that does not start with a known
// subcommand is treated as a one-shot compile, and `--persistent_worker`
// anywhere selects worker mode with the remaining arguments prepended to
// every request.
func NormalizeArgs(args []string) []string {
	if i := slices.Index(args, "--persistent_worker"); i >= 0 {
		rest := slices.Concat(args[:i], args[i+1:])
		if len(rest) == 0 {
			return []string{"worker"}
		}
		return slices.Concat([]string{"worker", "--"}, rest)
	}

	if len(args) == 0 {
		return args
	}

	switch args[0] {
	case "compile", "worker", "rewrite", "version", "help", "completion":
		return args
	}
	if strings.HasPrefix(args[0], "-h") || strings.HasPrefix(args[0], "--help") {
		return args
	}

	return slices.Concat([]string{"compile", "--"}, args)
}
