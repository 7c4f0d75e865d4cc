package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"swiftwrap/internal/core/domain"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile -- [compiler arguments...]",
		Short: "Run one compilation with incremental output redirection",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}

			resp := c.app.Compile(cmd.Context(), args)
			if resp.Output != "" {
				out := resp.Output
				if !strings.HasSuffix(out, "\n") {
					out += "\n"
				}
				// Diagnostics go to stderr; stdout stays clean for callers
				// that capture it.
				_, _ = fmt.Fprint(cmd.ErrOrStderr(), out)
			}

			c.exitCode = int(resp.ExitCode)
			if resp.ExitCode != 0 {
				return domain.ErrCompileFailed
			}
			return nil
		},
	}
}
