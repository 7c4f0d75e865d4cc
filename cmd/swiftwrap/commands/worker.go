package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

func (c *CLI) newWorkerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "worker -- [universal compiler arguments...]",
		Short: "Run as a persistent worker speaking the JSON worker protocol",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.app.Worker(cmd.Context(), args)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
