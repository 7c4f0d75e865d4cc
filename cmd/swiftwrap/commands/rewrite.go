package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newRewriteCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "rewrite <output-file-map>",
		Short: "Rewrite an output file map and print the relocation plan",
		Long: "Rewrite loads the given output file map, redirects the configured " +
			"artifact kinds into the incremental storage area, and prints one " +
			"'original -> relocated' line per redirected artifact, sorted by " +
			"original path.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputs, err := c.app.Rewrite(args[0], outPath)
			if err != nil {
				return err
			}
			for original, relocated := range outputs.All() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", original, relocated)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the rewritten map to this path")
	return cmd
}
