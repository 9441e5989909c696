package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/reeldesigner/pkg/io"
)

func (c *CLI) defaultsCommand() *cobra.Command {
	var (
		format     string
		fullConfig bool
		asTable    bool
	)

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the default design or the effective configuration",
		Long: `Defaults prints the default design record in a form that can be saved as a
design file and edited. With --config-file it prints the whole effective
configuration as TOML instead.`,
		Example: `  reeldesigner defaults > reel.toml
  reeldesigner defaults --format yaml
  reeldesigner defaults --config-file > ~/.config/reeldesigner/config.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fullConfig {
				return c.Config.Write(c.out)
			}
			if asTable {
				_, err := fmt.Fprintln(c.out, dimensionsTable(c.Config.Defaults))
				return err
			}
			return io.WriteDesign(c.out, c.Config.Defaults, io.Format(format))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(io.FormatTOML), "design format: toml, yaml, json")
	cmd.Flags().BoolVar(&fullConfig, "config-file", false, "print the effective configuration")
	cmd.Flags().BoolVar(&asTable, "table", false, "print the defaults and accepted ranges as a table")
	return cmd
}
