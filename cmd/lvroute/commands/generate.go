// SPDX-License-Identifier: MIT

package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/graphfile"
	"github.com/katalvlaran/lvroute/internal/app"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	var opts app.GenerateOptions
	var format string

	cmd := &cobra.Command{
		Use:   "generate <kind>",
		Short: "Print a synthetic station graph",
		Long:  "Print a synthetic station graph. Kinds: " + strings.Join(builder.Kinds(), ", ") + ".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Kind = args[0]
			return c.app.Generate(cmd.Context(), opts, graphfile.Format(format))
		},
	}
	cmd.Flags().IntVarP(&opts.Nodes, "nodes", "n", 5, "Node count (rows for grid)")
	cmd.Flags().IntVar(&opts.Cols, "cols", 5, "Grid columns")
	cmd.Flags().Float64VarP(&opts.P, "prob", "p", 0.3, "Edge probability for random")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 1, "Random seed")
	cmd.Flags().Int64Var(&opts.MinCost, "min-cost", 1, "Lowest edge cost when --max-cost is set")
	cmd.Flags().Int64Var(&opts.MaxCost, "max-cost", 0, "Highest edge cost; 0 emits neighbor lists")
	cmd.Flags().BoolVar(&opts.TwoWay, "two-way", false, "Mirror every edge")
	cmd.Flags().StringVarP(&format, "format", "f", string(graphfile.YAML), "Output format: json or yaml")

	return cmd
}
