// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/internal/app"
)

func (c *CLI) newTourCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tour",
		Short: "Find the cheapest order visiting every station once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, _ := cmd.Flags().GetString("start")
			yes, _ := cmd.Flags().GetBool("yes")
			walk, _ := cmd.Flags().GetBool("walk")
			return c.app.Tour(cmd.Context(), options(cmd), app.TourOptions{
				Start: start,
				Yes:   yes,
				Walk:  walk,
			})
		},
	}
	cmd.Flags().StringP("start", "s", "", "Station the tour starts from (default: any)")
	cmd.Flags().BoolP("yes", "y", false, "Run large searches without asking")
	cmd.Flags().BoolP("walk", "w", false, "Also print every station passed between visits")
	return cmd
}
