package commands

import (
	"fmt"
	"nurse-route-service/internal/config"
	"nurse-route-service/internal/render"

	"github.com/spf13/cobra"
)

// NewFloorPlanCmd creates the floorplan command.
func NewFloorPlanCmd() *cobra.Command {
	var noLegend bool

	cmd := &cobra.Command{
		Use:   "floorplan",
		Short: "Print the floor plan",
		Long: `Print the floor plan as text, one character per cell, followed by
a legend of ward symbols.

Examples:
  nurse floorplan
  nurse floorplan --no-legend`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			name, g, err := loadFloorPlan(cmd.Context(), cmd, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%d x %d)\n", name, g.Rows(), g.Cols())
			if err := render.WriteASCII(out, g, nil); err != nil {
				return err
			}
			if noLegend {
				return nil
			}
			fmt.Fprintln(out)
			return render.WriteLegend(out)
		},
	}

	cmd.Flags().BoolVar(&noLegend, "no-legend", false, "Omit the ward legend")

	return cmd
}
