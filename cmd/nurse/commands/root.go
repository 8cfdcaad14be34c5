package commands

import (
	"context"
	"fmt"
	"log"
	"nurse-route-service/internal/adapters/floorplan"
	"nurse-route-service/internal/adapters/repositories"
	"nurse-route-service/internal/config"
	"nurse-route-service/internal/domain"
	"nurse-route-service/internal/platform/db"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the nurse command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nurse",
		Short: "Plan a nurse's walk through the hospital",
		Long: `Plan a nurse's route through a hospital floor plan.

Destinations are visited in ward priority order (ICU, Oncology, Emergency
and Burn first) and each leg is found with A* over the floor plan.

Examples:
  nurse route "(1,6),(20,37),(1,10),(36,7)"
  nurse route --animate
  nurse floorplan`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
		},
	}

	cmd.PersistentFlags().String("floor-plan", "", "Floor plan name (default $FLOOR_PLAN or hospital)")

	cmd.AddCommand(NewRouteCmd())
	cmd.AddCommand(NewFloorPlanCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadFloorPlan resolves the --floor-plan flag against Postgres when
// DATABASE_URL is set, falling back to the built-in plans.
func loadFloorPlan(ctx context.Context, cmd *cobra.Command, cfg *config.Config) (string, *domain.Grid, error) {
	name, _ := cmd.Flags().GetString("floor-plan")
	if name == "" {
		name = cfg.DefaultFloorPlan
	}

	builtin := floorplan.NewStaticFloorPlanRepository()
	if cfg.DatabaseURL == "" {
		g, err := builtin.LoadFloorPlan(ctx, name)
		return name, g, err
	}

	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return "", nil, fmt.Errorf("loading floor plan: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Printf("close db failed: %v", err)
		}
	}()

	repo := floorplan.NewLayeredFloorPlanRepository(repositories.NewPostgresFloorPlanRepository(conn), builtin)
	g, err := repo.LoadFloorPlan(ctx, name)
	return name, g, err
}
