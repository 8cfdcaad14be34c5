package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"nurse-route-service/internal/api/dto"
	"nurse-route-service/internal/config"
	"nurse-route-service/internal/domain"
	"nurse-route-service/internal/input"
	"nurse-route-service/internal/render"
	"nurse-route-service/internal/services"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

const stopsPrompt = "Enter the destinations for the nurse with the first entry being the starting position Ex. (1,1),(2,2),(3,3): "

var errNoStops = errors.New("no valid stop list entered")

type routeOptions struct {
	noSchedule bool
	format     string
	animate    bool
	delay      time.Duration
}

// NewRouteCmd creates the route command.
func NewRouteCmd() *cobra.Command {
	opts := &routeOptions{}

	cmd := &cobra.Command{
		Use:   "route [stops]",
		Short: "Plan a route through a list of stops",
		Long: `Plan a route starting at the first stop and visiting every other stop.

Stops are written as (row,col) groups. Without an argument the command
asks for them and keeps asking until the list is valid.

Examples:
  nurse route "(1,6),(20,37),(1,10),(36,7),(10,10),(11,6)"
  nurse route --no-schedule "(1,6),(11,6)"
  nurse route --format json "(15,6),(12,37)"
  nurse route --animate --delay 50ms`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.noSchedule, "no-schedule", false, "Visit stops in the given order instead of by ward priority")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&opts.animate, "animate", false, "Animate the route in the terminal")
	cmd.Flags().DurationVar(&opts.delay, "delay", 0, "Animation frame delay (default $ANIMATION_DELAY or 100ms)")

	return cmd
}

func runRoute(cmd *cobra.Command, args []string, opts *routeOptions) error {
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("invalid --format %q: want text or json", opts.format)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx := cmd.Context()
	_, g, err := loadFloorPlan(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	var stops []domain.Coord
	if len(args) == 1 {
		stops, err = parseAndValidate(g, args[0])
	} else {
		stops, err = promptStops(cmd.InOrStdin(), cmd.OutOrStdout(), g)
	}
	if err != nil {
		return err
	}

	route, err := services.Plan(ctx, g, services.PlanRequest{Stops: stops, Schedule: !opts.noSchedule}, services.AStar{})
	if err != nil {
		return err
	}

	if opts.animate {
		delay := opts.delay
		if delay <= 0 {
			delay = cfg.AnimationDelay
		}
		if err := animate(ctx, g, route, delay); err != nil {
			return err
		}
	}

	if opts.format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(dto.NewRouteResponse(route))
	}
	return writeRouteText(cmd.OutOrStdout(), g, route)
}

func parseAndValidate(g *domain.Grid, s string) ([]domain.Coord, error) {
	stops, err := input.ParseStops(s)
	if err != nil {
		return nil, err
	}
	if err := input.ValidateStops(g, stops); err != nil {
		return nil, err
	}
	return stops, nil
}

// promptStops re-asks until a line parses and validates, or in runs dry.
func promptStops(in io.Reader, out io.Writer, g *domain.Grid) ([]domain.Coord, error) {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, stopsPrompt)
		if !sc.Scan() {
			fmt.Fprintln(out)
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("reading stops: %w", err)
			}
			return nil, errNoStops
		}

		line := strings.TrimSpace(sc.Text())
		stops, err := parseAndValidate(g, line)
		if err == nil {
			return stops, nil
		}
		fmt.Fprintf(out, "%s <- %v\n", line, err)
	}
}

func writeRouteText(w io.Writer, g *domain.Grid, route *domain.Route) error {
	fmt.Fprintf(w, "Starting position: %v (%s)\n\n", route.Start, g.ZoneCodeOf(route.Start).Name())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tSTOP\tWARD\tTIER\tSTEPS\tRESULT")
	for i, l := range route.Legs {
		result, steps := "reached", fmt.Sprint(l.Cost)
		if !l.Reached {
			result, steps = "unreachable", "-"
		}
		fmt.Fprintf(tw, "%d\t%v\t%s\t%d\t%s\t%s\n",
			i+1, l.To.Coord, l.To.Zone.Name(), services.DefaultTierPolicy.TierOf(l.To.Zone), steps, result)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	if err := render.WriteASCII(w, g, route); err != nil {
		return err
	}
	fmt.Fprintln(w)

	switch route.Status() {
	case domain.StatusComplete:
		fmt.Fprintf(w, "Success: %d steps\n", route.TotalCost())
	case domain.StatusPartial:
		fmt.Fprintf(w, "Success: %d steps\n", route.TotalCost())
		fmt.Fprintf(w, "Failed to reach: %s\n", formatDestinations(route.Failures))
	case domain.StatusFailed:
		fmt.Fprintf(w, "Failure: unable to reach the following locations: %s\n", formatDestinations(route.Failures))
	case domain.StatusNoLegs:
		fmt.Fprintln(w, "No destinations to visit")
	}
	return nil
}

func formatDestinations(ds []domain.Destination) string {
	parts := make([]string, 0, len(ds))
	for _, d := range ds {
		parts = append(parts, d.Coord.String())
	}
	return strings.Join(parts, ", ")
}

func animate(ctx context.Context, g *domain.Grid, route *domain.Route, delay time.Duration) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer s.Fini()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Any key stops the animation early and closes the final frame.
	pressed := make(chan struct{})
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventKey); ok {
				close(pressed)
				return
			}
		}
	}()

	animCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-pressed:
			cancel()
		case <-animCtx.Done():
		}
	}()

	err = render.Animate(animCtx, s, g, route, delay)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if err == nil {
		select {
		case <-pressed:
		case <-ctx.Done():
		}
	}
	return nil
}
