// Package input turns a typed stop list such as "(1,1),(2,2),(3,3)" into
// coordinates and checks them against a floor plan.
package input

import (
	"errors"
	"fmt"
	"nurse-route-service/internal/domain"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrNegativeOrDecimal = errors.New("negative or decimal input found, please enter positive whole numbers only")
	ErrLetters           = errors.New("letter found, please enter numbers only")
	ErrTooFewStops       = errors.New("please enter at least one starting location and one destination")
	ErrMalformedStop     = errors.New("stop must look like (row,col)")

	ErrOutOfBounds = errors.New("please enter a location in the floor plan")
	ErrWallStop    = errors.New("please enter a location that is not a wall")
	ErrOutsideStop = errors.New("please enter a location inside the hospital")
)

var (
	negativeOrDecimalRe = regexp.MustCompile(`(?:[-.][0-9]+)+`)
	lettersRe           = regexp.MustCompile(`[a-zA-Z]`)
	stopRe              = regexp.MustCompile(`\(([^)]+)\)`)
)

// StopError ties a validation failure to the stop that caused it.
type StopError struct {
	Stop domain.Coord
	Err  error
}

func (e *StopError) Error() string { return fmt.Sprintf("stop %v: %v", e.Stop, e.Err) }

func (e *StopError) Unwrap() error { return e.Err }

// ParseStops extracts every "(row,col)" group from s. Whitespace is ignored.
// The first stop is the start position, so at least two are required.
func ParseStops(s string) ([]domain.Coord, error) {
	s = strings.Join(strings.Fields(s), "")

	if m := negativeOrDecimalRe.FindString(s); m != "" {
		return nil, fmt.Errorf("parse stops: %q: %w", m, ErrNegativeOrDecimal)
	}
	if m := lettersRe.FindString(s); m != "" {
		return nil, fmt.Errorf("parse stops: %q: %w", m, ErrLetters)
	}

	groups := stopRe.FindAllStringSubmatch(s, -1)
	if len(groups) < 2 {
		return nil, fmt.Errorf("parse stops: found %d: %w", len(groups), ErrTooFewStops)
	}

	stops := make([]domain.Coord, 0, len(groups))
	for _, g := range groups {
		parts := strings.Split(g[1], ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("parse stops: %q: %w", g[0], ErrMalformedStop)
		}
		row, err1 := strconv.Atoi(parts[0])
		col, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("parse stops: %q: %w", g[0], ErrMalformedStop)
		}
		stops = append(stops, domain.Coord{Row: row, Col: col})
	}

	return stops, nil
}

// ValidateStops reports the first stop that lies outside the grid, on a wall,
// or outside the hospital. The error is a *StopError.
func ValidateStops(g *domain.Grid, stops []domain.Coord) error {
	for _, c := range stops {
		switch {
		case !g.InBounds(c):
			return &StopError{Stop: c, Err: ErrOutOfBounds}
		case g.ZoneCodeOf(c) == domain.ZoneWall:
			return &StopError{Stop: c, Err: ErrWallStop}
		case g.ZoneCodeOf(c) == domain.ZoneOutside:
			return &StopError{Stop: c, Err: ErrOutsideStop}
		}
	}
	return nil
}

// FormatStops is the inverse of ParseStops.
func FormatStops(stops []domain.Coord) string {
	parts := make([]string, 0, len(stops))
	for _, c := range stops {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, ",")
}
