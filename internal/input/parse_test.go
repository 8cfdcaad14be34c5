package input

import (
	"errors"
	"nurse-route-service/internal/domain"
	"slices"
	"testing"
)

func TestParseStops(t *testing.T) {
	got, err := ParseStops(" (15, 6),(26,5) , (12,37)\t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []domain.Coord{{Row: 15, Col: 6}, {Row: 26, Col: 5}, {Row: 12, Col: 37}}
	if !slices.Equal(got, want) {
		t.Fatalf("stops = %v, want %v", got, want)
	}
	if FormatStops(got) != "(15,6),(26,5),(12,37)" {
		t.Fatalf("FormatStops = %q", FormatStops(got))
	}
}

func TestParseStopsRejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"negative", "(1,1),(-2,3)", ErrNegativeOrDecimal},
		{"decimal", "(1.5,1),(2,3)", ErrNegativeOrDecimal},
		{"letters", "(1,a),(2,3)", ErrLetters},
		{"single stop", "(1,1)", ErrTooFewStops},
		{"empty", "", ErrTooFewStops},
		{"three numbers", "(1,1),(2,3,4)", ErrMalformedStop},
		{"one number", "(1,1),(2)", ErrMalformedStop},
		{"missing number", "(1,1),(,3)", ErrMalformedStop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStops(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("ParseStops(%q) err = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestValidateStops(t *testing.T) {
	g, err := domain.NewGrid([][]int{
		{-1, 13, 0},
		{0, 8, 0},
	})
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}

	if err := ValidateStops(g, []domain.Coord{{Row: 1, Col: 0}, {Row: 1, Col: 1}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		stop domain.Coord
		want error
	}{
		{"row out of bounds", domain.Coord{Row: 2, Col: 0}, ErrOutOfBounds},
		{"col out of bounds", domain.Coord{Row: 0, Col: 3}, ErrOutOfBounds},
		{"wall", domain.Coord{Row: 0, Col: 1}, ErrWallStop},
		{"outside", domain.Coord{Row: 0, Col: 0}, ErrOutsideStop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStops(g, []domain.Coord{{Row: 1, Col: 0}, tt.stop})
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var se *StopError
			if !errors.As(err, &se) || se.Stop != tt.stop {
				t.Fatalf("err = %#v, want StopError for %v", err, tt.stop)
			}
		})
	}
}
