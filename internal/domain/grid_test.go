package domain

import (
	"errors"
	"testing"
)

func TestNewGridRejectsRaggedRows(t *testing.T) {
	_, err := NewGrid([][]int{
		{0, 0, 0},
		{0, 0},
	})
	if !errors.Is(err, ErrInconsistentRows) {
		t.Fatalf("err = %v, want ErrInconsistentRows", err)
	}
}

func TestNewGridRejectsEmpty(t *testing.T) {
	if _, err := NewGrid(nil); !errors.Is(err, ErrEmptyGrid) {
		t.Fatalf("nil rows: err = %v, want ErrEmptyGrid", err)
	}
	if _, err := NewGrid([][]int{{}}); !errors.Is(err, ErrEmptyGrid) {
		t.Fatalf("empty row: err = %v, want ErrEmptyGrid", err)
	}
}

func TestGridLookups(t *testing.T) {
	g, err := NewGrid([][]int{
		{-1, 13, 0},
		{1, 8, 12},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if g.Rows() != 2 || g.Cols() != 3 {
		t.Fatalf("dims = %dx%d, want 2x3", g.Rows(), g.Cols())
	}

	tests := []struct {
		c           Coord
		traversable bool
		zone        ZoneCode
	}{
		{Coord{0, 0}, false, ZoneOutside},
		{Coord{0, 1}, false, ZoneWall},
		{Coord{0, 2}, true, ZoneHallway},
		{Coord{1, 0}, true, ZoneMaternity},
		{Coord{1, 1}, true, ZoneICU},
		{Coord{1, 2}, true, ZoneMedical},
		{Coord{-1, 0}, false, ZoneOutside},
		{Coord{0, 3}, false, ZoneOutside},
		{Coord{2, 0}, false, ZoneOutside},
	}
	for _, tt := range tests {
		if got := g.IsTraversable(tt.c); got != tt.traversable {
			t.Errorf("IsTraversable(%v) = %v, want %v", tt.c, got, tt.traversable)
		}
		if got := g.ZoneCodeOf(tt.c); got != tt.zone {
			t.Errorf("ZoneCodeOf(%v) = %d, want %d", tt.c, got, tt.zone)
		}
	}
}

func TestGridIndexRoundTrip(t *testing.T) {
	g, err := NewGrid([][]int{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < g.Size(); i++ {
		if got := g.Index(g.CoordAt(i)); got != i {
			t.Fatalf("Index(CoordAt(%d)) = %d", i, got)
		}
	}
}

func TestGridZonesIsACopy(t *testing.T) {
	g, err := NewGrid([][]int{{0, 1}, {2, 3}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	z := g.Zones()
	z[0][0] = 13
	if g.ZoneCodeOf(Coord{0, 0}) != ZoneHallway {
		t.Fatalf("mutating Zones() leaked into the grid")
	}
}

func TestZoneCodeName(t *testing.T) {
	if got := ZoneICU.Name(); got != "ICU" {
		t.Errorf("ZoneICU.Name() = %q", got)
	}
	if got := ZoneCode(42).Name(); got != "Zone 42" {
		t.Errorf("ZoneCode(42).Name() = %q", got)
	}
}

func TestManhattan(t *testing.T) {
	if d := Manhattan(Coord{0, 0}, Coord{2, 3}); d != 5 {
		t.Fatalf("Manhattan = %d, want 5", d)
	}
	if d := Manhattan(Coord{4, 1}, Coord{1, 4}); d != 6 {
		t.Fatalf("Manhattan = %d, want 6", d)
	}
}

func TestGridFingerprint(t *testing.T) {
	mk := func(rows [][]int) *Grid {
		t.Helper()
		g, err := NewGrid(rows)
		if err != nil {
			t.Fatalf("new grid: %v", err)
		}
		return g
	}

	open := mk([][]int{{0, 0, 0}})
	if open.Fingerprint() != mk([][]int{{0, 0, 0}}).Fingerprint() {
		t.Fatalf("identical layouts should share a fingerprint")
	}
	if open.Fingerprint() == mk([][]int{{0, 13, 0}}).Fingerprint() {
		t.Fatalf("adding a wall should change the fingerprint")
	}
	if mk([][]int{{0, 0}, {0, 0}}).Fingerprint() == mk([][]int{{0, 0, 0, 0}}).Fingerprint() {
		t.Fatalf("same cells in a different shape should change the fingerprint")
	}
}
