package domain

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
)

var (
	ErrEmptyGrid        = errors.New("grid: floor plan has no cells")
	ErrInconsistentRows = errors.New("grid: rows have inconsistent column counts")
)

// Static floor plan: a rows x cols matrix of zone codes.
// A Grid is immutable after construction and is shared read-only by every
// search, so it is safe for concurrent use.
type Grid struct {
	rows        int
	cols        int
	zones       []ZoneCode
	fingerprint uint64
}

// NewGrid builds a Grid from a zone code matrix.
// Every row must have the same number of columns as the first one.
func NewGrid(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	cols := len(rows[0])
	zones := make([]ZoneCode, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("new grid: row %d has %d columns, want %d: %w", i, len(row), cols, ErrInconsistentRows)
		}
		for _, z := range row {
			zones = append(zones, ZoneCode(z))
		}
	}

	g := &Grid{rows: len(rows), cols: cols, zones: zones}
	g.fingerprint = layoutHash(g)
	return g, nil
}

// FNV-1a over the dimensions and every zone code.
func layoutHash(g *Grid) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		h.Write(buf[:])
	}
	put(g.rows)
	put(g.cols)
	for _, z := range g.zones {
		put(int(z))
	}
	return h.Sum64()
}

// Fingerprint identifies the layout: grids with the same dimensions and zone
// codes share it. Caches key on it so a re-seeded plan never serves stale legs.
func (g *Grid) Fingerprint() uint64 { return g.fingerprint }

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// Size is the number of cells, used to size per-search scratch arenas.
func (g *Grid) Size() int { return len(g.zones) }

func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps an in-bounds coordinate to its dense cell index.
func (g *Grid) Index(c Coord) int { return c.Row*g.cols + c.Col }

func (g *Grid) CoordAt(i int) Coord { return Coord{Row: i / g.cols, Col: i % g.cols} }

// IsTraversable reports whether c is in bounds and neither wall nor outside.
func (g *Grid) IsTraversable(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.zones[g.Index(c)].Passable()
}

// ZoneCodeOf returns the static zone tag; out-of-bounds cells read as ZoneOutside.
func (g *Grid) ZoneCodeOf(c Coord) ZoneCode {
	if !g.InBounds(c) {
		return ZoneOutside
	}
	return g.zones[g.Index(c)]
}

// Zones returns a copy of the zone matrix.
func (g *Grid) Zones() [][]int {
	out := make([][]int, g.rows)
	for r := 0; r < g.rows; r++ {
		row := make([]int, g.cols)
		for c := 0; c < g.cols; c++ {
			row[c] = int(g.zones[r*g.cols+c])
		}
		out[r] = row
	}
	return out
}
