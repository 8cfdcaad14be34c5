package services

import (
	"nurse-route-service/internal/domain"
	"testing"
)

func mustGrid(t *testing.T, rows [][]int) *domain.Grid {
	t.Helper()
	g, err := domain.NewGrid(rows)
	if err != nil {
		t.Fatalf("build grid: %v", err)
	}
	return g
}

func dest(g *domain.Grid, row, col int) domain.Destination {
	return domain.NewDestination(g, domain.Coord{Row: row, Col: col})
}
