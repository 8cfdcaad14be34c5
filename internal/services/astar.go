package services

import (
	"context"
	"math"
	"nurse-route-service/internal/domain"
)

// Neighbour expansion order: East, West, South, North.
var directions = [4]domain.Coord{
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
}

// Per-search scratch state for one cell. cameFrom is a cell index, -1 for none.
type searchNode struct {
	g        float64
	h        float64
	f        float64
	cameFrom int
}

// newArena allocates a fresh scratch overlay for one search.
// Every cell starts with g = f = +Inf and no predecessor.
func newArena(size int) []searchNode {
	inf := math.Inf(1)
	nodes := make([]searchNode, size)
	for i := range nodes {
		nodes[i] = searchNode{g: inf, f: inf, cameFrom: -1}
	}
	return nodes
}

// FindPath computes a minimum-cost 4-directional path from start to goal with
// unit step cost and a Manhattan heuristic.
//
// The grid is never written to; all search state lives in an arena owned by
// this call, so independent searches may run concurrently on one Grid.
// Ties on evaluation are broken by insertion order (oldest frontier entry
// first), which makes the returned path deterministic when several optimal
// paths exist.
func FindPath(grid *domain.Grid, start, goal domain.Coord) domain.PathResult {
	if !grid.IsTraversable(start) || !grid.IsTraversable(goal) {
		return domain.Unreachable(0)
	}
	if start == goal {
		return domain.PathResult{Found: true, Path: []domain.Coord{start}, Cost: 0}
	}

	nodes := newArena(grid.Size())
	startIdx := grid.Index(start)
	goalIdx := grid.Index(goal)

	h := float64(domain.Manhattan(start, goal))
	nodes[startIdx] = searchNode{g: 0, h: h, f: h, cameFrom: -1}

	var open frontier
	open.push(startIdx, h)

	expanded := 0
	for open.Len() > 0 {
		item := open.pop()
		current := nodes[item.cell]

		// A better entry for this cell was pushed after this one.
		if item.f > current.f {
			continue
		}
		expanded++

		if item.cell == goalIdx {
			return domain.PathResult{
				Found:    true,
				Path:     reconstructPath(grid, nodes, goalIdx),
				Cost:     int(current.g),
				Expanded: expanded,
			}
		}

		pos := grid.CoordAt(item.cell)
		for _, d := range directions {
			next := domain.Coord{Row: pos.Row + d.Row, Col: pos.Col + d.Col}
			if !grid.IsTraversable(next) {
				continue
			}

			ni := grid.Index(next)
			candidateG := current.g + 1
			if candidateG < nodes[ni].g {
				nh := float64(domain.Manhattan(next, goal))
				nodes[ni] = searchNode{g: candidateG, h: nh, f: candidateG + nh, cameFrom: item.cell}
				open.push(ni, candidateG+nh)
			}
		}
	}

	return domain.Unreachable(expanded)
}

// reconstructPath walks cameFrom links back from goal and reverses them.
func reconstructPath(grid *domain.Grid, nodes []searchNode, goal int) []domain.Coord {
	path := []domain.Coord{}
	for i := goal; i != -1; i = nodes[i].cameFrom {
		path = append(path, grid.CoordAt(i))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// AStar adapts FindPath to the PathFinder port.
type AStar struct{}

func (AStar) FindPath(_ context.Context, grid *domain.Grid, start, goal domain.Coord) (domain.PathResult, error) {
	return FindPath(grid, start, goal), nil
}
