package costfield

import (
	"math"

	"github.com/katalvlaran/tilewalk/grid"
)

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b grid.Coordinate) float64 {
	dc := float64(a.Col - b.Col)
	dr := float64(a.Row - b.Row)
	return math.Sqrt(dc*dc + dr*dr)
}

// Manhattan returns the grid-aligned distance between a and b.
func Manhattan(a, b grid.Coordinate) int {
	return abs(a.Col-b.Col) + abs(a.Row-b.Row)
}

// Cost blends both distances into the value stored on a cell.
func Cost(c, goal grid.Coordinate) float64 {
	return Euclidean(c, goal) + float64(Manhattan(c, goal))
}

// Recompute sets Cost on every cell of g relative to goal.
// Returns grid.ErrOutOfBounds, leaving costs untouched, if goal lies outside g.
func Recompute(g *grid.Grid, goal grid.Coordinate) error {
	if _, err := g.Index(goal); err != nil {
		return err
	}
	g.Each(func(c *grid.Cell) {
		c.Cost = Cost(c.Coord, goal)
	})

	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
