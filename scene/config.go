package scene

import (
	"fmt"

	"github.com/katalvlaran/tilewalk/grid"
)

// Config fixes the board size and the initial marker placement.
type Config struct {
	Width, Height int
	Start, Goal   grid.Coordinate
}

// DefaultConfig returns a 20×15 board with the start at (1,3) and the goal
// at (15,11).
func DefaultConfig() Config {
	return Config{
		Width:  20,
		Height: 15,
		Start:  grid.C(1, 3),
		Goal:   grid.C(15, 11),
	}
}

// Validate checks dimensions and marker placement before anything is built.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %d×%d", grid.ErrInvalidDimensions, c.Width, c.Height)
	}
	in := func(p grid.Coordinate) bool {
		return p.Col >= 0 && p.Col < c.Width && p.Row >= 0 && p.Row < c.Height
	}
	if !in(c.Start) {
		return fmt.Errorf("start %v: %w", c.Start, grid.ErrOutOfBounds)
	}
	if !in(c.Goal) {
		return fmt.Errorf("goal %v: %w", c.Goal, grid.ErrOutOfBounds)
	}
	if c.Start == c.Goal {
		return fmt.Errorf("%w: both at %v", ErrSameMarkers, c.Start)
	}
	return nil
}
