package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/tilewalk/grid"
)

// coordFlag parses "col,row" into a grid.Coordinate.
type coordFlag struct {
	c *grid.Coordinate
}

func (f coordFlag) String() string {
	if f.c == nil {
		return ""
	}
	return fmt.Sprintf("%d,%d", f.c.Col, f.c.Row)
}

func (f coordFlag) Set(v string) error {
	c, err := parseCoord(v)
	if err != nil {
		return err
	}
	*f.c = c
	return nil
}

func parseCoord(v string) (grid.Coordinate, error) {
	parts := strings.Split(v, ",")
	if len(parts) != 2 {
		return grid.Coordinate{}, fmt.Errorf("coordinate %q: want col,row", v)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Coordinate{}, fmt.Errorf("coordinate %q: column: %w", v, err)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Coordinate{}, fmt.Errorf("coordinate %q: row: %w", v, err)
	}
	return grid.C(col, row), nil
}
