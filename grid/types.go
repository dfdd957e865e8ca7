package grid

import "fmt"

// None marks a missing neighbour link.
const None = -1

// Coordinate addresses a cell by column and row, both 0-indexed.
type Coordinate struct {
	Col, Row int
}

// C is shorthand for Coordinate{Col: col, Row: row}.
func C(col, row int) Coordinate {
	return Coordinate{Col: col, Row: row}
}

// Step returns the coordinate one cell away in direction d. The result may
// lie outside the grid.
func (c Coordinate) Step(d Direction) Coordinate {
	dc, dr := d.Offset()
	return Coordinate{Col: c.Col + dc, Row: c.Row + dr}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Direction names one of the four orthogonal links of a cell.
// The declaration order Top, Right, Bottom, Left is the scan order
// used by every traversal in this module.
type Direction int

const (
	Top Direction = iota
	Right
	Bottom
	Left
)

// NumDirections is the number of links a cell can hold.
const NumDirections = 4

// Directions lists all directions in scan order.
var Directions = [NumDirections]Direction{Top, Right, Bottom, Left}

// offsets is indexed by Direction: column delta, row delta.
var offsets = [NumDirections][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Offset returns the column and row delta of d.
func (d Direction) Offset() (dc, dr int) {
	return offsets[d][0], offsets[d][1]
}

// Opposite returns the direction pointing back along d.
func (d Direction) Opposite() Direction {
	return (d + 2) % NumDirections
}

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Status is the display and bookkeeping state of a cell.
type Status int

const (
	Unvisited Status = iota
	Open
	Closed
	Start
	Goal
)

func (s Status) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Open:
		return "open"
	case Closed:
		return "closed"
	case Start:
		return "start"
	case Goal:
		return "goal"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Cell is one node of the grid. Coord is fixed once the grid is built;
// Status and Cost change across searches. Cost is only meaningful after a
// cost field has been computed for the current goal.
type Cell struct {
	Coord  Coordinate
	Status Status
	Cost   float64

	// arena indices of the neighbours, None at the border or when severed
	links [NumDirections]int
}

// Link returns the arena index of the neighbour in direction d, or None.
func (c *Cell) Link(d Direction) int {
	return c.links[d]
}

// HasLink reports whether c has a neighbour in direction d.
func (c *Cell) HasLink(d Direction) bool {
	return c.links[d] != None
}

// Grid owns a W×H arena of cells stored row-major: index = row*W + col.
type Grid struct {
	width, height int
	cells         []Cell
}
