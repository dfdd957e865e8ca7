package grid

import "fmt"

// New builds a width×height grid with every cell Unvisited and wired to its
// orthogonal neighbours. Border cells get None on the outward side.
// Returns ErrInvalidDimensions and no grid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			g.cells[g.index(col, row)].Coord = Coordinate{Col: col, Row: row}
		}
	}
	for i := range g.cells {
		c := &g.cells[i]
		for _, d := range Directions {
			n := c.Coord.Step(d)
			if g.InBounds(n) {
				c.links[d] = g.index(n.Col, n.Row)
			} else {
				c.links[d] = None
			}
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells, W×H.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether c lies within [0,W)×[0,H).
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Col >= 0 && c.Col < g.width && c.Row >= 0 && c.Row < g.height
}

// index maps (col,row) to the row-major arena index without bounds checks.
func (g *Grid) index(col, row int) int {
	return row*g.width + col
}

// Index maps c to its arena index.
// Returns ErrOutOfBounds if c lies outside the grid.
func (g *Grid) Index(c Coordinate) (int, error) {
	if !g.InBounds(c) {
		return None, fmt.Errorf("%w: %v in %d×%d grid", ErrOutOfBounds, c, g.width, g.height)
	}
	return g.index(c.Col, c.Row), nil
}

// Coordinate converts an arena index back to (col,row).
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{Col: idx % g.width, Row: idx / g.width}
}

// CellAt returns the cell at (col,row).
// Returns ErrOutOfBounds if either coordinate lies outside the grid.
// Complexity: O(1).
func (g *Grid) CellAt(col, row int) (*Cell, error) {
	return g.At(Coordinate{Col: col, Row: row})
}

// At is CellAt taking a Coordinate.
func (g *Grid) At(c Coordinate) (*Cell, error) {
	i, err := g.Index(c)
	if err != nil {
		return nil, err
	}
	return &g.cells[i], nil
}

// Cell returns the cell stored at arena index idx. It panics on an index
// outside [0,Len()), like any slice access.
func (g *Grid) Cell(idx int) *Cell {
	return &g.cells[idx]
}

// Neighbor returns the cell linked to c in direction d, or nil.
func (g *Grid) Neighbor(c *Cell, d Direction) *Cell {
	if i := c.links[d]; i != None {
		return &g.cells[i]
	}
	return nil
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// Sever cuts the link leaving c in direction d and the link coming back,
// so adjacency stays symmetric. Cutting a missing link is a no-op.
// Returns ErrOutOfBounds if c lies outside the grid.
func (g *Grid) Sever(c Coordinate, d Direction) error {
	i, err := g.Index(c)
	if err != nil {
		return err
	}
	j := g.cells[i].links[d]
	if j == None {
		return nil
	}
	g.cells[i].links[d] = None
	g.cells[j].links[d.Opposite()] = None

	return nil
}

// Isolate severs all four links of the cell at c.
func (g *Grid) Isolate(c Coordinate) error {
	for _, d := range Directions {
		if err := g.Sever(c, d); err != nil {
			return err
		}
	}
	return nil
}
