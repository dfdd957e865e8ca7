package scene

import (
	"github.com/katalvlaran/tilewalk/grid"
	"github.com/katalvlaran/tilewalk/search"
)

// CellView is the display-facing copy of one cell.
type CellView struct {
	Coord  grid.Coordinate
	Status grid.Status
	Cost   float64
	// Links[d] reports whether the cell is linked in direction d.
	Links [grid.NumDirections]bool
}

// Snapshot is a detached copy of everything a renderer needs. Mutating it
// never reaches the scene.
type Snapshot struct {
	Width, Height int
	Cells         []CellView // row-major
	Start, Goal   grid.Coordinate
	State         search.State
	Open          []grid.Coordinate
	Closed        []grid.Coordinate
	Path          []grid.Coordinate
}

// At returns the view of (col,row); ok is false outside the grid.
func (sn *Snapshot) At(col, row int) (CellView, bool) {
	if col < 0 || col >= sn.Width || row < 0 || row >= sn.Height {
		return CellView{}, false
	}
	return sn.Cells[row*sn.Width+col], true
}

// Snapshot copies the current grid and search state.
func (s *Scene) Snapshot() *Snapshot {
	sn := &Snapshot{
		Width:  s.grid.Width(),
		Height: s.grid.Height(),
		Cells:  make([]CellView, 0, s.grid.Len()),
		Start:  s.start,
		Goal:   s.goal,
		State:  s.search.State(),
		Open:   s.search.Open(),
		Closed: s.search.Closed(),
		Path:   s.search.Path(),
	}
	s.grid.Each(func(c *grid.Cell) {
		v := CellView{Coord: c.Coord, Status: c.Status, Cost: c.Cost}
		for _, d := range grid.Directions {
			v.Links[d] = c.HasLink(d)
		}
		sn.Cells = append(sn.Cells, v)
	})

	return sn
}
