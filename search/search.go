package search

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/tilewalk/grid"
)

// Search holds the mutable state of one greedy walk over a borrowed grid.
// It writes cell Status; it only reads Cost and links.
type Search struct {
	grid  *grid.Grid
	opts  Options
	state State

	open   []int
	closed []int
	path   []int

	// arena indices already on path; picking one again means a cycle
	committed mapset.Set[int]
}

// New prepares an Idle search over g.
// Returns ErrNilGrid if g is nil.
func New(g *grid.Grid, opts ...Option) (*Search, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Search{
		grid:      g,
		opts:      o,
		state:     Idle,
		committed: mapset.New[int](),
	}, nil
}

// markers resolves start and goal to arena indices.
func (s *Search) markers(start, goal grid.Coordinate) (int, int, error) {
	si, err := s.grid.Index(start)
	if err != nil {
		return grid.None, grid.None, fmt.Errorf("start: %w", err)
	}
	gi, err := s.grid.Index(goal)
	if err != nil {
		return grid.None, grid.None, fmt.Errorf("goal: %w", err)
	}
	if si == gi {
		return grid.None, grid.None, fmt.Errorf("%w: both at %v", ErrSameMarkers, start)
	}
	return si, gi, nil
}

// Start opens the start cell and moves the search to Running.
// A run is only started when no path exists yet: any state other than Idle,
// or a non-empty path, yields ErrInvalidState.
func (s *Search) Start(start, goal grid.Coordinate) error {
	if s.state != Idle || len(s.path) > 0 {
		return fmt.Errorf("%w: start while %s", ErrInvalidState, s.state)
	}
	si, gi, err := s.markers(start, goal)
	if err != nil {
		return err
	}

	s.grid.Cell(gi).Status = grid.Goal
	s.push(si)
	s.state = Running

	return nil
}

// Run starts a search and steps it until Found or Exhausted.
func (s *Search) Run(start, goal grid.Coordinate) (*Result, error) {
	if err := s.Start(start, goal); err != nil {
		return nil, err
	}
	for !s.state.Terminal() {
		if _, err := s.Step(); err != nil {
			return nil, err
		}
	}
	return s.Result(), nil
}

// Step advances a Running search by one current cell and returns the state
// afterwards. Returns ErrInvalidState outside Running.
func (s *Search) Step() (State, error) {
	if s.state != Running {
		return s.state, fmt.Errorf("%w: step while %s", ErrInvalidState, s.state)
	}
	if len(s.open) == 0 {
		s.state = Exhausted
		return s.state, nil
	}

	current := s.open[0]
	cell := s.grid.Cell(current)

	candidates := make([]int, 0, grid.NumDirections)
	for _, d := range grid.Directions {
		if n := cell.Link(d); n != grid.None {
			candidates = append(candidates, n)
		}
	}

	chosen, chosenAt := grid.None, -1
	goalSeen := false
	lowest := math.Inf(1)
	for i, n := range candidates {
		nc := s.grid.Cell(n)
		if nc.Status == grid.Goal {
			chosen, chosenAt = n, i
			goalSeen = true
			break
		}
		if nc.Cost < lowest {
			lowest = nc.Cost
			chosen, chosenAt = n, i
		}
	}

	s.commit(current)
	s.dropOpen(current)

	switch {
	case goalSeen:
		s.commit(chosen)
		s.state = Found
		return s.state, nil
	case chosen == grid.None:
		// no links at all: the frontier is empty
		s.state = Exhausted
		return s.state, nil
	}

	candidates = append(candidates[:chosenAt], candidates[chosenAt+1:]...)
	cycled := s.committed.Has(chosen)
	if !cycled {
		s.push(chosen)
	}
	for _, n := range candidates {
		if s.grid.Cell(n).Status == grid.Unvisited {
			s.close(n)
		}
	}
	if cycled || len(s.open) == 0 {
		s.state = Exhausted
	}

	return s.state, nil
}

// Reset returns every listed cell to Unvisited, clears the lists, reasserts
// the Start and Goal markers and moves the search to Idle. Markers are
// validated before anything changes. Calling Reset twice equals calling it once.
func (s *Search) Reset(start, goal grid.Coordinate) error {
	si, gi, err := s.markers(start, goal)
	if err != nil {
		return err
	}

	for _, list := range [][]int{s.open, s.closed, s.path} {
		for _, i := range list {
			s.grid.Cell(i).Status = grid.Unvisited
		}
	}
	s.open = s.open[:0]
	s.closed = s.closed[:0]
	s.path = s.path[:0]
	s.committed = mapset.New[int]()

	s.grid.Cell(si).Status = grid.Start
	s.grid.Cell(gi).Status = grid.Goal
	s.state = Idle

	return nil
}

// State returns the current lifecycle stage.
func (s *Search) State() State { return s.state }

// Open returns the open list as coordinates, in order.
func (s *Search) Open() []grid.Coordinate { return s.coords(s.open) }

// Closed returns the closed list as coordinates, in order.
func (s *Search) Closed() []grid.Coordinate { return s.coords(s.closed) }

// Path returns the committed cells as coordinates, in order.
func (s *Search) Path() []grid.Coordinate { return s.coords(s.path) }

// Result snapshots the state and all three lists.
func (s *Search) Result() *Result {
	return &Result{
		State:  s.state,
		Path:   s.Path(),
		Open:   s.Open(),
		Closed: s.Closed(),
	}
}

// push appends i to the open list and marks it Open.
func (s *Search) push(i int) {
	s.open = append(s.open, i)
	s.grid.Cell(i).Status = grid.Open
	s.opts.OnOpen(s.grid.Coordinate(i))
}

// dropOpen removes the element i from the open list, wherever it sits.
func (s *Search) dropOpen(i int) {
	for k, v := range s.open {
		if v == i {
			s.open = append(s.open[:k], s.open[k+1:]...)
			return
		}
	}
}

// close appends i to the closed list and marks it Closed.
func (s *Search) close(i int) {
	s.closed = append(s.closed, i)
	s.grid.Cell(i).Status = grid.Closed
	s.opts.OnClose(s.grid.Coordinate(i))
}

// commit appends i to the path. Status is left as is so the goal keeps
// its marker and walked cells stay Open for display.
func (s *Search) commit(i int) {
	s.path = append(s.path, i)
	s.committed.Put(i)
	s.opts.OnCommit(s.grid.Coordinate(i))
}

func (s *Search) coords(list []int) []grid.Coordinate {
	out := make([]grid.Coordinate, len(list))
	for k, i := range list {
		out[k] = s.grid.Coordinate(i)
	}
	return out
}
