package scene

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tilewalk/costfield"
	"github.com/katalvlaran/tilewalk/grid"
	"github.com/katalvlaran/tilewalk/search"
)

// Scene owns the grid and lends it to the cost field and the search for the
// duration of each command.
type Scene struct {
	cfg    Config
	grid   *grid.Grid
	search *search.Search
	start  grid.Coordinate
	goal   grid.Coordinate
	log    logrus.FieldLogger
}

// New validates cfg, builds the grid, places both markers and computes the
// cost field for the goal. Nothing is returned on error.
func New(cfg Config, opts ...Option) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, err := grid.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	srch, err := search.New(g, o.searchOpts...)
	if err != nil {
		return nil, err
	}
	s := &Scene{
		cfg:    cfg,
		grid:   g,
		search: srch,
		start:  cfg.Start,
		goal:   cfg.Goal,
		log:    o.log.WithField("component", "scene"),
	}
	if err := s.search.Reset(s.start, s.goal); err != nil {
		return nil, err
	}
	if err := costfield.Recompute(g, s.goal); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"width":  cfg.Width,
		"height": cfg.Height,
		"start":  s.start.String(),
		"goal":   s.goal.String(),
	}).Info("grid built")

	return s, nil
}

// checkMarker validates a new marker position against the grid and the
// other marker.
func (s *Scene) checkMarker(c, other grid.Coordinate) error {
	if !s.grid.InBounds(c) {
		return fmt.Errorf("%w: %v in %d×%d grid", grid.ErrOutOfBounds, c, s.cfg.Width, s.cfg.Height)
	}
	if c == other {
		return fmt.Errorf("%w: both at %v", ErrSameMarkers, c)
	}
	return nil
}

// unmark clears a marker left behind on its old cell.
func (s *Scene) unmark(c grid.Coordinate) {
	if cell, err := s.grid.At(c); err == nil {
		cell.Status = grid.Unvisited
	}
}

// SetStart moves the start marker and resets the search.
func (s *Scene) SetStart(c grid.Coordinate) error {
	if err := s.checkMarker(c, s.goal); err != nil {
		return err
	}
	s.unmark(s.start)
	s.start = c
	if err := s.search.Reset(s.start, s.goal); err != nil {
		return err
	}
	s.log.WithField("start", c.String()).Debug("start moved")

	return nil
}

// SetGoal moves the goal marker, resets the search and recomputes costs.
func (s *Scene) SetGoal(c grid.Coordinate) error {
	if err := s.checkMarker(c, s.start); err != nil {
		return err
	}
	s.unmark(s.goal)
	s.goal = c
	if err := s.search.Reset(s.start, s.goal); err != nil {
		return err
	}
	if err := costfield.Recompute(s.grid, s.goal); err != nil {
		return err
	}
	s.log.WithField("goal", c.String()).Debug("goal moved, costs recomputed")

	return nil
}

// FindPath runs the search to a terminal state. A search left Running by
// Step is carried on to the end. A search that already finished yields
// search.ErrInvalidState until Reset.
func (s *Scene) FindPath() (*search.Result, error) {
	if s.search.State() != search.Running {
		if err := s.search.Start(s.start, s.goal); err != nil {
			return nil, err
		}
	}
	for s.search.State() == search.Running {
		if _, err := s.search.Step(); err != nil {
			return nil, err
		}
	}
	res := s.search.Result()
	s.logResult(res)

	return res, nil
}

// Step advances the search by one cell, starting it first if Idle.
func (s *Scene) Step() (search.State, error) {
	if s.search.State() == search.Idle {
		if err := s.search.Start(s.start, s.goal); err != nil {
			return s.search.State(), err
		}
	}
	st, err := s.search.Step()
	if err != nil {
		return st, err
	}
	if st.Terminal() {
		s.logResult(s.search.Result())
	}
	return st, nil
}

func (s *Scene) logResult(res *search.Result) {
	entry := s.log.WithFields(logrus.Fields{
		"state":  res.State.String(),
		"path":   len(res.Path),
		"closed": len(res.Closed),
	})
	if res.State == search.Found {
		entry.Info("path found")
		return
	}
	entry.Warn("no path found")
}

// Reset clears the search and reasserts both markers.
func (s *Scene) Reset() error {
	if err := s.search.Reset(s.start, s.goal); err != nil {
		return err
	}
	s.log.Debug("search reset")
	return nil
}

// Diagnose tells an unlucky walk from a goal that no walk could reach.
// It only inspects links and never changes state.
func (s *Scene) Diagnose() (reachable bool, err error) {
	return s.grid.Reachable(s.start, s.goal)
}

// Sever cuts the link between c and its neighbour in direction d. The
// search is reset so no run straddles the topology change.
func (s *Scene) Sever(c grid.Coordinate, d grid.Direction) error {
	if err := s.grid.Sever(c, d); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"cell": c.String(), "dir": d.String()}).Debug("link severed")
	return s.Reset()
}

// Start returns the start marker.
func (s *Scene) Start() grid.Coordinate { return s.start }

// Goal returns the goal marker.
func (s *Scene) Goal() grid.Coordinate { return s.goal }

// State returns the search state.
func (s *Scene) State() search.State { return s.search.State() }

// Config returns the configuration the scene was built with.
func (s *Scene) Config() Config { return s.cfg }

// CellAt returns a copy of the cell at (col,row).
func (s *Scene) CellAt(col, row int) (grid.Cell, error) {
	c, err := s.grid.CellAt(col, row)
	if err != nil {
		return grid.Cell{}, err
	}
	return *c, nil
}

// Open returns the open list.
func (s *Scene) Open() []grid.Coordinate { return s.search.Open() }

// Closed returns the closed list.
func (s *Scene) Closed() []grid.Coordinate { return s.search.Closed() }

// Path returns the committed path.
func (s *Scene) Path() []grid.Coordinate { return s.search.Path() }
