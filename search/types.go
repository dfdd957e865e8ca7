package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilewalk/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if New receives a nil grid.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrInvalidState is returned when an operation is not allowed in the
	// current state, such as starting a run that was never reset.
	ErrInvalidState = errors.New("search: invalid state")

	// ErrSameMarkers is returned when start and goal name the same cell.
	ErrSameMarkers = errors.New("search: start and goal must differ")
)

// State is the lifecycle stage of a Search.
type State int

const (
	Idle State = iota
	Running
	Found
	Exhausted
)

// Terminal reports whether s ends a run.
func (s State) Terminal() bool {
	return s == Found || s == Exhausted
}

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Option configures a Search via functional arguments.
type Option func(*Options)

// Options holds callbacks invoked as cells move between lists.
type Options struct {
	// OnOpen is called when a cell is pushed onto the open list.
	OnOpen func(c grid.Coordinate)

	// OnClose is called when a cell is pushed onto the closed list.
	OnClose func(c grid.Coordinate)

	// OnCommit is called when a cell is appended to the path.
	OnCommit func(c grid.Coordinate)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnOpen:   func(grid.Coordinate) {},
		OnClose:  func(grid.Coordinate) {},
		OnCommit: func(grid.Coordinate) {},
	}
}

// WithOnOpen registers a callback run when a cell is opened.
func WithOnOpen(fn func(c grid.Coordinate)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnOpen = fn
		}
	}
}

// WithOnClose registers a callback run when a cell is closed.
func WithOnClose(fn func(c grid.Coordinate)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnClose = fn
		}
	}
}

// WithOnCommit registers a callback run when a cell joins the path.
func WithOnCommit(fn func(c grid.Coordinate)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCommit = fn
		}
	}
}

// Result is the outcome of a run:
//   - State: Found or Exhausted once terminal.
//   - Path: committed cells in order, ending with the goal when Found.
//   - Open, Closed: the lists as they stood at the end.
type Result struct {
	State  State
	Path   []grid.Coordinate
	Open   []grid.Coordinate
	Closed []grid.Coordinate
}
