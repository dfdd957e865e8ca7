package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilewalk/costfield"
	"github.com/katalvlaran/tilewalk/grid"
	"github.com/katalvlaran/tilewalk/search"
)

// newBoard builds a w×h grid, computes costs for goal and returns an Idle
// search with markers placed.
func newBoard(t *testing.T, w, h int, start, goal grid.Coordinate, opts ...search.Option) (*grid.Grid, *search.Search) {
	t.Helper()
	g, err := grid.New(w, h)
	require.NoError(t, err)
	require.NoError(t, costfield.Recompute(g, goal))
	s, err := search.New(g, opts...)
	require.NoError(t, err)
	require.NoError(t, s.Reset(start, goal))
	return g, s
}

// statuses captures every cell status in row-major order.
func statuses(g *grid.Grid) []grid.Status {
	out := make([]grid.Status, 0, g.Len())
	g.Each(func(c *grid.Cell) { out = append(out, c.Status) })
	return out
}

//----------------------------------------------------------------------------//
// Scenarios
//----------------------------------------------------------------------------//

// TestRun_Corridor runs the 3×1 corridor: the goal is appended last through
// the goal-detection branch and nothing is closed.
func TestRun_Corridor(t *testing.T) {
	_, s := newBoard(t, 3, 1, grid.C(0, 0), grid.C(2, 0))

	res, err := s.Run(grid.C(0, 0), grid.C(2, 0))
	require.NoError(t, err)
	assert.Equal(t, search.Found, res.State)
	assert.Equal(t, []grid.Coordinate{grid.C(0, 0), grid.C(1, 0), grid.C(2, 0)}, res.Path)
	assert.Empty(t, res.Closed)
	assert.Empty(t, res.Open)
}

// TestRun_TieBreakAndClosing follows a 3×3 diagonal run: equal-cost
// neighbours resolve in scan order and losers are closed.
func TestRun_TieBreakAndClosing(t *testing.T) {
	g, s := newBoard(t, 3, 3, grid.C(0, 0), grid.C(2, 2))

	res, err := s.Run(grid.C(0, 0), grid.C(2, 2))
	require.NoError(t, err)
	require.Equal(t, search.Found, res.State)
	assert.Equal(t, []grid.Coordinate{
		grid.C(0, 0), grid.C(1, 0), grid.C(1, 1), grid.C(2, 1), grid.C(2, 2),
	}, res.Path)
	assert.Equal(t, []grid.Coordinate{grid.C(0, 1), grid.C(2, 0), grid.C(1, 2)}, res.Closed)

	for _, xy := range res.Closed {
		c, _ := g.At(xy)
		assert.Equal(t, grid.Closed, c.Status, "%v", xy)
	}
	goal, _ := g.At(grid.C(2, 2))
	assert.Equal(t, grid.Goal, goal.Status)
}

// TestRun_IsolatedGoal cuts the goal off: the walk cycles back to a committed
// cell and must end Exhausted with an empty frontier.
func TestRun_IsolatedGoal(t *testing.T) {
	g, s := newBoard(t, 3, 3, grid.C(0, 0), grid.C(2, 2))
	require.NoError(t, g.Isolate(grid.C(2, 2)))

	res, err := s.Run(grid.C(0, 0), grid.C(2, 2))
	require.NoError(t, err)
	assert.Equal(t, search.Exhausted, res.State)
	assert.Empty(t, res.Open)
	assert.NotContains(t, res.Path, grid.C(2, 2))
	assert.Equal(t, []grid.Coordinate{
		grid.C(0, 0), grid.C(1, 0), grid.C(1, 1), grid.C(2, 1),
	}, res.Path)
	assert.LessOrEqual(t, len(res.Path), g.Len())
}

// TestRun_IsolatedStart covers a start with no links at all.
func TestRun_IsolatedStart(t *testing.T) {
	g, s := newBoard(t, 2, 2, grid.C(0, 0), grid.C(1, 1))
	require.NoError(t, g.Isolate(grid.C(0, 0)))

	res, err := s.Run(grid.C(0, 0), grid.C(1, 1))
	require.NoError(t, err)
	assert.Equal(t, search.Exhausted, res.State)
	assert.Equal(t, []grid.Coordinate{grid.C(0, 0)}, res.Path)
	assert.Empty(t, res.Open)
	assert.Empty(t, res.Closed)
}

// TestRun_AllPairs runs every start/goal pair on an open 5×4 grid. Without
// cuts the walk moves one Manhattan step closer each time, so it must be Found
// with Manhattan+1 distinct, adjacent cells and a frontier never above one.
func TestRun_AllPairs(t *testing.T) {
	const w, h = 5, 4
	for gi := 0; gi < w*h; gi++ {
		for si := 0; si < w*h; si++ {
			if si == gi {
				continue
			}
			start := grid.C(si%w, si/w)
			goal := grid.C(gi%w, gi/w)

			maxOpen := 0
			var s *search.Search
			var g *grid.Grid
			g, s = newBoard(t, w, h, start, goal, search.WithOnOpen(func(grid.Coordinate) {
				if n := len(s.Open()); n > maxOpen {
					maxOpen = n
				}
			}))

			res, err := s.Run(start, goal)
			require.NoError(t, err)
			require.Equal(t, search.Found, res.State, "%v -> %v", start, goal)
			require.Len(t, res.Path, costfield.Manhattan(start, goal)+1)
			assert.Equal(t, start, res.Path[0])
			assert.Equal(t, goal, res.Path[len(res.Path)-1])
			assert.LessOrEqual(t, maxOpen, 1)
			assert.LessOrEqual(t, maxOpen, g.Len())

			seen := map[grid.Coordinate]bool{}
			for k, xy := range res.Path {
				require.False(t, seen[xy], "revisit %v", xy)
				seen[xy] = true
				if k > 0 {
					require.Equal(t, 1, costfield.Manhattan(res.Path[k-1], xy))
				}
			}
		}
	}
}

//----------------------------------------------------------------------------//
// State machine and errors
//----------------------------------------------------------------------------//

// TestStart_InvalidState verifies a finished run must be reset before the next.
func TestStart_InvalidState(t *testing.T) {
	_, s := newBoard(t, 3, 1, grid.C(0, 0), grid.C(2, 0))
	_, err := s.Run(grid.C(0, 0), grid.C(2, 0))
	require.NoError(t, err)

	_, err = s.Run(grid.C(0, 0), grid.C(2, 0))
	require.ErrorIs(t, err, search.ErrInvalidState)

	_, err = s.Step()
	require.ErrorIs(t, err, search.ErrInvalidState)

	require.NoError(t, s.Reset(grid.C(0, 0), grid.C(2, 0)))
	assert.Equal(t, search.Idle, s.State())
	_, err = s.Run(grid.C(0, 0), grid.C(2, 0))
	require.NoError(t, err)
}

// TestStep_Incremental drives the corridor one step at a time.
func TestStep_Incremental(t *testing.T) {
	_, s := newBoard(t, 3, 1, grid.C(0, 0), grid.C(2, 0))

	_, err := s.Step()
	require.ErrorIs(t, err, search.ErrInvalidState, "step before start")

	require.NoError(t, s.Start(grid.C(0, 0), grid.C(2, 0)))
	assert.Equal(t, search.Running, s.State())
	assert.Equal(t, []grid.Coordinate{grid.C(0, 0)}, s.Open())

	st, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, search.Running, st)
	assert.Equal(t, []grid.Coordinate{grid.C(1, 0)}, s.Open())
	assert.Equal(t, []grid.Coordinate{grid.C(0, 0)}, s.Path())

	st, err = s.Step()
	require.NoError(t, err)
	assert.Equal(t, search.Found, st)
}

// TestMarkers_Errors covers bad marker input to Start and Reset.
func TestMarkers_Errors(t *testing.T) {
	g, s := newBoard(t, 3, 3, grid.C(0, 0), grid.C(2, 2))
	before := statuses(g)

	require.ErrorIs(t, s.Reset(grid.C(1, 1), grid.C(1, 1)), search.ErrSameMarkers)
	require.ErrorIs(t, s.Reset(grid.C(3, 0), grid.C(1, 1)), grid.ErrOutOfBounds)
	require.ErrorIs(t, s.Start(grid.C(0, 0), grid.C(0, -1)), grid.ErrOutOfBounds)
	require.ErrorIs(t, s.Start(grid.C(2, 2), grid.C(2, 2)), search.ErrSameMarkers)
	assert.Equal(t, before, statuses(g), "failed calls must not mutate the grid")
	assert.Equal(t, search.Idle, s.State())

	_, err := search.New(nil)
	require.ErrorIs(t, err, search.ErrNilGrid)
}

// TestReset_Idempotent checks two resets leave the same state as one and
// only the markers stay set.
func TestReset_Idempotent(t *testing.T) {
	start, goal := grid.C(0, 0), grid.C(3, 2)
	g, s := newBoard(t, 4, 3, start, goal)
	_, err := s.Run(start, goal)
	require.NoError(t, err)

	require.NoError(t, s.Reset(start, goal))
	once := statuses(g)
	require.NoError(t, s.Reset(start, goal))
	assert.Equal(t, once, statuses(g))

	g.Each(func(c *grid.Cell) {
		switch c.Coord {
		case start:
			assert.Equal(t, grid.Start, c.Status)
		case goal:
			assert.Equal(t, grid.Goal, c.Status)
		default:
			assert.Equal(t, grid.Unvisited, c.Status, "%v", c.Coord)
		}
	})
	assert.Empty(t, s.Open())
	assert.Empty(t, s.Closed())
	assert.Empty(t, s.Path())
}

// TestQueries_DoNotMutate reads everything repeatedly and compares snapshots.
func TestQueries_DoNotMutate(t *testing.T) {
	g, s := newBoard(t, 4, 4, grid.C(0, 3), grid.C(3, 0))
	_, err := s.Run(grid.C(0, 3), grid.C(3, 0))
	require.NoError(t, err)

	before := statuses(g)
	res1 := s.Result()
	for i := 0; i < 3; i++ {
		_ = s.Open()
		_ = s.Closed()
		p := s.Path()
		if len(p) > 0 {
			p[0] = grid.C(9, 9) // copies, not views
		}
		_ = s.State()
	}
	assert.Equal(t, before, statuses(g))
	assert.Equal(t, res1, s.Result())
}

// TestHooks checks each hook fires once per list insertion.
func TestHooks(t *testing.T) {
	var opened, closed, committed []grid.Coordinate
	_, s := newBoard(t, 3, 3, grid.C(0, 0), grid.C(2, 2),
		search.WithOnOpen(func(c grid.Coordinate) { opened = append(opened, c) }),
		search.WithOnClose(func(c grid.Coordinate) { closed = append(closed, c) }),
		search.WithOnCommit(func(c grid.Coordinate) { committed = append(committed, c) }),
		search.WithOnOpen(nil),
	)

	res, err := s.Run(grid.C(0, 0), grid.C(2, 2))
	require.NoError(t, err)
	assert.Equal(t, res.Path, committed)
	assert.Equal(t, res.Closed, closed)
	assert.Equal(t, []grid.Coordinate{grid.C(0, 0), grid.C(1, 0), grid.C(1, 1), grid.C(2, 1)}, opened)
}
