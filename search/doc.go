// Package search runs a greedy, single-frontier walk over a grid whose cells
// carry a cost field, from a start cell toward a goal cell.
//
// What
//
//   - Each step looks only at the neighbours of the current cell, scanned in
//     the fixed order Top, Right, Bottom, Left.
//   - A neighbour marked Goal ends the scan at once and the run is Found.
//   - Otherwise the cheapest neighbour (first seen wins ties) becomes the next
//     current cell; the current cell is committed to the path and the other
//     Unvisited neighbours are closed.
//   - Open, Closed and Path are ordered lists kept in step with cell Status.
//
// This is not best-first search: cells are never re-ranked against a global
// frontier and the resulting path is not guaranteed to be shortest.
//
// State machine
//
//	Idle ──Start──▶ Running ──Step…──▶ Found | Exhausted
//	  ▲                                     │
//	  └──────────────── Reset ◀─────────────┘
//
// Termination
//
//	The choice made from a cell depends only on costs, links and the Goal
//	marker, none of which change during a run. A walk that picks a cell it has
//	already committed would therefore cycle forever; the run ends in Exhausted
//	at that point instead, with Open empty. Every run commits at most W×H cells.
//
// Usage
//
//	s, _ := search.New(g, search.WithOnCommit(func(c grid.Coordinate) { ... }))
//	_ = s.Reset(start, goal)
//	res, err := s.Run(start, goal)
//	if err != nil {
//	    // ErrInvalidState, ErrSameMarkers or grid.ErrOutOfBounds
//	}
//	if res.State == search.Exhausted {
//	    // no path: the walk dead-ended or the goal is cut off
//	}
//
// Errors
//
//   - ErrNilGrid       if New receives a nil grid.
//   - ErrInvalidState  if Start runs while a previous run was not reset,
//     or Step runs outside Running.
//   - ErrSameMarkers   if start and goal coincide.
//   - grid.ErrOutOfBounds for markers outside the grid.
package search
