// Package tilewalk visualizes a greedy walk between two markers on a fixed
// grid: a per-cell cost field relative to the goal, a walk that always steps
// to the cheapest neighbour, and a reset so the markers can move between runs.
//
// Under the hood the module is split into small packages:
//
//	grid/       Cell, Coordinate, Direction, Status and the Grid arena with symmetric links
//	costfield/  Euclidean + Manhattan cost of every cell toward the goal
//	search/     the Idle → Running → Found | Exhausted walk, hooks and Reset
//	scene/      single owner of grid, markers and search; commands and display queries
//	render/     ASCII and PNG snapshots
//	cmd/tilewalk  terminal viewer and headless runner
//
// Quick ASCII example, 3×3, start S at (0,0), goal G at (2,2):
//
//	S * x
//	x * *
//	. x G
//
// '*' marks the committed path, 'x' the neighbours the walk closed.
//
// The walk is local: it never re-ranks a global frontier, so the path is not
// guaranteed shortest. It does guarantee termination; see package search.
package tilewalk
