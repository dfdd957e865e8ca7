// Package costfield writes a heuristic cost into every cell of a grid,
// relative to a single goal coordinate.
//
// For each cell c:
//
//	g      = Euclidean(c, goal)
//	h      = |c.Col-goal.Col| + |c.Row-goal.Row|   (Manhattan)
//	c.Cost = g + h
//
// The result ranks neighbours for a greedy walk; it is not a shortest-distance
// field. Among cells of equal Manhattan distance the Euclidean term orders
// them, and the goal itself always costs 0.
//
// The field goes stale when the goal moves. Recompute must be called again;
// stale costs are not detected.
//
// Complexity: O(W×H) time, O(1) extra memory.
package costfield
