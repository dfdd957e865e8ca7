// Package grid models a fixed W×H board of cells joined by explicit
// four-directional links, the substrate for cost fields and greedy walks.
//
// What:
//
//   - Grid owns a flat, row-major arena of Cells; a Cell never owns another.
//   - Neighbour links are arena indices (None at the border), so cycles in the
//     adjacency graph carry no ownership question.
//   - Links are symmetric: A's Right neighbour is B iff B's Left neighbour is A.
//   - Sever and Isolate cut links in both directions, keeping symmetry.
//   - Reachable floods the current links to tell whether two cells connect.
//
// Why:
//
//   - Path visualizers: per-cell Status drives display without list scans.
//   - Heuristic fields: every Cell carries a Cost written by package costfield.
//
// Complexity:
//
//   - New:       O(W×H) time and memory.
//   - CellAt:    O(1).
//   - Reachable: O(W×H) time, O(W×H) memory.
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive.
//   - ErrOutOfBounds: a coordinate lies outside [0,W)×[0,H).
//
// Coordinates are never clamped: a silently clamped lookup would hand the
// caller a cell whose links do not match the coordinate it asked for.
package grid
