// Package scene is the single owner of a grid, its two markers and the
// search that walks it. Presentation layers talk to the core only through a
// Scene: marker coordinates, the commands SetStart, SetGoal, FindPath, Step
// and Reset, and read-only queries for display.
//
// A Scene is not safe for concurrent use; callers serialize commands, which
// an event loop does naturally. Moving a marker always resets the previous
// search first, and moving the goal recomputes the cost field.
package scene
