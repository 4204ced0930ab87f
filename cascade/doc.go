// Package cascade advances a grid of energy levels through discrete
// "charge, cascade, reset" ticks and reports which cells flashed.
//
// What:
//
//   - Step(g, opts...) mutates g by exactly one tick and returns the set of
//     positions that activated during it:
//     1. every cell gains 1;
//     2. every cell above the threshold (9) that has not flashed this tick
//     flashes once and adds 1 to each in-bounds Moore neighbor, repeated
//     until a tick stabilises;
//     3. every flashed cell is reset to 0.
//   - Simulator owns a private copy of a grid and drives repeated ticks:
//     fixed-length runs and "run until every cell flashes at once".
//
// Ownership:
//
//	Step takes exclusive access to g for the duration of the call. Callers
//	that need the previous state must Clone the grid first; Simulator does
//	this for its history when WithHistory is set.
//
// Strategies:
//
//   - ScanRetry (default): rescan the whole grid until a pass produces no new
//     flash. At most R×C+1 passes, O((R×C)²) worst case per tick.
//   - FrontierQueue: push cells as they cross the threshold and process the
//     queue. O(R×C) per tick amortised.
//
//	Both produce identical grids and activation sets: flashing is monotone and
//	neighbor increments commute.
//
// Errors:
//
//   - ErrNilGrid, grid.ErrEmptyGrid:  nothing to step.
//   - ErrOptionViolation:             invalid option or limit.
//   - ErrNotSynchronized:             RunUntilSynchronized hit its step limit.
package cascade
