// Package grid provides the rectangular cell storage shared by the region
// explorer and the chain-reaction stepper.
//
// What:
//
//   - Grid[T] wraps a rectangular, row-major slice of cells addressed by
//     Position{Row, Col}, with 0 ≤ Row < Rows and 0 ≤ Col < Cols.
//   - Conn4 (up, right, down, left) and Conn8 (Moore neighborhood) neighbor
//     enumeration that never leaves the grid bounds.
//   - Set is a hash set of positions (mapset.Set[Position]) used for regions
//     and activation sets.
//   - Generic numeric helpers (Sum, AddAll, Count, Map) over integer grids.
//
// Why:
//
//   - Both simulations share the same addressing, bounds and neighbor rules.
//   - Callers that need history take explicit deep copies with Clone; a Grid
//     is never shared implicitly.
//
// Complexity:
//
//   - At, Set, InBounds:  O(1).
//   - Clone, FromRows:     O(R×C) time and memory.
//   - Neighbors:           O(d), d = 4 or 8.
//
// Errors:
//
//   - ErrEmptyGrid:       grid has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrOutOfRange:      position lies outside the grid.
package grid
