// Package region finds the connected open area around a seed cell of a wall
// mask, using an alternating scan-line flood fill.
//
// What:
//
//   - Explore(seed, mask, opts...) returns the maximal set of open cells
//     reachable from seed through 4-directional moves, never crossing a wall
//     cell or the grid boundary.
//   - Reachable is a plain breadth-first reference search over the same
//     adjacency; Components lists every open region of a mask.
//   - WallMask derives a boolean mask from an integer grid.
//
// How:
//
//	Round 1 scans the seed's row left and right until a wall or the boundary
//	stops it. Every open cell found becomes the frontier. Round 2 scans the
//	column of every frontier cell up and down, round 3 the rows again, and so
//	on. Only cells absent from the result so far join the next frontier; the
//	seed is carried into round 2 so both of its lines get scanned. The search
//	stops at the first later round that discovers nothing new.
//
//	  row scan        column scan
//	  . . . #         . | . #
//	  ← S → #         ─ S ─ #
//	  . . . #         . | . #
//
//	The fixed point is the 4-connected component of seed, independent of
//	whether rows or columns are scanned first (WithScanOrder).
//
// Options:
//
//   - WithMaxRounds(n): round ceiling; 0 selects Rows×Cols+1, which valid
//     input can never exceed.
//   - WithScanOrder(RowFirst | ColumnFirst).
//   - WithOnRound(fn): observe each round's axis and discovery count.
//
// Errors:
//
//   - ErrNilMask, grid.ErrEmptyGrid:  no mask to explore.
//   - ErrSeedOutOfRange:              seed lies outside the mask.
//   - ErrSeedIsWall:                  seed is itself a wall cell.
//   - ErrOptionViolation:             invalid option value.
//   - *NonConvergenceError:           the round ceiling was hit; matches
//     ErrNonConvergence via errors.Is and is returned together with the
//     partial region found so far.
//
// Complexity:
//
//   - Explore:     O(k×(R+C)) per round for k frontier cells, O(R×C) memory.
//   - Reachable:   O(R×C), Memory O(R×C).
//   - Components:  O(R×C), Memory O(R×C).
package region
