package region

import (
	"github.com/xram64/advent2021/grid"
)

// WallMask derives a wall mask from an integer grid: cells for which isWall
// returns true become walls.
func WallMask(values *grid.Grid[int], isWall func(int) bool) *grid.Grid[bool] {
	return grid.Map(values, isWall)
}

// Reachable returns the 4-connected open region containing seed using a
// plain breadth-first search. It accepts the same input as Explore and
// returns the same set; it exists as a cross-check and for callers that
// prefer a queue-based traversal.
//
// Time: O(R×C), Memory: O(R×C).
func Reachable(seed grid.Position, mask *grid.Grid[bool]) (grid.Set, error) {
	if err := validate(seed, mask); err != nil {
		return grid.Set{}, err
	}
	seen := grid.NewSet()
	seen.Put(seed)
	queue := []grid.Position{seed}

	for qi := 0; qi < len(queue); qi++ {
		for _, q := range mask.Neighbors(queue[qi], grid.Conn4) {
			if mask.At(q) || seen.Has(q) {
				continue
			}
			seen.Put(q)
			queue = append(queue, q)
		}
	}
	return seen, nil
}

// Components finds every 4-connected region of open cells.
// Regions are ordered by their first cell in row-major order; each region
// lists its cells in discovery order.
//
// Time: O(R×C), Memory: O(R×C).
func Components(mask *grid.Grid[bool]) ([][]grid.Position, error) {
	if mask == nil {
		return nil, ErrNilMask
	}
	if mask.Rows <= 0 || mask.Cols <= 0 {
		return nil, grid.ErrEmptyGrid
	}

	seen := grid.NewSet()
	var comps [][]grid.Position
	mask.Each(func(p grid.Position, wall bool) {
		if wall || seen.Has(p) {
			return
		}
		// BFS to collect the component
		seen.Put(p)
		comp := []grid.Position{p}
		for qi := 0; qi < len(comp); qi++ {
			for _, q := range mask.Neighbors(comp[qi], grid.Conn4) {
				if mask.At(q) || seen.Has(q) {
					continue
				}
				seen.Put(q)
				comp = append(comp, q)
			}
		}
		comps = append(comps, comp)
	})
	return comps, nil
}
