// Package day09 solves the smoke-basin puzzle: low points of a height map
// and the basins that drain into them.
//
// A basin is the region around a low point bounded by height-9 cells, found
// with region.Explore.
package day09

import (
	"errors"
	"fmt"
	"sort"

	"github.com/xram64/advent2021/grid"
	"github.com/xram64/advent2021/region"
)

// WallHeight is the height that separates basins.
const WallHeight = 9

// ErrTooFewBasins is returned when fewer basins exist than requested.
var ErrTooFewBasins = errors.New("day09: not enough basins")

// Basin is the region draining into one low point.
type Basin struct {
	Low   grid.Position
	Cells grid.Set
}

// Size returns the number of cells in the basin.
func (b Basin) Size() int { return b.Cells.Size() }

// IsWall reports whether a cell of height h separates basins.
func IsWall(h int) bool { return h == WallHeight }

// LowPoints returns every cell strictly lower than all of its orthogonal
// neighbors, in row-major order.
func LowPoints(heights *grid.Grid[int]) []grid.Position {
	var lows []grid.Position
	heights.Each(func(p grid.Position, h int) {
		for _, q := range heights.Neighbors(p, grid.Conn4) {
			if h >= heights.At(q) {
				return
			}
		}
		lows = append(lows, p)
	})
	return lows
}

// RiskLevel sums 1+height over all low points.
func RiskLevel(heights *grid.Grid[int]) int {
	total := 0
	for _, p := range LowPoints(heights) {
		total += 1 + heights.At(p)
	}
	return total
}

// Basins explores the basin of every low point and returns them largest
// first; equal sizes keep row-major low point order. Low points that are
// themselves walls (a lone 9) have no basin and are skipped.
func Basins(heights *grid.Grid[int], opts ...region.Option) ([]Basin, error) {
	mask := region.WallMask(heights, IsWall)
	var basins []Basin
	for _, low := range LowPoints(heights) {
		if mask.At(low) {
			continue
		}
		cells, err := region.Explore(low, mask, opts...)
		if err != nil {
			return nil, fmt.Errorf("day09: basin at %v: %w", low, err)
		}
		basins = append(basins, Basin{Low: low, Cells: cells})
	}
	sort.SliceStable(basins, func(i, j int) bool {
		return basins[i].Size() > basins[j].Size()
	})
	return basins, nil
}

// BasinProduct multiplies the sizes of the n largest basins.
func BasinProduct(heights *grid.Grid[int], n int, opts ...region.Option) (int, error) {
	basins, err := Basins(heights, opts...)
	if err != nil {
		return 0, err
	}
	if n <= 0 || len(basins) < n {
		return 0, fmt.Errorf("%w: have %d, want %d", ErrTooFewBasins, len(basins), n)
	}
	product := 1
	for _, b := range basins[:n] {
		product *= b.Size()
	}
	return product, nil
}
