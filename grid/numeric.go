package grid

import "golang.org/x/exp/constraints"

// Number is any integer or floating-point cell type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the sum of all cells.
func Sum[T Number](g *Grid[T]) T {
	var total T
	for _, v := range g.cells {
		total += v
	}
	return total
}

// AddAll adds delta to every cell in place.
func AddAll[T Number](g *Grid[T], delta T) {
	for i := range g.cells {
		g.cells[i] += delta
	}
}

// Count returns how many cells satisfy pred.
func Count[T any](g *Grid[T], pred func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if pred(v) {
			n++
		}
	}
	return n
}
