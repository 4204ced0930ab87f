package grid

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Set is a hash set of positions. Use NewSet or SetOf; the zero value is not usable.
type Set = mapset.Set[Position]

// NewSet returns an empty position set.
func NewSet() Set {
	return mapset.New[Position]()
}

// SetOf returns a set holding the given positions.
func SetOf(ps ...Position) Set {
	s := mapset.New[Position]()
	for _, p := range ps {
		s.Put(p)
	}
	return s
}

// Sorted returns the members of s in row-major order.
func Sorted(s Set) []Position {
	out := make([]Position, 0, s.Size())
	s.Each(func(p Position) {
		out = append(out, p)
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Equal reports whether a and b hold exactly the same positions.
func Equal(a, b Set) bool {
	if a.Size() != b.Size() {
		return false
	}
	same := true
	a.Each(func(p Position) {
		if same && !b.Has(p) {
			same = false
		}
	})
	return same
}
