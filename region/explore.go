package region

import (
	"github.com/xram64/advent2021/grid"
)

// explorer holds the mutable state of one Explore call.
type explorer struct {
	mask     *grid.Grid[bool]
	opts     Options
	found    grid.Set
	frontier []grid.Position
}

// Explore returns the 4-connected open region containing seed.
// mask[p] == true marks p as a wall. The mask is only read.
//
// Behavior:
//  1. Validate mask, seed and options.
//  2. Scan the seed's row (or column, with ColumnFirst) to both ends.
//  3. Scan every newly found cell along the other axis; alternate axes.
//  4. Stop when a round after the first finds nothing new.
//
// If the round ceiling is reached first, Explore returns the partial region
// together with a *NonConvergenceError.
func Explore(seed grid.Position, mask *grid.Grid[bool], opts ...Option) (grid.Set, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return grid.Set{}, o.err
	}
	if err := validate(seed, mask); err != nil {
		return grid.Set{}, err
	}
	if o.MaxRounds == 0 {
		o.MaxRounds = mask.Len() + 1
	}

	e := &explorer{
		mask:     mask,
		opts:     o,
		found:    grid.NewSet(),
		frontier: []grid.Position{seed},
	}
	e.found.Put(seed)

	return e.found, e.loop()
}

func validate(seed grid.Position, mask *grid.Grid[bool]) error {
	if mask == nil {
		return ErrNilMask
	}
	if mask.Rows <= 0 || mask.Cols <= 0 {
		return grid.ErrEmptyGrid
	}
	if !mask.InBounds(seed) {
		return ErrSeedOutOfRange
	}
	if mask.At(seed) {
		return ErrSeedIsWall
	}
	return nil
}

// loop alternates scan rounds until the frontier empties or the ceiling is hit.
func (e *explorer) loop() error {
	axis := Horizontal
	if e.opts.Order == ColumnFirst {
		axis = Vertical
	}

	for round := 1; len(e.frontier) > 0; round++ {
		if round > e.opts.MaxRounds {
			return &NonConvergenceError{
				Rounds:   round - 1,
				Found:    e.found.Size(),
				Frontier: len(e.frontier),
			}
		}

		var next []grid.Position
		if round == 1 {
			// the seed itself still needs a scan along the other axis
			next = append(next, e.frontier...)
		}
		discovered := 0
		for _, p := range e.frontier {
			for _, q := range e.scan(p, axis) {
				if e.found.Has(q) {
					continue
				}
				e.found.Put(q)
				next = append(next, q)
				discovered++
			}
		}
		e.opts.OnRound(round, axis, discovered)

		e.frontier = next
		axis = axis.flip()
	}
	return nil
}

// scan walks from p in both directions along axis and returns every open
// cell passed, stopping at the first wall or at the boundary on each side.
func (e *explorer) scan(p grid.Position, axis Axis) []grid.Position {
	dRow, dCol := 0, 1
	if axis == Vertical {
		dRow, dCol = 1, 0
	}

	var out []grid.Position
	for _, sign := range [2]int{-1, 1} {
		for q := p.Add(sign*dRow, sign*dCol); e.mask.InBounds(q) && !e.mask.At(q); q = q.Add(sign*dRow, sign*dCol) {
			out = append(out, q)
		}
	}
	return out
}
