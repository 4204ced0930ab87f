package cascade

import (
	"github.com/xram64/advent2021/grid"
)

// Step advances g by exactly one tick and returns the positions that
// flashed during it. g is modified in place.
//
// After Step returns, every flashed cell is 0 and every other cell holds its
// charged value; no position appears in the set twice.
func Step(g *grid.Grid[int], opts ...Option) (grid.Set, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return grid.Set{}, err
	}
	if g == nil {
		return grid.Set{}, ErrNilGrid
	}
	if g.Rows <= 0 || g.Cols <= 0 {
		return grid.Set{}, grid.ErrEmptyGrid
	}
	return step(g, o), nil
}

// step runs one validated tick.
func step(g *grid.Grid[int], o Options) grid.Set {
	grid.AddAll(g, 1)
	o.OnCharge(g)

	t := &tick{g: g, opts: o, flashed: grid.NewSet()}
	if o.Strategy == FrontierQueue {
		t.propagateQueue()
	} else {
		t.propagateScan()
	}

	t.flashed.Each(func(p grid.Position) {
		g.Set(p, 0)
	})
	return t.flashed
}

// tick holds the state of one propagation.
type tick struct {
	g       *grid.Grid[int]
	opts    Options
	flashed grid.Set
}

// charged reports whether p is above threshold and has not flashed yet.
func (t *tick) charged(p grid.Position) bool {
	return t.g.At(p) > t.opts.Threshold && !t.flashed.Has(p)
}

// flash records p and charges its Moore neighbors, returning them.
func (t *tick) flash(p grid.Position) []grid.Position {
	t.flashed.Put(p)
	t.opts.OnFlash(p)
	nbrs := t.g.Neighbors(p, grid.Conn8)
	for _, q := range nbrs {
		t.g.Set(q, t.g.At(q)+1)
	}
	return nbrs
}

// propagateScan repeats full row-major passes until one adds no flash.
// Each productive pass adds at least one flash, so it ends within R×C+1 passes.
func (t *tick) propagateScan() {
	positions := t.g.Positions()
	for changed := true; changed; {
		changed = false
		for _, p := range positions {
			if t.charged(p) {
				t.flash(p)
				changed = true
			}
		}
	}
}

// propagateQueue seeds a queue with every cell over threshold and pushes
// neighbors the moment they cross it.
func (t *tick) propagateQueue() {
	var queue []grid.Position
	t.g.Each(func(p grid.Position, v int) {
		if v > t.opts.Threshold {
			queue = append(queue, p)
		}
	})
	for qi := 0; qi < len(queue); qi++ {
		p := queue[qi]
		if t.flashed.Has(p) {
			continue
		}
		for _, q := range t.flash(p) {
			if t.charged(q) {
				queue = append(queue, q)
			}
		}
	}
}
