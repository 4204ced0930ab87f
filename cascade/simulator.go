package cascade

import (
	"fmt"

	"github.com/xram64/advent2021/grid"
)

// Simulator owns a private copy of an energy grid and drives repeated ticks.
type Simulator struct {
	g       *grid.Grid[int]
	opts    Options
	steps   int
	flashes int
	history []*grid.Grid[int]
}

// NewSimulator copies initial and prepares a simulator for it.
// The caller's grid is never modified.
func NewSimulator(initial *grid.Grid[int], opts ...Option) (*Simulator, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if initial == nil {
		return nil, ErrNilGrid
	}
	if initial.Rows <= 0 || initial.Cols <= 0 {
		return nil, grid.ErrEmptyGrid
	}
	s := &Simulator{g: initial.Clone(), opts: o}
	if o.History {
		s.history = append(s.history, initial.Clone())
	}
	return s, nil
}

// Tick advances the grid by one step and returns the flashed positions.
func (s *Simulator) Tick() grid.Set {
	flashed := step(s.g, s.opts)
	s.steps++
	s.flashes += flashed.Size()
	if s.opts.History {
		s.history = append(s.history, s.g.Clone())
	}
	return flashed
}

// Run performs n ticks and returns the number of flashes they produced.
func (s *Simulator) Run(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: step count cannot be negative (%d)", ErrOptionViolation, n)
	}
	total := 0
	for i := 0; i < n; i++ {
		flashed := s.Tick()
		total += flashed.Size()
	}
	return total, nil
}

// RunUntilSynchronized ticks until one tick flashes every cell and returns
// the simulator's step count at that tick. It gives up with
// ErrNotSynchronized after limit further ticks.
func (s *Simulator) RunUntilSynchronized(limit int) (int, error) {
	if limit <= 0 {
		return 0, fmt.Errorf("%w: step limit must be positive (%d)", ErrOptionViolation, limit)
	}
	for i := 0; i < limit; i++ {
		flashed := s.Tick()
		if Synchronized(s.g, flashed) {
			return s.steps, nil
		}
	}
	return s.steps, fmt.Errorf("%w: %d steps", ErrNotSynchronized, limit)
}

// Steps returns the number of ticks performed so far.
func (s *Simulator) Steps() int { return s.steps }

// TotalFlashes returns the number of flashes across all ticks so far.
func (s *Simulator) TotalFlashes() int { return s.flashes }

// Grid returns a snapshot of the current grid.
func (s *Simulator) Grid() *grid.Grid[int] { return s.g.Clone() }

// History returns the recorded snapshots: the initial grid followed by one
// per tick. It is empty unless WithHistory was given.
func (s *Simulator) History() []*grid.Grid[int] {
	out := make([]*grid.Grid[int], len(s.history))
	copy(out, s.history)
	return out
}

// Synchronized reports whether flashed covers every cell of g.
func Synchronized(g *grid.Grid[int], flashed grid.Set) bool {
	return flashed.Size() == g.Len()
}
