// Package day11 solves the dumbo-octopus puzzle on top of cascade.Simulator.
// Both parts work on their own copy of the energy grid.
package day11

import (
	"fmt"

	"github.com/xram64/advent2021/cascade"
	"github.com/xram64/advent2021/grid"
)

// Steps is the tick count of part 1.
const Steps = 100

// TotalFlashes counts flashes over the first steps ticks.
func TotalFlashes(energy *grid.Grid[int], steps int, opts ...cascade.Option) (int, error) {
	sim, err := cascade.NewSimulator(energy, opts...)
	if err != nil {
		return 0, fmt.Errorf("day11: %w", err)
	}
	return sim.Run(steps)
}

// FirstSynchronizedStep returns the first tick on which every octopus
// flashes, giving up after limit ticks.
func FirstSynchronizedStep(energy *grid.Grid[int], limit int, opts ...cascade.Option) (int, error) {
	sim, err := cascade.NewSimulator(energy, opts...)
	if err != nil {
		return 0, fmt.Errorf("day11: %w", err)
	}
	return sim.RunUntilSynchronized(limit)
}
