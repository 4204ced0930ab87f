package cascade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xram64/advent2021/cascade"
	"github.com/xram64/advent2021/grid"
)

// exampleGrid is the 10×10 worked example of the octopus puzzle.
func exampleGrid() *grid.Grid[int] {
	return grid.MustFromRows([][]int{
		{5, 4, 8, 3, 1, 4, 3, 2, 2, 3},
		{2, 7, 4, 5, 8, 5, 4, 7, 1, 1},
		{5, 2, 6, 4, 5, 5, 6, 1, 7, 3},
		{6, 1, 4, 1, 3, 3, 6, 1, 4, 6},
		{6, 3, 5, 7, 3, 8, 5, 4, 7, 8},
		{4, 1, 6, 7, 5, 2, 4, 6, 4, 5},
		{2, 1, 7, 6, 8, 4, 1, 7, 2, 1},
		{6, 8, 8, 2, 8, 8, 1, 1, 3, 4},
		{4, 8, 4, 6, 8, 4, 8, 5, 5, 4},
		{5, 2, 8, 3, 7, 5, 1, 5, 2, 6},
	})
}

// TestSimulator_Run checks flash totals after 10 and 100 ticks.
func TestSimulator_Run(t *testing.T) {
	for _, strategy := range []cascade.Strategy{cascade.ScanRetry, cascade.FrontierQueue} {
		t.Run(strategy.String(), func(t *testing.T) {
			sim, err := cascade.NewSimulator(exampleGrid(), cascade.WithStrategy(strategy))
			require.NoError(t, err)

			n, err := sim.Run(10)
			require.NoError(t, err)
			assert.Equal(t, 204, n)

			n, err = sim.Run(90)
			require.NoError(t, err)
			assert.Equal(t, 1656-204, n)
			assert.Equal(t, 1656, sim.TotalFlashes())
			assert.Equal(t, 100, sim.Steps())
		})
	}
}

// TestSimulator_RunUntilSynchronized finds the first all-flash tick.
func TestSimulator_RunUntilSynchronized(t *testing.T) {
	sim, err := cascade.NewSimulator(exampleGrid())
	require.NoError(t, err)

	step, err := sim.RunUntilSynchronized(1000)
	require.NoError(t, err)
	assert.Equal(t, 195, step)
	assert.Equal(t, 0, grid.Sum(sim.Grid()), "a synchronized tick leaves every cell at zero")
}

// TestSimulator_NotSynchronized gives up after the limit.
func TestSimulator_NotSynchronized(t *testing.T) {
	sim, err := cascade.NewSimulator(exampleGrid())
	require.NoError(t, err)

	step, err := sim.RunUntilSynchronized(50)
	require.ErrorIs(t, err, cascade.ErrNotSynchronized)
	assert.Equal(t, 50, step)

	_, err = sim.RunUntilSynchronized(0)
	require.ErrorIs(t, err, cascade.ErrOptionViolation)
	_, err = sim.Run(-1)
	require.ErrorIs(t, err, cascade.ErrOptionViolation)
}

// TestSimulator_OwnsItsGrid: the caller's grid is never mutated and
// snapshots are independent.
func TestSimulator_OwnsItsGrid(t *testing.T) {
	initial := exampleGrid()
	want := initial.ToRows()

	sim, err := cascade.NewSimulator(initial, cascade.WithHistory())
	require.NoError(t, err)
	_, err = sim.Run(3)
	require.NoError(t, err)
	assert.Equal(t, want, initial.ToRows())

	hist := sim.History()
	require.Len(t, hist, 4)
	assert.Equal(t, want, hist[0].ToRows())
	assert.Equal(t, sim.Grid().ToRows(), hist[3].ToRows())

	snap := sim.Grid()
	snap.Set(grid.Pos(0, 0), 42)
	assert.NotEqual(t, 42, sim.Grid().At(grid.Pos(0, 0)))
}

// TestSimulator_NoHistoryByDefault keeps memory flat unless asked.
func TestSimulator_NoHistoryByDefault(t *testing.T) {
	sim, err := cascade.NewSimulator(exampleGrid())
	require.NoError(t, err)
	sim.Tick()
	assert.Empty(t, sim.History())
}

// TestNewSimulator_Errors mirrors Step's validation.
func TestNewSimulator_Errors(t *testing.T) {
	_, err := cascade.NewSimulator(nil)
	assert.ErrorIs(t, err, cascade.ErrNilGrid)
	_, err = cascade.NewSimulator(&grid.Grid[int]{})
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
	_, err = cascade.NewSimulator(exampleGrid(), cascade.WithThreshold(-3))
	assert.ErrorIs(t, err, cascade.ErrOptionViolation)
}
