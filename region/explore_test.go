package region_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/xram64/advent2021/grid"
	"github.com/xram64/advent2021/region"
)

// maskOf builds a wall mask from 0/1 literals (1 = wall).
func maskOf(rows [][]int) *grid.Grid[bool] {
	return region.WallMask(grid.MustFromRows(rows), func(v int) bool { return v == 1 })
}

// ExploreSuite groups tests for the scan-line explorer.
type ExploreSuite struct {
	suite.Suite
}

func TestExploreSuite(t *testing.T) {
	suite.Run(t, new(ExploreSuite))
}

// TestColumnWallWithGap: column 2 is walled on every row except row 2,
// so the gap at (2,2) joins both halves into a single 21-cell region.
func (s *ExploreSuite) TestColumnWallWithGap() {
	mask := maskOf([][]int{
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
	})
	got, err := region.Explore(grid.Pos(0, 0), mask)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 21, got.Size())
	require.True(s.T(), got.Has(grid.Pos(2, 2)), "gap cell belongs to the region")
	require.True(s.T(), got.Has(grid.Pos(4, 4)), "far side reached through the gap")
	require.False(s.T(), got.Has(grid.Pos(0, 2)), "wall cell excluded")
}

// TestSealedColumnWall: with column 2 fully walled, a seed at (0,0) only
// reaches the left partition (columns 0 and 1).
func (s *ExploreSuite) TestSealedColumnWall() {
	mask := maskOf([][]int{
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
	})
	got, err := region.Explore(grid.Pos(0, 0), mask)
	require.NoError(s.T(), err)

	var want []grid.Position
	for r := 0; r < 5; r++ {
		want = append(want, grid.Pos(r, 0), grid.Pos(r, 1))
	}
	require.Equal(s.T(), want, grid.Sorted(got))
}

// TestSingleCellRegion: a seed boxed in by walls returns only itself.
func (s *ExploreSuite) TestSingleCellRegion() {
	mask := maskOf([][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})
	got, err := region.Explore(grid.Pos(1, 1), mask)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []grid.Position{{Row: 1, Col: 1}}, grid.Sorted(got))
}

// TestBoundarySeed: seeds on the edge and in corners never step outside.
func (s *ExploreSuite) TestBoundarySeed() {
	mask := maskOf([][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	for _, seed := range []grid.Position{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 2}, {Row: 1, Col: 0}} {
		got, err := region.Explore(seed, mask)
		require.NoError(s.T(), err, "seed %v", seed)
		require.Equal(s.T(), 8, got.Size(), "seed %v", seed)
	}
}

// TestSeedIsolatedInRow: the seed's row is blocked on both sides, so the
// region is only reachable through the seed's own column.
func (s *ExploreSuite) TestSeedIsolatedInRow() {
	mask := maskOf([][]int{
		{1, 0, 1},
		{1, 0, 1},
		{0, 0, 0},
	})
	got, err := region.Explore(grid.Pos(0, 1), mask)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, got.Size())
}

// TestSerpentine: a winding corridor needs many alternating rounds.
func (s *ExploreSuite) TestSerpentine() {
	mask := maskOf([][]int{
		{0, 0, 0, 0, 0},
		{1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1},
		{0, 0, 0, 0, 0},
	})
	var rounds []int
	got, err := region.Explore(grid.Pos(0, 0), mask, region.WithOnRound(func(round int, _ region.Axis, _ int) {
		rounds = append(rounds, round)
	}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 17, got.Size())
	require.GreaterOrEqual(s.T(), len(rounds), 5)
	for i, r := range rounds {
		require.Equal(s.T(), i+1, r)
	}
}

// TestRoundAxesAlternate checks that the OnRound hook sees alternating axes,
// starting with the axis chosen by WithScanOrder.
func (s *ExploreSuite) TestRoundAxesAlternate() {
	mask := maskOf([][]int{
		{0, 0, 0},
		{0, 0, 0},
	})
	for _, tc := range []struct {
		order region.ScanOrder
		first region.Axis
	}{
		{region.RowFirst, region.Horizontal},
		{region.ColumnFirst, region.Vertical},
	} {
		var axes []region.Axis
		_, err := region.Explore(grid.Pos(0, 0), mask,
			region.WithScanOrder(tc.order),
			region.WithOnRound(func(_ int, a region.Axis, _ int) { axes = append(axes, a) }))
		require.NoError(s.T(), err)
		require.NotEmpty(s.T(), axes)
		require.Equal(s.T(), tc.first, axes[0])
		for i := 1; i < len(axes); i++ {
			require.NotEqual(s.T(), axes[i-1], axes[i], "round %d", i+1)
		}
	}
}

// TestErrors covers every precondition violation.
func (s *ExploreSuite) TestErrors() {
	mask := maskOf([][]int{{0, 1}})

	_, err := region.Explore(grid.Pos(0, 0), nil)
	require.ErrorIs(s.T(), err, region.ErrNilMask)

	_, err = region.Explore(grid.Pos(0, 0), &grid.Grid[bool]{})
	require.ErrorIs(s.T(), err, grid.ErrEmptyGrid)

	_, err = region.Explore(grid.Pos(0, 1), mask)
	require.ErrorIs(s.T(), err, region.ErrSeedIsWall)

	_, err = region.Explore(grid.Pos(3, 0), mask)
	require.ErrorIs(s.T(), err, region.ErrSeedOutOfRange)

	_, err = region.Explore(grid.Pos(0, 0), mask, region.WithMaxRounds(-1))
	require.ErrorIs(s.T(), err, region.ErrOptionViolation)

	_, err = region.Explore(grid.Pos(0, 0), mask, region.WithScanOrder(region.ScanOrder(7)))
	require.ErrorIs(s.T(), err, region.ErrOptionViolation)
}

// TestNonConvergence: a ceiling too low for the corridor yields a flagged
// partial result rather than a silent truncation.
func (s *ExploreSuite) TestNonConvergence() {
	mask := maskOf([][]int{
		{0, 0, 0, 0, 0},
		{1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1},
		{0, 0, 0, 0, 0},
	})
	got, err := region.Explore(grid.Pos(0, 0), mask, region.WithMaxRounds(2))
	require.Error(s.T(), err)
	require.True(s.T(), errors.Is(err, region.ErrNonConvergence))

	var nce *region.NonConvergenceError
	require.True(s.T(), errors.As(err, &nce), "error must be NonConvergenceError")
	require.Equal(s.T(), 2, nce.Rounds)
	require.Equal(s.T(), got.Size(), nce.Found)
	require.Positive(s.T(), nce.Frontier)
	require.Less(s.T(), got.Size(), 17)
	require.True(s.T(), got.Has(grid.Pos(0, 0)))
}
