package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xram64/advent2021/day09"
	"github.com/xram64/advent2021/grid"
	"github.com/xram64/advent2021/input"
	"github.com/xram64/advent2021/region"
)

func newDay09Cmd() *cobra.Command {
	var (
		maxRounds int
		scanOrder string
	)
	cmd := &cobra.Command{
		Use:   "day09 <input>",
		Short: "Low points and basins of a height map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := parseScanOrder(scanOrder)
			if err != nil {
				return err
			}
			heights, err := input.LoadDigits(args[0])
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"rows": heights.Rows,
				"cols": heights.Cols,
			}).Debug("loaded height map")

			return runDay09(cmd, heights,
				region.WithMaxRounds(maxRounds),
				region.WithScanOrder(order),
				region.WithOnRound(func(round int, axis region.Axis, discovered int) {
					log.WithFields(logrus.Fields{
						"round":      round,
						"axis":       axis,
						"discovered": discovered,
					}).Debug("scan round")
				}))
		},
	}
	cmd.Flags().IntVar(&maxRounds, "max-rounds", 0, "Round ceiling for basin exploration (0 = rows*cols+1)")
	cmd.Flags().StringVar(&scanOrder, "scan-order", "row", "Axis scanned first: row or column")
	return cmd
}

func parseScanOrder(s string) (region.ScanOrder, error) {
	switch s {
	case "row":
		return region.RowFirst, nil
	case "column", "col":
		return region.ColumnFirst, nil
	default:
		return region.RowFirst, fmt.Errorf("invalid scan order %q (use row or column)", s)
	}
}

func runDay09(cmd *cobra.Command, heights *grid.Grid[int], opts ...region.Option) error {
	out := cmd.OutOrStdout()

	lows := day09.LowPoints(heights)
	fmt.Fprintf(out, "[Part 1] There are %d low points in the heightmap with a total risk level of %d.\n",
		len(lows), day09.RiskLevel(heights))

	product, err := day09.BasinProduct(heights, 3, opts...)
	if err != nil {
		if errors.Is(err, region.ErrNonConvergence) {
			log.WithError(err).Warn("basin exploration hit its round ceiling")
		}
		return err
	}
	fmt.Fprintf(out, "[Part 2] The product of the three largest basin sizes is %d.\n", product)
	return nil
}
