package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xram64/advent2021/cascade"
	"github.com/xram64/advent2021/day11"
	"github.com/xram64/advent2021/input"
)

func newDay11Cmd() *cobra.Command {
	var (
		steps     int
		syncLimit int
		strategy  string
	)
	cmd := &cobra.Command{
		Use:   "day11 <input>",
		Short: "Flash counts and synchronization of an octopus grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strat, err := cascade.ParseStrategy(strategy)
			if err != nil {
				return err
			}
			energy, err := input.LoadDigits(args[0])
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"rows":     energy.Rows,
				"cols":     energy.Cols,
				"strategy": strat,
			}).Debug("loaded energy grid")

			out := cmd.OutOrStdout()
			flashes, err := day11.TotalFlashes(energy, steps, cascade.WithStrategy(strat))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "[Part 1] After %d steps, a total of %d octopus flashes occurred.\n", steps, flashes)

			step, err := day11.FirstSynchronizedStep(energy, syncLimit, cascade.WithStrategy(strat))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "[Part 2] All octopi flash simultaneously on step %d.\n", step)
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", day11.Steps, "Number of steps for part 1")
	cmd.Flags().IntVar(&syncLimit, "sync-limit", 1000, "Give up part 2 after this many steps")
	cmd.Flags().StringVar(&strategy, "strategy", "scan", "Cascade propagation: scan or queue")
	return cmd
}
