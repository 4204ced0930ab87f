package main

import (
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	profileDir string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	var stopper interface{ Stop() }

	rootCmd := &cobra.Command{
		Use:   "advent2021",
		Short: "Advent of Code 2021 grid puzzles",
		Long: `Solve the grid puzzles of Advent of Code 2021.

Examples:
  advent2021 day09 day09_input.txt
  advent2021 day11 --steps 100 --sync-limit 1000 day11_input.txt
  advent2021 day11 --strategy queue --profile ./prof day11_input.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if flags.verbose {
				log.SetLevel(logrus.DebugLevel)
			} else {
				log.SetLevel(logrus.InfoLevel)
			}
			if flags.profileDir != "" {
				stopper = profile.Start(profile.CPUProfile, profile.ProfilePath(flags.profileDir), profile.Quiet)
				log.WithField("dir", flags.profileDir).Debug("cpu profiling enabled")
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if stopper != nil {
				stopper.Stop()
				stopper = nil
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.profileDir, "profile", "", "Write a CPU profile into this directory")

	rootCmd.AddCommand(newDay09Cmd(), newDay11Cmd())
	return rootCmd
}
