// Command advent2021 runs the grid puzzles: day09 (smoke basins) and
// day11 (dumbo octopus).
//
//	advent2021 day09 day09_input.txt
//	advent2021 day11 --strategy queue day11_input.txt
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("run failed")
		os.Exit(1)
	}
}
