// Package advent2021 collects the grid puzzles of Advent of Code 2021 around
// two small simulation engines.
//
// Under the hood, everything is organized into flat subpackages:
//
//	grid/     — Grid[T], Position, Conn4/Conn8 neighbors, position sets
//	region/   — scan-line flood fill (Explore), BFS reference, components
//	cascade/  — chain-reaction stepper (Step) and Simulator caller loop
//	input/    — one-digit-per-cell text loader
//	day09/    — low points, risk level, basin sizes
//	day11/    — flash totals and first synchronized step
//	cmd/advent2021 — command line driver
//
// Quick ASCII example of a basin bounded by 9s:
//
//	2 1 9
//	3 9 8
//	9 8 5
//
// The low point 1 at (0,1) drains the three cells 2, 1 and 3.
//
//	go run ./cmd/advent2021 day09 day09_input.txt
package advent2021
