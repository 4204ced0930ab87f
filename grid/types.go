package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and addressing.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfRange indicates a position outside the grid bounds.
	ErrOutOfRange = errors.New("grid: position out of range")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, right, down, left.
	Conn4 Connectivity = iota
	// Conn8 uses the Moore neighborhood: all 8 surrounding cells.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Offsets are listed clockwise starting from "up", as {dRow, dCol}.
var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// Offsets returns the {dRow, dCol} offsets for the connectivity.
// The returned slice is shared and must not be modified.
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// Position addresses a single cell. It is comparable and can be used as a
// map key or set element.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns p shifted by the given offset.
func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is a rectangular array of cells stored in row-major order.
// Rows and Cols are fixed at construction; cells are mutable in place.
type Grid[T any] struct {
	Rows, Cols int
	cells      []T
}
