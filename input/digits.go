// Package input parses line-oriented puzzle input into grids.
//
// The format is one row per line and one decimal digit per cell, with no
// delimiters. Blank lines are skipped and CRLF line endings are accepted.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xram64/advent2021/grid"
)

// ErrBadDigit is matched by *ParseError.
var ErrBadDigit = errors.New("input: not a digit")

// ParseError locates a non-digit character. Line and Col are 1-based.
type ParseError struct {
	Line, Col int
	Char      rune
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("input: line %d col %d: not a digit: %q", e.Line, e.Col, e.Char)
}

// Is makes errors.Is(err, ErrBadDigit) succeed.
func (e *ParseError) Is(target error) bool {
	return target == ErrBadDigit
}

// ReadDigits reads a digit grid from r.
// Returns grid.ErrEmptyGrid for input without digits, grid.ErrNonRectangular
// for ragged rows, and *ParseError for any other character.
func ReadDigits(r io.Reader) (*grid.Grid[int], error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row := make([]int, 0, len(text))
		for i, ch := range text {
			if ch < '0' || ch > '9' {
				return nil, &ParseError{Line: line, Col: i + 1, Char: ch}
			}
			row = append(row, int(ch-'0'))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input: reading: %w", err)
	}
	return grid.FromRows(rows)
}

// LoadDigits reads a digit grid from the named file.
func LoadDigits(path string) (*grid.Grid[int], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	defer f.Close()

	g, err := ReadDigits(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
