package grid

import "fmt"

// New allocates a rows×cols grid filled with the zero value of T.
// Returns ErrEmptyGrid if either dimension is not positive.
func New[T any](rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid[T]{Rows: rows, Cols: cols, cells: make([]T, rows*cols)}, nil
}

// FromRows constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later changes to values do not leak in.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func FromRows[T any](values [][]T) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	g := &Grid[T]{Rows: rows, Cols: cols, cells: make([]T, 0, rows*cols)}
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// MustFromRows is like FromRows but panics on error. Intended for literal fixtures.
func MustFromRows[T any](values [][]T) *Grid[T] {
	g, err := FromRows(values)
	if err != nil {
		panic(err)
	}
	return g
}

// Len returns the number of cells, Rows×Cols.
func (g *Grid[T]) Len() int {
	return g.Rows * g.Cols
}

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid[T]) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// Check returns ErrOutOfRange (wrapped with the position) when p is outside the grid.
func (g *Grid[T]) Check(p Position) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v not in %dx%d", ErrOutOfRange, p, g.Rows, g.Cols)
	}
	return nil
}

// At returns the value at p. It panics if p is out of range, like a slice index.
func (g *Grid[T]) At(p Position) T {
	return g.cells[g.index(p)]
}

// Set stores v at p. It panics if p is out of range, like a slice index.
func (g *Grid[T]) Set(p Position, v T) {
	g.cells[g.index(p)] = v
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(p Position, v T)) {
	for i, v := range g.cells {
		fn(g.position(i), v)
	}
}

// Update replaces every cell with fn(p, v), in row-major order.
func (g *Grid[T]) Update(fn func(p Position, v T) T) {
	for i, v := range g.cells {
		g.cells[i] = fn(g.position(i), v)
	}
}

// Positions returns every position of the grid in row-major order.
func (g *Grid[T]) Positions() []Position {
	out := make([]Position, len(g.cells))
	for i := range g.cells {
		out[i] = g.position(i)
	}
	return out
}

// Neighbors returns the in-bounds neighbors of p under conn.
// Boundary cells have fewer neighbors; nothing outside the grid is returned.
func (g *Grid[T]) Neighbors(p Position, conn Connectivity) []Position {
	offs := conn.Offsets()
	out := make([]Position, 0, len(offs))
	for _, d := range offs {
		q := p.Add(d[0], d[1])
		if g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Clone returns a deep snapshot of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{Rows: g.Rows, Cols: g.Cols, cells: cells}
}

// ToRows exports the grid as a freshly allocated 2D slice.
func (g *Grid[T]) ToRows() [][]T {
	out := make([][]T, g.Rows)
	for r := 0; r < g.Rows; r++ {
		out[r] = make([]T, g.Cols)
		copy(out[r], g.cells[r*g.Cols:(r+1)*g.Cols])
	}
	return out
}

// Map derives a new grid of the same shape by applying fn to every cell.
// Typical use is deriving a wall mask from a height grid.
func Map[T, U any](g *Grid[T], fn func(T) U) *Grid[U] {
	cells := make([]U, len(g.cells))
	for i, v := range g.cells {
		cells[i] = fn(v)
	}
	return &Grid[U]{Rows: g.Rows, Cols: g.Cols, cells: cells}
}

// index maps p to its row-major index: Row*Cols + Col.
func (g *Grid[T]) index(p Position) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: position %v out of range %dx%d", p, g.Rows, g.Cols))
	}
	return p.Row*g.Cols + p.Col
}

// position converts a row-major index back to a Position.
func (g *Grid[T]) position(i int) Position {
	return Position{Row: i / g.Cols, Col: i % g.Cols}
}
