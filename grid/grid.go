package grid

import "fmt"

// Shape is the (rows, cols) extent of a grid.
type Shape struct {
	Rows int
	Cols int
}

// String formats the shape as "(rows, cols)".
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s.Rows, s.Cols)
}

// Size returns the number of cells.
func (s Shape) Size() int {
	return s.Rows * s.Cols
}

// Grid is a dense row-major 2D array of float64 cells.
type Grid struct {
	rows int
	cols int
	data []float64
}

// New returns a zeroed grid. It panics if rows or cols is negative.
func New(rows, cols int) *Grid {
	if rows < 0 || cols < 0 {
		panic("grid: negative dimensions")
	}

	return &Grid{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Filled returns a grid with every cell set to value.
func Filled(rows, cols int, value float64) *Grid {
	g := New(rows, cols)
	g.Fill(value)

	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Shape returns the grid extent.
func (g *Grid) Shape() Shape { return Shape{Rows: g.rows, Cols: g.cols} }

// Data returns the row-major backing slice.
func (g *Grid) Data() []float64 { return g.data }

// At returns the value at (r, c).
func (g *Grid) At(r, c int) float64 {
	return g.data[r*g.cols+c]
}

// Set stores v at (r, c).
func (g *Grid) Set(r, c int, v float64) {
	g.data[r*g.cols+c] = v
}

// Row returns a view of row r. Writes go to the grid.
func (g *Grid) Row(r int) []float64 {
	off := r * g.cols
	return g.data[off : off+g.cols : off+g.cols]
}

// Col copies column c into dst, reusing its capacity, and returns it.
func (g *Grid) Col(c int, dst []float64) []float64 {
	if cap(dst) >= g.rows {
		dst = dst[:g.rows]
	} else {
		dst = make([]float64, g.rows)
	}

	for r := range g.rows {
		dst[r] = g.data[r*g.cols+c]
	}

	return dst
}

// Fill sets every cell to v.
func (g *Grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Resize changes the extent, reusing the backing array when it is large
// enough. Cell contents are unspecified afterwards.
func (g *Grid) Resize(rows, cols int) {
	if rows < 0 || cols < 0 {
		panic("grid: negative dimensions")
	}

	n := rows * cols
	if cap(g.data) >= n {
		g.data = g.data[:n]
	} else {
		g.data = make([]float64, n)
	}

	g.rows, g.cols = rows, cols
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{rows: g.rows, cols: g.cols, data: make([]float64, len(g.data))}
	copy(out.data, g.data)

	return out
}

// Equal reports whether o has the same shape and identical cell values.
func (g *Grid) Equal(o *Grid) bool {
	if g.Shape() != o.Shape() {
		return false
	}

	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// ToRows copies the grid into a slice of rows.
func (g *Grid) ToRows() [][]float64 {
	out := make([][]float64, g.rows)
	for r := range out {
		out[r] = append([]float64(nil), g.Row(r)...)
	}

	return out
}
