package grid

import "gonum.org/v1/gonum/mat"

// FromDense copies a gonum matrix into a new grid.
func FromDense(m mat.Matrix) *Grid {
	r, c := m.Dims()
	g := New(r, c)

	if d, ok := m.(*mat.Dense); ok {
		raw := d.RawMatrix()
		for i := range r {
			copy(g.Row(i), raw.Data[i*raw.Stride:i*raw.Stride+c])
		}

		return g
	}

	for i := range r {
		row := g.Row(i)
		for j := range c {
			row[j] = m.At(i, j)
		}
	}

	return g
}

// Dense copies the grid into a new gonum matrix. An empty grid yields an
// empty matrix.
func (g *Grid) Dense() *mat.Dense {
	if g.rows == 0 || g.cols == 0 {
		return &mat.Dense{}
	}

	data := make([]float64, len(g.data))
	copy(data, g.data)

	return mat.NewDense(g.rows, g.cols, data)
}
