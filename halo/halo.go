package halo

import (
	"fmt"

	"github.com/cwbudde/algo-recfilter/grid"
)

// Pad returns a copy of src grown by widthY rows at the top and bottom and
// widthX columns at the left and right.
func Pad(src *grid.Grid, widthY, widthX int, policy Policy) (*grid.Grid, error) {
	dst := &grid.Grid{}
	if err := PadInto(dst, src, widthY, widthX, policy); err != nil {
		return nil, err
	}

	return dst, nil
}

// PadInto writes the padded form of src into dst, resizing dst. dst and src
// must not be the same grid.
//
// Rows are padded first, then columns across the full row-padded height, so
// corner cells derive from the row halo.
func PadInto(dst, src *grid.Grid, widthY, widthX int, policy Policy) error {
	if err := validatePad(src, widthY, widthX, policy); err != nil {
		return err
	}

	rows, cols := src.Rows(), src.Cols()
	dst.Resize(rows+2*widthY, cols+2*widthX)

	for r := range rows {
		copy(dst.Row(r + widthY)[widthX:widthX+cols], src.Row(r))
	}

	padRows(dst, rows, cols, widthY, widthX, policy)
	padCols(dst, cols, widthX, policy)

	return nil
}

// Unpad returns a copy of src with widthY rows removed from the top and
// bottom and widthX columns from the left and right.
func Unpad(src *grid.Grid, widthY, widthX int) (*grid.Grid, error) {
	if widthY < 0 || widthX < 0 {
		return nil, fmt.Errorf("%w: %d, %d", ErrNegativeWidth, widthY, widthX)
	}

	rows, cols := src.Rows()-2*widthY, src.Cols()-2*widthX
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %v with widths (%d, %d)", ErrHaloTooWide, src.Shape(), widthY, widthX)
	}

	out := grid.New(rows, cols)
	for r := range rows {
		copy(out.Row(r), src.Row(r + widthY)[widthX:widthX+cols])
	}

	return out, nil
}

func validatePad(src *grid.Grid, widthY, widthX int, policy Policy) error {
	if widthY < 0 || widthX < 0 {
		return fmt.Errorf("%w: %d, %d", ErrNegativeWidth, widthY, widthX)
	}

	if !policy.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidPolicy, policy)
	}

	if (widthY > 0 && src.Rows() == 0) || (widthX > 0 && src.Cols() == 0) {
		return fmt.Errorf("%w: %v", ErrEmptyGrid, src.Shape())
	}

	return nil
}

// padRows fills the top and bottom halo rows for the interior columns.
func padRows(dst *grid.Grid, rows, cols, widthY, widthX int, policy Policy) {
	if widthY == 0 {
		return
	}

	stat := min(widthY, rows)
	first, last := widthY, widthY+rows-1

	for c := widthX; c < widthX+cols; c++ {
		var top, bottom float64

		switch policy {
		case PolicyMean:
			for k := range stat {
				top += dst.At(first+k, c)
				bottom += dst.At(last-stat+1+k, c)
			}

			top /= float64(stat)
			bottom /= float64(stat)
		case PolicyEdge:
			top, bottom = dst.At(first, c), dst.At(last, c)
		case PolicyZero:
		}

		for k := range widthY {
			dst.Set(k, c, top)
			dst.Set(last+1+k, c, bottom)
		}
	}
}

// padCols fills the left and right halo columns on every row, halo rows
// included.
func padCols(dst *grid.Grid, cols, widthX int, policy Policy) {
	if widthX == 0 {
		return
	}

	stat := min(widthX, cols)
	first, last := widthX, widthX+cols-1

	for r := range dst.Rows() {
		row := dst.Row(r)

		var left, right float64

		switch policy {
		case PolicyMean:
			for k := range stat {
				left += row[first+k]
				right += row[last-stat+1+k]
			}

			left /= float64(stat)
			right /= float64(stat)
		case PolicyEdge:
			left, right = row[first], row[last]
		case PolicyZero:
		}

		for k := range widthX {
			row[k] = left
			row[last+1+k] = right
		}
	}
}
