package field

import (
	"github.com/cwbudde/algo-recfilter/grid"
	"github.com/cwbudde/algo-recfilter/halo"
)

// PadHalo pads a 2D (y, x) field with widthY cells above and below and
// widthX cells left and right. Horizontal dimension and aux coordinates
// are extended with [halo.PadCoord].
func PadHalo(f *Field, widthY, widthX int, policy halo.Policy) (*Field, error) {
	g, err := f.Grid()
	if err != nil {
		return nil, err
	}

	padded, err := halo.Pad(g, widthY, widthX, policy)
	if err != nil {
		return nil, err
	}

	return f.withHorizontal(padded, widthY, widthX, halo.PadCoord)
}

// UnpadHalo removes a halo added by [PadHalo].
func UnpadHalo(f *Field, widthY, widthX int) (*Field, error) {
	g, err := f.Grid()
	if err != nil {
		return nil, err
	}

	trimmed, err := halo.Unpad(g, widthY, widthX)
	if err != nil {
		return nil, err
	}

	return f.withHorizontal(trimmed, widthY, widthX, halo.UnpadCoord)
}

// withHorizontal copies f with its horizontal coordinates resized by
// resize and its data replaced by g.
func (f *Field) withHorizontal(g *grid.Grid, widthY, widthX int, resize func([]float64, int) ([]float64, error)) (*Field, error) {
	y, x, err := f.horizontal2D()
	if err != nil {
		return nil, err
	}

	width := map[int]int{y: widthY, x: widthX}
	out := f.shell()

	for d := range out.Dims {
		if out.Dims[d].Points, err = resize(out.Dims[d].Points, width[d]); err != nil {
			return nil, err
		}
	}

	for i := range out.Aux {
		a := &out.Aux[i]
		if a.Points, err = resize(a.Points, width[a.Dim]); err != nil {
			return nil, err
		}
	}

	if err := out.setGrid(g); err != nil {
		return nil, err
	}

	return out, nil
}
