package main

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-recfilter/field"
)

// writeProfilePlot saves the central x column of the first horizontal
// slice of before and after as a line plot against the y coordinate.
func writeProfilePlot(path string, before, after *field.Field) error {
	inPts, yName, err := centralProfile(before)
	if err != nil {
		return err
	}

	outPts, _, err := centralProfile(after)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: central column", before.Name)
	p.X.Label.Text = yName
	p.Y.Label.Text = before.Units

	inLine, err := plotter.NewLine(inPts)
	if err != nil {
		return fmt.Errorf("plot input: %w", err)
	}

	inLine.Color = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	inLine.Width = vg.Points(1)

	outLine, err := plotter.NewLine(outPts)
	if err != nil {
		return fmt.Errorf("plot output: %w", err)
	}

	outLine.Color = color.RGBA{R: 196, G: 32, B: 32, A: 255}
	outLine.Width = vg.Points(1.5)

	p.Add(inLine, outLine)
	p.Legend.Add("input", inLine)
	p.Legend.Add("filtered", outLine)
	p.Legend.Top = true

	if err := p.Save(14*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}

	return nil
}

func centralProfile(f *field.Field) (plotter.XYs, string, error) {
	slices, err := f.HorizontalSlices()
	if err != nil {
		return nil, "", err
	}

	if len(slices) == 0 {
		return nil, "", fmt.Errorf("%w: %q is empty", field.ErrInvalidField, f.Name)
	}

	m, err := slices[0].Matrix()
	if err != nil {
		return nil, "", err
	}

	yDim, err := slices[0].AxisDim(field.AxisY)
	if err != nil {
		return nil, "", err
	}

	y := slices[0].Dims[yDim]
	rows, cols := m.Dims()
	if rows == 0 || cols == 0 {
		return nil, "", fmt.Errorf("%w: %q has an empty horizontal slice", field.ErrInvalidField, f.Name)
	}

	col := mat.Col(nil, cols/2, m)
	pts := make(plotter.XYs, len(col))

	for i, v := range col {
		pts[i] = plotter.XY{X: y.Points[i], Y: v}
	}

	return pts, y.Name, nil
}
