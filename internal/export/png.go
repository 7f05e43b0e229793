package export

import (
	"fmt"
	"image/color"
	"io"

	compaction "Tonnage/internal/calc/compaction"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// WritePNG rasterizes the two curves side by side, with a dashed marker at
// the operating density.
func WritePNG(w io.Writer, res compaction.Result, points []compaction.CurvePoint) error {
	if len(points) == 0 {
		return fmt.Errorf("no curve points to plot")
	}

	pressureXY := make(plotter.XYs, len(points))
	tonnageXY := make(plotter.XYs, len(points))
	for i, p := range points {
		pressureXY[i] = plotter.XY{X: p.RelativeDensity, Y: p.PressureMPa}
		tonnageXY[i] = plotter.XY{X: p.RelativeDensity, Y: p.TonnageT}
	}

	pressurePlot, err := curvePlot("Pressure vs Relative Density", "Pressure (MPa)", pressureXY, res.RelativeDensity)
	if err != nil {
		return err
	}
	tonnagePlot, err := curvePlot("Tonnage vs Relative Density", "Tonnage (t)", tonnageXY, res.RelativeDensity)
	if err != nil {
		return err
	}

	img := vgimg.New(10*vg.Inch, 4*vg.Inch)
	dc := draw.New(img)
	plots := [][]*plot.Plot{{pressurePlot, tonnagePlot}}
	tiles := draw.Tiles{
		Rows: 1, Cols: 2,
		PadX: vg.Millimeter * 4, PadY: vg.Millimeter * 4,
		PadTop: vg.Millimeter * 2, PadBottom: vg.Millimeter * 2,
		PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	plots[0][0].Draw(canvases[0][0])
	plots[0][1].Draw(canvases[0][1])

	png := vgimg.PngCanvas{Canvas: img}
	_, err = png.WriteTo(w)
	return err
}

func curvePlot(title, yLabel string, xys plotter.XYs, operatingD float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Relative density D"
	p.Y.Label.Text = yLabel

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.Color = color.RGBA{B: 196, A: 255}
	p.Add(plotter.NewGrid(), line)

	maxY := xys[0].Y
	for _, xy := range xys {
		if xy.Y > maxY {
			maxY = xy.Y
		}
	}
	marker, err := plotter.NewLine(plotter.XYs{
		{X: operatingD, Y: 0},
		{X: operatingD, Y: maxY},
	})
	if err != nil {
		return nil, err
	}
	marker.Color = color.RGBA{R: 220, A: 255}
	marker.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(marker)

	return p, nil
}
