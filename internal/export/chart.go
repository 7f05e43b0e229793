package export

import (
	"fmt"
	"io"
	"math"

	compaction "Tonnage/internal/calc/compaction"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteChartHTML renders the pressure and tonnage curves as a self-contained
// HTML page with a mark line at the operating density.
func WriteChartHTML(w io.Writer, res compaction.Result, points []compaction.CurvePoint) error {
	if len(points) == 0 {
		return fmt.Errorf("no curve points to chart")
	}

	labels := make([]string, len(points))
	pressureData := make([]opts.LineData, len(points))
	tonnageData := make([]opts.LineData, len(points))
	operating := ""
	best := math.Inf(1)
	for i, p := range points {
		labels[i] = fmt.Sprintf("%.3f", p.RelativeDensity)
		pressureData[i] = opts.LineData{Value: p.PressureMPa}
		tonnageData[i] = opts.LineData{Value: p.TonnageT}
		if d := math.Abs(p.RelativeDensity - res.RelativeDensity); d < best {
			best = d
			operating = labels[i]
		}
	}

	page := components.NewPage()
	page.PageTitle = "Compaction curves"
	page.AddCharts(
		curveChart("Pressure vs Relative Density", "Pressure (MPa)", labels, pressureData, operating),
		curveChart("Tonnage vs Relative Density", "Tonnage (t)", labels, tonnageData, operating),
	)
	return page.Render(w)
}

func curveChart(title, yName string, labels []string, data []opts.LineData, operating string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Relative density D", Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName, Type: "value"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	line.SetXAxis(labels)
	line.AddSeries(yName, data,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{
			Name:  "operating point",
			XAxis: operating,
		}),
	)
	return line
}
