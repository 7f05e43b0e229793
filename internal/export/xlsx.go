package export

import (
	"io"

	compaction "Tonnage/internal/calc/compaction"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes a Summary sheet with the scalar results and a Curve sheet
// with the density sweep.
func WriteXLSX(w io.Writer, in compaction.Input, res compaction.Result, points []compaction.CurvePoint) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", "Summary")
	summary := [][]interface{}{
		{"Material", res.Material},
		{"Shape", string(in.Shape)},
		{"Outer diameter (mm)", in.OuterDiameterMM},
		{"Inner diameter (mm)", in.InnerDiameterMM},
		{"Height (mm)", in.HeightMM},
		{"Relative density", res.RelativeDensity},
		{"Pressure (MPa)", res.PressureMPa},
		{"Area (mm2)", res.AreaMM2},
		{"Force (N)", res.ForceN},
		{"Safety factor", res.SafetyFactor},
		{"Tonnage (t)", res.TonnageT},
		{"Tonnage with SF (t)", res.TonnageWithSFT},
	}
	for i, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Summary", cell, &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet("Curve"); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter("Curve")
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", []interface{}{"Relative density", "Pressure (MPa)", "Tonnage (t)"}); err != nil {
		return err
	}
	for i, p := range points {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, []interface{}{p.RelativeDensity, p.PressureMPa, p.TonnageT}); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	return f.Write(w)
}
