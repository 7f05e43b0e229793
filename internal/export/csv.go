package export

import (
	"encoding/csv"
	"fmt"
	"io"

	compaction "Tonnage/internal/calc/compaction"
)

// WriteCSV serializes one calculation: scalar result rows first, a blank
// line, then the curve table. A UTF-8 BOM is written so Excel opens the file
// with the right encoding.
func WriteCSV(w io.Writer, in compaction.Input, res compaction.Result, points []compaction.CurvePoint) error {
	if _, err := io.WriteString(w, "\xEF\xBB\xBF"); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	scalars := [][]string{
		{"Material", res.Material},
		{"Shape", string(in.Shape)},
		{"Outer diameter (mm)", fmt.Sprintf("%g", in.OuterDiameterMM)},
		{"Inner diameter (mm)", fmt.Sprintf("%g", in.InnerDiameterMM)},
		{"Height (mm)", fmt.Sprintf("%g", in.HeightMM)},
		{"Relative density", fmt.Sprintf("%.6f", res.RelativeDensity)},
		{"Pressure (MPa)", fmt.Sprintf("%.4f", res.PressureMPa)},
		{"Area (mm2)", fmt.Sprintf("%.4f", res.AreaMM2)},
		{"Force (N)", fmt.Sprintf("%.2f", res.ForceN)},
		{"Safety factor", fmt.Sprintf("%g", res.SafetyFactor)},
		{"Tonnage (t)", fmt.Sprintf("%.4f", res.TonnageT)},
		{"Tonnage with SF (t)", fmt.Sprintf("%.4f", res.TonnageWithSFT)},
	}
	for _, row := range scalars {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{}); err != nil {
		return err
	}

	if err := cw.Write([]string{"relative_density", "pressure_mpa", "tonnage_t"}); err != nil {
		return err
	}
	for _, p := range points {
		record := []string{
			fmt.Sprintf("%.6f", p.RelativeDensity),
			fmt.Sprintf("%.6f", p.PressureMPa),
			fmt.Sprintf("%.6f", p.TonnageT),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
