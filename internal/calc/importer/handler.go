package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	compaction "Tonnage/internal/calc/compaction"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type ImportResult struct {
	Count   int                 `json:"count"`
	Skipped int                 `json:"skipped"`
	Results []compaction.Result `json:"results"`
}

// Compaction imports an xlsx sheet with one calculation per row and runs the
// calculator over every parseable row. Bad rows are skipped, not fatal.
func (h *Handler) Compaction(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	out := ImportResult{Results: []compaction.Result{}}
	for i := 1; i < len(rows); i++ {
		input, err := parseRow(rows[i])
		if err != nil {
			out.Skipped++
			continue
		}
		res, err := compaction.Calculate(input)
		if err != nil {
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// expected: material, k, a, rho_th, shape, outer_mm, inner_mm, height_mm,
// green_density, relative_density, safety_factor. A named material leaves
// k/a/rho_th blank; exactly one density column is filled.
func parseRow(row []string) (compaction.Input, error) {
	if len(row) < 8 {
		return compaction.Input{}, fmt.Errorf("bad row")
	}
	in := compaction.Input{Material: row[0], Shape: compaction.Shape(row[4])}

	var err error
	if in.Material == "" {
		if in.K, err = toFloat(row[1]); err != nil {
			return compaction.Input{}, err
		}
		if in.A, err = toFloat(row[2]); err != nil {
			return compaction.Input{}, err
		}
		if in.RhoTheoretical, err = toFloat(row[3]); err != nil {
			return compaction.Input{}, err
		}
	}
	if in.OuterDiameterMM, err = toFloat(row[5]); err != nil {
		return compaction.Input{}, err
	}
	if row[6] != "" {
		if in.InnerDiameterMM, err = toFloat(row[6]); err != nil {
			return compaction.Input{}, err
		}
	}
	if in.HeightMM, err = toFloat(row[7]); err != nil {
		return compaction.Input{}, err
	}
	if len(row) > 8 && row[8] != "" {
		if in.GreenDensity, err = toFloat(row[8]); err != nil {
			return compaction.Input{}, err
		}
	}
	if len(row) > 9 && row[9] != "" {
		if in.RelativeDensity, err = toFloat(row[9]); err != nil {
			return compaction.Input{}, err
		}
	}
	if len(row) > 10 && row[10] != "" {
		in.SafetyFactor, _ = toFloat(row[10])
	}
	return in, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
