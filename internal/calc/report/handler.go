package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	compaction "Tonnage/internal/calc/compaction"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`

	Calculation compaction.Input `json:"calculation"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Compaction Tonnage Report"
	}

	res, err := compaction.Calculate(input.Calculation)
	if err != nil {
		compaction.WriteError(w, err)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Inputs")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	in := input.Calculation
	rows := [][2]string{
		{"Material", res.Material},
		{"Shape", string(in.Shape)},
		{"Outer diameter", fmt.Sprintf("%g mm", in.OuterDiameterMM)},
		{"Inner diameter", fmt.Sprintf("%g mm", in.InnerDiameterMM)},
		{"Height", fmt.Sprintf("%g mm", in.HeightMM)},
		{"Safety factor", fmt.Sprintf("%g", res.SafetyFactor)},
	}
	for _, row := range rows {
		pdf.Cell(60, 6, row[0])
		pdf.Cell(0, 6, row[1])
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Results")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	results := [][2]string{
		{"Relative density D", fmt.Sprintf("%.4f", res.RelativeDensity)},
		{"Compaction pressure", fmt.Sprintf("%.2f MPa", res.PressureMPa)},
		{"Punch face area", fmt.Sprintf("%.2f mm2", res.AreaMM2)},
		{"Compaction force", fmt.Sprintf("%.0f N", res.ForceN)},
		{"Tonnage", fmt.Sprintf("%.3f t", res.TonnageT)},
		{"Tonnage with SF", fmt.Sprintf("%.3f t", res.TonnageWithSFT)},
	}
	for _, row := range results {
		pdf.Cell(60, 6, row[0])
		pdf.Cell(0, 6, row[1])
		pdf.Ln(6)
	}

	if res.BelowThreshold {
		pdf.Ln(4)
		pdf.SetTextColor(200, 0, 0)
		pdf.MultiCell(0, 6, "Warning: target density is below the material's practical compaction threshold; pressure was clamped to zero.", "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}

	if input.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
