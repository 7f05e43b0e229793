package export

import (
	"encoding/json"
	"net/http"

	compaction "Tonnage/internal/calc/compaction"
)

type Handler struct {
	Curve compaction.CurveConfig
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) (compaction.Input, compaction.Result, []compaction.CurvePoint, bool) {
	var req compaction.CurveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return compaction.Input{}, compaction.Result{}, nil, false
	}
	res, err := compaction.Calculate(req.Input)
	if err != nil {
		compaction.WriteError(w, err)
		return compaction.Input{}, compaction.Result{}, nil, false
	}
	cfg := req.CurveConfig
	if cfg == (compaction.CurveConfig{}) {
		cfg = h.Curve
	}
	points, err := compaction.Curve(req.Input, cfg)
	if err != nil {
		compaction.WriteError(w, err)
		return compaction.Input{}, compaction.Result{}, nil, false
	}
	return req.Input, res, points, true
}

func (h *Handler) CSV(w http.ResponseWriter, r *http.Request) {
	in, res, points, ok := h.resolve(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=\"compaction.csv\"")
	if err := WriteCSV(w, in, res, points); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
	}
}

func (h *Handler) XLSX(w http.ResponseWriter, r *http.Request) {
	in, res, points, ok := h.resolve(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"compaction.xlsx\"")
	if err := WriteXLSX(w, in, res, points); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
	}
}

func (h *Handler) PNG(w http.ResponseWriter, r *http.Request) {
	_, res, points, ok := h.resolve(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", "attachment; filename=\"compaction.png\"")
	if err := WritePNG(w, res, points); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
	}
}

func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	_, res, points, ok := h.resolve(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := WriteChartHTML(w, res, points); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
	}
}
