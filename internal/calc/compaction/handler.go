package compaction

import (
	"encoding/json"
	"errors"
	"net/http"
)

type Handler struct {
	Curve CurveConfig
}

type CurveRequest struct {
	Input
	CurveConfig
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) CurvePoints(w http.ResponseWriter, r *http.Request) {
	var req CurveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	cfg := req.CurveConfig
	if cfg == (CurveConfig{}) {
		cfg = h.Curve
	}
	points, err := Curve(req.Input, cfg)
	if err != nil {
		WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(points)
}

func (h *Handler) Materials(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Materials())
}

// ErrorKind names the validation kind of err for the UI, or "" when err is
// not a validation failure.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidDensity):
		return "invalid_density"
	case errors.Is(err, ErrInvalidGeometry):
		return "invalid_geometry"
	case errors.Is(err, ErrInvalidMaterial):
		return "invalid_material"
	}
	return ""
}

// WriteError reports a calculation error as JSON. Validation failures get 422
// with their kind so the UI can flag the offending input inline.
func WriteError(w http.ResponseWriter, err error) {
	kind := ErrorKind(err)
	status := http.StatusUnprocessableEntity
	if kind == "" {
		status = http.StatusBadRequest
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error(), "kind": kind})
}
