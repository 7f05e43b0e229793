package compaction

import (
	"fmt"
	"math"
)

type Shape string

const (
	ShapeSolid  Shape = "solid"
	ShapeHollow Shape = "hollow"
)

// NPerTonf converts newtons to metric ton-force (1 tf = 9806.65 N).
const NPerTonf = 9806.65

type Input struct {
	// Either a predefined material name or custom constants.
	Material       string  `json:"material,omitempty"`
	K              float64 `json:"k,omitempty"`               // MPa^-1
	A              float64 `json:"a,omitempty"`               //
	RhoTheoretical float64 `json:"rho_theoretical,omitempty"` // g/cm3

	Shape           Shape   `json:"shape"`
	OuterDiameterMM float64 `json:"outer_diameter_mm"`
	InnerDiameterMM float64 `json:"inner_diameter_mm"`
	HeightMM        float64 `json:"height_mm"`

	// Exactly one of the two density fields is set.
	GreenDensity    float64 `json:"green_density,omitempty"` // g/cm3
	RelativeDensity float64 `json:"relative_density,omitempty"`

	SafetyFactor float64 `json:"safety_factor,omitempty"`
}

type Result struct {
	Material        string  `json:"material,omitempty"`
	RelativeDensity float64 `json:"relative_density"`
	PressureMPa     float64 `json:"pressure_mpa"`
	AreaMM2         float64 `json:"area_mm2"`
	ForceN          float64 `json:"force_n"`
	TonnageT        float64 `json:"tonnage_t"`
	TonnageWithSFT  float64 `json:"tonnage_with_sf_t"`
	SafetyFactor    float64 `json:"safety_factor"`
	BelowThreshold  bool    `json:"below_threshold"`
	Notes           string  `json:"notes"`
}

// Calculate estimates the press tonnage needed to reach the target green
// density using the Heckel relation ln(1/(1-D)) = K*P + A.
func Calculate(in Input) (Result, error) {
	mat, err := resolveMaterial(in)
	if err != nil {
		return Result{}, err
	}
	sf := in.SafetyFactor
	if sf == 0 {
		sf = 1.0
	}
	if sf < 1 {
		return Result{}, fmt.Errorf("%w: safety factor %.3g below 1", ErrInvalidMaterial, sf)
	}

	d, err := resolveRelativeDensity(in, mat.RhoTheoretical)
	if err != nil {
		return Result{}, err
	}
	area, err := Area(in.Shape, in.OuterDiameterMM, in.InnerDiameterMM, in.HeightMM)
	if err != nil {
		return Result{}, err
	}
	pressure, clamped, err := HeckelPressure(d, mat.K, mat.A)
	if err != nil {
		return Result{}, err
	}

	force := pressure * area // MPa * mm2 = N
	tons := force / NPerTonf

	res := Result{
		Material:        mat.Name,
		RelativeDensity: d,
		PressureMPa:     pressure,
		AreaMM2:         area,
		ForceN:          force,
		TonnageT:        tons,
		TonnageWithSFT:  tons * sf,
		SafetyFactor:    sf,
		BelowThreshold:  clamped,
		Notes:           "Heckel uniaxial compaction estimate.",
	}
	if clamped {
		res.Notes = "Target density is below the material's practical compaction threshold; pressure clamped to zero."
	}
	return res, nil
}

func resolveMaterial(in Input) (Material, error) {
	if in.Material != "" {
		return LookupMaterial(in.Material)
	}
	mat := Material{K: in.K, A: in.A, RhoTheoretical: in.RhoTheoretical}
	if err := mat.validate(); err != nil {
		return Material{}, err
	}
	return mat, nil
}

func resolveRelativeDensity(in Input, rhoTheoretical float64) (float64, error) {
	if in.GreenDensity > 0 && in.RelativeDensity > 0 {
		return 0, fmt.Errorf("%w: specify either green density or relative density, not both", ErrInvalidDensity)
	}
	d := in.RelativeDensity
	if in.GreenDensity > 0 {
		d = in.GreenDensity / rhoTheoretical
	}
	if d <= 0 || d >= 1 {
		return 0, fmt.Errorf("%w: relative density %.4g outside (0, 1)", ErrInvalidDensity, d)
	}
	return d, nil
}

// HeckelPressure solves the Heckel equation for pressure in MPa. A raw
// negative pressure is clamped to zero and reported via the second return.
func HeckelPressure(d, k, a float64) (pressure float64, clamped bool, err error) {
	if k == 0 {
		return 0, false, fmt.Errorf("%w: K must be non-zero", ErrInvalidMaterial)
	}
	if d <= 0 || d >= 1 {
		return 0, false, fmt.Errorf("%w: relative density %.4g outside (0, 1)", ErrInvalidDensity, d)
	}
	pressure = (math.Log(1.0/(1.0-d)) - a) / k
	if pressure < 0 {
		return 0, true, nil
	}
	return pressure, false, nil
}

// Area returns the punch face area in mm2 for a solid or hollow cylinder.
func Area(shape Shape, outerMM, innerMM, heightMM float64) (float64, error) {
	if outerMM <= 0 || heightMM <= 0 {
		return 0, fmt.Errorf("%w: dimensions must be positive", ErrInvalidGeometry)
	}
	switch shape {
	case ShapeSolid:
		r := outerMM / 2.0
		return math.Pi * r * r, nil
	case ShapeHollow:
		if innerMM <= 0 {
			return 0, fmt.Errorf("%w: inner diameter required for hollow shape", ErrInvalidGeometry)
		}
		if innerMM >= outerMM {
			return 0, fmt.Errorf("%w: inner diameter %.4g not below outer %.4g", ErrInvalidGeometry, innerMM, outerMM)
		}
		ro := outerMM / 2.0
		ri := innerMM / 2.0
		return math.Pi * (ro*ro - ri*ri), nil
	default:
		return 0, fmt.Errorf("%w: unknown shape %q", ErrInvalidGeometry, shape)
	}
}
