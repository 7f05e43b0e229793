package compaction

import "fmt"

// CurveConfig controls the density sweep used for plotting. Zero values fall
// back to the server defaults.
type CurveConfig struct {
	DMin    float64 `json:"d_min,omitempty"`
	DMax    float64 `json:"d_max,omitempty"`
	Samples int     `json:"samples,omitempty"`
}

const (
	defaultDMin    = 0.50
	defaultDMax    = 0.99
	defaultSamples = 100
)

func (c CurveConfig) withDefaults() CurveConfig {
	if c.DMin == 0 {
		c.DMin = defaultDMin
	}
	if c.DMax == 0 {
		c.DMax = defaultDMax
	}
	if c.Samples == 0 {
		c.Samples = defaultSamples
	}
	return c
}

type CurvePoint struct {
	RelativeDensity float64 `json:"relative_density"`
	PressureMPa     float64 `json:"pressure_mpa"`
	TonnageT        float64 `json:"tonnage_t"`
	BelowThreshold  bool    `json:"below_threshold,omitempty"`
}

// Curve sweeps evenly spaced relative densities for the fixed material,
// geometry and safety factor of in, producing points for the pressure and
// tonnage plots. Densities outside (0, 1) are skipped; sub-threshold points
// are kept with pressure clamped to zero so the curve spans the full range.
// The returned tonnage includes the safety factor.
func Curve(in Input, cfg CurveConfig) ([]CurvePoint, error) {
	cfg = cfg.withDefaults()
	if cfg.Samples < 2 || cfg.DMin >= cfg.DMax {
		return nil, fmt.Errorf("%w: bad curve range [%.3g, %.3g] x %d", ErrInvalidDensity, cfg.DMin, cfg.DMax, cfg.Samples)
	}

	mat, err := resolveMaterial(in)
	if err != nil {
		return nil, err
	}
	area, err := Area(in.Shape, in.OuterDiameterMM, in.InnerDiameterMM, in.HeightMM)
	if err != nil {
		return nil, err
	}
	sf := in.SafetyFactor
	if sf == 0 {
		sf = 1.0
	}
	if sf < 1 {
		return nil, fmt.Errorf("%w: safety factor %.3g below 1", ErrInvalidMaterial, sf)
	}

	points := make([]CurvePoint, 0, cfg.Samples)
	step := (cfg.DMax - cfg.DMin) / float64(cfg.Samples-1)
	for i := 0; i < cfg.Samples; i++ {
		d := cfg.DMin + float64(i)*step
		pressure, clamped, err := HeckelPressure(d, mat.K, mat.A)
		if err != nil {
			continue // out-of-domain sample, not fatal for the curve
		}
		points = append(points, CurvePoint{
			RelativeDensity: d,
			PressureMPa:     pressure,
			TonnageT:        pressure * area / NPerTonf * sf,
			BelowThreshold:  clamped,
		})
	}
	return points, nil
}
