package compaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurve_SpansConfiguredRange(t *testing.T) {
	in := solidSteelInput()
	points, err := Curve(in, CurveConfig{DMin: 0.60, DMax: 0.90, Samples: 31})
	require.NoError(t, err)
	require.Len(t, points, 31)
	assert.InDelta(t, 0.60, points[0].RelativeDensity, 1e-12)
	assert.InDelta(t, 0.90, points[len(points)-1].RelativeDensity, 1e-9)
}

func TestCurve_DefaultsApplied(t *testing.T) {
	points, err := Curve(solidSteelInput(), CurveConfig{})
	require.NoError(t, err)
	require.Len(t, points, 100)
	assert.InDelta(t, 0.50, points[0].RelativeDensity, 1e-12)
	assert.InDelta(t, 0.99, points[len(points)-1].RelativeDensity, 1e-9)
}

func TestCurve_OmitsOutOfDomainSamples(t *testing.T) {
	// The last sample lands exactly on D=1 and must be dropped, not fail the
	// whole curve.
	points, err := Curve(solidSteelInput(), CurveConfig{DMin: 0.5, DMax: 1.0, Samples: 2})
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.InDelta(t, 0.5, points[0].RelativeDensity, 1e-12)
}

func TestCurve_ClampsSubThresholdPoints(t *testing.T) {
	// With A=1.5 the compaction threshold sits near D=0.777; everything below
	// stays on the curve with zero pressure and the warning flag.
	points, err := Curve(solidSteelInput(), CurveConfig{DMin: 0.50, DMax: 0.99, Samples: 50})
	require.NoError(t, err)
	require.Len(t, points, 50)

	assert.True(t, points[0].BelowThreshold)
	assert.Equal(t, 0.0, points[0].PressureMPa)
	last := points[len(points)-1]
	assert.False(t, last.BelowThreshold)
	assert.Greater(t, last.PressureMPa, 0.0)
}

func TestCurve_PressureMonotonicAboveThreshold(t *testing.T) {
	points, err := Curve(solidSteelInput(), CurveConfig{DMin: 0.80, DMax: 0.99, Samples: 40})
	require.NoError(t, err)
	for i := 1; i < len(points); i++ {
		assert.Greater(t, points[i].PressureMPa, points[i-1].PressureMPa)
		assert.Greater(t, points[i].TonnageT, points[i-1].TonnageT)
	}
}

func TestCurve_TonnageIncludesSafetyFactor(t *testing.T) {
	base, err := Curve(solidSteelInput(), CurveConfig{DMin: 0.80, DMax: 0.95, Samples: 10})
	require.NoError(t, err)

	in := solidSteelInput()
	in.SafetyFactor = 2.0
	scaled, err := Curve(in, CurveConfig{DMin: 0.80, DMax: 0.95, Samples: 10})
	require.NoError(t, err)

	require.Len(t, scaled, len(base))
	for i := range base {
		assert.InDelta(t, base[i].TonnageT*2.0, scaled[i].TonnageT, 1e-9)
	}
}

func TestCurve_InvalidContextFails(t *testing.T) {
	in := solidSteelInput()
	in.Shape = ShapeHollow
	in.InnerDiameterMM = 12
	_, err := Curve(in, CurveConfig{})
	assert.ErrorIs(t, err, ErrInvalidGeometry)

	in = solidSteelInput()
	in.K = 0
	_, err = Curve(in, CurveConfig{})
	assert.ErrorIs(t, err, ErrInvalidMaterial)

	_, err = Curve(solidSteelInput(), CurveConfig{DMin: 0.9, DMax: 0.6, Samples: 10})
	assert.ErrorIs(t, err, ErrInvalidDensity)
}
