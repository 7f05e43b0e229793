package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	compaction "Tonnage/internal/calc/compaction"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testContext(t *testing.T) (compaction.Input, compaction.Result, []compaction.CurvePoint) {
	t.Helper()
	in := compaction.Input{
		K:               0.02,
		A:               1.5,
		RhoTheoretical:  7.8,
		Shape:           compaction.ShapeSolid,
		OuterDiameterMM: 10,
		HeightMM:        5,
		GreenDensity:    6.63,
		SafetyFactor:    1.2,
	}
	res, err := compaction.Calculate(in)
	require.NoError(t, err)
	points, err := compaction.Curve(in, compaction.CurveConfig{DMin: 0.80, DMax: 0.95, Samples: 16})
	require.NoError(t, err)
	return in, res, points
}

func TestWriteCSV_ScalarsThenCurve(t *testing.T) {
	in, res, points := testContext(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, in, res, points))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "\xEF\xBB\xBF"), "missing UTF-8 BOM")

	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, "\xEF\xBB\xBF")))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Material", ""}, records[0][:2])
	assert.Equal(t, "Relative density", records[5][0])

	// Curve header follows the 12 scalar rows; the blank separator line is
	// skipped by the reader.
	header := records[12]
	assert.Equal(t, []string{"relative_density", "pressure_mpa", "tonnage_t"}, header)
	assert.Len(t, records[13:], len(points))
	assert.Equal(t, "0.800000", records[13][0])
}

func TestWriteXLSX_SummaryAndCurveSheets(t *testing.T) {
	in, res, points := testContext(t)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, in, res, points))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	label, err := f.GetCellValue("Summary", "A7")
	require.NoError(t, err)
	assert.Equal(t, "Pressure (MPa)", label)

	rows, err := f.GetRows("Curve")
	require.NoError(t, err)
	require.Len(t, rows, len(points)+1)
	assert.Equal(t, []string{"Relative density", "Pressure (MPa)", "Tonnage (t)"}, rows[0])
}

func TestWritePNG_ProducesPNG(t *testing.T) {
	_, res, points := testContext(t)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, res, points))
	require.Greater(t, buf.Len(), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4])
}

func TestWritePNG_EmptyCurveFails(t *testing.T) {
	_, res, _ := testContext(t)
	var buf bytes.Buffer
	assert.Error(t, WritePNG(&buf, res, nil))
}

func TestWriteChartHTML_ContainsBothCharts(t *testing.T) {
	_, res, points := testContext(t)

	var buf bytes.Buffer
	require.NoError(t, WriteChartHTML(&buf, res, points))

	out := buf.String()
	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, "Pressure vs Relative Density")
	assert.Contains(t, out, "Tonnage vs Relative Density")
}
