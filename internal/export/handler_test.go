package export

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	compaction "Tonnage/internal/calc/compaction"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const calcBody = `{"k":0.02,"a":1.5,"rho_theoretical":7.8,"shape":"solid","outer_diameter_mm":10,"height_mm":5,"green_density":6.63,"d_min":0.8,"d_max":0.95,"samples":16}`

func TestHandlerCSV_Attachment(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/api/tools/compaction/export/csv", strings.NewReader(calcBody))
	rec := httptest.NewRecorder()

	h.CSV(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "compaction.csv")
	assert.Contains(t, rec.Body.String(), "relative_density,pressure_mpa,tonnage_t")
}

func TestHandlerPNG_Attachment(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/api/tools/compaction/export/png", strings.NewReader(calcBody))
	rec := httptest.NewRecorder()

	h.PNG(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes()[:4])
}

func TestHandlerXLSX_Attachment(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/api/tools/compaction/export/xlsx", strings.NewReader(calcBody))
	rec := httptest.NewRecorder()

	h.XLSX(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "compaction.xlsx")
}

func TestHandlerChart_HTML(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/api/tools/compaction/export/chart", strings.NewReader(calcBody))
	rec := httptest.NewRecorder()

	h.Chart(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "echarts")
}

func TestHandler_ValidationErrorPropagates(t *testing.T) {
	h := &Handler{Curve: compaction.CurveConfig{}}
	body := `{"k":0.02,"a":1.5,"rho_theoretical":7.8,"shape":"hollow","outer_diameter_mm":10,"inner_diameter_mm":12,"height_mm":5,"green_density":6.63}`
	req := httptest.NewRequest(http.MethodPost, "/api/tools/compaction/export/csv", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CSV(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
