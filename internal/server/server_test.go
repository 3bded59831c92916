package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildsim/archetype-cli/internal/archetype"
	"github.com/buildsim/archetype-cli/internal/config"
	"github.com/buildsim/archetype-cli/internal/export"
	"github.com/buildsim/archetype-cli/internal/model"
	"github.com/buildsim/archetype-cli/internal/typeelement"
	"github.com/buildsim/archetype-cli/internal/useconditions"
)

func testGenerator(t *testing.T) *archetype.Generator {
	t.Helper()

	materials := []typeelement.MaterialSpec{
		{ID: 1, Name: "Brick", Density: 1800, ThermalConductivity: 0.81, HeatCapacity: 1.0},
		{ID: 2, Name: "Mineral Wool", Density: 60, ThermalConductivity: 0.04, HeatCapacity: 0.85},
	}

	var records []typeelement.Record
	for _, kind := range []model.ElementKind{
		model.KindOuterWall, model.KindRooftop, model.KindGroundFloor,
		model.KindInnerWall, model.KindCeiling, model.KindFloor,
	} {
		records = append(records, typeelement.Record{
			Key:              string(kind) + "_1860_heavy",
			AgeRange:         [2]int{1860, 2025},
			ConstructionType: "heavy",
			InnerRadiation:   5.0,
			InnerConvection:  2.7,
			OuterRadiation:   5.0,
			OuterConvection:  20.0,
			Layers:           []typeelement.LayerSpec{{ID: 0, Thickness: 0.2, MaterialID: 1}},
		})
	}
	records = append(records, typeelement.Record{
		Key:              "Window_1860_" + model.WindowConstructionStandard,
		AgeRange:         [2]int{1860, 2025},
		ConstructionType: model.WindowConstructionStandard,
		GValue:           0.7,
		Layers:           []typeelement.LayerSpec{{ID: 0, Thickness: 0.024, MaterialID: 2}},
	})

	b, err := typeelement.NewBindings(records, materials)
	require.NoError(t, err)
	return archetype.NewGenerator(b, useconditions.NewRegistry())
}

func testServerConfig() config.ServerConfig {
	return config.ServerConfig{
		Port:           8080,
		RatePerSecond:  100,
		RateBurst:      100,
		AllowedOrigins: []string{"*"},
	}
}

func testParams() archetype.Params {
	return archetype.Params{
		Name:               "EFH Example",
		YearOfConstruction: 1985,
		Construction:       model.IWUHeavy,
		NumberOfFloors:     1,
		HeightOfFloors:     2.5,
		NetLeasedArea:      120,
	}
}

func TestHandleHealth(t *testing.T) {
	srv := New(testGenerator(t), testServerConfig())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleGenerate(t *testing.T) {
	srv := New(testGenerator(t), testServerConfig())

	body, err := json.Marshal(testParams())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/buildings", bytes.NewReader(body))
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report export.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "EFH Example", report.Building.Name)
	require.Len(t, report.Zones, 1)
	assert.InDelta(t, 120.0, report.Zones[0].Area, 1e-9)
	assert.InDelta(t, 24.0, report.Zones[0].WindowArea, 1e-9)
	assert.NotEmpty(t, report.Building.OuterArea)
}

func TestHandleGenerate_BadBody(t *testing.T) {
	srv := New(testGenerator(t), testServerConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/buildings", strings.NewReader("{not json"))
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGenerate_InvalidParams(t *testing.T) {
	srv := New(testGenerator(t), testServerConfig())

	p := testParams()
	p.NetLeasedArea = 0
	body, err := json.Marshal(p)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/buildings", bytes.NewReader(body))
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "net leased area")
}

func TestWriteJSON_EncodeFailureReturns500(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, make(chan int)) // not marshalable

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}

func TestRateLimit(t *testing.T) {
	cfg := testServerConfig()
	cfg.RatePerSecond = 1
	cfg.RateBurst = 1
	srv := New(testGenerator(t), cfg)
	h := srv.Handler()

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
