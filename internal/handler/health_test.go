package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr-omar-21/chawa-farms/internal/catalog"
	"github.com/mr-omar-21/chawa-farms/internal/database/memory"
	"github.com/mr-omar-21/chawa-farms/internal/domain"
	"github.com/mr-omar-21/chawa-farms/internal/handler"
	"github.com/mr-omar-21/chawa-farms/internal/repository"
)

func TestHandleHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	handler.HandleHealthz()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleReadyzWithMemoryStore(t *testing.T) {
	rec := httptest.NewRecorder()
	handler.HandleReadyz(memory.NewSaveStore())(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

// brokenStore fails its readiness ping.
type brokenStore struct {
	repository.Save
}

func (brokenStore) Ping(ctx context.Context) error {
	return errors.New("store down")
}

func TestHandleReadyzUnavailable(t *testing.T) {
	rec := httptest.NewRecorder()
	handler.HandleReadyz(brokenStore{})(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleGetRegions(t *testing.T) {
	rec := httptest.NewRecorder()
	handler.HandleGetRegions(catalog.Default())(rec, httptest.NewRequest(http.MethodGet, "/api/regions", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.RegionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Regions, 3)
	assert.Contains(t, resp.Regions, "Morogoro")
}

// stubSim satisfies nasa.Simulator with a constant reading.
type stubSim struct{}

func (stubSim) Sample(regionName string) domain.NasaData {
	return domain.NasaData{SoilMoisture: 0.3, PrecipitationForecast: "light_rain", VegetationIndex: 0.6}
}

func TestHandleGetGameState(t *testing.T) {
	rec := httptest.NewRecorder()
	handler.HandleGetGameState(stubSim{})(rec, httptest.NewRequest(http.MethodGet, "/api/game_state", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.GameStateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0.3, resp.NasaData.SoilMoisture)
	assert.Equal(t, "light_rain", resp.NasaData.PrecipitationForecast)
}
