package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr-omar-21/chawa-farms/internal/catalog"
	"github.com/mr-omar-21/chawa-farms/internal/database/memory"
	"github.com/mr-omar-21/chawa-farms/internal/game"
	"github.com/mr-omar-21/chawa-farms/internal/nasa"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	store := memory.NewSaveStore()
	cat := catalog.Default()
	sim := nasa.NewSimulator()
	svc := game.NewService(store, cat, sim)
	return NewServer(0, store, svc, sim, cat).httpServer.Handler
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthE2E(t *testing.T) {
	h := newTestServer(t)

	assert.Equal(t, http.StatusOK, doJSON(t, h, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, doJSON(t, h, http.MethodGet, "/readyz", "").Code)
	assert.Equal(t, http.StatusOK, doJSON(t, h, http.MethodGet, "/version", "").Code)
}

func TestSecurityHeadersApplied(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/healthz", "")

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "SAMEORIGIN", rec.Header().Get("X-Frame-Options"))
}

func TestPlayerLifecycleE2E(t *testing.T) {
	h := newTestServer(t)

	// Unknown player actions must 404 before any farm exists.
	rec := doJSON(t, h, http.MethodPost, "/api/perform_action",
		`{"playerName":"Amina","action":"next_day"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Create a farm.
	rec = doJSON(t, h, http.MethodPost, "/api/player",
		`{"playerName":"Amina","region":"Morogoro"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created struct {
		Status string `json:"status"`
		State  struct {
			Balance    int    `json:"balance"`
			CurrentDay int    `json:"current_day"`
			Region     string `json:"region"`
			NasaData   *struct {
				SoilMoisture float64 `json:"soil_moisture"`
			} `json:"nasa_data"`
		} `json:"state"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "success", created.Status)
	assert.Equal(t, 50000, created.State.Balance)
	assert.Equal(t, 1, created.State.CurrentDay)
	require.NotNil(t, created.State.NasaData)

	// Plant and advance a day.
	rec = doJSON(t, h, http.MethodPost, "/api/perform_action",
		`{"playerName":"Amina","action":"plant","params":{"field_id":1}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/perform_action",
		`{"playerName":"Amina","action":"next_day"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var advanced struct {
		NewState struct {
			CurrentDay int `json:"current_day"`
			Fields     []struct {
				ID          int    `json:"id"`
				Status      string `json:"status"`
				GrowthStage int    `json:"growth_stage"`
			} `json:"fields"`
		} `json:"new_state"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &advanced))
	assert.Equal(t, 2, advanced.NewState.CurrentDay)
	require.Len(t, advanced.NewState.Fields, 2)
	assert.Equal(t, "Growing", advanced.NewState.Fields[0].Status)
	assert.Equal(t, 1, advanced.NewState.Fields[0].GrowthStage)

	// Bad action comes back 400 with the generic message.
	rec = doJSON(t, h, http.MethodPost, "/api/perform_action",
		`{"playerName":"Amina","action":"fly"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Action not recognized.")
}

func TestGameStateEndpointE2E(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/game_state", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		NasaData struct {
			SoilMoisture          float64 `json:"soil_moisture"`
			PrecipitationForecast string  `json:"precipitation_forecast"`
		} `json:"nasa_data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.GreaterOrEqual(t, resp.NasaData.SoilMoisture, 0.2)
	assert.LessOrEqual(t, resp.NasaData.SoilMoisture, 0.8)
	assert.NotEmpty(t, resp.NasaData.PrecipitationForecast)
}

func TestRegionsEndpointE2E(t *testing.T) {
	h := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/api/regions", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Morogoro")
	assert.Contains(t, rec.Body.String(), "Arusha")
	assert.Contains(t, rec.Body.String(), "Dodoma")
}
