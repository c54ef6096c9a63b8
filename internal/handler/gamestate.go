package handler

import (
	"net/http"

	"github.com/mr-omar-21/chawa-farms/internal/catalog"
	"github.com/mr-omar-21/chawa-farms/internal/domain"
	"github.com/mr-omar-21/chawa-farms/internal/nasa"
)

// GameStateResponse carries a fresh satellite reading for the client
// dashboard to poll after an action.
type GameStateResponse struct {
	NasaData domain.NasaData `json:"nasa_data"`
}

// HandleGetGameState returns a freshly sampled environmental reading.
// The sample uses the default region regardless of who asks; readings
// do not vary per player.
// @Summary Fresh environmental reading
// @Tags game
// @Produce json
// @Success 200 {object} GameStateResponse
// @Router /api/game_state [get]
func HandleGetGameState(sim nasa.Simulator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, GameStateResponse{
			NasaData: sim.Sample(catalog.DefaultRegion),
		})
	}
}

// RegionsResponse lists the region catalog for the region picker.
type RegionsResponse struct {
	Regions map[string]domain.Region `json:"regions"`
}

// HandleGetRegions returns the static region catalog.
// @Summary Region catalog
// @Tags game
// @Produce json
// @Success 200 {object} RegionsResponse
// @Router /api/regions [get]
func HandleGetRegions(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, RegionsResponse{Regions: cat.Regions})
	}
}
