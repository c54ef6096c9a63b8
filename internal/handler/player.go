package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mr-omar-21/chawa-farms/internal/domain"
	"github.com/mr-omar-21/chawa-farms/internal/game"
	"github.com/mr-omar-21/chawa-farms/internal/logger"
)

// CreatePlayerRequest represents the create-or-login request body.
type CreatePlayerRequest struct {
	PlayerName string `json:"playerName" validate:"required,max=64"`
	Region     string `json:"region" validate:"omitempty,max=64"`
}

// PlayerResponse is returned on a successful create or login.
type PlayerResponse struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	State   *domain.PlayerState `json:"state"`
}

// ErrorResponse is the body for every failed request.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HandleCreatePlayer handles both creating a new farm and logging an
// existing player back in.
// @Summary Create or log in a player
// @Description Returns the existing save for a known player name, or creates a new farm in the requested region
// @Tags player
// @Accept json
// @Produce json
// @Success 200 {object} PlayerResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/player [post]
func HandleCreatePlayer(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if r.Method != http.MethodPost {
			log.Warn("Method not allowed", "method", r.Method)
			http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
			return
		}

		var req CreatePlayerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode create player request", "error", err)
			writeError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Create player request failed validation", "error", err)
			writeError(w, http.StatusBadRequest, ErrMsgPlayerNameRequired)
			return
		}

		result, err := gameService.CreateOrLogin(r.Context(), req.PlayerName, req.Region)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrPlayerNameRequired):
				writeError(w, http.StatusBadRequest, ErrMsgPlayerNameRequired)
			case errors.Is(err, domain.ErrInvalidRegion):
				log.Warn("Invalid region", "region", req.Region)
				writeError(w, http.StatusBadRequest, ErrMsgInvalidRegion)
			default:
				log.Error("Failed to create or login player", "error", err, "player", req.PlayerName)
				writeError(w, http.StatusInternalServerError, ErrMsgLoginFailed)
			}
			return
		}

		log.Info("Player session started",
			"player", req.PlayerName,
			"region", result.State.Region,
			"created", result.Created)

		writeJSON(w, http.StatusOK, PlayerResponse{
			Status:  StatusSuccess,
			Message: result.Message,
			State:   result.State,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Status: StatusError, Message: message})
}
