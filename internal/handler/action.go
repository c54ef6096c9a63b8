package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mr-omar-21/chawa-farms/internal/domain"
	"github.com/mr-omar-21/chawa-farms/internal/game"
	"github.com/mr-omar-21/chawa-farms/internal/logger"
)

// PerformActionRequest represents one player action.
type PerformActionRequest struct {
	PlayerName string            `json:"playerName" validate:"required,max=64"`
	Action     string            `json:"action" validate:"max=32"`
	Params     game.ActionParams `json:"params"`
}

// ActionResponse is returned when an action applies successfully.
type ActionResponse struct {
	Status   string              `json:"status"`
	Message  string              `json:"message"`
	NewState *domain.PlayerState `json:"new_state"`
}

// HandlePerformAction validates and dispatches a single player action.
// @Summary Perform a farm action
// @Description Applies one action (next_day, plant, water, harvest) to the named player's farm
// @Tags player
// @Accept json
// @Produce json
// @Success 200 {object} ActionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/perform_action [post]
func HandlePerformAction(gameService game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if r.Method != http.MethodPost {
			log.Warn("Method not allowed", "method", r.Method)
			http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
			return
		}

		var req PerformActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode perform action request", "error", err)
			writeError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Perform action request failed validation", "error", err)
			writeError(w, http.StatusNotFound, ErrMsgPlayerNotFound)
			return
		}

		log.Debug("Dispatching action",
			"player", req.PlayerName,
			"action", req.Action,
			"field_id", req.Params.FieldID)

		result, err := gameService.PerformAction(r.Context(), req.PlayerName, req.Action, req.Params)
		if err != nil {
			if errors.Is(err, domain.ErrPlayerNotFound) {
				writeError(w, http.StatusNotFound, ErrMsgPlayerNotFound)
				return
			}
			log.Error("Failed to perform action", "error", err, "player", req.PlayerName, "action", req.Action)
			writeError(w, http.StatusInternalServerError, ErrMsgActionFailed)
			return
		}

		if !result.Success {
			writeError(w, http.StatusBadRequest, result.Message)
			return
		}

		writeJSON(w, http.StatusOK, ActionResponse{
			Status:   StatusSuccess,
			Message:  result.Message,
			NewState: result.NewState,
		})
	}
}
