package http

import (
	"encoding/json"
	"net/http"

	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/utils"
	"github.com/vitalog/vitalog/models"
)

func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.sync").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusUnauthorized)
		return
	}

	var syncRequest models.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&syncRequest); err != nil {
		log.Err(err).Str("func", "*Handler.sync").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if syncRequest.DeviceID == "" {
		log.Error().Str("func", "*Handler.sync").Msg("no device ID was given")
		http.Error(w, "no device ID was given", http.StatusBadRequest)
		return
	}

	response, err := h.services.SyncService.ProcessSync(ctx, userID, syncRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.sync").Str("device_id", syncRequest.DeviceID).Msg("error processing sync batch")
		http.Error(w, "error processing sync batch", statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
