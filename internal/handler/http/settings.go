package http

import (
	"net/http"

	"github.com/MKhiriev/go-nutri-track/internal/utils"
	"github.com/MKhiriev/go-nutri-track/models"
)

func (h *Handler) getGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "Handler.getGoals")
	if !ok {
		return
	}

	goals, err := h.services.SettingsService.GetGoals(r.Context(), userID)
	if err != nil {
		writeError(w, r, "Handler.getGoals", err)
		return
	}

	utils.WriteJSON(w, goals, http.StatusOK)
}

func (h *Handler) updateGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "Handler.updateGoals")
	if !ok {
		return
	}

	var goals models.DailyIntakeGoals
	if !decodeJSON(w, r, "Handler.updateGoals", &goals) {
		return
	}

	saved, err := h.services.SettingsService.UpdateGoals(r.Context(), userID, goals)
	if err != nil {
		writeError(w, r, "Handler.updateGoals", err)
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}
