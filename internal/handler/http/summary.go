package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/app"
	"github.com/MKhiriev/go-nutri-track/internal/utils"
)

func (h *Handler) dailySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "Handler.dailySummary")
	if !ok {
		return
	}
	loc, ok := locationFromRequest(w, r)
	if !ok {
		return
	}

	day, err := dayFromQuery(r, "date", loc, time.Now().In(loc))
	if err != nil {
		utils.WriteError(w, app.MsgInvalidDateRange, err, http.StatusBadRequest)
		return
	}

	summary, err := h.services.SummaryService.Daily(r.Context(), userID, day, loc)
	if err != nil {
		writeError(w, r, "Handler.dailySummary", err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) weeklySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "Handler.weeklySummary")
	if !ok {
		return
	}
	loc, ok := locationFromRequest(w, r)
	if !ok {
		return
	}

	end, err := dayFromQuery(r, "end", loc, time.Now().In(loc))
	if err != nil {
		utils.WriteError(w, app.MsgInvalidDateRange, err, http.StatusBadRequest)
		return
	}

	summary, err := h.services.SummaryService.Weekly(r.Context(), userID, end, loc)
	if err != nil {
		writeError(w, r, "Handler.weeklySummary", err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}
