package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/app"
	"github.com/MKhiriev/go-nutri-track/internal/utils"
	"github.com/MKhiriev/go-nutri-track/models"
)

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "Handler.createEntry")
	if !ok {
		return
	}

	var req models.FoodEntryRequest
	if !decodeJSON(w, r, "Handler.createEntry", &req) {
		return
	}

	entry, err := h.services.FoodEntryService.Save(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, "Handler.createEntry", err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusCreated)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "Handler.updateEntry")
	if !ok {
		return
	}
	id, ok := entryIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.FoodEntryRequest
	if !decodeJSON(w, r, "Handler.updateEntry", &req) {
		return
	}

	entry, err := h.services.FoodEntryService.Update(r.Context(), userID, id, req)
	if err != nil {
		writeError(w, r, "Handler.updateEntry", err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "Handler.getEntry")
	if !ok {
		return
	}
	id, ok := entryIDFromRequest(w, r)
	if !ok {
		return
	}

	entry, err := h.services.FoodEntryService.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, r, "Handler.getEntry", err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

// listEntries returns the entries between the "from" and "to" days, both
// inclusive and read in the "tz" zone. A missing "from" means today and a
// missing "to" means "from".
func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "Handler.listEntries")
	if !ok {
		return
	}
	loc, ok := locationFromRequest(w, r)
	if !ok {
		return
	}

	from, err := dayFromQuery(r, "from", loc, time.Now().In(loc))
	if err != nil {
		utils.WriteError(w, app.MsgInvalidDateRange, err, http.StatusBadRequest)
		return
	}
	to, err := dayFromQuery(r, "to", loc, from)
	if err != nil {
		utils.WriteError(w, app.MsgInvalidDateRange, err, http.StatusBadRequest)
		return
	}

	entries, err := h.services.FoodEntryService.List(r.Context(), userID, models.DateRange{From: from, To: to})
	if err != nil {
		writeError(w, r, "Handler.listEntries", err)
		return
	}
	if entries == nil {
		entries = []models.FoodEntry{}
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r, "Handler.deleteEntry")
	if !ok {
		return
	}
	id, ok := entryIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.FoodEntryService.Delete(r.Context(), userID, id); err != nil {
		writeError(w, r, "Handler.deleteEntry", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
