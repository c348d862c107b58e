package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-nutri-track/internal/app"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/internal/utils"
	"github.com/go-chi/chi/v5"
)

const queryDateLayout = "2006-01-02"

// decodeJSON reads the request body into dst. On failure it has already
// answered with 400, or 413 when the body limit was hit.
func decodeJSON(w http.ResponseWriter, r *http.Request, funcName string, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	logger.FromRequest(r).Debug().Err(err).Str("func", funcName).Msg("invalid request body")

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		utils.WriteError(w, app.MsgPayloadTooLarge, nil, http.StatusRequestEntityTooLarge)
		return false
	}

	utils.WriteError(w, app.MsgInvalidDataProvided, err, http.StatusBadRequest)
	return false
}

// userIDFromRequest returns the id the auth middleware stored.
func userIDFromRequest(w http.ResponseWriter, r *http.Request, funcName string) (int64, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Str("func", funcName).Msg("no user ID in request context")
		utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, nil, http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

func entryIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		utils.WriteError(w, app.MsgInvalidEntryID, nil, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// locationFromRequest reads the "tz" query value: an IANA zone name or a
// "-07:00" offset. An absent value means UTC.
func locationFromRequest(w http.ResponseWriter, r *http.Request) (*time.Location, bool) {
	loc, err := utils.ParseLocation(r.URL.Query().Get("tz"))
	if err != nil {
		utils.WriteError(w, app.MsgInvalidTimeZone, err, http.StatusBadRequest)
		return nil, false
	}
	return loc, true
}

// dayFromQuery parses the yyyy-mm-dd value of key in loc, falling back to
// def when the key is absent.
func dayFromQuery(r *http.Request, key string, loc *time.Location, def time.Time) (time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return time.ParseInLocation(queryDateLayout, raw, loc)
}
