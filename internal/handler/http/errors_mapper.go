package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-nutri-track/internal/app"
	"github.com/MKhiriev/go-nutri-track/internal/inference"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/internal/service"
	"github.com/MKhiriev/go-nutri-track/internal/store"
	"github.com/MKhiriev/go-nutri-track/internal/utils"
	"github.com/MKhiriev/go-nutri-track/internal/validators"
)

// errorStatus describes how one sentinel is reported. Detail controls
// whether the error text is sent back in the "error" field.
type errorStatus struct {
	target  error
	status  int
	message string
	detail  bool
}

// errorStatusMap is matched in order, so specific errors must come before
// the wrappers that carry them (ErrRepository wraps ErrFoodEntryNotFound,
// ErrValidation wraps the validator sentinels).
var errorStatusMap = []errorStatus{
	{store.ErrFoodEntryNotFound, http.StatusNotFound, app.MsgFoodEntryNotFound, false},
	{store.ErrBlobNotFound, http.StatusNotFound, app.MsgImageNotFound, false},
	{store.ErrInvalidBlobKey, http.StatusNotFound, app.MsgImageNotFound, false},

	{service.ErrInvalidImageURL, http.StatusBadRequest, app.MsgInvalidImageURL, true},
	{service.ErrInferenceTransport, http.StatusInternalServerError, app.MsgErrorProcessingImage, true},
	{inference.ErrInvalidFormat, http.StatusInternalServerError, app.MsgErrorProcessingImage, true},
	{inference.ErrIncompleteResponse, http.StatusInternalServerError, app.MsgErrorProcessingImage, true},

	{validators.ErrInvalidDateRange, http.StatusBadRequest, app.MsgInvalidDateRange, true},
	{validators.ErrDateRangeTooLong, http.StatusBadRequest, app.MsgInvalidDateRange, true},
	{validators.ErrNonPositiveGoal, http.StatusBadRequest, app.MsgInvalidGoals, true},
	{validators.ErrInvalidEntryID, http.StatusBadRequest, app.MsgInvalidEntryID, true},
	{service.ErrValidation, http.StatusBadRequest, app.MsgInvalidFoodEntry, true},
	{service.ErrUpload, http.StatusBadGateway, app.MsgUploadFailed, false},

	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided, true},
	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword, false},
	{store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword, false},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid, false},
	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists, false},

	{service.ErrRepository, http.StatusInternalServerError, app.MsgInternalServerError, false},
}

func lookupError(err error) errorStatus {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e
		}
	}
	return errorStatus{status: http.StatusInternalServerError, message: app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return lookupError(err).status
}

// writeError logs err and answers with the mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	e := lookupError(err)

	log := logger.FromRequest(r)
	if e.status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", e.status).Msg(e.message)
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", e.status).Msg(e.message)
	}

	var detail error
	if e.detail {
		detail = err
	}
	utils.WriteError(w, e.message, detail, e.status)
}
