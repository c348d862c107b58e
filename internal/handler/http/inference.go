// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-nutri-track/internal/app"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/internal/service"
	"github.com/MKhiriev/go-nutri-track/internal/utils"
	"github.com/MKhiriev/go-nutri-track/models"
)

// inferNutrients answers with the nutrient estimate for the photo in
// imageUrl. Every failure past request validation is reported as a 500 with
// the cause in the "error" field.
func (h *Handler) inferNutrients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := userIDFromRequest(w, r, "Handler.inferNutrients")
	if !ok {
		return
	}

	var req models.NutrientInferenceRequest
	if !decodeJSON(w, r, "Handler.inferNutrients", &req) {
		return
	}

	result, err := h.services.InferenceService.InferNutrients(ctx, userID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidImageURL) {
			writeError(w, r, "Handler.inferNutrients", err)
			return
		}

		logger.FromRequest(r).Err(err).Str("func", "Handler.inferNutrients").Int64("user_id", userID).Msg("nutrient inference failed")
		utils.WriteError(w, app.MsgErrorProcessingImage, err, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
