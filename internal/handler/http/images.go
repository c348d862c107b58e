package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-nutri-track/internal/imaging"
	"github.com/go-chi/chi/v5"
)

// getImage serves photos kept by the file blob store. Keys are random, so
// the route needs no authorization.
func (h *Handler) getImage(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")

	data, err := h.images.Download(r.Context(), key)
	if err != nil {
		writeError(w, r, "Handler.getImage", err)
		return
	}

	w.Header().Set("Content-Type", imaging.MIMEType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "private, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
