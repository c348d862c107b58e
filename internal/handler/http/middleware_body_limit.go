package http

import "net/http"

// withBodyLimit caps request bodies at cfg.MaxBodyBytes. Reading past the
// limit fails with *http.MaxBytesError, which decodeJSON reports as 413.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	limit := h.cfg.MaxBodyBytes
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
