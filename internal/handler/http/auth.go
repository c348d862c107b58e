package http

import (
	"net/http"

	"github.com/MKhiriev/go-nutri-track/internal/logger"
	"github.com/MKhiriev/go-nutri-track/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user models.User
	if !decodeJSON(w, r, "Handler.register", &user) {
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, "Handler.register", err)
		return
	}

	h.writeToken(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user models.User
	if !decodeJSON(w, r, "Handler.login", &user) {
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeError(w, r, "Handler.login", err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.writeToken(w, r, foundUser)
}

// writeToken answers 200 with the signed token in the Authorization header.
func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, "Handler.writeToken", err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	w.WriteHeader(http.StatusOK)
}
