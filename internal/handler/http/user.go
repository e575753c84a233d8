package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/utils"
	"github.com/go-chi/chi/v5"
)

// me returns the profile of the authenticated caller.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	h.writeProfile(w, r, utils.AuthenticationFromContext(r.Context()).Identity)
}

// profile returns the profile stored under the {username} path parameter.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	h.writeProfile(w, r, chi.URLParam(r, "username"))
}

func (h *Handler) writeProfile(w http.ResponseWriter, r *http.Request, username string) {
	log := logger.FromRequest(r)

	user, err := h.services.UserService.Profile(r.Context(), username)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Str("username", username).Msg("profile lookup failed")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
