package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/utils"
	"github.com/MKhiriev/go-shop/models"
)

// maxCredentialsBodySize bounds login and sign-up payloads.
const maxCredentialsBodySize = 1 << 16

func decodeCredentials(w http.ResponseWriter, r *http.Request) (models.Credentials, error) {
	var creds models.Credentials

	body := http.MaxBytesReader(w, r.Body, maxCredentialsBodySize)
	if err := json.NewDecoder(body).Decode(&creds); err != nil {
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrMalformedRequestBody, err)
	}

	if creds.Empty() {
		return models.Credentials{}, fmt.Errorf("%w: empty username or password", ErrMalformedRequestBody)
	}

	return creds, nil
}

// signup creates an account. It does not log the new user in.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, err := decodeCredentials(w, r)
	if err != nil {
		log.Err(err).Msg("invalid sign-up request")
		writeError(w, err)
		return
	}

	created, err := h.services.UserService.Create(ctx, creds)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Str("username", creds.Username).Msg("sign-up failed")
		return
	}

	log.Debug().Int64("id", created.UserID).Msg("user signed up")
	utils.WriteJSON(w, created, http.StatusOK)
}

// login exchanges credentials for a bearer token.
//
// On success the token is returned only in the "Authorization" response
// header and the body carries the public profile. An unknown username and
// a wrong password both produce the same 401 response.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, err := decodeCredentials(w, r)
	if err != nil {
		log.Err(err).Msg("invalid login request")
		writeError(w, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		status := writeError(w, err)
		if status == http.StatusUnauthorized {
			log.Info().Msg("login rejected")
		} else {
			log.Err(err).Int("status", status).Msg("login failed")
		}
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	w.Header().Set(utils.AuthorizationHeader, utils.BearerHeaderValue(token))
	w.Header().Set("Cache-Control", "no-store")
	utils.WriteJSON(w, foundUser, http.StatusOK)
}
