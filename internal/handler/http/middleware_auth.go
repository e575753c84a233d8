package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/utils"
	"github.com/MKhiriev/go-shop/models"
)

// authenticate resolves the "Authorization" header into an
// [models.AuthenticationContext] and installs it in the request context
// under [utils.AuthenticationCtxKey].
//
// It never rejects a request. A missing header, a header without the
// "Bearer " prefix and an invalid or expired token all install the
// anonymous context; the decision to reject belongs to authorize.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		auth := h.services.AuthService.Authenticate(ctx, r.Header.Get(utils.AuthorizationHeader))
		if auth.IsAuthenticated() {
			logger.FromRequest(r).Debug().Str("username", auth.Identity).Msg("request authenticated")
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAuthentication(ctx, auth)))
	})
}

// authorize enforces the route policy. Public routes are always
// dispatched; any other route is dispatched only when authenticate
// installed an identity. Otherwise the request is answered with
// 401 Unauthorized and a "WWW-Authenticate: Bearer" challenge, and the
// route handler is never invoked.
func (h *Handler) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.policy.AccessLevel(r.Method, r.URL.Path) == models.AccessPublic {
			next.ServeHTTP(w, r)
			return
		}

		if utils.AuthenticationFromContext(r.Context()).IsAuthenticated() {
			next.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("unauthenticated request to protected route")
		writeUnauthorized(w)
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}
