package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Middleware order is significant: identity is
// resolved by authenticate before authorize consults the route policy.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, h.authenticate, h.authorize)

	router.Post(loginPath, h.login)

	router.Route("/api/user", func(r chi.Router) {
		r.Post("/create", h.signup)
		r.Get("/me", h.me)
		r.Get("/{username}", h.profile)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
