// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// chi answers 405 Method Not Allowed whenever a path matches a registered
// route but the method is not handled. This handler answers 404 Not Found
// instead, so callers using an unsupported method cannot tell the route
// exists. Parameterised and wildcard routes are resolved through
// [chi.Mux.Match], mounted sub-routers included.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			// chi only calls this handler when it found no endpoint for
			// the method, so a match here means the tree changed underneath.
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		http.NotFound(w, r)
	}
}
