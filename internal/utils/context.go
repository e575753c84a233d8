// Package utils provides general-purpose helpers shared across the service:
// request-scoped authentication context, JWT signing and verification,
// bcrypt password hashing and JSON response writing.
package utils

import (
	"context"

	"github.com/MKhiriev/go-shop/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// AuthenticationCtxKey is the key under which the request's
// [models.AuthenticationContext] is stored.
var AuthenticationCtxKey = contextKey("authentication")

// WithAuthentication returns a copy of ctx carrying auth.
func WithAuthentication(ctx context.Context, auth models.AuthenticationContext) context.Context {
	return context.WithValue(ctx, AuthenticationCtxKey, auth)
}

// AuthenticationFromContext returns the authentication context installed in
// ctx, or the anonymous context when none was installed.
//
// Example usage:
//
//	auth := utils.AuthenticationFromContext(r.Context())
//	if !auth.IsAuthenticated() {
//	    // anonymous request
//	}
func AuthenticationFromContext(ctx context.Context) models.AuthenticationContext {
	auth, ok := ctx.Value(AuthenticationCtxKey).(models.AuthenticationContext)
	if !ok {
		return models.Anonymous()
	}
	return auth
}
