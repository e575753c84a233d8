// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the go-shop HTTP API.
//
// The primary abstraction is [ServerAdapter], which hides the REST protocol
// and bearer-token bookkeeping from callers such as the command-line client.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-shop/models"
)

// ServerAdapter defines communication with the go-shop server.
// Implementations are safe for concurrent use.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// SignUp creates an account. It does not log in.
	SignUp(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login exchanges creds for a bearer token, which is stored via
	// SetToken, and returns the public profile.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Me returns the profile of the logged-in user.
	Me(ctx context.Context) (models.User, error)

	// Profile returns the profile of username.
	Profile(ctx context.Context, username string) (models.User, error)
}
