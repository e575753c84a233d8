package adapter

import "errors"

// Errors mapped from HTTP response statuses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)

// ErrMissingToken is returned by requests that need a token before Login
// succeeded.
var ErrMissingToken = errors.New("no bearer token, log in first")
