package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request payload lacks
	// required fields.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrCredentialMismatch covers both unknown usernames and wrong
	// passwords. The two cases are deliberately not distinguished.
	ErrCredentialMismatch = errors.New("invalid username or password")

	// ErrInvalidInput is returned by TokenService.Sign for an empty username.
	// It signals a programming error in the caller.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTokenCreationFailed wraps failures while minting a token.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrMissingSecret is returned at construction time when no signing
	// secret is configured.
	ErrMissingSecret = errors.New("token signing secret is not configured")
)
