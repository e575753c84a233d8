package config

import "errors"

// Validation errors returned when the merged configuration cannot be used.
var (
	// ErrMissingTokenSignKey indicates that no token signing secret was
	// configured. The server must not start without one.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")
	// ErrInvalidTokenDuration indicates a non-positive token validity window.
	ErrInvalidTokenDuration = errors.New("invalid token duration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a bcrypt cost out of range).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP address or a malformed public route).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
