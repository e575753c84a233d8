package utils

import "github.com/google/uuid"

// NewTokenID returns a unique identifier for the "jti" claim.
// Time-ordered UUIDv7 is preferred; v4 is the fallback.
func NewTokenID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
