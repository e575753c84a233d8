// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-shop/internal/config"
	"github.com/MKhiriev/go-shop/internal/utils"
)

const (
	// DefaultTokenDuration is the validity window used when none is configured.
	DefaultTokenDuration = 10 * time.Hour

	// DefaultTokenIssuer is the "iss" claim used when none is configured.
	DefaultTokenIssuer = "go-shop"
)

// tokenService is the JWT-backed TokenService.
// All fields are set at construction and only read afterwards.
type tokenService struct {
	params utils.JWTParams

	// now is the clock used for both iat/exp and expiry checks.
	now func() time.Time

	// newID generates the "jti" claim so that two tokens minted for the same
	// user within one second still differ.
	newID func() string
}

// NewTokenService builds a TokenService from the application config.
// It fails with ErrMissingSecret when cfg.TokenSignKey is empty.
func NewTokenService(cfg config.App) (TokenService, error) {
	return newTokenService(cfg, time.Now)
}

func newTokenService(cfg config.App, now func() time.Time) (*tokenService, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrMissingSecret
	}

	duration := cfg.TokenDuration
	if duration == 0 {
		duration = DefaultTokenDuration
	}
	if duration < 0 {
		return nil, fmt.Errorf("negative token duration %s", duration)
	}

	issuer := cfg.TokenIssuer
	if issuer == "" {
		issuer = DefaultTokenIssuer
	}

	return &tokenService{
		params: utils.JWTParams{
			Issuer:   issuer,
			Duration: duration,
			SignKey:  []byte(cfg.TokenSignKey),
		},
		now:   now,
		newID: utils.NewTokenID,
	}, nil
}

// Sign implements TokenService.
func (t *tokenService) Sign(username string) (string, error) {
	if username == "" {
		return "", fmt.Errorf("%w: empty username", ErrInvalidInput)
	}

	token, err := utils.GenerateJWTToken(t.params, username, t.newID(), t.now())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify implements TokenService. Malformed encoding, signature mismatch and
// expiry all collapse into the same ("", false) result.
func (t *tokenService) Verify(raw string) (string, bool) {
	tokenString := strings.TrimPrefix(raw, utils.BearerPrefix)
	if tokenString == "" {
		return "", false
	}

	subject, err := utils.ValidateAndParseJWTToken(tokenString, t.params, t.now)
	if err != nil {
		return "", false
	}

	return subject, true
}
