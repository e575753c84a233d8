package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AuthorizationHeader carries bearer tokens in both directions: clients
	// send it on requests, the login endpoint sets it on the response.
	AuthorizationHeader = "Authorization"

	// BearerPrefix is the scheme marker preceding the token in
	// [AuthorizationHeader].
	BearerPrefix = "Bearer "
)

// signingMethod is the only algorithm tokens are signed and accepted with.
var signingMethod = jwt.SigningMethodHS512

var (
	// ErrEmptySubject is returned by GenerateJWTToken for an empty subject.
	ErrEmptySubject = errors.New("empty token subject")

	// ErrInvalidJWTParams is returned by GenerateJWTToken when issuer,
	// duration or sign key are missing.
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT token")

	// ErrInvalidBearerHeader is returned by ParseBearerToken when the header
	// lacks the "Bearer " prefix or the token after it.
	ErrInvalidBearerHeader = errors.New("invalid bearer authorization header")
)

// JWTParams holds the process-wide signing parameters.
// They are loaded once at startup and never mutated.
type JWTParams struct {
	// Issuer is written to and required in the "iss" claim.
	Issuer string

	// Duration is the fixed validity window of every token.
	Duration time.Duration

	// SignKey is the HMAC secret.
	SignKey []byte
}

// GenerateJWTToken creates a compact HMAC-SHA512 JWT for subject.
//
// The token carries the standard claims:
//   - Issuer    (iss): p.Issuer
//   - Subject   (sub): subject
//   - ID        (jti): tokenID
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now + p.Duration
//
// Returns [ErrEmptySubject] for an empty subject and [ErrInvalidJWTParams]
// when p is incomplete.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(params, "alice", uuid.NewString(), time.Now())
func GenerateJWTToken(p JWTParams, subject, tokenID string, now time.Time) (string, error) {
	if subject == "" {
		return "", ErrEmptySubject
	}
	if p.Issuer == "" || p.Duration <= 0 || len(p.SignKey) == 0 {
		return "", ErrInvalidJWTParams
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    p.Issuer,
		Subject:   subject,
		ID:        tokenID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.Duration)),
	}

	tokenString, err := jwt.NewWithClaims(signingMethod, claims).SignedString(p.SignKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseJWTToken verifies tokenString and returns its subject.
//
// Validation includes:
//   - algorithm pinned to HS512 and signature check against p.SignKey
//     (HMAC comparison is constant-time)
//   - strict base64url decoding, so non-canonical encodings are rejected
//   - issuer match against p.Issuer
//   - presence of "exp" and now < exp, iat not in the future
//   - non-empty subject
//
// now supplies the current time; pass time.Now outside tests.
func ValidateAndParseJWTToken(tokenString string, p JWTParams, now func() time.Time) (string, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return p.SignKey, nil
	},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithIssuer(p.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return "", fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return "", ErrEmptySubject
	}

	return claims.Subject, nil
}

// ParseBearerToken extracts the token from an Authorization header value of
// the form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	token, found := strings.CutPrefix(authorizationHeader, BearerPrefix)
	if !found || strings.TrimSpace(token) == "" {
		return "", ErrInvalidBearerHeader
	}

	return token, nil
}

// BearerHeaderValue formats token as an Authorization header value.
func BearerHeaderValue(token string) string {
	return BearerPrefix + token
}
