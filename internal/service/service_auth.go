package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/store"
	"github.com/MKhiriev/go-shop/internal/utils"
	"github.com/MKhiriev/go-shop/models"
)

// dummyPassword is hashed once at construction; its digest is compared
// against submitted passwords for unknown usernames so that both rejection
// paths cost one bcrypt comparison.
const dummyPassword = "go-shop/unknown-user"

// authService is the concrete implementation of AuthService.
// It verifies credentials through a CredentialStore and a PasswordHasher and
// delegates token minting and verification to a TokenService.
type authService struct {
	// credentials looks users up by username.
	credentials CredentialStore

	// hasher verifies submitted passwords against stored digests.
	hasher PasswordHasher

	// tokens signs and verifies bearer tokens.
	tokens TokenService

	// dummyDigest is the digest of dummyPassword.
	dummyDigest string

	logger *logger.Logger
}

// NewAuthService constructs an AuthService.
//
// It fails if the dummy digest used for unknown usernames cannot be
// computed. The returned service is safe for concurrent use; all state is
// read-only after construction.
func NewAuthService(credentials CredentialStore, hasher PasswordHasher, tokens TokenService, logger *logger.Logger) (AuthService, error) {
	dummyDigest, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("hashing dummy password failed: %w", err)
	}

	return &authService{
		credentials: credentials,
		hasher:      hasher,
		tokens:      tokens,
		dummyDigest: dummyDigest,
		logger:      logger,
	}, nil
}

// Login authenticates an existing user.
//
// Returns the stored user record or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - ErrCredentialMismatch if the user does not exist or the password is wrong.
//   - A wrapped storage error if the lookup itself fails.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Empty() {
		log.Error().Str("username", creds.Username).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.credentials.FindUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			_ = a.hasher.Verify(a.dummyDigest, creds.Password)
			log.Info().Str("username", creds.Username).Msg("login for unknown user")
			return models.User{}, ErrCredentialMismatch
		}

		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = a.hasher.Verify(foundUser.PasswordHash, creds.Password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Info().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("wrong password")
			return models.User{}, ErrCredentialMismatch
		}

		log.Err(err).Int64("id", foundUser.UserID).Msg("password verification failed")
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}

	return foundUser, nil
}

// IssueToken implements AuthService.
func (a *authService) IssueToken(ctx context.Context, user models.User) (string, error) {
	token, err := a.tokens.Sign(user.Username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.UserID).Msg("token signing failed")
		return "", err
	}

	return token, nil
}

// Authenticate implements AuthService.
//
// A missing header, a header without the "Bearer " prefix and a token that
// fails verification all yield the anonymous context. The header is handed
// to Verify as is, which strips the prefix exactly once.
func (a *authService) Authenticate(ctx context.Context, authorizationHeader string) models.AuthenticationContext {
	if _, err := utils.ParseBearerToken(authorizationHeader); err != nil {
		return models.Anonymous()
	}

	username, ok := a.tokens.Verify(authorizationHeader)
	if !ok {
		logger.FromContext(ctx).Debug().Msg("bearer token rejected")
		return models.Anonymous()
	}

	return models.NewAuthenticationContext(username)
}
