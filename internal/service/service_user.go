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

type userService struct {
	users  store.UserRepository
	hasher PasswordHasher
}

// NewUserService constructs a UserService over the user repository.
func NewUserService(users store.UserRepository, hasher PasswordHasher) UserService {
	return &userService{
		users:  users,
		hasher: hasher,
	}
}

// Create hashes creds.Password and persists the account.
//
// Returns ErrInvalidDataProvided for empty fields or a password bcrypt cannot
// hash, and a wrapped store.ErrUsernameAlreadyExists for duplicates.
func (u *userService) Create(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Empty() {
		log.Error().Str("username", creds.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	digest, err := u.hasher.Hash(creds.Password)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := u.users.CreateUser(ctx, models.User{
		Username:     creds.Username,
		PasswordHash: digest,
	})
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", created.UserID).Str("username", created.Username).Msg("user created")
	return created, nil
}

// Profile implements UserService.
func (u *userService) Profile(ctx context.Context, username string) (models.User, error) {
	if username == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	found, err := u.users.FindUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return found, nil
}
