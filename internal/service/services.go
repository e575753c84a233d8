package service

import (
	"fmt"

	"github.com/MKhiriev/go-shop/internal/config"
	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/store"
	"github.com/MKhiriev/go-shop/internal/utils"
)

// Services groups the business services handed to the transport layer.
type Services struct {
	TokenService TokenService
	AuthService  AuthService
	UserService  UserService
}

// NewServices wires the services over storages. It fails when the token
// signing secret is missing, which is fatal at startup.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	tokens, err := NewTokenService(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating token service: %w", err)
	}

	hasher := utils.NewBcryptHasher(cfg.BcryptCost)

	auth, err := NewAuthService(storages.UserRepository, hasher, tokens, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	return &Services{
		TokenService: tokens,
		AuthService:  auth,
		UserService:  NewUserService(storages.UserRepository, hasher),
	}, nil
}
