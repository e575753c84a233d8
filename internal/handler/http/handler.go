package http

import (
	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/service"
)

type Handler struct {
	services *service.Services
	policy   *RoutePolicy

	logger *logger.Logger
}

func NewHandler(services *service.Services, policy *RoutePolicy, logger *logger.Logger) *Handler {
	logger.Info().Int("policy_entries", len(policy.Entries())).Msg("http handler created")
	return &Handler{
		services: services,
		policy:   policy,
		logger:   logger,
	}
}
