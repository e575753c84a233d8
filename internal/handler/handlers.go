package handler

import (
	"fmt"

	"github.com/MKhiriev/go-shop/internal/config"
	"github.com/MKhiriev/go-shop/internal/handler/grpc"
	"github.com/MKhiriev/go-shop/internal/handler/http"
	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. The HTTP route
// policy is the built-in table followed by the configured public routes.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		extra, err := cfg.PublicRoutePolicy()
		if err != nil {
			return nil, fmt.Errorf("error reading public routes: %w", err)
		}

		policy, err := http.NewRoutePolicy(append(http.DefaultRoutePolicy(), extra...))
		if err != nil {
			return nil, fmt.Errorf("error building route policy: %w", err)
		}

		handlers.HTTP = http.NewHandler(services, policy, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
