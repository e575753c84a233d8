package grpc

import (
	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// healthServicePrefix is the method prefix of the standard health service.
var healthServicePrefix = "/" + healthpb.Health_ServiceDesc.ServiceName + "/"

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// interceptors can authenticate calls and emit consistent logs. A handler
// instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// publicPrefixes lists full-method prefixes callable without a token.
	// Every other method requires an authenticated identity.
	publicPrefixes []string

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger. Only the health service is public.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services:       services,
		publicPrefixes: []string{healthServicePrefix},
		logger:         logger,
	}
}

// Init builds the gRPC server with the tracing and authentication
// interceptors installed and the health service registered.
func (h *Handler) Init() *grpc.Server {
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(h.UnaryTraceInterceptor, h.UnaryAuthInterceptor),
		grpc.ChainStreamInterceptor(h.StreamTraceInterceptor, h.StreamAuthInterceptor),
	)

	healthpb.RegisterHealthServer(server, health.NewServer())

	return server
}
