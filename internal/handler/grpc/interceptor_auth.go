// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/MKhiriev/go-shop/internal/utils"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// authorizationMetadataKey is the lower-cased "Authorization" header as it
// appears in gRPC metadata.
const authorizationMetadataKey = "authorization"

var errUnauthenticated = status.Error(codes.Unauthenticated, "unauthenticated")

// UnaryAuthInterceptor resolves the caller identity from the "authorization"
// metadata and rejects calls to non-public methods made without a valid
// bearer token.
func (h *Handler) UnaryAuthInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	ctx, err := h.authorize(ctx, info.FullMethod)
	if err != nil {
		return nil, err
	}

	return handler(ctx, req)
}

// StreamAuthInterceptor is the streaming counterpart of UnaryAuthInterceptor.
func (h *Handler) StreamAuthInterceptor(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	ctx, err := h.authorize(ss.Context(), info.FullMethod)
	if err != nil {
		return err
	}

	return handler(srv, &contextStream{ServerStream: ss, ctx: ctx})
}

// authorize installs the authentication context and applies the method
// policy.
func (h *Handler) authorize(ctx context.Context, fullMethod string) (context.Context, error) {
	auth := h.services.AuthService.Authenticate(ctx, authorizationFromMetadata(ctx))
	ctx = utils.WithAuthentication(ctx, auth)

	if h.isPublic(fullMethod) || auth.IsAuthenticated() {
		return ctx, nil
	}

	logger.FromContext(ctx).Info().Str("method", fullMethod).Msg("unauthenticated call to protected method")
	return ctx, errUnauthenticated
}

func (h *Handler) isPublic(fullMethod string) bool {
	for _, prefix := range h.publicPrefixes {
		if strings.HasPrefix(fullMethod, prefix) {
			return true
		}
	}
	return false
}

func authorizationFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	values := md.Get(authorizationMetadataKey)
	if len(values) == 0 {
		return ""
	}

	return values[0]
}

// contextStream overrides the context of a server stream.
type contextStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *contextStream) Context() context.Context {
	return s.ctx
}
