package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shop/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	traceIDMetadataKey = "x-trace-id"
	maxTraceIDLength   = 128
)

// UnaryTraceInterceptor attaches a child logger carrying "trace_id" to the
// call context and writes one access log entry per call.
func (h *Handler) UnaryTraceInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	l := h.traceLogger(ctx)

	start := time.Now()
	resp, err := handler(l.WithContext(ctx), req)

	logCall(l, info.FullMethod, err, start)
	return resp, err
}

// StreamTraceInterceptor is the streaming counterpart of
// UnaryTraceInterceptor. The entry is written when the stream ends.
func (h *Handler) StreamTraceInterceptor(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	ctx := ss.Context()
	l := h.traceLogger(ctx)

	start := time.Now()
	err := handler(srv, &contextStream{ServerStream: ss, ctx: l.WithContext(ctx)})

	logCall(l, info.FullMethod, err, start)
	return err
}

// traceLogger returns a child logger tagged with the incoming trace id, or
// a fresh one when the caller sent none or an oversized value.
func (h *Handler) traceLogger(ctx context.Context) *logger.Logger {
	traceID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" || len(traceID) > maxTraceIDLength {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	return l
}

func logCall(l *logger.Logger, method string, err error, start time.Time) {
	l.Info().
		Str("method", method).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()
}
