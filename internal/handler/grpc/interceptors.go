package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wine-cellar/internal/app"
	"github.com/MKhiriev/go-wine-cellar/internal/logger"
	"github.com/MKhiriev/go-wine-cellar/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	traceIDKey       = "x-trace-id"
	authorizationKey = "authorization"
	transportGRPC    = "grpc"
)

// writeMethods are the calls guarded by the auth interceptor.
var writeMethods = map[string]struct{}{
	WineCatalogCreateWineMethod: {},
	WineCatalogUpdateWineMethod: {},
	WineCatalogDeleteWineMethod: {},
}

// withTraceID attaches a request logger carrying the caller's trace id, or a
// fresh one, and echoes it in the response header.
func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	traceID := firstMetadataValue(ctx, traceIDKey)
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	return next(l.WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := next(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func (h *Handler) withMetrics(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	if h.metrics == nil {
		return next(ctx, req)
	}

	start := time.Now()
	resp, err := next(ctx, req)
	h.metrics.ObserveRequest(transportGRPC, info.FullMethod, int(status.Code(err)), time.Since(start))

	return resp, err
}

// auth checks the bearer token of write calls and stores the operator in the
// context.
func (h *Handler) auth(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	if _, ok := writeMethods[info.FullMethod]; !h.authRequired || !ok {
		return next(ctx, req)
	}

	log := logger.FromContext(ctx)

	authHeader := firstMetadataValue(ctx, authorizationKey)
	if authHeader == "" {
		log.Warn().Str("method", info.FullMethod).Msg("missing authorization metadata")
		return nil, status.Error(codes.Unauthenticated, "empty authorization metadata")
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		log.Err(err).Send()
		return nil, status.Error(codes.Unauthenticated, "invalid authorization metadata")
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		log.Err(err).Msg("error occurred during parsing token")
		return nil, status.Error(codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid)
	}

	return next(context.WithValue(ctx, utils.OperatorCtxKey, token.Operator), req)
}

func firstMetadataValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
