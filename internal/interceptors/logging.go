package interceptors

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const requestIDKey = "x-request-id"

type requestIDContextKey struct{}

// RequestIDFromContext returns the request ID assigned by LoggingInterceptor
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}

// LoggingInterceptor tags each call with a request ID, taken from the
// incoming x-request-id header when present, and echoes it back as a
// response header. Board errors the client caused are logged at Warn.
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		requestID := incomingRequestID(ctx)
		ctx = context.WithValue(ctx, requestIDContextKey{}, requestID)
		_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDKey, requestID))

		reqLogger := logger.With(
			zap.String("method", info.FullMethod),
			zap.String("request_id", requestID),
		)
		reqLogger.Debug("gRPC request started")

		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := zap.Duration("duration", time.Since(start))

		if err == nil {
			reqLogger.Info("gRPC request completed", elapsed)
			return resp, nil
		}

		code := status.Code(err)
		if ce := reqLogger.Check(failureLevel(code), "gRPC request failed"); ce != nil {
			ce.Write(elapsed, zap.Stringer("code", code), zap.Error(err))
		}
		return resp, err
	}
}

// failureLevel is Error for server faults and Warn for everything the caller
// can act on (bad input, missing ideas, slot clashes, deadlines).
func failureLevel(code codes.Code) zapcore.Level {
	switch code {
	case codes.Internal, codes.Unknown, codes.DataLoss, codes.Unavailable:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

func incomingRequestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(requestIDKey); len(ids) > 0 && ids[0] != "" {
			return ids[0]
		}
	}
	return uuid.NewString()
}
