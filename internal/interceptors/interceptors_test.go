package interceptors

import (
	"context"
	"testing"
	"time"

	"github.com/dmehra2102/IdeaBoard/pkg/auth"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const jwtSecret = "interceptor-secret"

var testInfo = &grpc.UnaryServerInfo{FullMethod: "/ideaboard.v1.IdeaService/ListIdeas"}

func withAuthorization(value string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", value))
}

func TestAuthInterceptor(t *testing.T) {
	token, err := auth.IssueToken(jwtSecret, "u1", time.Hour)
	require.NoError(t, err)

	interceptor := AuthInterceptor(jwtSecret)

	tests := []struct {
		name      string
		ctx       context.Context
		wantOwner string
		wantCode  codes.Code
	}{
		{name: "no metadata is anonymous", ctx: context.Background()},
		{name: "no header is anonymous", ctx: metadata.NewIncomingContext(context.Background(), metadata.MD{})},
		{name: "valid bearer token", ctx: withAuthorization("Bearer " + token), wantOwner: "u1"},
		{name: "lowercase scheme", ctx: withAuthorization("bearer " + token), wantOwner: "u1"},
		{name: "missing bearer prefix", ctx: withAuthorization(token), wantCode: codes.Unauthenticated},
		{name: "empty bearer token", ctx: withAuthorization("Bearer   "), wantCode: codes.Unauthenticated},
		{name: "bad token", ctx: withAuthorization("Bearer nope"), wantCode: codes.Unauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var owner string
			called := false
			handler := func(ctx context.Context, req any) (any, error) {
				called = true
				owner = auth.OwnerFromContext(ctx)
				return "ok", nil
			}

			_, err := interceptor(tt.ctx, nil, testInfo, handler)
			if tt.wantCode != codes.OK {
				assert.Equal(t, tt.wantCode, status.Code(err))
				assert.False(t, called)
				return
			}

			require.NoError(t, err)
			assert.True(t, called)
			assert.Equal(t, tt.wantOwner, owner)
		})
	}
}

func TestAuthInterceptor_PublicMethods(t *testing.T) {
	interceptor := AuthInterceptor(jwtSecret)
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	_, err := interceptor(withAuthorization("Bearer garbage"), nil, info, func(ctx context.Context, req any) (any, error) {
		return nil, nil
	})
	assert.NoError(t, err)
}

func TestTimeoutInterceptor(t *testing.T) {
	t.Run("adds a deadline", func(t *testing.T) {
		var deadline time.Time
		var ok bool
		_, err := TimeoutInterceptor(time.Second)(context.Background(), nil, testInfo, func(ctx context.Context, req any) (any, error) {
			deadline, ok = ctx.Deadline()
			return nil, nil
		})
		require.NoError(t, err)
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 100*time.Millisecond)
	})

	t.Run("keeps an earlier client deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		want, _ := ctx.Deadline()

		var got time.Time
		_, err := TimeoutInterceptor(time.Minute)(ctx, nil, testInfo, func(ctx context.Context, req any) (any, error) {
			got, _ = ctx.Deadline()
			return nil, nil
		})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("disabled", func(t *testing.T) {
		_, err := TimeoutInterceptor(0)(context.Background(), nil, testInfo, func(ctx context.Context, req any) (any, error) {
			_, ok := ctx.Deadline()
			assert.False(t, ok)
			return nil, nil
		})
		require.NoError(t, err)
	})
}

func TestRecoveryInterceptor(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	interceptor := RecoveryInterceptor(zap.New(core))

	_, err := interceptor(context.Background(), nil, testInfo, func(ctx context.Context, req any) (any, error) {
		panic("boom")
	})

	assert.Equal(t, codes.Internal, status.Code(err))
	require.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(grpcPanicsTotal.WithLabelValues("ideaboard.v1.IdeaService", "ListIdeas")))
}

func TestSplitMethodName(t *testing.T) {
	service, method := splitMethodName("/ideaboard.v1.IdeaService/MoveIdea")
	assert.Equal(t, "ideaboard.v1.IdeaService", service)
	assert.Equal(t, "MoveIdea", method)

	service, method = splitMethodName("bare")
	assert.Equal(t, "unknown", service)
	assert.Equal(t, "bare", method)
}

func TestLoggingInterceptor(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	interceptor := LoggingInterceptor(zap.New(core))

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(requestIDKey, "req-42"))

	var seen string
	_, err := interceptor(ctx, nil, testInfo, func(ctx context.Context, req any) (any, error) {
		seen = RequestIDFromContext(ctx)
		return nil, status.Error(codes.NotFound, "idea not found")
	})
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, "req-42", seen)

	failed := logs.FilterMessage("gRPC request failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.WarnLevel, failed[0].Level, "client errors are warnings")
	assert.Equal(t, "req-42", failed[0].ContextMap()["request_id"])

	_, err = interceptor(context.Background(), nil, testInfo, func(ctx context.Context, req any) (any, error) {
		assert.NotEmpty(t, RequestIDFromContext(ctx))
		return nil, status.Error(codes.Internal, "internal server error")
	})
	require.Error(t, err)

	failed = logs.FilterMessage("gRPC request failed").All()
	require.Len(t, failed, 2)
	assert.Equal(t, zapcore.ErrorLevel, failed[1].Level)
}

func TestMetricsInterceptor(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/ideaboard.v1.IdeaService/ReorderIdea"}
	notFound := grpcRequestsTotal.WithLabelValues("ideaboard.v1.IdeaService", "ReorderIdea", codes.NotFound.String())
	active := grpcActiveRequests.WithLabelValues("ideaboard.v1.IdeaService", "ReorderIdea")
	before := testutil.ToFloat64(notFound)

	_, err := MetricsInterceptor()(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		assert.Equal(t, 1.0, testutil.ToFloat64(active))
		return nil, status.Error(codes.NotFound, "idea not found")
	})
	require.Error(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(notFound))
	assert.Zero(t, testutil.ToFloat64(active))
}
