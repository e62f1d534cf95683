package interceptors

import (
	"context"
	"errors"
	"strings"

	"github.com/dmehra2102/IdeaBoard/pkg/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const bearerScheme = "bearer "

var errMalformedAuthorization = errors.New("invalid authorization header format")

var publicMethods = map[string]bool{
	healthpb.Health_Check_FullMethodName: true,
	healthpb.Health_Watch_FullMethodName: true,
}

// AuthInterceptor resolves the bearer token into a user context. Calls
// without an authorization header continue anonymously; handlers decide
// whether anonymous access is allowed.
func AuthInterceptor(jwtSecret string) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if publicMethods[info.FullMethod] {
			return handler(ctx, req)
		}

		token, err := bearerToken(ctx)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		if token == "" {
			return handler(ctx, req)
		}

		userCtx, err := auth.ParseToken(jwtSecret, token)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}
		return handler(auth.ContextWithUserContext(ctx, userCtx), req)
	}
}

// bearerToken returns the token from the authorization header, or "" when
// the header is absent. The scheme is matched case-insensitively.
func bearerToken(ctx context.Context) (string, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	values := md.Get("authorization")
	if len(values) == 0 || values[0] == "" {
		return "", nil
	}

	header := values[0]
	if len(header) <= len(bearerScheme) || !strings.EqualFold(header[:len(bearerScheme)], bearerScheme) {
		return "", errMalformedAuthorization
	}
	token := strings.TrimSpace(header[len(bearerScheme):])
	if token == "" {
		return "", errMalformedAuthorization
	}
	return token, nil
}
