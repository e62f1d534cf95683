package auth

import (
	"context"
	"errors"
)

type contextKey string

const userContextKey contextKey = "user_context"

var ErrNoUserContext = errors.New("user context not found")

type UserContext struct {
	UserID string
}

// ContextWithUserContext adds user context to the context
func ContextWithUserContext(ctx context.Context, userCtx *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, userCtx)
}

// UserContextFromContext extracts user context from the context
func UserContextFromContext(ctx context.Context) (*UserContext, error) {
	userCtx, ok := ctx.Value(userContextKey).(*UserContext)
	if !ok || userCtx == nil || userCtx.UserID == "" {
		return nil, ErrNoUserContext
	}
	return userCtx, nil
}

// OwnerFromContext returns the caller's user ID, or "" for an anonymous call
func OwnerFromContext(ctx context.Context) string {
	userCtx, err := UserContextFromContext(ctx)
	if err != nil {
		return ""
	}
	return userCtx.UserID
}
