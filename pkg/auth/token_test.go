package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestIssueAndParseToken(t *testing.T) {
	token, err := IssueToken(secret, "u1", time.Hour)
	require.NoError(t, err)

	userCtx, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userCtx.UserID)
}

func TestIssueToken_RequiresUser(t *testing.T) {
	_, err := IssueToken(secret, "", time.Hour)
	assert.Error(t, err)
}

func TestParseToken_Rejects(t *testing.T) {
	valid, err := IssueToken(secret, "u1", time.Hour)
	require.NoError(t, err)

	expired, err := IssueToken(secret, "u1", -time.Minute)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "u1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: issuer}).
		SignedString([]byte(secret))
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		token  string
	}{
		{name: "wrong secret", secret: "other", token: valid},
		{name: "expired", secret: secret, token: expired},
		{name: "unsigned", secret: secret, token: none},
		{name: "garbage", secret: secret, token: "not.a.token"},
		{name: "no subject", secret: secret, token: noSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.secret, tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestParseToken_UserIDClaim(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           "legacy",
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	userCtx, err := ParseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "legacy", userCtx.UserID)

	both, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "subject"},
		UserID:           "legacy",
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	userCtx, err = ParseToken(secret, both)
	require.NoError(t, err)
	assert.Equal(t, "subject", userCtx.UserID)
}

func TestUserContext(t *testing.T) {
	ctx := context.Background()

	_, err := UserContextFromContext(ctx)
	assert.ErrorIs(t, err, ErrNoUserContext)
	assert.Empty(t, OwnerFromContext(ctx))

	ctx = ContextWithUserContext(ctx, &UserContext{UserID: "u1"})
	userCtx, err := UserContextFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", userCtx.UserID)
	assert.Equal(t, "u1", OwnerFromContext(ctx))

	blank := ContextWithUserContext(context.Background(), &UserContext{})
	_, err = UserContextFromContext(blank)
	assert.ErrorIs(t, err, ErrNoUserContext)
}
