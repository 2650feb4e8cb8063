package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GenerateAndValidate(t *testing.T) {
	service := NewService("secret", "tailingsiq-backend", time.Hour)

	token, err := service.GenerateToken("test_user")
	require.NoError(t, err)

	username, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "test_user", username)
}

func TestService_ValidateToken_Empty(t *testing.T) {
	service := NewService("secret", "tailingsiq-backend", time.Hour)

	_, err := service.ValidateToken("")

	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestService_ValidateToken_Expired(t *testing.T) {
	service := NewService("secret", "tailingsiq-backend", -time.Minute)

	token, err := service.GenerateToken("test_user")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestService_ValidateToken_WrongSecret(t *testing.T) {
	issuer := NewService("secret-a", "tailingsiq-backend", time.Hour)
	verifier := NewService("secret-b", "tailingsiq-backend", time.Hour)

	token, err := issuer.GenerateToken("test_user")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestService_ValidateToken_WrongIssuer(t *testing.T) {
	issuer := NewService("secret", "someone-else", time.Hour)
	verifier := NewService("secret", "tailingsiq-backend", time.Hour)

	token, err := issuer.GenerateToken("test_user")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidClaims)
}

func TestUserContext_RoundTrip(t *testing.T) {
	ctx := SetUserInContext(context.Background(), &UserContext{Username: "test_user"})

	user, err := GetUserFromContext(ctx)

	require.NoError(t, err)
	assert.Equal(t, "test_user", user.Username)
}

func TestUserContext_Missing(t *testing.T) {
	_, err := GetUserFromContext(context.Background())

	assert.Error(t, err)
}
