package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tailingsiq-backend/infrastructure/memstore"
	"tailingsiq-backend/pkg/auth"
	apperrors "tailingsiq-backend/pkg/errors"
)

func newAuthService() (*AuthService, *auth.Service) {
	tokens := auth.NewService("test-secret", "tailingsiq-backend", 30*time.Minute)
	return NewAuthService(memstore.NewUserStore(), tokens, zap.NewNop()), tokens
}

func TestAuthService_Login_IssuesValidToken(t *testing.T) {
	service, tokens := newAuthService()

	response, err := service.Login(context.Background(), "test_user", "password")

	require.NoError(t, err)
	assert.Equal(t, "bearer", response.TokenType)

	username, err := tokens.ValidateToken(response.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "test_user", username)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, _ := newAuthService()

	_, err := service.Login(context.Background(), "test_user", "wrong")

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	service, _ := newAuthService()

	_, err := service.Login(context.Background(), "nobody", "password")

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
}

func TestAuthService_CurrentUser(t *testing.T) {
	service, _ := newAuthService()

	user, err := service.CurrentUser(context.Background(), "test_user")

	require.NoError(t, err)
	assert.Equal(t, "test_user", user.Username)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "Test User", user.FullName)
}

func TestAuthService_CurrentUser_Inactive(t *testing.T) {
	service, _ := newAuthService()

	_, err := service.CurrentUser(context.Background(), "inactive_user")

	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidState(err))
}

func TestAuthService_CurrentUser_Unknown(t *testing.T) {
	service, _ := newAuthService()

	_, err := service.CurrentUser(context.Background(), "ghost")

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
}
