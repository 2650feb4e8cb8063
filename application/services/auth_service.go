package services

import (
	"context"

	"go.uber.org/zap"

	"tailingsiq-backend/application/ports"
	"tailingsiq-backend/domain"
	"tailingsiq-backend/pkg/auth"
	"tailingsiq-backend/pkg/errors"
)

// TokenResponse is the login response body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthService authenticates demo users and issues access tokens.
type AuthService struct {
	users  ports.UserRepository
	tokens *auth.Service
	logger *zap.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(users ports.UserRepository, tokens *auth.Service, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Login verifies the credentials and issues a bearer token. Unknown users
// and bad passwords get the same answer.
func (s *AuthService) Login(ctx context.Context, username, password string) (TokenResponse, error) {
	user, ok := s.users.Get(username)
	if !ok || user.Password != password {
		return TokenResponse{}, errors.NewUnauthorizedError("Incorrect username or password")
	}

	token, err := s.tokens.GenerateToken(user.Username)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return TokenResponse{}, errors.NewInternalError("could not issue token")
	}

	return TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// CurrentUser resolves a validated token subject to the user record,
// rejecting disabled accounts.
func (s *AuthService) CurrentUser(ctx context.Context, username string) (domain.User, error) {
	user, ok := s.users.Get(username)
	if !ok {
		return domain.User{}, errors.NewUnauthorizedError("Could not validate credentials")
	}
	if user.Disabled {
		return domain.User{}, errors.NewInvalidStateError("Inactive user")
	}
	return user.User, nil
}
