// Package middleware holds the HTTP middleware chain: authentication,
// request logging, rate limiting, and metrics.
package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"tailingsiq-backend/application/ports"
	"tailingsiq-backend/pkg/auth"
	apperrors "tailingsiq-backend/pkg/errors"
)

// Authenticate validates the bearer token, resolves the user against the
// directory, and stores the identity in the request context. Account
// status is not checked here; endpoints that require an active account
// reject disabled users themselves.
func Authenticate(tokens *auth.Service, users ports.UserRepository, errorHandler *apperrors.ErrorHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				unauthorized(w, r, errorHandler, "Not authenticated")
				return
			}

			username, err := tokens.ValidateToken(tokenString)
			if err != nil {
				unauthorized(w, r, errorHandler, "Could not validate credentials")
				return
			}

			user, ok := users.Get(username)
			if !ok {
				unauthorized(w, r, errorHandler, "Could not validate credentials")
				return
			}

			ctx := auth.SetUserInContext(r.Context(), &auth.UserContext{
				Username: user.Username,
				Email:    user.Email,
				FullName: user.FullName,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RateLimit applies a per-IP token bucket to the wrapped routes.
func RateLimit(limiter *auth.TokenBucketLimiter, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(r.RemoteAddr) {
				logger.Warn("rate limit exceeded",
					zap.String("remote_addr", r.RemoteAddr),
					zap.String("path", r.URL.Path),
				)
				w.Header().Set("Retry-After", "60")
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter, r *http.Request, errorHandler *apperrors.ErrorHandler, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	errorHandler.Handle(w, r, apperrors.NewUnauthorizedError(message))
}
