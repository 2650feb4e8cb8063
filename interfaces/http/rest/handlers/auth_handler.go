package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"tailingsiq-backend/application/services"
	"tailingsiq-backend/pkg/auth"
	"tailingsiq-backend/pkg/common"
	apperrors "tailingsiq-backend/pkg/errors"
)

// AuthHandler handles login and identity requests.
type AuthHandler struct {
	service      *services.AuthService
	errorHandler *apperrors.ErrorHandler
	logger       *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service *services.AuthService, errorHandler *apperrors.ErrorHandler, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{service: service, errorHandler: errorHandler, logger: logger}
}

// Token handles POST /token. Credentials arrive as an OAuth2 password
// grant form.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewValidationError("Invalid form body"))
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		h.errorHandler.Handle(w, r, apperrors.NewValidationError("username and password are required"))
		return
	}

	token, err := h.service.Login(r.Context(), username, password)
	if err != nil {
		w.Header().Set("WWW-Authenticate", "Bearer")
		h.errorHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, h.logger, http.StatusOK, token)
}

// Me handles GET /users/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewUnauthorizedError(""))
		return
	}

	user, err := h.service.CurrentUser(r.Context(), userCtx.Username)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, h.logger, http.StatusOK, user)
}
