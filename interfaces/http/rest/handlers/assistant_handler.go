package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"tailingsiq-backend/application/services"
	"tailingsiq-backend/pkg/common"
	apperrors "tailingsiq-backend/pkg/errors"
	"tailingsiq-backend/pkg/observability"
	"tailingsiq-backend/pkg/utils"
)

// AssistantHandler handles query assistant requests.
type AssistantHandler struct {
	service      *services.AssistantService
	errorHandler *apperrors.ErrorHandler
	collector    *observability.Collector
	logger       *zap.Logger
}

// NewAssistantHandler creates a new assistant handler.
func NewAssistantHandler(
	service *services.AssistantService,
	errorHandler *apperrors.ErrorHandler,
	collector *observability.Collector,
	logger *zap.Logger,
) *AssistantHandler {
	return &AssistantHandler{
		service:      service,
		errorHandler: errorHandler,
		collector:    collector,
		logger:       logger,
	}
}

// Query handles POST /api/query-assistant/query.
func (h *AssistantHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req services.QueryRequest
	if err := common.ParseJSONBody(w, r, &req, 1<<20); err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewValidationError("Invalid request body: "+err.Error()))
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewValidationError(err.Error()))
		return
	}

	response, err := h.service.Query(r.Context(), req)
	if err != nil {
		h.collector.AssistantQueries.WithLabelValues("error").Inc()
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.collector.AssistantQueries.WithLabelValues("answered").Inc()
	common.RespondJSON(w, h.logger, http.StatusOK, response)
}
