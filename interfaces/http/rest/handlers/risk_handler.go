package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tailingsiq-backend/application/services"
	"tailingsiq-backend/pkg/common"
	apperrors "tailingsiq-backend/pkg/errors"
)

// RiskHandler handles risk assessment requests.
type RiskHandler struct {
	service      *services.RiskService
	errorHandler *apperrors.ErrorHandler
	logger       *zap.Logger
}

// NewRiskHandler creates a new risk handler.
func NewRiskHandler(service *services.RiskService, errorHandler *apperrors.ErrorHandler, logger *zap.Logger) *RiskHandler {
	return &RiskHandler{service: service, errorHandler: errorHandler, logger: logger}
}

// Facilities handles GET /api/risk-assessment/facilities.
func (h *RiskHandler) Facilities(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, h.logger, http.StatusOK, h.service.Facilities(r.Context()))
}

// Assessment handles GET /api/risk-assessment/{facilityID}.
func (h *RiskHandler) Assessment(w http.ResponseWriter, r *http.Request) {
	assessment, err := h.service.Assessment(r.Context(), chi.URLParam(r, "facilityID"))
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, h.logger, http.StatusOK, assessment)
}

// UpdateAssessment handles POST /api/risk-assessment/{facilityID}.
func (h *RiskHandler) UpdateAssessment(w http.ResponseWriter, r *http.Request) {
	var req services.RiskAssessmentUpdate
	if err := common.ParseJSONBody(w, r, &req, 1<<20); err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewValidationError("Invalid request body: "+err.Error()))
		return
	}

	assessment, err := h.service.UpdateAssessment(r.Context(), chi.URLParam(r, "facilityID"), req)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, h.logger, http.StatusOK, assessment)
}
