package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"tailingsiq-backend/application/services"
	"tailingsiq-backend/pkg/common"
)

// FacilityHandler handles the general facility listing.
type FacilityHandler struct {
	service *services.FacilityService
	logger  *zap.Logger
}

// NewFacilityHandler creates a new facility handler.
func NewFacilityHandler(service *services.FacilityService, logger *zap.Logger) *FacilityHandler {
	return &FacilityHandler{service: service, logger: logger}
}

// List handles GET /api/facilities.
func (h *FacilityHandler) List(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, h.logger, http.StatusOK, h.service.List(r.Context()))
}
