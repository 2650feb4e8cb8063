package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tailingsiq-backend/application/services"
	"tailingsiq-backend/pkg/auth"
	"tailingsiq-backend/pkg/common"
	apperrors "tailingsiq-backend/pkg/errors"
	"tailingsiq-backend/pkg/observability"
)

// MonitoringHandler handles sensor, dashboard, and alert requests.
type MonitoringHandler struct {
	service      *services.MonitoringService
	errorHandler *apperrors.ErrorHandler
	collector    *observability.Collector
	logger       *zap.Logger
}

// NewMonitoringHandler creates a new monitoring handler.
func NewMonitoringHandler(
	service *services.MonitoringService,
	errorHandler *apperrors.ErrorHandler,
	collector *observability.Collector,
	logger *zap.Logger,
) *MonitoringHandler {
	return &MonitoringHandler{
		service:      service,
		errorHandler: errorHandler,
		collector:    collector,
		logger:       logger,
	}
}

var sensorListDefaults = common.ListDefaults{
	PageSize:  10,
	SortBy:    "sensor_id",
	SortOrder: "asc",
}

var alertListDefaults = common.ListDefaults{
	PageSize:  20,
	SortBy:    "timestamp",
	SortOrder: "desc",
}

// ResolveAlertRequest is the body of an alert resolution.
type ResolveAlertRequest struct {
	Notes string `json:"notes" validate:"required"`
}

// Facilities handles GET /api/monitoring/facilities.
func (h *MonitoringHandler) Facilities(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, h.logger, http.StatusOK, h.service.Facilities(r.Context()))
}

// Dashboard handles GET /api/monitoring/dashboard/{facilityID}.
func (h *MonitoringHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.Dashboard(r.Context(), chi.URLParam(r, "facilityID"))
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, h.logger, http.StatusOK, dashboard)
}

// Sensors handles GET /api/monitoring/sensors/{facilityID}.
func (h *MonitoringHandler) Sensors(w http.ResponseWriter, r *http.Request) {
	params, err := common.ExtractListParams(r, sensorListDefaults)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	filters := map[string]string{
		"sensor_type": r.URL.Query().Get("sensor_type"),
		"location":    r.URL.Query().Get("location"),
		"status":      r.URL.Query().Get("status"),
	}

	page, err := h.service.Sensors(r.Context(), chi.URLParam(r, "facilityID"), params.QueryParams(filters))
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, h.logger, http.StatusOK, page)
}

// Sensor handles GET /api/monitoring/sensor/{sensorID}.
func (h *MonitoringHandler) Sensor(w http.ResponseWriter, r *http.Request) {
	sensor, err := h.service.Sensor(r.Context(), chi.URLParam(r, "sensorID"))
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, h.logger, http.StatusOK, sensor)
}

// Alerts handles GET /api/monitoring/alerts/{facilityID}.
func (h *MonitoringHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	params, err := common.ExtractListParams(r, alertListDefaults)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	filters := map[string]string{
		"severity": r.URL.Query().Get("severity"),
		"status":   r.URL.Query().Get("status"),
	}

	page, err := h.service.Alerts(r.Context(), chi.URLParam(r, "facilityID"), params.QueryParams(filters))
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, h.logger, http.StatusOK, page)
}

// Acknowledge handles POST /api/monitoring/alerts/{alertID}/acknowledge.
func (h *MonitoringHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewUnauthorizedError(""))
		return
	}

	alert, err := h.service.Acknowledge(r.Context(), chi.URLParam(r, "alertID"), user.Username)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.collector.AlertsAcknowledged.Inc()
	common.RespondJSON(w, h.logger, http.StatusOK, alert)
}

// Resolve handles POST /api/monitoring/alerts/{alertID}/resolve.
func (h *MonitoringHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewUnauthorizedError(""))
		return
	}

	var req ResolveAlertRequest
	if err := common.ParseJSONBody(w, r, &req, 1<<20); err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewValidationError("Invalid request body: "+err.Error()))
		return
	}
	if req.Notes == "" {
		h.errorHandler.Handle(w, r, apperrors.NewValidationError("notes is required"))
		return
	}

	alert, err := h.service.Resolve(r.Context(), chi.URLParam(r, "alertID"), user.Username, req.Notes)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.collector.AlertsResolved.Inc()
	common.RespondJSON(w, h.logger, http.StatusOK, alert)
}
