// Package handlers contains the HTTP handlers. Handlers decode and
// validate requests, delegate to the application services, and encode the
// outcomes; business rules live in the services.
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

// DocumentHandler handles document management requests.
type DocumentHandler struct {
	service        *services.DocumentService
	errorHandler   *apperrors.ErrorHandler
	collector      *observability.Collector
	maxUploadBytes int64
	logger         *zap.Logger
}

// NewDocumentHandler creates a new document handler.
func NewDocumentHandler(
	service *services.DocumentService,
	errorHandler *apperrors.ErrorHandler,
	collector *observability.Collector,
	maxUploadBytes int64,
	logger *zap.Logger,
) *DocumentHandler {
	return &DocumentHandler{
		service:        service,
		errorHandler:   errorHandler,
		collector:      collector,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

var documentListDefaults = common.ListDefaults{
	PageSize:  10,
	SortBy:    "upload_date",
	SortOrder: "desc",
}

// List handles GET /api/documents.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	params, err := common.ExtractListParams(r, documentListDefaults)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	filters := map[string]string{
		"category":    r.URL.Query().Get("category"),
		"facility_id": r.URL.Query().Get("facility_id"),
	}

	page, err := h.service.List(r.Context(), params.QueryParams(filters))
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, h.logger, http.StatusOK, page)
}

// Get handles GET /api/documents/{documentID}.
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.Get(r.Context(), chi.URLParam(r, "documentID"))
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, h.logger, http.StatusOK, doc)
}

// Categories handles GET /api/documents/categories.
func (h *DocumentHandler) Categories(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, h.logger, http.StatusOK, h.service.Categories(r.Context()))
}

// Facilities handles GET /api/documents/facilities.
func (h *DocumentHandler) Facilities(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, h.logger, http.StatusOK, h.service.Facilities(r.Context()))
}

// Upload handles POST /api/documents. The request is a multipart form with
// the metadata fields plus the file; tags arrive comma-separated.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewUnauthorizedError(""))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewValidationError("Invalid multipart form: "+err.Error()))
		return
	}

	title := r.FormValue("title")
	category := r.FormValue("category")
	if title == "" || category == "" {
		h.errorHandler.Handle(w, r, apperrors.NewValidationError("title and category are required"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewValidationError("file is required"))
		return
	}
	defer file.Close()

	doc, err := h.service.Upload(r.Context(), user.Username, services.DocumentUpload{
		Title:       title,
		Description: r.FormValue("description"),
		Category:    category,
		FacilityID:  r.FormValue("facility_id"),
		Tags:        common.SplitTags(r.FormValue("tags")),
		FileName:    header.Filename,
		FileSize:    header.Size,
	})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.collector.DocumentsUploaded.Inc()
	common.RespondJSON(w, h.logger, http.StatusOK, doc)
}

// Update handles PUT /api/documents/{documentID}.
func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req services.DocumentUpdate
	if err := common.ParseJSONBody(w, r, &req, h.maxUploadBytes); err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewValidationError("Invalid request body: "+err.Error()))
		return
	}

	doc, err := h.service.Update(r.Context(), chi.URLParam(r, "documentID"), req)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, h.logger, http.StatusOK, doc)
}

// Delete handles DELETE /api/documents/{documentID}.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "documentID")); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.collector.DocumentsDeleted.Inc()
	common.RespondNoContent(w)
}

// Download handles GET /api/documents/{documentID}/download. File storage
// is out of scope, so a found document answers 501.
func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	err := h.service.Download(r.Context(), chi.URLParam(r, "documentID"))
	h.errorHandler.Handle(w, r, err)
}

// NewVersion handles POST /api/documents/{documentID}/version.
func (h *DocumentHandler) NewVersion(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewValidationError("Invalid multipart form: "+err.Error()))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewValidationError("file is required"))
		return
	}
	defer file.Close()

	doc, err := h.service.NewVersion(r.Context(), chi.URLParam(r, "documentID"), services.DocumentVersionUpload{
		FileName: header.Filename,
		FileSize: header.Size,
	})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, h.logger, http.StatusOK, doc)
}
