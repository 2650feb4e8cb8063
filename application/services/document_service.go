// Package services implements the application use cases on top of the
// repository ports. Services hold no request state; every method takes its
// inputs explicitly and returns domain values or an application error.
package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"tailingsiq-backend/application/ports"
	"tailingsiq-backend/domain"
	"tailingsiq-backend/pkg/errors"
	"tailingsiq-backend/pkg/query"
)

// DocumentPage is the document listing response shape.
type DocumentPage struct {
	Documents  []domain.Document `json:"documents"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// DocumentUpload carries the metadata fields of an upload request. Tags
// arrive comma-separated alongside the multipart file.
type DocumentUpload struct {
	Title       string
	Description string
	Category    string
	FacilityID  string
	Tags        []string
	FileName    string
	FileSize    int64
}

// DocumentUpdate carries a partial metadata update. Nil pointers leave the
// field untouched; a pointer to the empty string clears it where clearing
// is meaningful (description, facility).
type DocumentUpdate struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	FacilityID  *string  `json:"facility_id"`
	Tags        []string `json:"tags"`
}

// DocumentVersionUpload carries the replacement file of a version upload.
type DocumentVersionUpload struct {
	FileName string
	FileSize int64
}

// DocumentService implements the knowledge management use cases.
type DocumentService struct {
	documents  ports.DocumentRepository
	facilities ports.FacilityRepository
	logger     *zap.Logger
}

// NewDocumentService creates a new document service.
func NewDocumentService(
	documents ports.DocumentRepository,
	facilities ports.FacilityRepository,
	logger *zap.Logger,
) *DocumentService {
	return &DocumentService{
		documents:  documents,
		facilities: facilities,
		logger:     logger,
	}
}

// documentSchema wires documents into the listing pipeline. Sorting by an
// unrecognized field falls back to upload date.
var documentSchema = query.Schema[domain.Document]{
	Filters: map[string]func(domain.Document) string{
		"category":    func(d domain.Document) string { return d.Category },
		"facility_id": func(d domain.Document) string { return d.FacilityID },
	},
	SearchText: func(d domain.Document) []string {
		fields := []string{d.Title, d.Description}
		return append(fields, d.Tags...)
	},
	Sorts: map[string]func(a, b domain.Document) int{
		"title":     func(a, b domain.Document) int { return strings.Compare(a.Title, b.Title) },
		"category":  func(a, b domain.Document) int { return strings.Compare(a.Category, b.Category) },
		"file_size": func(a, b domain.Document) int {
			switch {
			case a.FileSize < b.FileSize:
				return -1
			case a.FileSize > b.FileSize:
				return 1
			default:
				return 0
			}
		},
		"upload_date": func(a, b domain.Document) int {
			return a.UploadDate.Compare(b.UploadDate)
		},
	},
	DefaultSort: "upload_date",
}

// List returns one page of documents after filtering, search, and sorting.
func (s *DocumentService) List(ctx context.Context, params query.Params) (DocumentPage, error) {
	page := query.Run(s.documents.List(), documentSchema, params)
	return DocumentPage{
		Documents:  page.Items,
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

// Get returns one document's metadata.
func (s *DocumentService) Get(ctx context.Context, id string) (domain.Document, error) {
	doc, ok := s.documents.Get(id)
	if !ok {
		return domain.Document{}, errors.NewNotFoundError("Document")
	}
	return doc, nil
}

// Categories returns the category whitelist.
func (s *DocumentService) Categories(ctx context.Context) []string {
	return domain.DocumentCategories
}

// Facilities returns the facility id-to-name map used for document
// filtering.
func (s *DocumentService) Facilities(ctx context.Context) map[string]string {
	out := make(map[string]string)
	for _, f := range s.facilities.List() {
		out[f.ID] = f.Name
	}
	return out
}

// Upload registers a new document's metadata. Category and facility are
// validated against their whitelists; the author is the authenticated
// caller.
func (s *DocumentService) Upload(ctx context.Context, author string, req DocumentUpload) (domain.Document, error) {
	if !domain.ValidDocumentCategory(req.Category) {
		return domain.Document{}, errors.NewValidationError("Invalid category")
	}

	facilityName := domain.AllFacilitiesName
	if req.FacilityID != "" {
		facility, ok := s.facilities.Get(req.FacilityID)
		if !ok {
			return domain.Document{}, errors.NewValidationError("Invalid facility ID")
		}
		facilityName = facility.Name
	}

	now := time.Now()
	fileType := fileExtension(req.FileName)
	doc := s.documents.Insert(domain.Document{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		FacilityID:   req.FacilityID,
		FacilityName: facilityName,
		Author:       author,
		UploadDate:   now,
		LastModified: now,
		FileType:     fileType,
		FileSize:     req.FileSize,
		Tags:         req.Tags,
		Version:      "1.0",
	})

	// The file path is assigned after insert because it embeds the ID.
	doc, err := s.documents.Update(doc.ID, func(d *domain.Document) error {
		d.FilePath = fmt.Sprintf("/storage/documents/%s.%s", d.ID, strings.ToLower(fileType))
		return nil
	})
	if err != nil {
		return domain.Document{}, err
	}

	s.logger.Info("document uploaded",
		zap.String("document_id", doc.ID),
		zap.String("category", doc.Category),
		zap.String("author", author),
	)
	return doc, nil
}

// Update applies a partial metadata update and bumps the minor version.
func (s *DocumentService) Update(ctx context.Context, id string, req DocumentUpdate) (domain.Document, error) {
	if req.Category != nil && *req.Category != "" && !domain.ValidDocumentCategory(*req.Category) {
		return domain.Document{}, errors.NewValidationError("Invalid category")
	}

	var facilityName string
	if req.FacilityID != nil && *req.FacilityID != "" {
		facility, ok := s.facilities.Get(*req.FacilityID)
		if !ok {
			return domain.Document{}, errors.NewValidationError("Invalid facility ID")
		}
		facilityName = facility.Name
	}

	return s.documents.Update(id, func(d *domain.Document) error {
		if req.Title != nil && *req.Title != "" {
			d.Title = *req.Title
		}
		if req.Description != nil {
			d.Description = *req.Description
		}
		if req.Category != nil && *req.Category != "" {
			d.Category = *req.Category
		}
		if req.FacilityID != nil {
			d.FacilityID = *req.FacilityID
			if *req.FacilityID == "" {
				d.FacilityName = domain.AllFacilitiesName
			} else {
				d.FacilityName = facilityName
			}
		}
		if req.Tags != nil {
			d.Tags = req.Tags
		}
		d.LastModified = time.Now()
		d.Version = bumpMinorVersion(d.Version)
		return nil
	})
}

// Delete removes a document's metadata.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	if !s.documents.Delete(id) {
		return errors.NewNotFoundError("Document")
	}
	s.logger.Info("document deleted", zap.String("document_id", id))
	return nil
}

// Download is declared but not served; file storage is out of scope for
// the mock backend.
func (s *DocumentService) Download(ctx context.Context, id string) error {
	if _, ok := s.documents.Get(id); !ok {
		return errors.NewNotFoundError("Document")
	}
	return errors.NewUnimplementedError(
		"Document download not implemented in mock API. In a real implementation, this would return the file.")
}

// NewVersion records a replacement file for an existing document and bumps
// the minor version.
func (s *DocumentService) NewVersion(ctx context.Context, id string, req DocumentVersionUpload) (domain.Document, error) {
	fileType := fileExtension(req.FileName)
	return s.documents.Update(id, func(d *domain.Document) error {
		d.LastModified = time.Now()
		d.FileSize = req.FileSize
		d.FileType = fileType
		d.FilePath = fmt.Sprintf("/storage/documents/%s.%s", d.ID, strings.ToLower(fileType))
		d.Version = bumpMinorVersion(d.Version)
		return nil
	})
}

// bumpMinorVersion increments the minor component of a "major.minor"
// version string. Any other shape is kept as-is.
func bumpMinorVersion(version string) string {
	parts := strings.Split(version, ".")
	if len(parts) != 2 {
		return version
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return version
	}
	return fmt.Sprintf("%s.%d", parts[0], minor+1)
}

// fileExtension extracts the uppercased extension of an uploaded file
// name, defaulting to BIN when there is none.
func fileExtension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return "BIN"
	}
	return strings.ToUpper(name[idx+1:])
}
