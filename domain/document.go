package domain

import "time"

// AllFacilitiesName labels documents that are not tied to a single facility.
const AllFacilitiesName = "All Facilities"

// Document represents document metadata tracked by knowledge management.
// The actual file bytes live with the (unimplemented) storage collaborator;
// only the synthetic path is recorded here.
type Document struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category"`
	FacilityID   string    `json:"facility_id,omitempty"`
	FacilityName string    `json:"facility_name,omitempty"`
	Author       string    `json:"author"`
	UploadDate   time.Time `json:"upload_date"`
	LastModified time.Time `json:"last_modified"`
	FileType     string    `json:"file_type"`
	FileSize     int64     `json:"file_size"`
	FilePath     string    `json:"file_path"`
	Tags         []string  `json:"tags"`
	Version      string    `json:"version"`
}

// DocumentCategories is the category whitelist; creation and update fail
// closed against it.
var DocumentCategories = []string{
	"Safety Inspection",
	"Environmental",
	"Technical",
	"Monitoring",
	"Emergency",
	"Compliance",
	"Community",
	"Design",
	"Operations",
	"Maintenance",
}

// ValidDocumentCategory reports whether category is in the whitelist.
func ValidDocumentCategory(category string) bool {
	for _, c := range DocumentCategories {
		if c == category {
			return true
		}
	}
	return false
}
