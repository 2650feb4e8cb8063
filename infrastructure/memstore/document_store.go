package memstore

import (
	"fmt"
	"sync"
	"time"

	"tailingsiq-backend/domain"
	"tailingsiq-backend/pkg/errors"
)

// DocumentStore stores document metadata records. Identifiers are
// sequential (DOC001, DOC002, ...), continuing after the seed set.
type DocumentStore struct {
	mu     sync.RWMutex
	order  []string
	docs   map[string]domain.Document
	nextID int
}

// NewDocumentStore creates the store seeded with the sample documents.
func NewDocumentStore() *DocumentStore {
	store := &DocumentStore{docs: make(map[string]domain.Document)}
	for _, doc := range sampleDocuments() {
		store.order = append(store.order, doc.ID)
		store.docs[doc.ID] = doc
	}
	store.nextID = len(store.order) + 1
	return store
}

// List returns a snapshot of all documents in insertion order.
func (s *DocumentStore) List() []domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Document, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.docs[id])
	}
	return out
}

// Get returns one document by identifier.
func (s *DocumentStore) Get(id string) (domain.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	return doc, ok
}

// Insert assigns the next sequential identifier and stores the document.
func (s *DocumentStore) Insert(doc domain.Document) domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc.ID = fmt.Sprintf("DOC%03d", s.nextID)
	s.nextID++
	s.order = append(s.order, doc.ID)
	s.docs[doc.ID] = doc
	return doc
}

// Update applies fn to the stored document under the store lock.
func (s *DocumentStore) Update(id string, fn func(*domain.Document) error) (domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return domain.Document{}, errors.NewNotFoundError("Document")
	}
	if err := fn(&doc); err != nil {
		return domain.Document{}, err
	}
	s.docs[id] = doc
	return doc, nil
}

// Delete removes a document, reporting whether it existed.
func (s *DocumentStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return false
	}
	delete(s.docs, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func sampleDocuments() []domain.Document {
	return []domain.Document{
		{
			ID:           "DOC001",
			Title:        "Tailings Dam Safety Inspection Report - Q1 2025",
			Description:  "Quarterly safety inspection report for the North Basin tailings facility",
			Category:     "Safety Inspection",
			FacilityID:   "FAC001",
			FacilityName: "North Basin Facility",
			Author:       "John Smith",
			UploadDate:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			LastModified: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			FileType:     "PDF",
			FileSize:     4200000,
			FilePath:     "/storage/documents/DOC001.pdf",
			Tags:         []string{"inspection", "safety", "quarterly", "2025"},
			Version:      "1.0",
		},
		{
			ID:           "DOC002",
			Title:        "Environmental Impact Assessment - South Basin Expansion",
			Description:  "Environmental impact assessment for the proposed expansion of the South Basin facility",
			Category:     "Environmental",
			FacilityID:   "FAC002",
			FacilityName: "South Basin Facility",
			Author:       "Maria Rodriguez",
			UploadDate:   time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
			LastModified: time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
			FileType:     "PDF",
			FileSize:     12800000,
			FilePath:     "/storage/documents/DOC002.pdf",
			Tags:         []string{"environmental", "assessment", "expansion", "impact"},
			Version:      "1.2",
		},
		{
			ID:           "DOC003",
			Title:        "Geotechnical Analysis Report - East Dam",
			Description:  "Detailed geotechnical analysis of the East Basin dam structure",
			Category:     "Technical",
			FacilityID:   "FAC003",
			FacilityName: "East Basin Facility",
			Author:       "David Chen",
			UploadDate:   time.Date(2025, 1, 22, 0, 0, 0, 0, time.UTC),
			LastModified: time.Date(2025, 1, 22, 0, 0, 0, 0, time.UTC),
			FileType:     "PDF",
			FileSize:     8500000,
			FilePath:     "/storage/documents/DOC003.pdf",
			Tags:         []string{"geotechnical", "analysis", "dam", "structure"},
			Version:      "1.0",
		},
		{
			ID:           "DOC004",
			Title:        "Water Quality Monitoring Results - Q4 2024",
			Description:  "Quarterly water quality monitoring results for the North Basin facility",
			Category:     "Monitoring",
			FacilityID:   "FAC001",
			FacilityName: "North Basin Facility",
			Author:       "Sarah Johnson",
			UploadDate:   time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			LastModified: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			FileType:     "XLSX",
			FileSize:     3100000,
			FilePath:     "/storage/documents/DOC004.xlsx",
			Tags:         []string{"water quality", "monitoring", "quarterly", "2024"},
			Version:      "1.1",
		},
		{
			ID:           "DOC005",
			Title:        "Emergency Response Plan - 2025 Update",
			Description:  "Updated emergency response plan for all tailings facilities",
			Category:     "Emergency",
			FacilityName: domain.AllFacilitiesName,
			Author:       "Robert Williams",
			UploadDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			LastModified: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			FileType:     "PDF",
			FileSize:     5700000,
			FilePath:     "/storage/documents/DOC005.pdf",
			Tags:         []string{"emergency", "response", "plan", "2025"},
			Version:      "2.0",
		},
		{
			ID:           "DOC006",
			Title:        "Regulatory Compliance Checklist",
			Description:  "Checklist for ensuring compliance with regulatory requirements",
			Category:     "Compliance",
			FacilityName: domain.AllFacilitiesName,
			Author:       "Jennifer Lee",
			UploadDate:   time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
			LastModified: time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
			FileType:     "XLSX",
			FileSize:     1200000,
			FilePath:     "/storage/documents/DOC006.xlsx",
			Tags:         []string{"regulatory", "compliance", "checklist"},
			Version:      "1.0",
		},
		{
			ID:           "DOC007",
			Title:        "Stakeholder Engagement Report - 2024",
			Description:  "Annual report on stakeholder engagement activities",
			Category:     "Community",
			FacilityName: domain.AllFacilitiesName,
			Author:       "Michael Brown",
			UploadDate:   time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC),
			LastModified: time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC),
			FileType:     "PDF",
			FileSize:     6300000,
			FilePath:     "/storage/documents/DOC007.pdf",
			Tags:         []string{"stakeholder", "engagement", "community", "2024"},
			Version:      "1.0",
		},
		{
			ID:           "DOC008",
			Title:        "Tailings Storage Facility Design Specifications",
			Description:  "Technical design specifications for the West Basin tailings storage facility",
			Category:     "Design",
			FacilityID:   "FAC004",
			FacilityName: "West Basin Facility",
			Author:       "Thomas Anderson",
			UploadDate:   time.Date(2024, 11, 28, 0, 0, 0, 0, time.UTC),
			LastModified: time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC),
			FileType:     "PDF",
			FileSize:     15400000,
			FilePath:     "/storage/documents/DOC008.pdf",
			Tags:         []string{"design", "specifications", "technical", "storage"},
			Version:      "1.3",
		},
	}
}
