// Package ports defines the repository interfaces consumed by the
// application services. Stores are injected so the query pipeline stays a
// pure function over snapshots and the in-memory implementations can be
// swapped for a real persistence layer without touching service logic.
package ports

import (
	"tailingsiq-backend/domain"
)

// FacilityRepository provides the static facility set. Facilities have no
// lifecycle; the set is fixed for the process lifetime.
type FacilityRepository interface {
	List() []domain.Facility
	Get(id string) (domain.Facility, bool)
}

// DocumentRepository stores document metadata records.
type DocumentRepository interface {
	// List returns a snapshot of all documents in insertion order.
	List() []domain.Document
	Get(id string) (domain.Document, bool)

	// Insert assigns the next sequential identifier, stores the document,
	// and returns it with the identifier set.
	Insert(doc domain.Document) domain.Document

	// Update applies fn to the stored document under the store lock and
	// returns the updated copy. fn returning an error aborts the update.
	Update(id string, fn func(*domain.Document) error) (domain.Document, error)

	Delete(id string) bool
}

// SensorRepository stores per-facility sensor records.
type SensorRepository interface {
	ListByFacility(facilityID string) []domain.Sensor
	Get(sensorID string) (domain.Sensor, bool)
}

// AlertRepository stores per-facility monitoring alerts.
type AlertRepository interface {
	// ListByFacility returns a snapshot sorted by timestamp, most recent
	// first.
	ListByFacility(facilityID string) []domain.Alert
	Get(alertID string) (domain.Alert, bool)

	// Update applies fn to the stored alert under the store lock and
	// returns the updated copy. fn returning an error aborts the update.
	Update(alertID string, fn func(*domain.Alert) error) (domain.Alert, error)
}

// RiskRepository stores risk factors and per-band recommendations.
type RiskRepository interface {
	Factors() []domain.RiskFactor
	Recommendations(riskCategory string) []string
}

// KnowledgeRepository provides the assistant's ordered knowledge base.
type KnowledgeRepository interface {
	Entries() []domain.KnowledgeEntry
}

// UserRepository is the mock user directory.
type UserRepository interface {
	Get(username string) (domain.StoredUser, bool)
}
