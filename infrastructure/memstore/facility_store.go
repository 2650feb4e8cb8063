// Package memstore provides the in-memory repository implementations.
// Every store is seeded at startup and guarded by a mutex; nothing is
// durable across restarts.
package memstore

import (
	"sync"

	"tailingsiq-backend/domain"
)

// FacilityStore is the static facility set. One record per facility backs
// the general, monitoring, and risk projections.
type FacilityStore struct {
	mu         sync.RWMutex
	order      []string
	facilities map[string]domain.Facility
}

// NewFacilityStore creates the store seeded with the sample facilities.
func NewFacilityStore() *FacilityStore {
	seed := []domain.Facility{
		{
			ID: "FAC001", Name: "North Basin Facility", Location: "Northern Region",
			Status:           domain.FacilityStatusActive,
			MonitoringStatus: domain.MonitoringStatusNormal,
			RiskScore:        12, RiskCategory: domain.RiskCategoryHigh,
		},
		{
			ID: "FAC002", Name: "South Basin Facility", Location: "Southern Region",
			Status:           domain.FacilityStatusActive,
			MonitoringStatus: domain.MonitoringStatusWarning,
			RiskScore:        8, RiskCategory: domain.RiskCategoryMedium,
		},
		{
			ID: "FAC003", Name: "East Basin Facility", Location: "Eastern Region",
			Status:           domain.FacilityStatusMaintenance,
			MonitoringStatus: domain.MonitoringStatusNormal,
			RiskScore:        15, RiskCategory: domain.RiskCategoryHigh,
		},
		{
			ID: "FAC004", Name: "West Basin Facility", Location: "Western Region",
			Status:           domain.FacilityStatusActive,
			MonitoringStatus: domain.MonitoringStatusAlert,
			RiskScore:        5, RiskCategory: domain.RiskCategoryLow,
		},
	}

	store := &FacilityStore{facilities: make(map[string]domain.Facility, len(seed))}
	for _, f := range seed {
		store.order = append(store.order, f.ID)
		store.facilities[f.ID] = f
	}
	return store
}

// List returns all facilities in seed order.
func (s *FacilityStore) List() []domain.Facility {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Facility, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.facilities[id])
	}
	return out
}

// Get returns one facility by identifier.
func (s *FacilityStore) Get(id string) (domain.Facility, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.facilities[id]
	return f, ok
}
