package services

import (
	"context"

	"tailingsiq-backend/application/ports"
	"tailingsiq-backend/domain"
)

// FacilityService serves the general facility listing.
type FacilityService struct {
	facilities ports.FacilityRepository
}

// NewFacilityService creates a new facility service.
func NewFacilityService(facilities ports.FacilityRepository) *FacilityService {
	return &FacilityService{facilities: facilities}
}

// List returns the general projection of every facility.
func (s *FacilityService) List(ctx context.Context) []domain.FacilitySummary {
	facilities := s.facilities.List()
	out := make([]domain.FacilitySummary, 0, len(facilities))
	for _, f := range facilities {
		out = append(out, f.Summary())
	}
	return out
}
