package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tailingsiq-backend/application/ports"
	"tailingsiq-backend/domain"
	"tailingsiq-backend/pkg/errors"
)

// RiskAssessmentUpdate is the accepted but currently ignored update body.
// The demo backend stores no per-facility factor overrides; accepting the
// shape keeps the contract stable for when it does.
type RiskAssessmentUpdate struct {
	FacilityID     string                   `json:"facility_id"`
	AssessmentDate *time.Time               `json:"assessment_date"`
	Factors        []map[string]interface{} `json:"factors"`
}

// RiskService implements the risk assessment use cases.
type RiskService struct {
	facilities ports.FacilityRepository
	risks      ports.RiskRepository
	logger     *zap.Logger
}

// NewRiskService creates a new risk service.
func NewRiskService(
	facilities ports.FacilityRepository,
	risks ports.RiskRepository,
	logger *zap.Logger,
) *RiskService {
	return &RiskService{
		facilities: facilities,
		risks:      risks,
		logger:     logger,
	}
}

// Facilities returns the risk projection of the facility set.
func (s *RiskService) Facilities(ctx context.Context) []domain.RiskFacilitySummary {
	facilities := s.facilities.List()
	out := make([]domain.RiskFacilitySummary, 0, len(facilities))
	for _, f := range facilities {
		out = append(out, f.RiskSummary())
	}
	return out
}

// Assessment returns the full risk assessment for a facility: its overall
// score and category plus the shared factor set and the recommendations
// for its risk band.
func (s *RiskService) Assessment(ctx context.Context, facilityID string) (domain.RiskAssessment, error) {
	facility, ok := s.facilities.Get(facilityID)
	if !ok {
		return domain.RiskAssessment{}, errors.NewNotFoundError("Facility")
	}

	return domain.RiskAssessment{
		FacilityID:       facilityID,
		FacilityName:     facility.Name,
		OverallRiskScore: facility.RiskScore,
		RiskCategory:     facility.RiskCategory,
		Factors:          s.risks.Factors(),
		Recommendations:  s.risks.Recommendations(facility.RiskCategory),
		LastUpdated:      time.Now(),
	}, nil
}

// UpdateAssessment accepts an assessment submission and returns the stored
// assessment. Submitted factors are not persisted.
func (s *RiskService) UpdateAssessment(ctx context.Context, facilityID string, update RiskAssessmentUpdate) (domain.RiskAssessment, error) {
	s.logger.Info("risk assessment submitted",
		zap.String("facility_id", facilityID),
		zap.Int("factors", len(update.Factors)),
	)
	return s.Assessment(ctx, facilityID)
}
