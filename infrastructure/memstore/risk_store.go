package memstore

import (
	"time"

	"tailingsiq-backend/domain"
)

// RiskStore holds the sample risk factors and the recommendation bands.
type RiskStore struct {
	factors         []domain.RiskFactor
	recommendations map[string][]string
}

// NewRiskStore creates the store seeded with the sample assessment data.
func NewRiskStore() *RiskStore {
	now := time.Now()
	return &RiskStore{
		factors: []domain.RiskFactor{
			{
				ID:          "RF001",
				Name:        "Dam Structural Integrity",
				Description: "Risk of structural failure in the tailings dam due to design flaws, construction issues, or aging infrastructure.",
				Category:    "Structural",
				ImpactLevel: domain.RiskCategoryCritical,
				Probability: "Low",
				RiskScore:   15,
				MitigationStatus: domain.MitigationInProgress,
				MitigationActions: []string{
					"Regular structural inspections",
					"Reinforcement of critical sections",
					"Monitoring of settlement and deformation",
				},
				LastAssessment: now,
			},
			{
				ID:          "RF002",
				Name:        "Seepage Control",
				Description: "Risk of uncontrolled seepage through or under the dam, potentially leading to internal erosion or foundation weakening.",
				Category:    "Hydrological",
				ImpactLevel: domain.RiskCategoryHigh,
				Probability: "Medium",
				RiskScore:   12,
				MitigationStatus: domain.MitigationInProgress,
				MitigationActions: []string{
					"Installation of additional piezometers",
					"Regular monitoring of seepage water quality",
					"Maintenance of drainage systems",
				},
				LastAssessment: now,
			},
			{
				ID:          "RF003",
				Name:        "Extreme Weather Events",
				Description: "Risk of dam overtopping or damage due to extreme rainfall, flooding, or other severe weather conditions.",
				Category:    "Environmental",
				ImpactLevel: domain.RiskCategoryHigh,
				Probability: "Medium",
				RiskScore:   12,
				MitigationStatus: domain.MitigationInProgress,
				MitigationActions: []string{
					"Increase freeboard capacity",
					"Improve spillway capacity",
					"Implement early warning systems for extreme weather",
				},
				LastAssessment: now,
			},
			{
				ID:          "RF004",
				Name:        "Seismic Activity",
				Description: "Risk of damage to tailings facility due to earthquakes or other seismic events.",
				Category:    "Geological",
				ImpactLevel: domain.RiskCategoryHigh,
				Probability: "Low",
				RiskScore:   8,
				MitigationStatus: domain.MitigationCompleted,
				MitigationActions: []string{
					"Seismic hazard assessment",
					"Design upgrades for seismic resilience",
					"Installation of seismic monitoring equipment",
				},
				LastAssessment: now,
			},
			{
				ID:          "RF005",
				Name:        "Water Management",
				Description: "Risk of inadequate water management leading to increased pore pressure, reduced stability, or overtopping.",
				Category:    "Operational",
				ImpactLevel: domain.RiskCategoryMedium,
				Probability: "Medium",
				RiskScore:   9,
				MitigationStatus: domain.MitigationInProgress,
				MitigationActions: []string{
					"Regular water balance assessments",
					"Optimization of water reclaim systems",
					"Monitoring of pond water levels",
				},
				LastAssessment: now,
			},
		},
		recommendations: map[string][]string{
			domain.RiskCategoryHigh: {
				"Conduct comprehensive third-party review of dam design and construction",
				"Increase monitoring frequency for critical parameters",
				"Develop and test emergency response procedures",
				"Evaluate and improve water management practices",
				"Consider implementing additional instrumentation",
			},
			domain.RiskCategoryMedium: {
				"Review and update risk assessment quarterly",
				"Ensure regular maintenance of monitoring systems",
				"Conduct staff training on risk management procedures",
				"Evaluate climate change impacts on facility design parameters",
			},
			domain.RiskCategoryLow: {
				"Maintain current monitoring schedule",
				"Review risk assessment annually",
				"Ensure documentation is up to date",
			},
		},
	}
}

// Factors returns the sample risk factors.
func (s *RiskStore) Factors() []domain.RiskFactor {
	return s.factors
}

// Recommendations returns the recommendation list for a risk category band,
// or nil for an unknown band.
func (s *RiskStore) Recommendations(riskCategory string) []string {
	return s.recommendations[riskCategory]
}
