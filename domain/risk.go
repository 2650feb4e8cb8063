package domain

import "time"

// Risk categories and mitigation statuses.
const (
	RiskCategoryLow      = "Low"
	RiskCategoryMedium   = "Medium"
	RiskCategoryHigh     = "High"
	RiskCategoryCritical = "Critical"

	MitigationNotStarted = "Not Started"
	MitigationInProgress = "In Progress"
	MitigationCompleted  = "Completed"
)

// RiskFactor represents one assessed risk with its mitigation state. The
// risk score combines impact and probability on a 1-25 scale.
type RiskFactor struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Category          string    `json:"category"`
	ImpactLevel       string    `json:"impact_level"`
	Probability       string    `json:"probability"`
	RiskScore         int       `json:"risk_score"`
	MitigationStatus  string    `json:"mitigation_status"`
	MitigationActions []string  `json:"mitigation_actions"`
	LastAssessment    time.Time `json:"last_assessment"`
}

// RiskAssessment is the full assessment response for a facility.
type RiskAssessment struct {
	FacilityID       string       `json:"facility_id"`
	FacilityName     string       `json:"facility_name"`
	OverallRiskScore int          `json:"overall_risk_score"`
	RiskCategory     string       `json:"risk_category"`
	Factors          []RiskFactor `json:"factors"`
	Recommendations  []string     `json:"recommendations"`
	LastUpdated      time.Time    `json:"last_updated"`
}
