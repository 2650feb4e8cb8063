package domain

// Facility statuses as exposed by the facility listing endpoints.
const (
	FacilityStatusActive      = "Active"
	FacilityStatusMaintenance = "Maintenance"
)

// Monitoring statuses summarizing a facility's overall sensor picture.
const (
	MonitoringStatusNormal  = "Normal"
	MonitoringStatusWarning = "Warning"
	MonitoringStatusAlert   = "Alert"
)

// Facility represents a physical tailings-storage site. A single record
// backs the general, monitoring, and risk projections of the facility
// endpoints.
type Facility struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Location         string `json:"location"`
	Status           string `json:"status"`
	MonitoringStatus string `json:"-"`
	RiskScore        int    `json:"-"`
	RiskCategory     string `json:"-"`
}

// FacilitySummary is the general facility listing projection.
type FacilitySummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

// MonitoringFacilitySummary is the monitoring listing projection.
type MonitoringFacilitySummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// RiskFacilitySummary is the risk listing projection.
type RiskFacilitySummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	RiskScore    int    `json:"risk_score"`
	RiskCategory string `json:"risk_category"`
}

// Summary returns the general projection of the facility.
func (f Facility) Summary() FacilitySummary {
	return FacilitySummary{ID: f.ID, Name: f.Name, Location: f.Location, Status: f.Status}
}

// MonitoringSummary returns the monitoring projection of the facility.
func (f Facility) MonitoringSummary() MonitoringFacilitySummary {
	return MonitoringFacilitySummary{ID: f.ID, Name: f.Name, Status: f.MonitoringStatus}
}

// RiskSummary returns the risk projection of the facility.
func (f Facility) RiskSummary() RiskFacilitySummary {
	return RiskFacilitySummary{ID: f.ID, Name: f.Name, RiskScore: f.RiskScore, RiskCategory: f.RiskCategory}
}
