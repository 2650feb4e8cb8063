package domain

import "time"

// Sensor statuses.
const (
	SensorStatusOnline      = "Online"
	SensorStatusOffline     = "Offline"
	SensorStatusMaintenance = "Maintenance"
)

// Reading statuses.
const (
	ReadingStatusNormal  = "Normal"
	ReadingStatusWarning = "Warning"
	ReadingStatusAlert   = "Alert"
)

// Alert severities, lowest to highest.
const (
	SeverityLow      = "Low"
	SeverityMedium   = "Medium"
	SeverityHigh     = "High"
	SeverityCritical = "Critical"
)

// Alert lifecycle statuses.
const (
	AlertStatusActive       = "Active"
	AlertStatusAcknowledged = "Acknowledged"
	AlertStatusResolved     = "Resolved"
)

// SensorTypeUnits maps sensor types to their measurement units.
var SensorTypeUnits = map[string]string{
	"piezometer":   "kPa",
	"inclinometer": "mm",
	"water_level":  "m",
	"flow_rate":    "L/s",
	"rainfall":     "mm",
	"temperature":  "°C",
	"ph":           "pH",
	"conductivity": "μS/cm",
	"turbidity":    "NTU",
	"settlement":   "mm",
}

// SensorReading is a single timestamped measurement.
type SensorReading struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
	Status    string    `json:"status"`
}

// Sensor represents one monitoring instrument with its recent readings.
type Sensor struct {
	SensorID    string          `json:"sensor_id"`
	SensorName  string          `json:"sensor_name"`
	SensorType  string          `json:"sensor_type"`
	Location    string          `json:"location"`
	Readings    []SensorReading `json:"readings"`
	LastReading SensorReading   `json:"last_reading"`
	Status      string          `json:"status"`
}

// Alert represents a monitoring alert raised against a sensor.
type Alert struct {
	AlertID         string    `json:"alert_id"`
	FacilityID      string    `json:"facility_id"`
	SensorID        string    `json:"sensor_id"`
	Timestamp       time.Time `json:"timestamp"`
	AlertType       string    `json:"alert_type"`
	Severity        string    `json:"severity"`
	Message         string    `json:"message"`
	Status          string    `json:"status"`
	AcknowledgedBy  string    `json:"acknowledged_by,omitempty"`
	ResolvedBy      string    `json:"resolved_by,omitempty"`
	ResolutionNotes string    `json:"resolution_notes,omitempty"`
}

// Dashboard aggregates a facility's monitoring picture.
type Dashboard struct {
	FacilityID    string         `json:"facility_id"`
	FacilityName  string         `json:"facility_name"`
	OverallStatus string         `json:"overall_status"`
	SensorsCount  map[string]int `json:"sensors_count"`
	AlertsCount   map[string]int `json:"alerts_count"`
	RecentAlerts  []Alert        `json:"recent_alerts"`
	LastUpdated   time.Time      `json:"last_updated"`
}
