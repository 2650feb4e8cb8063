package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"tailingsiq-backend/application/ports"
	"tailingsiq-backend/domain"
	"tailingsiq-backend/pkg/errors"
	"tailingsiq-backend/pkg/query"
)

const recentAlertLimit = 5

// SensorPage is the sensor listing response shape.
type SensorPage struct {
	Sensors    []domain.Sensor `json:"sensors"`
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// AlertPage is the alert listing response shape.
type AlertPage struct {
	Alerts     []domain.Alert `json:"alerts"`
	TotalCount int            `json:"total_count"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// MonitoringService implements the sensor, dashboard, and alert use cases.
type MonitoringService struct {
	facilities ports.FacilityRepository
	sensors    ports.SensorRepository
	alerts     ports.AlertRepository
	logger     *zap.Logger
}

// NewMonitoringService creates a new monitoring service.
func NewMonitoringService(
	facilities ports.FacilityRepository,
	sensors ports.SensorRepository,
	alerts ports.AlertRepository,
	logger *zap.Logger,
) *MonitoringService {
	return &MonitoringService{
		facilities: facilities,
		sensors:    sensors,
		alerts:     alerts,
		logger:     logger,
	}
}

var sensorSchema = query.Schema[domain.Sensor]{
	Filters: map[string]func(domain.Sensor) string{
		"sensor_type": func(s domain.Sensor) string { return s.SensorType },
		"location":    func(s domain.Sensor) string { return s.Location },
		"status":      func(s domain.Sensor) string { return s.Status },
	},
	SearchText: func(s domain.Sensor) []string {
		return []string{s.SensorName, s.Location}
	},
	Sorts: map[string]func(a, b domain.Sensor) int{
		"sensor_id":   func(a, b domain.Sensor) int { return strings.Compare(a.SensorID, b.SensorID) },
		"sensor_name": func(a, b domain.Sensor) int { return strings.Compare(a.SensorName, b.SensorName) },
		"sensor_type": func(a, b domain.Sensor) int { return strings.Compare(a.SensorType, b.SensorType) },
		"location":    func(a, b domain.Sensor) int { return strings.Compare(a.Location, b.Location) },
	},
	DefaultSort: "sensor_id",
}

var alertSchema = query.Schema[domain.Alert]{
	Filters: map[string]func(domain.Alert) string{
		"severity": func(a domain.Alert) string { return a.Severity },
		"status":   func(a domain.Alert) string { return a.Status },
	},
	SearchText: func(a domain.Alert) []string {
		return []string{a.AlertType, a.Message}
	},
	Sorts: map[string]func(a, b domain.Alert) int{
		"timestamp": func(a, b domain.Alert) int { return a.Timestamp.Compare(b.Timestamp) },
		"severity":  func(a, b domain.Alert) int { return severityRank(a.Severity) - severityRank(b.Severity) },
	},
	DefaultSort: "timestamp",
}

func severityRank(severity string) int {
	switch severity {
	case domain.SeverityLow:
		return 1
	case domain.SeverityMedium:
		return 2
	case domain.SeverityHigh:
		return 3
	case domain.SeverityCritical:
		return 4
	default:
		return 0
	}
}

// Facilities returns the monitoring projection of the facility set.
func (s *MonitoringService) Facilities(ctx context.Context) []domain.MonitoringFacilitySummary {
	facilities := s.facilities.List()
	out := make([]domain.MonitoringFacilitySummary, 0, len(facilities))
	for _, f := range facilities {
		out = append(out, f.MonitoringSummary())
	}
	return out
}

// Dashboard aggregates a facility's sensor and alert picture.
func (s *MonitoringService) Dashboard(ctx context.Context, facilityID string) (domain.Dashboard, error) {
	facility, ok := s.facilities.Get(facilityID)
	if !ok {
		return domain.Dashboard{}, errors.NewNotFoundError("Facility")
	}

	sensors := s.sensors.ListByFacility(facilityID)
	alerts := s.alerts.ListByFacility(facilityID)

	sensorsCount := map[string]int{
		domain.SensorStatusOnline:      0,
		domain.SensorStatusOffline:     0,
		domain.SensorStatusMaintenance: 0,
		"Total":                        len(sensors),
	}
	for _, sensor := range sensors {
		sensorsCount[sensor.Status]++
	}

	alertsCount := map[string]int{
		domain.SeverityCritical: 0,
		domain.SeverityHigh:     0,
		domain.SeverityMedium:   0,
		domain.SeverityLow:      0,
		"Total":                 len(alerts),
	}
	for _, alert := range alerts {
		alertsCount[alert.Severity]++
	}

	recent := alerts
	if len(recent) > recentAlertLimit {
		recent = recent[:recentAlertLimit]
	}

	return domain.Dashboard{
		FacilityID:    facilityID,
		FacilityName:  facility.Name,
		OverallStatus: facility.MonitoringStatus,
		SensorsCount:  sensorsCount,
		AlertsCount:   alertsCount,
		RecentAlerts:  recent,
		LastUpdated:   time.Now(),
	}, nil
}

// Sensors returns one page of a facility's sensors.
func (s *MonitoringService) Sensors(ctx context.Context, facilityID string, params query.Params) (SensorPage, error) {
	if _, ok := s.facilities.Get(facilityID); !ok {
		return SensorPage{}, errors.NewNotFoundError("Facility")
	}

	page := query.Run(s.sensors.ListByFacility(facilityID), sensorSchema, params)
	return SensorPage{
		Sensors:    page.Items,
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

// Sensor returns one sensor's detail. The owning facility is derived from
// the sensor identifier and checked first, so an identifier pointing at an
// unknown facility reports the facility as missing.
func (s *MonitoringService) Sensor(ctx context.Context, sensorID string) (domain.Sensor, error) {
	facilityID, ok := facilityFromUnitID(sensorID)
	if !ok {
		return domain.Sensor{}, errors.NewNotFoundError("Facility")
	}
	if _, ok := s.facilities.Get(facilityID); !ok {
		return domain.Sensor{}, errors.NewNotFoundError("Facility")
	}

	sensor, ok := s.sensors.Get(sensorID)
	if !ok {
		return domain.Sensor{}, errors.NewNotFoundError("Sensor")
	}
	return sensor, nil
}

// Alerts returns one page of a facility's alerts, most recent first by
// default.
func (s *MonitoringService) Alerts(ctx context.Context, facilityID string, params query.Params) (AlertPage, error) {
	if _, ok := s.facilities.Get(facilityID); !ok {
		return AlertPage{}, errors.NewNotFoundError("Facility")
	}

	page := query.Run(s.alerts.ListByFacility(facilityID), alertSchema, params)
	return AlertPage{
		Alerts:     page.Items,
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

// Acknowledge transitions an active alert to acknowledged, recording the
// caller. Any other starting state is rejected.
func (s *MonitoringService) Acknowledge(ctx context.Context, alertID, username string) (domain.Alert, error) {
	facilityID, ok := facilityFromUnitID(alertID)
	if !ok {
		return domain.Alert{}, errors.NewNotFoundError("Facility")
	}
	if _, ok := s.facilities.Get(facilityID); !ok {
		return domain.Alert{}, errors.NewNotFoundError("Facility")
	}

	alert, err := s.alerts.Update(alertID, func(a *domain.Alert) error {
		if a.Status != domain.AlertStatusActive {
			return errors.NewInvalidStateError("Alert is not active")
		}
		a.Status = domain.AlertStatusAcknowledged
		a.AcknowledgedBy = username
		return nil
	})
	if err != nil {
		return domain.Alert{}, err
	}

	s.logger.Info("alert acknowledged",
		zap.String("alert_id", alertID),
		zap.String("user", username),
	)
	return alert, nil
}

// Resolve transitions an alert to resolved with the caller's notes. An
// already-resolved alert is rejected; resolving skips straight from active
// when no one acknowledged first.
func (s *MonitoringService) Resolve(ctx context.Context, alertID, username, notes string) (domain.Alert, error) {
	facilityID, ok := facilityFromUnitID(alertID)
	if !ok {
		return domain.Alert{}, errors.NewNotFoundError("Facility")
	}
	if _, ok := s.facilities.Get(facilityID); !ok {
		return domain.Alert{}, errors.NewNotFoundError("Facility")
	}

	alert, err := s.alerts.Update(alertID, func(a *domain.Alert) error {
		if a.Status == domain.AlertStatusResolved {
			return errors.NewInvalidStateError("Alert is already resolved")
		}
		a.Status = domain.AlertStatusResolved
		a.ResolvedBy = username
		a.ResolutionNotes = notes
		return nil
	})
	if err != nil {
		return domain.Alert{}, err
	}

	s.logger.Info("alert resolved",
		zap.String("alert_id", alertID),
		zap.String("user", username),
	)
	return alert, nil
}

// facilityFromUnitID recovers the facility identifier embedded in a sensor
// or alert identifier (SEN001003 belongs to FAC001).
func facilityFromUnitID(id string) (string, bool) {
	if len(id) < 6 {
		return "", false
	}
	return "FAC" + id[3:6], true
}
