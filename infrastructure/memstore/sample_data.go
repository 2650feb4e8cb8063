package memstore

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"tailingsiq-backend/domain"
)

// Sensor and alert sample data is generated once at startup, seeded from
// the facility identifier, so repeated reads of the same sensor or alert
// return identical data and mutations stick.

var sensorLocations = []string{
	"Dam Crest", "Upstream Slope", "Downstream Slope", "Foundation", "Spillway", "Decant Pond",
}

// Weighted toward Online, matching the demo data distribution.
var sensorStatuses = []string{
	domain.SensorStatusOnline,
	domain.SensorStatusOnline,
	domain.SensorStatusOnline,
	domain.SensorStatusOnline,
	domain.SensorStatusMaintenance,
	domain.SensorStatusOffline,
}

var alertTypes = []string{
	"High Reading", "Sensor Offline", "Rapid Change", "Threshold Exceeded", "Communication Error",
}

var alertMessages = map[string]string{
	"High Reading":        "Sensor reading exceeds threshold value",
	"Sensor Offline":      "Sensor has gone offline and is not reporting data",
	"Rapid Change":        "Rapid change in sensor readings detected",
	"Threshold Exceeded":  "Monitoring threshold has been exceeded",
	"Communication Error": "Communication error with sensor detected",
}

var alertSeverities = []string{
	domain.SeverityLow, domain.SeverityMedium, domain.SeverityHigh, domain.SeverityCritical,
}

var alertStatuses = []string{
	domain.AlertStatusActive, domain.AlertStatusAcknowledged, domain.AlertStatusResolved,
}

// seedFor derives a stable RNG seed from an identifier.
func seedFor(id string) int64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	return int64(h.Sum64())
}

// sensorTypeNames returns the sensor types in deterministic order.
func sensorTypeNames() []string {
	names := make([]string, 0, len(domain.SensorTypeUnits))
	for name := range domain.SensorTypeUnits {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// generateSensors produces count sensors for a facility with 24 hourly
// readings each.
func generateSensors(facilityID string, count int, now time.Time) []domain.Sensor {
	rng := rand.New(rand.NewSource(seedFor(facilityID)))
	types := sensorTypeNames()
	sensors := make([]domain.Sensor, 0, count)

	for i := 0; i < count; i++ {
		sensorType := types[rng.Intn(len(types))]
		unit := domain.SensorTypeUnits[sensorType]
		status := sensorStatuses[rng.Intn(len(sensorStatuses))]

		readings := make([]domain.SensorReading, 0, 24)
		for hour := 24; hour > 0; hour-- {
			value := round2(baseValue(sensorType, rng) + uniform(rng, -2, 2))
			readings = append(readings, domain.SensorReading{
				Timestamp: now.Add(-time.Duration(hour) * time.Hour),
				Value:     value,
				Unit:      unit,
				Status:    readingStatus(sensorType, value),
			})
		}

		latest := round2(readings[len(readings)-1].Value + uniform(rng, -0.5, 0.5))
		lastReading := domain.SensorReading{
			Timestamp: now,
			Value:     latest,
			Unit:      unit,
			Status:    readingStatus(sensorType, latest),
		}

		sensors = append(sensors, domain.Sensor{
			SensorID:    fmt.Sprintf("SEN%s%03d", facilityID[len(facilityID)-3:], i+1),
			SensorName:  fmt.Sprintf("%s %d", capitalize(sensorType), i+1),
			SensorType:  sensorType,
			Location:    sensorLocations[rng.Intn(len(sensorLocations))],
			Readings:    readings,
			LastReading: lastReading,
			Status:      status,
		})
	}
	return sensors
}

// generateAlerts produces count alerts for a facility, sorted by timestamp
// most recent first.
func generateAlerts(facilityID string, count int, now time.Time) []domain.Alert {
	rng := rand.New(rand.NewSource(seedFor(facilityID) + 1))
	alerts := make([]domain.Alert, 0, count)

	for i := 0; i < count; i++ {
		alertType := alertTypes[rng.Intn(len(alertTypes))]
		severity := alertSeverities[rng.Intn(len(alertSeverities))]
		status := alertStatuses[rng.Intn(len(alertStatuses))]

		// Up to one week old.
		hoursAgo := 1 + rng.Intn(168)

		alert := domain.Alert{
			AlertID:    fmt.Sprintf("ALT%s%03d", facilityID[len(facilityID)-3:], i+1),
			FacilityID: facilityID,
			SensorID:   fmt.Sprintf("SEN%s%03d", facilityID[len(facilityID)-3:], 1+rng.Intn(10)),
			Timestamp:  now.Add(-time.Duration(hoursAgo) * time.Hour),
			AlertType:  alertType,
			Severity:   severity,
			Message:    alertMessages[alertType],
			Status:     status,
		}

		if status == domain.AlertStatusAcknowledged || status == domain.AlertStatusResolved {
			alert.AcknowledgedBy = "John Smith"
			if status == domain.AlertStatusResolved {
				alert.ResolvedBy = "John Smith"
				alert.ResolutionNotes = "Issue investigated and resolved. No further action required."
			}
		}

		alerts = append(alerts, alert)
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Timestamp.After(alerts[j].Timestamp)
	})
	return alerts
}

func baseValue(sensorType string, rng *rand.Rand) float64 {
	switch sensorType {
	case "piezometer":
		return uniform(rng, 50, 150)
	case "inclinometer":
		return uniform(rng, 0, 5)
	case "water_level":
		return uniform(rng, 10, 20)
	case "flow_rate":
		return uniform(rng, 5, 15)
	case "rainfall":
		return uniform(rng, 0, 10)
	case "temperature":
		return uniform(rng, 15, 25)
	case "ph":
		return uniform(rng, 6.5, 8.5)
	case "conductivity":
		return uniform(rng, 200, 800)
	case "turbidity":
		return uniform(rng, 0, 20)
	case "settlement":
		return uniform(rng, 0, 10)
	default:
		return uniform(rng, 0, 100)
	}
}

// readingStatus applies the per-type alarm thresholds.
func readingStatus(sensorType string, value float64) string {
	switch {
	case sensorType == "piezometer" && value > 140:
		return domain.ReadingStatusAlert
	case sensorType == "inclinometer" && value > 4:
		return domain.ReadingStatusWarning
	case sensorType == "water_level" && value > 18:
		return domain.ReadingStatusWarning
	case sensorType == "ph" && (value < 6.8 || value > 8.2):
		return domain.ReadingStatusWarning
	default:
		return domain.ReadingStatusNormal
	}
}

func uniform(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
