package memstore

import (
	"sync"
	"time"

	"tailingsiq-backend/domain"
	"tailingsiq-backend/pkg/errors"
)

const (
	sensorsPerFacility = 10
	alertsPerFacility  = 20
)

// SensorStore holds the generated sensor records, keyed by facility.
type SensorStore struct {
	mu         sync.RWMutex
	byFacility map[string][]domain.Sensor
	byID       map[string]domain.Sensor
}

// NewSensorStore generates the sensor set for every known facility.
func NewSensorStore(facilities []domain.Facility) *SensorStore {
	now := time.Now()
	store := &SensorStore{
		byFacility: make(map[string][]domain.Sensor, len(facilities)),
		byID:       make(map[string]domain.Sensor),
	}
	for _, f := range facilities {
		sensors := generateSensors(f.ID, sensorsPerFacility, now)
		store.byFacility[f.ID] = sensors
		for _, s := range sensors {
			store.byID[s.SensorID] = s
		}
	}
	return store
}

// ListByFacility returns a snapshot of a facility's sensors.
func (s *SensorStore) ListByFacility(facilityID string) []domain.Sensor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sensors := s.byFacility[facilityID]
	out := make([]domain.Sensor, len(sensors))
	copy(out, sensors)
	return out
}

// Get returns one sensor by identifier.
func (s *SensorStore) Get(sensorID string) (domain.Sensor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sensor, ok := s.byID[sensorID]
	return sensor, ok
}

// AlertStore holds the generated monitoring alerts. Alerts mutate through
// Update only, so acknowledgements and resolutions survive across requests.
type AlertStore struct {
	mu         sync.RWMutex
	byFacility map[string][]string
	alerts     map[string]domain.Alert
}

// NewAlertStore generates the alert set for every known facility.
func NewAlertStore(facilities []domain.Facility) *AlertStore {
	now := time.Now()
	store := &AlertStore{
		byFacility: make(map[string][]string, len(facilities)),
		alerts:     make(map[string]domain.Alert),
	}
	for _, f := range facilities {
		alerts := generateAlerts(f.ID, alertsPerFacility, now)
		ids := make([]string, 0, len(alerts))
		for _, a := range alerts {
			ids = append(ids, a.AlertID)
			store.alerts[a.AlertID] = a
		}
		store.byFacility[f.ID] = ids
	}
	return store
}

// ListByFacility returns a snapshot of a facility's alerts, most recent
// first.
func (s *AlertStore) ListByFacility(facilityID string) []domain.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byFacility[facilityID]
	out := make([]domain.Alert, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.alerts[id])
	}
	return out
}

// Get returns one alert by identifier.
func (s *AlertStore) Get(alertID string) (domain.Alert, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	alert, ok := s.alerts[alertID]
	return alert, ok
}

// Update applies fn to the stored alert under the store lock.
func (s *AlertStore) Update(alertID string, fn func(*domain.Alert) error) (domain.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alert, ok := s.alerts[alertID]
	if !ok {
		return domain.Alert{}, errors.NewNotFoundError("Alert")
	}
	if err := fn(&alert); err != nil {
		return domain.Alert{}, err
	}
	s.alerts[alertID] = alert
	return alert, nil
}
