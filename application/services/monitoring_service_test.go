package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tailingsiq-backend/domain"
	"tailingsiq-backend/infrastructure/memstore"
	apperrors "tailingsiq-backend/pkg/errors"
	"tailingsiq-backend/pkg/query"
)

func newMonitoringService() *MonitoringService {
	facilities := memstore.NewFacilityStore()
	return NewMonitoringService(
		facilities,
		memstore.NewSensorStore(facilities.List()),
		memstore.NewAlertStore(facilities.List()),
		zap.NewNop(),
	)
}

func sensorParams() query.Params {
	return query.Params{Page: 1, PageSize: 100, SortBy: "sensor_id", Order: query.OrderAsc}
}

func alertParams() query.Params {
	return query.Params{Page: 1, PageSize: 100, SortBy: "timestamp", Order: query.OrderDesc}
}

func TestMonitoringService_Facilities_ReturnsMonitoringProjection(t *testing.T) {
	service := newMonitoringService()

	facilities := service.Facilities(context.Background())

	require.Len(t, facilities, 4)
	assert.Equal(t, "FAC001", facilities[0].ID)
	assert.Equal(t, "Normal", facilities[0].Status)
	assert.Equal(t, "Alert", facilities[3].Status)
}

func TestMonitoringService_Dashboard_CountsAddUp(t *testing.T) {
	service := newMonitoringService()

	dashboard, err := service.Dashboard(context.Background(), "FAC001")

	require.NoError(t, err)
	assert.Equal(t, "North Basin Facility", dashboard.FacilityName)
	assert.Equal(t, "Normal", dashboard.OverallStatus)
	assert.Equal(t, 10, dashboard.SensorsCount["Total"])
	assert.Equal(t, dashboard.SensorsCount["Total"],
		dashboard.SensorsCount["Online"]+dashboard.SensorsCount["Offline"]+dashboard.SensorsCount["Maintenance"])
	assert.Equal(t, 20, dashboard.AlertsCount["Total"])
	assert.Equal(t, dashboard.AlertsCount["Total"],
		dashboard.AlertsCount["Critical"]+dashboard.AlertsCount["High"]+dashboard.AlertsCount["Medium"]+dashboard.AlertsCount["Low"])
	assert.LessOrEqual(t, len(dashboard.RecentAlerts), 5)
}

func TestMonitoringService_Dashboard_UnknownFacility(t *testing.T) {
	service := newMonitoringService()

	_, err := service.Dashboard(context.Background(), "FAC999")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestMonitoringService_Sensors_DeterministicAcrossStores(t *testing.T) {
	// Two independently built stores must generate identical sensors for
	// the same facility.
	first := newMonitoringService()
	second := newMonitoringService()

	pageA, err := first.Sensors(context.Background(), "FAC002", sensorParams())
	require.NoError(t, err)
	pageB, err := second.Sensors(context.Background(), "FAC002", sensorParams())
	require.NoError(t, err)

	require.Equal(t, pageA.TotalCount, pageB.TotalCount)
	for i := range pageA.Sensors {
		assert.Equal(t, pageA.Sensors[i].SensorID, pageB.Sensors[i].SensorID)
		assert.Equal(t, pageA.Sensors[i].SensorType, pageB.Sensors[i].SensorType)
		assert.Equal(t, pageA.Sensors[i].Location, pageB.Sensors[i].Location)
		assert.Equal(t, pageA.Sensors[i].LastReading.Value, pageB.Sensors[i].LastReading.Value)
	}
}

func TestMonitoringService_Sensors_FilterByStatus(t *testing.T) {
	service := newMonitoringService()

	page, err := service.Sensors(context.Background(), "FAC001", query.Params{
		Page: 1, PageSize: 100,
		Filters: map[string]string{"status": domain.SensorStatusOnline},
		SortBy:  "sensor_id", Order: query.OrderAsc,
	})

	require.NoError(t, err)
	for _, sensor := range page.Sensors {
		assert.Equal(t, domain.SensorStatusOnline, sensor.Status)
	}
}

func TestMonitoringService_Sensors_SortBySensorName(t *testing.T) {
	service := newMonitoringService()

	page, err := service.Sensors(context.Background(), "FAC001", query.Params{
		Page: 1, PageSize: 100,
		SortBy: "sensor_name", Order: query.OrderAsc,
	})

	require.NoError(t, err)
	require.NotEmpty(t, page.Sensors)
	for i := 1; i < len(page.Sensors); i++ {
		assert.LessOrEqual(t, page.Sensors[i-1].SensorName, page.Sensors[i].SensorName)
	}

	// The name ordering must be a real reordering, not the id default.
	byID, err := service.Sensors(context.Background(), "FAC001", sensorParams())
	require.NoError(t, err)
	assert.NotEqual(t, sensorNames(byID.Sensors), sensorNames(page.Sensors))
}

func TestMonitoringService_Sensors_SortBySensorType(t *testing.T) {
	service := newMonitoringService()

	page, err := service.Sensors(context.Background(), "FAC001", query.Params{
		Page: 1, PageSize: 100,
		SortBy: "sensor_type", Order: query.OrderAsc,
	})

	require.NoError(t, err)
	require.NotEmpty(t, page.Sensors)
	for i := 1; i < len(page.Sensors); i++ {
		assert.LessOrEqual(t, page.Sensors[i-1].SensorType, page.Sensors[i].SensorType)
	}
}

func sensorNames(sensors []domain.Sensor) []string {
	names := make([]string, 0, len(sensors))
	for _, s := range sensors {
		names = append(names, s.SensorName)
	}
	return names
}

func TestMonitoringService_Sensor_HasTwentyFourHourlyReadings(t *testing.T) {
	service := newMonitoringService()

	sensor, err := service.Sensor(context.Background(), "SEN001001")

	require.NoError(t, err)
	assert.Equal(t, "SEN001001", sensor.SensorID)
	assert.Len(t, sensor.Readings, 24)
	assert.NotEmpty(t, sensor.LastReading.Unit)
}

func TestMonitoringService_Sensor_UnknownFacilityPrefix(t *testing.T) {
	service := newMonitoringService()

	_, err := service.Sensor(context.Background(), "SEN999001")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "Facility")
}

func TestMonitoringService_Alerts_MostRecentFirst(t *testing.T) {
	service := newMonitoringService()

	page, err := service.Alerts(context.Background(), "FAC003", alertParams())

	require.NoError(t, err)
	require.Equal(t, 20, page.TotalCount)
	for i := 1; i < len(page.Alerts); i++ {
		assert.False(t, page.Alerts[i].Timestamp.After(page.Alerts[i-1].Timestamp))
	}
}

func TestMonitoringService_Acknowledge_OnlyActiveAlerts(t *testing.T) {
	service := newMonitoringService()
	active := findAlertByStatus(t, service, domain.AlertStatusActive)

	alert, err := service.Acknowledge(context.Background(), active.AlertID, "test_user")

	require.NoError(t, err)
	assert.Equal(t, domain.AlertStatusAcknowledged, alert.Status)
	assert.Equal(t, "test_user", alert.AcknowledgedBy)
}

func TestMonitoringService_Acknowledge_PersistsAcrossReads(t *testing.T) {
	service := newMonitoringService()
	active := findAlertByStatus(t, service, domain.AlertStatusActive)

	_, err := service.Acknowledge(context.Background(), active.AlertID, "test_user")
	require.NoError(t, err)

	page, err := service.Alerts(context.Background(), active.FacilityID, alertParams())
	require.NoError(t, err)
	for _, alert := range page.Alerts {
		if alert.AlertID == active.AlertID {
			assert.Equal(t, domain.AlertStatusAcknowledged, alert.Status)
			return
		}
	}
	t.Fatalf("alert %s not found after acknowledge", active.AlertID)
}

func TestMonitoringService_Acknowledge_ResolvedAlertRejectedWithoutMutation(t *testing.T) {
	service := newMonitoringService()
	resolved := findAlertByStatus(t, service, domain.AlertStatusResolved)

	_, err := service.Acknowledge(context.Background(), resolved.AlertID, "test_user")

	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidState(err))

	// The stored alert keeps its original attribution.
	page, listErr := service.Alerts(context.Background(), resolved.FacilityID, alertParams())
	require.NoError(t, listErr)
	for _, alert := range page.Alerts {
		if alert.AlertID == resolved.AlertID {
			assert.Equal(t, domain.AlertStatusResolved, alert.Status)
			assert.Equal(t, resolved.ResolvedBy, alert.ResolvedBy)
		}
	}
}

func TestMonitoringService_Resolve_FromActiveOrAcknowledged(t *testing.T) {
	service := newMonitoringService()
	active := findAlertByStatus(t, service, domain.AlertStatusActive)

	alert, err := service.Resolve(context.Background(), active.AlertID, "test_user", "Checked on site.")

	require.NoError(t, err)
	assert.Equal(t, domain.AlertStatusResolved, alert.Status)
	assert.Equal(t, "test_user", alert.ResolvedBy)
	assert.Equal(t, "Checked on site.", alert.ResolutionNotes)
}

func TestMonitoringService_Resolve_AlreadyResolved(t *testing.T) {
	service := newMonitoringService()
	resolved := findAlertByStatus(t, service, domain.AlertStatusResolved)

	_, err := service.Resolve(context.Background(), resolved.AlertID, "test_user", "again")

	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidState(err))
}

func findAlertByStatus(t *testing.T, service *MonitoringService, status string) domain.Alert {
	t.Helper()

	for _, facility := range service.Facilities(context.Background()) {
		page, err := service.Alerts(context.Background(), facility.ID, alertParams())
		require.NoError(t, err)
		for _, alert := range page.Alerts {
			if alert.Status == status {
				return alert
			}
		}
	}
	t.Fatalf("no %s alert generated", status)
	return domain.Alert{}
}
