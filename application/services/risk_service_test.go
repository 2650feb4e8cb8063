package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tailingsiq-backend/infrastructure/memstore"
	apperrors "tailingsiq-backend/pkg/errors"
)

func newRiskService() *RiskService {
	return NewRiskService(memstore.NewFacilityStore(), memstore.NewRiskStore(), zap.NewNop())
}

func TestRiskService_Facilities_ReturnsRiskProjection(t *testing.T) {
	service := newRiskService()

	facilities := service.Facilities(context.Background())

	require.Len(t, facilities, 4)
	assert.Equal(t, "FAC001", facilities[0].ID)
	assert.Equal(t, 12, facilities[0].RiskScore)
	assert.Equal(t, "High", facilities[0].RiskCategory)
	assert.Equal(t, 5, facilities[3].RiskScore)
	assert.Equal(t, "Low", facilities[3].RiskCategory)
}

func TestRiskService_Assessment_RecommendationsFollowCategory(t *testing.T) {
	service := newRiskService()

	high, err := service.Assessment(context.Background(), "FAC001")
	require.NoError(t, err)
	low, err := service.Assessment(context.Background(), "FAC004")
	require.NoError(t, err)

	assert.Equal(t, "High", high.RiskCategory)
	assert.Len(t, high.Recommendations, 5)
	assert.Equal(t, "Low", low.RiskCategory)
	assert.Len(t, low.Recommendations, 3)
	assert.Len(t, high.Factors, 5)
	assert.Equal(t, "RF001", high.Factors[0].ID)
}

func TestRiskService_Assessment_UnknownFacility(t *testing.T) {
	service := newRiskService()

	_, err := service.Assessment(context.Background(), "FAC999")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRiskService_UpdateAssessment_ReturnsStoredAssessment(t *testing.T) {
	service := newRiskService()

	assessment, err := service.UpdateAssessment(context.Background(), "FAC002", RiskAssessmentUpdate{
		FacilityID: "FAC002",
		Factors:    []map[string]interface{}{{"id": "RF099", "risk_score": 25}},
	})

	require.NoError(t, err)
	// Submitted factors are not persisted; the canonical set comes back.
	assert.Equal(t, "FAC002", assessment.FacilityID)
	assert.Equal(t, 8, assessment.OverallRiskScore)
	assert.Len(t, assessment.Factors, 5)
}
