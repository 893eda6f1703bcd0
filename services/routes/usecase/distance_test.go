package usecase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityarama/fleetops/internal/pkg/apperrors"
	"github.com/adityarama/fleetops/internal/pkg/models"
)

func stopAt(lat, lon float64) models.Stop {
	return models.Stop{
		ID:        uuid.New(),
		Name:      "stop",
		Latitude:  &lat,
		Longitude: &lon,
	}
}

func stopWithoutCoords() models.Stop {
	return models.Stop{ID: uuid.New(), Name: "stop"}
}

func asInputs(stops ...models.Stop) (map[uuid.UUID]models.Stop, []models.RouteStopInput) {
	byID := make(map[uuid.UUID]models.Stop, len(stops))
	inputs := make([]models.RouteStopInput, 0, len(stops))
	for _, s := range stops {
		byID[s.ID] = s
		inputs = append(inputs, models.RouteStopInput{StopID: s.ID})
	}
	return byID, inputs
}

func TestComputeRouteDistances_Empty(t *testing.T) {
	result, total, err := ComputeRouteDistances(map[uuid.UUID]models.Stop{}, nil)

	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Equal(t, 0.0, total)
}

func TestComputeRouteDistances_SingleStop(t *testing.T) {
	byID, inputs := asInputs(stopAt(23.8103, 90.4125))

	result, total, err := ComputeRouteDistances(byID, inputs)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 1, result[0].StopOrder)
	assert.Equal(t, 0.0, result[0].DistanceFromPrevious)
	assert.Equal(t, 0.0, total)
}

func TestComputeRouteDistances_Haversine(t *testing.T) {
	// Motijheel to Shahbagh, roughly 3.28 km great-circle
	byID, inputs := asInputs(stopAt(23.8103, 90.4125), stopAt(23.7808, 90.4128))

	result, total, err := ComputeRouteDistances(byID, inputs)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, 0.0, result[0].DistanceFromPrevious)
	assert.InDelta(t, 3.28, result[1].DistanceFromPrevious, 0.01)
	assert.Equal(t, result[1].CumulativeDistance, total)
}

func TestComputeRouteDistances_ManualOverrideWins(t *testing.T) {
	byID, inputs := asInputs(stopAt(23.8103, 90.4125), stopAt(23.7808, 90.4128))
	manual := 5.5
	inputs[1].ManualDistance = &manual

	result, total, err := ComputeRouteDistances(byID, inputs)

	require.NoError(t, err)
	assert.Equal(t, 5.5, result[1].DistanceFromPrevious)
	assert.Equal(t, 5.5, total)
}

func TestComputeRouteDistances_MissingCoordinatesContributeZero(t *testing.T) {
	a := stopAt(23.8103, 90.4125)
	b := stopWithoutCoords()
	c := stopAt(23.7808, 90.4128)
	byID, inputs := asInputs(a, b, c)

	result, total, err := ComputeRouteDistances(byID, inputs)

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, 0.0, result[1].DistanceFromPrevious)
	assert.Equal(t, 0.0, result[2].DistanceFromPrevious)
	assert.Equal(t, 0.0, total)
}

func TestComputeRouteDistances_CumulativeMatchesTotal(t *testing.T) {
	byID, inputs := asInputs(
		stopAt(23.8103, 90.4125),
		stopAt(23.7808, 90.4128),
		stopAt(23.7515, 90.3928),
	)

	result, total, err := ComputeRouteDistances(byID, inputs)

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, result[2].CumulativeDistance, total)
	assert.Greater(t, total, result[1].CumulativeDistance)
}

func TestComputeRouteDistances_UnknownStop(t *testing.T) {
	byID, inputs := asInputs(stopAt(23.8103, 90.4125))
	inputs = append(inputs, models.RouteStopInput{StopID: uuid.New()})

	_, _, err := ComputeRouteDistances(byID, inputs)

	assert.True(t, apperrors.IsValidation(err))
}

func TestComputeRouteDistances_NegativeManualDistance(t *testing.T) {
	byID, inputs := asInputs(stopAt(23.8103, 90.4125), stopAt(23.7808, 90.4128))
	manual := -1.0
	inputs[1].ManualDistance = &manual

	_, _, err := ComputeRouteDistances(byID, inputs)

	assert.True(t, apperrors.IsValidation(err))
}

func TestComputeRouteDistances_BadClock(t *testing.T) {
	byID, inputs := asInputs(stopAt(23.8103, 90.4125))
	bad := "25:99"
	inputs[0].ArrivalTime = &bad

	_, _, err := ComputeRouteDistances(byID, inputs)

	assert.True(t, apperrors.IsValidation(err))
}
