package usecase

import (
	"github.com/google/uuid"

	"github.com/adityarama/fleetops/internal/pkg/apperrors"
	"github.com/adityarama/fleetops/internal/pkg/models"
	"github.com/adityarama/fleetops/internal/utils"
)

// ComputeRouteDistances walks an ordered stop sequence and computes, for each
// entry, the distance from its predecessor and the cumulative distance from
// the route origin, plus the route total.
//
// Per-leg distance resolution, in order:
//  1. an operator-supplied manual distance always wins,
//  2. otherwise the Haversine distance when both this stop and its
//     predecessor carry coordinates, rounded to 0.01 km,
//  3. otherwise 0 — a leg without coordinates contributes nothing.
//
// Every input stop id must exist in stopsByID; an unknown id fails the whole
// computation before anything is produced.
func ComputeRouteDistances(stopsByID map[uuid.UUID]models.Stop, inputs []models.RouteStopInput) ([]models.RouteStop, float64, error) {
	if len(inputs) == 0 {
		return []models.RouteStop{}, 0, nil
	}

	for _, in := range inputs {
		if _, ok := stopsByID[in.StopID]; !ok {
			return nil, 0, apperrors.NewValidation("stop_id", "unknown stop "+in.StopID.String())
		}
		if in.ManualDistance != nil && *in.ManualDistance < 0 {
			return nil, 0, apperrors.NewValidation("manual_distance", "must not be negative")
		}
		if in.ArrivalTime != nil {
			if err := models.ValidateClock(*in.ArrivalTime); err != nil {
				return nil, 0, apperrors.NewValidation("arrival_time", err.Error())
			}
		}
		if in.DepartureTime != nil {
			if err := models.ValidateClock(*in.DepartureTime); err != nil {
				return nil, 0, apperrors.NewValidation("departure_time", err.Error())
			}
		}
	}

	result := make([]models.RouteStop, 0, len(inputs))
	cumulative := 0.0

	for i, in := range inputs {
		leg := 0.0
		if i > 0 {
			leg = legDistance(stopsByID, inputs[i-1], in)
		}
		cumulative += leg

		result = append(result, models.RouteStop{
			StopID:               in.StopID,
			StopOrder:            i + 1,
			ArrivalTime:          in.ArrivalTime,
			DepartureTime:        in.DepartureTime,
			DistanceFromPrevious: leg,
			CumulativeDistance:   utils.Round2(cumulative),
		})
	}

	return result, utils.Round2(cumulative), nil
}

func legDistance(stopsByID map[uuid.UUID]models.Stop, prev, cur models.RouteStopInput) float64 {
	if cur.ManualDistance != nil {
		return *cur.ManualDistance
	}

	from := stopsByID[prev.StopID]
	to := stopsByID[cur.StopID]
	if !from.HasCoordinates() || !to.HasCoordinates() {
		return 0
	}

	return utils.Round2(utils.CalculateDistance(
		utils.GeoPoint{Latitude: *from.Latitude, Longitude: *from.Longitude},
		utils.GeoPoint{Latitude: *to.Latitude, Longitude: *to.Longitude},
	))
}
