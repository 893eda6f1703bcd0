package gateway

import (
	"context"

	"github.com/adityarama/fleetops/internal/pkg/models"
	"github.com/adityarama/fleetops/internal/pkg/nsq"
)

// TripGW publishes trip lifecycle events to NSQ
type TripGW struct {
	producer *nsq.Producer
}

// NewTripGW creates a new trip event gateway
func NewTripGW(producer *nsq.Producer) *TripGW {
	return &TripGW{producer: producer}
}

// PublishTripEvent publishes a lifecycle event on the given topic. Callers
// treat failures as non-fatal; the trip state is already persisted.
func (g *TripGW) PublishTripEvent(ctx context.Context, topic string, event *models.TripEvent) error {
	return g.producer.Publish(topic, event)
}
