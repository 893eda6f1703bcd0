package constants

// Redis keys
const (
	// StopGeoKey is the geospatial index of all stops that carry coordinates
	StopGeoKey = "fleetops:stops:geo"
)

// NSQ topics for trip lifecycle events
const (
	TopicTripApproved  = "trip.approved"
	TopicTripRejected  = "trip.rejected"
	TopicTripStarted   = "trip.started"
	TopicTripCompleted = "trip.completed"
	TopicTripCancelled = "trip.cancelled"
)

// Echo context keys set by the auth middleware
const (
	ContextActorIDKey   = "actor_id"
	ContextActorRoleKey = "actor_role"
)
