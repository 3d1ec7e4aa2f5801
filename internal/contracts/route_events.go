package contracts

import (
	"time"

	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/domain/route"
	"github.com/google/uuid"
)

const (
	TopicRouteEvents   = "route.events"
	TopicRouteRequests = "route.requests"

	RouteRequested        = "route.requested"
	RouteTokenGenerated   = "route.token_generated"
	RouteGenerationFailed = "route.generation_failed"

	// ServiceSource is the CloudEvent source of every event this service emits.
	ServiceSource = "service-truckroute"
)

// RouteRequestedEvent asks the service to generate a truck route.
type RouteRequestedEvent struct {
	RequestID   string         `json:"request_id"`
	Origin      route.Waypoint `json:"origin"`
	Destination route.Waypoint `json:"destination"`
	OccurredAt  time.Time      `json:"occurred_at"`
}

// RouteTokenGeneratedEvent announces a newly issued route token.
type RouteTokenGeneratedEvent struct {
	TokenID                      uuid.UUID      `json:"token_id"`
	RequestID                    string         `json:"request_id"`
	RouteToken                   string         `json:"route_token"`
	Origin                       route.Waypoint `json:"origin"`
	Destination                  route.Waypoint `json:"destination"`
	RestrictionsPartiallyIgnored bool           `json:"restrictions_partially_ignored"`
	OccurredAt                   time.Time      `json:"occurred_at"`
}

// RouteGenerationFailedEvent reports a request that produced no route token.
type RouteGenerationFailedEvent struct {
	RequestID   string         `json:"request_id"`
	Origin      route.Waypoint `json:"origin"`
	Destination route.Waypoint `json:"destination"`
	Reason      string         `json:"reason"`
	OccurredAt  time.Time      `json:"occurred_at"`
}
