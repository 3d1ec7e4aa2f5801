package application

import (
	"context"
	"fmt"
	"time"

	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/contracts"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/domain"
	routeDomain "github.com/Kilat-Pet-Delivery/service-truckroute/internal/domain/route"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/kafka"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RouteGenerator computes truck routes against the directions service.
type RouteGenerator interface {
	GenerateRoutes(ctx context.Context, origin, destination routeDomain.Waypoint) (*routeDomain.RouteResponse, error)
}

// EventPublisher publishes CloudEvents to a topic.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic string, ce kafka.CloudEvent) error
}

// GenerateRouteRequest holds the waypoints of a route generation call.
type GenerateRouteRequest struct {
	Origin      *routeDomain.Waypoint `json:"origin" binding:"required"`
	Destination *routeDomain.Waypoint `json:"destination" binding:"required"`
}

// RouteTokenDTO is the response representation of an issued route token.
type RouteTokenDTO struct {
	ID             uuid.UUID                  `json:"id"`
	RequestID      string                     `json:"request_id,omitempty"`
	RouteToken     string                     `json:"route_token"`
	Origin         routeDomain.Waypoint       `json:"origin"`
	Destination    routeDomain.Waypoint       `json:"destination"`
	TravelAdvisory routeDomain.TravelAdvisory `json:"travel_advisory"`
	CreatedAt      time.Time                  `json:"created_at"`
}

// RouteService is the application service orchestrating route token use cases.
type RouteService struct {
	generator RouteGenerator
	repo      routeDomain.TokenRepository
	publisher EventPublisher
	logger    *zap.Logger
}

// NewRouteService creates a new RouteService.
func NewRouteService(
	generator RouteGenerator,
	repo routeDomain.TokenRepository,
	publisher EventPublisher,
	logger *zap.Logger,
) *RouteService {
	return &RouteService{
		generator: generator,
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// GenerateRoute requests a truck route and returns the directions service response
// unchanged. The first route's token is recorded and announced on a best-effort basis;
// a response without routes is returned as-is for the caller to inspect.
func (s *RouteService) GenerateRoute(ctx context.Context, requestID string, req GenerateRouteRequest) (*routeDomain.RouteResponse, error) {
	if err := validateRouteRequest(req); err != nil {
		return nil, err
	}
	origin, destination := *req.Origin, *req.Destination
	requestID = routeDomain.NormalizeRequestID(requestID)

	resp, err := s.generator.GenerateRoutes(ctx, origin, destination)
	if err != nil {
		s.publishFailed(ctx, requestID, origin, destination, err.Error())
		return nil, domain.NewUpstreamError(err)
	}

	if len(resp.Routes) == 0 {
		reason := "directions service returned no routes"
		if resp.Error != nil {
			reason = fmt.Sprintf("%s: %s", resp.Error.Status, resp.Error.Message)
		}
		s.logger.Warn("route generation produced no routes",
			zap.String("request_id", requestID),
			zap.String("reason", reason),
		)
		s.publishFailed(ctx, requestID, origin, destination, reason)
		return resp, nil
	}

	s.recordToken(ctx, requestID, origin, destination, resp.Routes[0])
	return resp, nil
}

// GetRouteToken retrieves a previously issued route token.
func (s *RouteService) GetRouteToken(ctx context.Context, id uuid.UUID) (*RouteTokenDTO, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toRouteTokenDTO(rec)
	return &result, nil
}

// ListRouteTokens lists issued route tokens, newest first (admin).
func (s *RouteService) ListRouteTokens(ctx context.Context, page, limit int) (*domain.PaginatedResult[RouteTokenDTO], error) {
	records, total, err := s.repo.ListAll(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	items := make([]RouteTokenDTO, len(records))
	for i, rec := range records {
		items[i] = toRouteTokenDTO(rec)
	}

	return &domain.PaginatedResult[RouteTokenDTO]{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *RouteService) recordToken(ctx context.Context, requestID string, origin, destination routeDomain.Waypoint, r routeDomain.Route) {
	rec, err := routeDomain.NewTokenRecord(requestID, origin, destination, r)
	if err != nil {
		s.logger.Warn("route has no token, not recording",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return
	}

	if err := s.repo.Save(ctx, rec); err != nil {
		s.logger.Error("failed to record route token",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return
	}

	evt := contracts.RouteTokenGeneratedEvent{
		TokenID:                      rec.ID(),
		RequestID:                    requestID,
		RouteToken:                   rec.RouteToken(),
		Origin:                       origin,
		Destination:                  destination,
		RestrictionsPartiallyIgnored: rec.TravelAdvisory().RestrictionsPartiallyIgnored(),
		OccurredAt:                   time.Now().UTC(),
	}
	s.publishEvent(ctx, contracts.TopicRouteEvents, contracts.RouteTokenGenerated, evt)
}

func (s *RouteService) publishFailed(ctx context.Context, requestID string, origin, destination routeDomain.Waypoint, reason string) {
	evt := contracts.RouteGenerationFailedEvent{
		RequestID:   requestID,
		Origin:      origin,
		Destination: destination,
		Reason:      reason,
		OccurredAt:  time.Now().UTC(),
	}
	s.publishEvent(ctx, contracts.TopicRouteEvents, contracts.RouteGenerationFailed, evt)
}

func (s *RouteService) publishEvent(ctx context.Context, topic, eventType string, data interface{}) {
	cloudEvent, err := kafka.NewCloudEvent(contracts.ServiceSource, eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.publisher.PublishEvent(ctx, topic, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", topic),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func validateRouteRequest(req GenerateRouteRequest) error {
	if req.Origin == nil {
		return domain.NewValidationError("origin is required")
	}
	if req.Destination == nil {
		return domain.NewValidationError("destination is required")
	}
	if err := validateLatLng("origin", req.Origin.Location.LatLng); err != nil {
		return err
	}
	return validateLatLng("destination", req.Destination.Location.LatLng)
}

func validateLatLng(field string, ll routeDomain.LatLng) error {
	if ll.Latitude < -90 || ll.Latitude > 90 {
		return domain.NewValidationError(fmt.Sprintf("%s latitude out of range: %v", field, ll.Latitude))
	}
	if ll.Longitude < -180 || ll.Longitude > 180 {
		return domain.NewValidationError(fmt.Sprintf("%s longitude out of range: %v", field, ll.Longitude))
	}
	return nil
}

func toRouteTokenDTO(rec *routeDomain.TokenRecord) RouteTokenDTO {
	return RouteTokenDTO{
		ID:             rec.ID(),
		RequestID:      rec.RequestID(),
		RouteToken:     rec.RouteToken(),
		Origin:         rec.Origin(),
		Destination:    rec.Destination(),
		TravelAdvisory: rec.TravelAdvisory(),
		CreatedAt:      rec.CreatedAt(),
	}
}
