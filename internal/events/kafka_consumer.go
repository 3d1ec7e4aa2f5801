package events

import (
	"context"

	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/application"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/contracts"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/domain"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/domain/route"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/kafka"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RouteGenerationService is the part of application.RouteService the consumer drives.
type RouteGenerationService interface {
	GenerateRoute(ctx context.Context, requestID string, req application.GenerateRouteRequest) (*route.RouteResponse, error)
}

// RouteRequestConsumer listens for route requests and generates a route for each.
type RouteRequestConsumer struct {
	consumer *kafka.Consumer
	service  RouteGenerationService
	logger   *zap.Logger
}

// NewRouteRequestConsumer creates a new RouteRequestConsumer.
func NewRouteRequestConsumer(
	brokers []string,
	groupID string,
	service RouteGenerationService,
	logger *zap.Logger,
) *RouteRequestConsumer {
	consumer := kafka.NewConsumer(brokers, groupID, contracts.TopicRouteRequests, logger)
	return &RouteRequestConsumer{
		consumer: consumer,
		service:  service,
		logger:   logger,
	}
}

// Start begins consuming route requests. This blocks until the context is cancelled.
func (c *RouteRequestConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *RouteRequestConsumer) Close() error {
	return c.consumer.Close()
}

func (c *RouteRequestConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	cloudEvent, err := kafka.ParseCloudEvent(msg.Value)
	if err != nil {
		c.logger.Error("failed to parse cloud event from route requests topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // Don't retry malformed messages
	}

	switch cloudEvent.Type {
	case contracts.RouteRequested:
		return c.handleRouteRequested(ctx, cloudEvent)
	default:
		c.logger.Debug("ignoring unhandled route event type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}
}

func (c *RouteRequestConsumer) handleRouteRequested(ctx context.Context, cloudEvent kafka.CloudEvent) error {
	var evt contracts.RouteRequestedEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse RouteRequestedEvent data",
			zap.Error(err),
		)
		return nil // Don't retry malformed data
	}

	requestID := evt.RequestID
	if requestID == "" {
		requestID = cloudEvent.ID
	}

	c.logger.Info("processing route request",
		zap.String("request_id", requestID),
	)

	_, err := c.service.GenerateRoute(ctx, requestID, application.GenerateRouteRequest{
		Origin:      &evt.Origin,
		Destination: &evt.Destination,
	})
	if err != nil {
		// Route requests are single-attempt; the message is committed either way.
		c.logger.Error("route request failed",
			zap.String("request_id", requestID),
			zap.String("kind", string(domain.KindOf(err))),
			zap.Error(err),
		)
		return nil
	}

	c.logger.Info("route request completed",
		zap.String("request_id", requestID),
	)
	return nil
}
