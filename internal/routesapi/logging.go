package routesapi

import (
	"context"
	"time"

	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/domain/route"
	"go.uber.org/zap"
)

type loggingGenerator struct {
	next   Generator
	logger *zap.Logger
}

// NewLoggingGenerator wraps next and logs the outcome and latency of every call.
func NewLoggingGenerator(next Generator, logger *zap.Logger) Generator {
	return &loggingGenerator{next: next, logger: logger}
}

func (g *loggingGenerator) GenerateRoutes(ctx context.Context, origin, destination route.Waypoint) (*route.RouteResponse, error) {
	start := time.Now()
	resp, err := g.next.GenerateRoutes(ctx, origin, destination)

	fields := []zap.Field{
		zap.Float64("origin_lat", origin.Location.LatLng.Latitude),
		zap.Float64("origin_lng", origin.Location.LatLng.Longitude),
		zap.Float64("destination_lat", destination.Location.LatLng.Latitude),
		zap.Float64("destination_lng", destination.Location.LatLng.Longitude),
		zap.Duration("latency", time.Since(start)),
	}
	if err != nil {
		g.logger.Error("route generation failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	g.logger.Info("route generated", append(fields, zap.Int("routes", len(resp.Routes)))...)
	return resp, nil
}
