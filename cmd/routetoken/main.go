// Command routetoken requests a single truck route token and prints the response.
//
//	MAPS_API_KEY=... routetoken -origin 41.8300,-87.6650 -destination 41.6622,-87.4769
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/config"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/domain/route"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/logger"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/routesapi"
	"go.uber.org/zap"
)

func main() {
	originFlag := flag.String("origin", "41.82999557797065,-87.6650479101103", "origin as lat,lng")
	destinationFlag := flag.String("destination", "41.66217983799244,-87.4769040416346", "destination as lat,lng")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewNamed(cfg.AppEnv, "routetoken")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	origin, err := parseWaypoint(*originFlag)
	if err != nil {
		log.Fatal("invalid -origin", zap.Error(err))
	}
	destination, err := parseWaypoint(*destinationFlag)
	if err != nil {
		log.Fatal("invalid -destination", zap.Error(err))
	}

	builder, err := routesapi.NewRequestBuilder(
		cfg.RoutesConfig.APIKey,
		routesapi.WithBaseURL(cfg.RoutesConfig.BaseURL),
		routesapi.WithFieldMask(cfg.RoutesConfig.FieldMask),
		routesapi.WithRequestOptions(cfg.RoutesConfig.Request),
		routesapi.WithQueryEncoding(cfg.RoutesConfig.EncodeQuery),
	)
	if err != nil {
		log.Fatal("failed to create routes request builder", zap.Error(err))
	}
	client := routesapi.NewClient(builder, nil, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	resp, err := client.GenerateRoutes(ctx, origin, destination)
	if err != nil {
		log.Fatal("route generation failed", zap.Error(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		log.Fatal("failed to encode response", zap.Error(err))
	}
}

func parseWaypoint(s string) (route.Waypoint, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return route.Waypoint{}, fmt.Errorf("expected lat,lng, got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return route.Waypoint{}, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return route.Waypoint{}, fmt.Errorf("invalid longitude: %w", err)
	}
	return route.NewWaypoint(lat, lng), nil
}
