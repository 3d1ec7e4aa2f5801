package routesapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/domain/route"
	"go.uber.org/zap"
)

// ErrRouteGeneration prefixes every failure returned by Client.GenerateRoutes.
var ErrRouteGeneration = errors.New("failed to generate route token")

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Generator produces truck routes between two waypoints.
type Generator interface {
	GenerateRoutes(ctx context.Context, origin, destination route.Waypoint) (*route.RouteResponse, error)
}

// Client calls the compute-routes method once per GenerateRoutes call.
type Client struct {
	builder *RequestBuilder
	doer    Doer
	logger  *zap.Logger
}

// NewClient creates a new Client. A nil doer falls back to an http.Client without a
// timeout; the caller's context is the only bound on a call.
func NewClient(builder *RequestBuilder, doer Doer, logger *zap.Logger) *Client {
	if doer == nil {
		doer = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		builder: builder,
		doer:    doer,
		logger:  logger,
	}
}

// GenerateRoutes requests a truck route from origin to destination. The decoded body is
// returned as-is, even when it holds no routes or an upstream error payload. Transport and
// decoding failures are returned as ErrRouteGeneration carrying the original description.
func (c *Client) GenerateRoutes(ctx context.Context, origin, destination route.Waypoint) (*route.RouteResponse, error) {
	req := c.builder.Build(origin, destination)

	var resp route.RouteResponse
	if err := c.fetch(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRouteGeneration, err)
	}
	return &resp, nil
}

func (c *Client) fetch(ctx context.Context, r *Request, out any) error {
	body, err := json.Marshal(r.Body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call routes API: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.Warn("routes API returned error status",
			zap.Int("status", resp.StatusCode),
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode routes API response: %v", err)
	}
	return nil
}
