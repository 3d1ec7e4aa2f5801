package routesapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/domain/route"
)

const (
	// DefaultBaseURL is the public Routes API host.
	DefaultBaseURL = "https://routes.googleapis.com"

	// ComputeRoutesEndpoint is the path of the compute-routes method.
	ComputeRoutesEndpoint = "directions/v2:computeRoutes"

	// FieldMaskHeader restricts which response fields the service returns.
	FieldMaskHeader = "X-Goog-FieldMask"

	// DefaultFieldMask requests only the route token and the travel advisory.
	DefaultFieldMask = "routes.routeToken,routes.travelAdvisory"

	apiKeyParam = "key"
)

// ErrMissingAPIKey is returned when no Routes API credential is configured.
var ErrMissingAPIKey = errors.New("routes api: API key is not set")

// Request is a fully built compute-routes call.
type Request struct {
	Method  string
	URL     string
	Body    route.RouteTokenParams
	Headers map[string]string
}

// RequestBuilder turns an origin/destination pair into a compute-routes Request.
// It is immutable after construction and safe for concurrent use.
type RequestBuilder struct {
	apiKey      string
	baseURL     string
	fieldMask   string
	options     route.RequestOptions
	encodeQuery bool
}

// BuilderOption customizes a RequestBuilder.
type BuilderOption func(*RequestBuilder)

// WithBaseURL overrides the service host, e.g. to point at a test server.
func WithBaseURL(baseURL string) BuilderOption {
	return func(b *RequestBuilder) {
		b.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithFieldMask overrides the response field mask.
func WithFieldMask(mask string) BuilderOption {
	return func(b *RequestBuilder) {
		b.fieldMask = mask
	}
}

// WithRequestOptions replaces the fixed routing and vehicle settings.
func WithRequestOptions(opts route.RequestOptions) BuilderOption {
	return func(b *RequestBuilder) {
		b.options = opts
	}
}

// WithQueryEncoding enables query-escaping of query parameters.
func WithQueryEncoding(enabled bool) BuilderOption {
	return func(b *RequestBuilder) {
		b.encodeQuery = enabled
	}
}

// NewRequestBuilder creates a RequestBuilder. It fails with ErrMissingAPIKey when apiKey is
// blank so that a misconfigured process never dispatches an unauthenticated call.
func NewRequestBuilder(apiKey string, opts ...BuilderOption) (*RequestBuilder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	b := &RequestBuilder{
		apiKey:    apiKey,
		baseURL:   DefaultBaseURL,
		fieldMask: DefaultFieldMask,
		options:   route.DefaultRequestOptions(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Build assembles the compute-routes request for one origin/destination pair.
func (b *RequestBuilder) Build(origin, destination route.Waypoint) *Request {
	return &Request{
		Method: http.MethodPost,
		URL:    b.endpointURL(ComputeRoutesEndpoint),
		Body:   route.NewRouteTokenParams(origin, destination, b.options),
		Headers: map[string]string{
			FieldMaskHeader: b.fieldMask,
			"Content-Type":  "application/json",
		},
	}
}

func (b *RequestBuilder) endpointURL(endpoint string) string {
	base := b.baseURL + "/" + endpoint
	param := QueryParam{Key: apiKeyParam, Value: b.apiKey}
	if b.encodeQuery {
		return BuildEncodedRequestURL(base, param)
	}
	return BuildRequestURL(base, param)
}
