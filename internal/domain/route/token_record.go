package route

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/domain"
	"github.com/google/uuid"
)

// MaxRequestIDLength is the longest request ID, in characters, kept with a route token.
const MaxRequestIDLength = 128

// NormalizeRequestID drops invalid UTF-8 from a caller-supplied request ID and cuts it to
// MaxRequestIDLength characters.
func NormalizeRequestID(id string) string {
	id = strings.ToValidUTF8(id, "")
	if utf8.RuneCountInString(id) <= MaxRequestIDLength {
		return id
	}
	return string([]rune(id)[:MaxRequestIDLength])
}

// TokenRecord is an issued route token kept for navigation handoff.
type TokenRecord struct {
	id             uuid.UUID
	requestID      string
	routeToken     string
	origin         Waypoint
	destination    Waypoint
	travelAdvisory TravelAdvisory
	createdAt      time.Time
}

// NewTokenRecord creates a TokenRecord for the first route of a response.
func NewTokenRecord(requestID string, origin, destination Waypoint, r Route) (*TokenRecord, error) {
	if r.RouteToken == "" {
		return nil, domain.NewValidationError("route token is required")
	}
	return &TokenRecord{
		id:             uuid.New(),
		requestID:      requestID,
		routeToken:     r.RouteToken,
		origin:         origin,
		destination:    destination,
		travelAdvisory: r.TravelAdvisory,
		createdAt:      time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a TokenRecord from persistence without validation.
func Reconstruct(
	id uuid.UUID,
	requestID string,
	routeToken string,
	origin, destination Waypoint,
	travelAdvisory TravelAdvisory,
	createdAt time.Time,
) *TokenRecord {
	return &TokenRecord{
		id:             id,
		requestID:      requestID,
		routeToken:     routeToken,
		origin:         origin,
		destination:    destination,
		travelAdvisory: travelAdvisory,
		createdAt:      createdAt,
	}
}

func (t *TokenRecord) ID() uuid.UUID                  { return t.id }
func (t *TokenRecord) RequestID() string              { return t.requestID }
func (t *TokenRecord) RouteToken() string             { return t.routeToken }
func (t *TokenRecord) Origin() Waypoint               { return t.origin }
func (t *TokenRecord) Destination() Waypoint          { return t.destination }
func (t *TokenRecord) TravelAdvisory() TravelAdvisory { return t.travelAdvisory }
func (t *TokenRecord) CreatedAt() time.Time           { return t.createdAt }
