package route

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWaypoint_WireShape(t *testing.T) {
	raw, err := json.Marshal(NewWaypoint(41.82999557797065, -87.6650479101103))
	require.NoError(t, err)
	assert.JSONEq(t, `{"location":{"latLng":{"latitude":41.82999557797065,"longitude":-87.6650479101103}}}`, string(raw))
}

func TestNewRouteTokenParams_MergesWaypoints(t *testing.T) {
	origin, destination := NewWaypoint(1, 2), NewWaypoint(3, 4)

	p := NewRouteTokenParams(origin, destination, DefaultRequestOptions())

	assert.Equal(t, origin, p.Origin)
	assert.Equal(t, destination, p.Destination)
	assert.Equal(t, TravelModeTruck, p.TravelMode)
	assert.Equal(t, DefaultVehicleInfo(), p.RouteModifiers.VehicleInfo)
	assert.False(t, p.RouteModifiers.AvoidTolls)
	assert.False(t, p.RouteModifiers.AvoidHighways)
	assert.False(t, p.RouteModifiers.AvoidFerries)
	assert.False(t, p.ComputeAlternativeRoutes)
}

func TestTravelAdvisory_RestrictionsPartiallyIgnored(t *testing.T) {
	yes, no := true, false
	assert.False(t, TravelAdvisory{}.RestrictionsPartiallyIgnored())
	assert.False(t, TravelAdvisory{RouteRestrictionsPartiallyIgnored: &no}.RestrictionsPartiallyIgnored())
	assert.True(t, TravelAdvisory{RouteRestrictionsPartiallyIgnored: &yes}.RestrictionsPartiallyIgnored())
}

func TestNewTokenRecord(t *testing.T) {
	rec, err := NewTokenRecord("req-1", NewWaypoint(1, 2), NewWaypoint(3, 4), Route{RouteToken: "abc123"})
	require.NoError(t, err)

	assert.NotEqual(t, [16]byte{}, [16]byte(rec.ID()))
	assert.Equal(t, "abc123", rec.RouteToken())
	assert.Equal(t, "req-1", rec.RequestID())
	assert.False(t, rec.CreatedAt().IsZero())

	_, err = NewTokenRecord("req-2", NewWaypoint(1, 2), NewWaypoint(3, 4), Route{})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestNormalizeRequestID(t *testing.T) {
	assert.Equal(t, "req-1", NormalizeRequestID("req-1"))
	assert.Equal(t, "", NormalizeRequestID(""))
	assert.Equal(t, "ab", NormalizeRequestID("a\xffb"))

	exact := strings.Repeat("x", MaxRequestIDLength)
	assert.Equal(t, exact, NormalizeRequestID(exact))
	assert.Equal(t, exact, NormalizeRequestID(exact+"overflow"))

	multibyte := NormalizeRequestID(strings.Repeat("é", MaxRequestIDLength+10))
	assert.True(t, utf8.ValidString(multibyte))
	assert.Equal(t, MaxRequestIDLength, utf8.RuneCountInString(multibyte))
}

func TestRouteResponse_ReencodesOnlyWhatWasReceived(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "token and advisory",
			body: `{"routes":[{"routeToken":"abc123","travelAdvisory":{"routeRestrictionsPartiallyIgnored":true}}]}`,
		},
		{
			name: "sparse legs and steps",
			body: `{"routes":[{"routeToken":"abc123","legs":[{
				"duration":"1834s",
				"endLocation":{"latLng":{"latitude":0,"longitude":0}},
				"steps":[{"navigationInstruction":{"maneuver":"TURN_LEFT"},"travelMode":"DRIVE"}]
			}]}]}`,
		},
		{
			name: "error body",
			body: `{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`,
		},
		{
			name: "empty object",
			body: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp RouteResponse
			require.NoError(t, json.Unmarshal([]byte(tt.body), &resp))

			out, err := json.Marshal(resp)
			require.NoError(t, err)
			assert.JSONEq(t, tt.body, string(out))
		})
	}
}
