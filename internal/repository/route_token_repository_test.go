package repository

import (
	"testing"

	routeDomain "github.com/Kilat-Pet-Delivery/service-truckroute/internal/domain/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteTokenModel_Conversion(t *testing.T) {
	ignored := true
	origin := routeDomain.NewWaypoint(41.83, -87.66)
	destination := routeDomain.NewWaypoint(41.66, -87.47)

	rec, err := routeDomain.NewTokenRecord("req-1", origin, destination, routeDomain.Route{
		RouteToken:     "abc123",
		TravelAdvisory: routeDomain.TravelAdvisory{RouteRestrictionsPartiallyIgnored: &ignored},
	})
	require.NoError(t, err)

	model, err := toRouteTokenModel(rec)
	require.NoError(t, err)

	assert.Equal(t, rec.ID(), model.ID)
	assert.Equal(t, "abc123", model.RouteToken)
	assert.True(t, model.RestrictionsPartiallyIgnored)
	assert.JSONEq(t, `{"location":{"latLng":{"latitude":41.83,"longitude":-87.66}}}`, string(model.Origin))
	assert.JSONEq(t, `{"routeRestrictionsPartiallyIgnored":true}`, string(model.TravelAdvisory))

	back, err := toDomainTokenRecord(model)
	require.NoError(t, err)

	assert.Equal(t, rec.ID(), back.ID())
	assert.Equal(t, "req-1", back.RequestID())
	assert.Equal(t, origin, back.Origin())
	assert.Equal(t, destination, back.Destination())
	assert.True(t, back.TravelAdvisory().RestrictionsPartiallyIgnored())
	assert.True(t, rec.CreatedAt().Equal(back.CreatedAt()))
}

func TestToDomainTokenRecord_EmptyAdvisory(t *testing.T) {
	model := &RouteTokenModel{
		RouteToken:  "tok",
		Origin:      []byte(`{"location":{"latLng":{"latitude":1,"longitude":2}}}`),
		Destination: []byte(`{"location":{"latLng":{"latitude":3,"longitude":4}}}`),
	}

	rec, err := toDomainTokenRecord(model)
	require.NoError(t, err)
	assert.False(t, rec.TravelAdvisory().RestrictionsPartiallyIgnored())
	assert.Equal(t, routeDomain.NewWaypoint(3, 4), rec.Destination())
}

func TestToDomainTokenRecord_BadJSON(t *testing.T) {
	_, err := toDomainTokenRecord(&RouteTokenModel{Origin: []byte(`{`)})
	assert.Error(t, err)
}
