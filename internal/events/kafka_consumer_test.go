package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/application"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/contracts"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/domain/route"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/kafka"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordedCall struct {
	requestID string
	req       application.GenerateRouteRequest
}

type fakeService struct {
	calls []recordedCall
	err   error
}

func (s *fakeService) GenerateRoute(_ context.Context, requestID string, req application.GenerateRouteRequest) (*route.RouteResponse, error) {
	s.calls = append(s.calls, recordedCall{requestID: requestID, req: req})
	if s.err != nil {
		return nil, s.err
	}
	return &route.RouteResponse{Routes: []route.Route{{RouteToken: "tok"}}}, nil
}

func newTestConsumer(svc *fakeService) *RouteRequestConsumer {
	return &RouteRequestConsumer{service: svc, logger: zap.NewNop()}
}

func cloudEventMessage(t *testing.T, eventType string, data interface{}) kafkago.Message {
	t.Helper()
	ce, err := kafka.NewCloudEvent("test", eventType, data)
	require.NoError(t, err)
	value, err := json.Marshal(ce)
	require.NoError(t, err)
	return kafkago.Message{Topic: contracts.TopicRouteRequests, Value: value}
}

func TestHandleMessage_RouteRequested(t *testing.T) {
	svc := &fakeService{}
	c := newTestConsumer(svc)

	msg := cloudEventMessage(t, contracts.RouteRequested, contracts.RouteRequestedEvent{
		RequestID:   "req-1",
		Origin:      route.NewWaypoint(41.83, -87.66),
		Destination: route.NewWaypoint(41.66, -87.47),
	})

	require.NoError(t, c.handleMessage(context.Background(), msg))
	require.Len(t, svc.calls, 1)
	assert.Equal(t, "req-1", svc.calls[0].requestID)
	assert.Equal(t, route.NewWaypoint(41.83, -87.66), *svc.calls[0].req.Origin)
	assert.Equal(t, route.NewWaypoint(41.66, -87.47), *svc.calls[0].req.Destination)
}

func TestHandleMessage_FallsBackToEventID(t *testing.T) {
	svc := &fakeService{}
	c := newTestConsumer(svc)

	ce, err := kafka.NewCloudEvent("test", contracts.RouteRequested, contracts.RouteRequestedEvent{
		Origin:      route.NewWaypoint(1, 2),
		Destination: route.NewWaypoint(3, 4),
	})
	require.NoError(t, err)
	value, err := json.Marshal(ce)
	require.NoError(t, err)

	require.NoError(t, c.handleMessage(context.Background(), kafkago.Message{Value: value}))
	require.Len(t, svc.calls, 1)
	assert.Equal(t, ce.ID, svc.calls[0].requestID)
}

func TestHandleMessage_ServiceErrorIsNotRetried(t *testing.T) {
	svc := &fakeService{err: errors.New("failed to generate route token: timeout")}
	c := newTestConsumer(svc)

	msg := cloudEventMessage(t, contracts.RouteRequested, contracts.RouteRequestedEvent{RequestID: "req-2"})

	assert.NoError(t, c.handleMessage(context.Background(), msg))
	assert.Len(t, svc.calls, 1)
}

func TestHandleMessage_IgnoresMalformedAndUnknown(t *testing.T) {
	svc := &fakeService{}
	c := newTestConsumer(svc)

	assert.NoError(t, c.handleMessage(context.Background(), kafkago.Message{Value: []byte("not json")}))
	assert.NoError(t, c.handleMessage(context.Background(), cloudEventMessage(t, "route.unknown", map[string]string{})))
	assert.NoError(t, c.handleMessage(context.Background(), cloudEventMessage(t, contracts.RouteRequested, "not an object")))
	assert.Empty(t, svc.calls)
}
