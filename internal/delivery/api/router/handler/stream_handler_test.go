package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"courtcrowd/config"
	"courtcrowd/internal/domain/entity"
	domainerrors "courtcrowd/internal/domain/errors"
	"courtcrowd/internal/infra/device"
	mockUC "courtcrowd/internal/mocks/usecase"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type streamFixtures struct {
	server       *httptest.Server
	hub          *device.Hub
	geofencingUC *mockUC.MockGeofencingUsecase
	provider     *mockUC.MockLocationProvider
}

func newStreamFixtures(t *testing.T) streamFixtures {
	t.Helper()

	e, auth := newTestEcho(t)
	hub := device.NewHub(&config.Config{
		Geofencing: &config.GeofencingConfig{DeviceTimeout: 2 * time.Second},
	}, discardLogger())
	geofencingUC := mockUC.NewMockGeofencingUsecase(t)
	provider := mockUC.NewMockLocationProvider(t)

	h := NewStreamHandler(StreamHandlerParams{
		Hub:          hub,
		GeofencingUC: geofencingUC,
		Provider:     provider,
		Logger:       discardLogger(),
	})
	e.GET("/stream", h.Stream, auth.Authenticate)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return streamFixtures{server: server, hub: hub, geofencingUC: geofencingUC, provider: provider}
}

func (f streamFixtures) dial(t *testing.T) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/stream?access_token=" + testToken
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool { return f.hub.Connected(testUserID) }, time.Second, 5*time.Millisecond)

	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) device.Message {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var msg device.Message
	require.NoError(t, conn.ReadJSON(&msg))

	return msg
}

func TestStreamHandler_RequiresAuthentication(t *testing.T) {
	t.Parallel()

	f := newStreamFixtures(t)

	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/stream"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)

	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestStreamHandler_SendsInitialState(t *testing.T) {
	t.Parallel()

	f := newStreamFixtures(t)
	f.geofencingUC.EXPECT().State(testUserID).Return(entity.GeofencingState{
		UserID: testUserID,
		Phase:  entity.PhaseReadyTracking,
	}, nil)

	conn := f.dial(t)

	msg := readMessage(t, conn)
	assert.Equal(t, device.MessageState, msg.Type)
	require.NotNil(t, msg.State)
	assert.Equal(t, entity.PhaseReadyTracking, msg.State.Phase)
}

func TestStreamHandler_ResolvesPermissionRequest(t *testing.T) {
	t.Parallel()

	f := newStreamFixtures(t)
	f.geofencingUC.EXPECT().State(testUserID).Return(entity.GeofencingState{}, domainerrors.ErrSessionNotFound)

	conn := f.dial(t)

	type result struct {
		status entity.PermissionStatus
		err    error
	}
	done := make(chan result, 1)
	go func() {
		status, err := f.hub.RequestPermission(context.Background(), testUserID, true)
		done <- result{status: status, err: err}
	}()

	request := readMessage(t, conn)
	require.Equal(t, device.MessagePermissionRequest, request.Type)
	assert.True(t, request.Background)

	require.NoError(t, conn.WriteJSON(device.Message{
		Type:      device.MessagePermissionResult,
		RequestID: request.RequestID,
		Status:    entity.PermissionGrantedBackground,
	}))

	select {
	case got := <-done:
		require.NoError(t, got.err)
		assert.Equal(t, entity.PermissionGrantedBackground, got.status)
	case <-time.After(2 * time.Second):
		t.Fatal("permission request was not resolved")
	}
}

func TestStreamHandler_DeviceFrames(t *testing.T) {
	t.Parallel()

	f := newStreamFixtures(t)
	f.geofencingUC.EXPECT().State(testUserID).Return(entity.GeofencingState{}, domainerrors.ErrSessionNotFound)

	ingested := make(chan []entity.LocationFix, 1)
	f.provider.EXPECT().IngestFixes(mock.Anything, testUserID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, fixes []entity.LocationFix) int {
			ingested <- fixes

			return len(fixes)
		})

	conn := f.dial(t)

	require.NoError(t, conn.WriteJSON(device.Message{
		Type:   device.MessagePermissionStatus,
		Status: entity.PermissionDenied,
	}))
	require.NoError(t, conn.WriteJSON(device.Message{
		Type:  device.MessageFixes,
		Fixes: []entity.LocationFix{{Latitude: 37.7749, Longitude: -122.4194, Timestamp: time.Now()}},
	}))

	select {
	case fixes := <-ingested:
		require.Len(t, fixes, 1)
		assert.InDelta(t, 37.7749, fixes[0].Latitude, 1e-9)
	case <-time.After(2 * time.Second):
		t.Fatal("fixes were not ingested")
	}
	// Frames are handled in order, so the status frame has been applied.
	assert.Equal(t, entity.PermissionDenied, f.hub.PermissionStatus(testUserID))
}

func TestStreamHandler_ForegroundReconciles(t *testing.T) {
	t.Parallel()

	f := newStreamFixtures(t)
	f.geofencingUC.EXPECT().State(testUserID).Return(entity.GeofencingState{}, domainerrors.ErrSessionNotFound)
	f.geofencingUC.EXPECT().Reconcile(mock.Anything, testUserID).Return(entity.GeofencingState{
		ActiveCheckIn: &entity.CheckIn{CourtID: "court-9"},
	}, nil)

	conn := f.dial(t)

	require.NoError(t, conn.WriteJSON(device.Message{Type: device.MessageForeground}))

	msg := readMessage(t, conn)
	assert.Equal(t, device.MessageState, msg.Type)
	require.NotNil(t, msg.State)
	require.NotNil(t, msg.State.ActiveCheckIn)
	assert.Equal(t, "court-9", msg.State.ActiveCheckIn.CourtID)
}
