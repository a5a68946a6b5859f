package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"courtcrowd/internal/domain/entity"
	domainerrors "courtcrowd/internal/domain/errors"
	"courtcrowd/internal/domain/service"
	"courtcrowd/internal/event"
	mockSvc "courtcrowd/internal/mocks/service"
	mockUC "courtcrowd/internal/mocks/usecase"
	"courtcrowd/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeSource is an in-memory geofencing SDK.
type fakeSource struct {
	mu          sync.Mutex
	initOK      bool
	initCalls   int
	status      entity.PermissionStatus
	grant       entity.PermissionStatus
	startOK     bool
	tracking    map[string]bool
	trackEvents []entity.GeofenceEvent
	events      event.Emitter[entity.GeofenceEvent]
}

func newFakeSource(status entity.PermissionStatus) *fakeSource {
	return &fakeSource{
		initOK:   true,
		status:   status,
		grant:    entity.PermissionGrantedBackground,
		startOK:  true,
		tracking: make(map[string]bool),
	}
}

func (f *fakeSource) IsAvailable() bool { return true }

func (f *fakeSource) Initialize(context.Context, string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.initCalls++

	return f.initOK
}

func (f *fakeSource) RequestPermissions(context.Context, string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = f.grant

	return f.status.IsGranted()
}

func (f *fakeSource) PermissionStatus(string) entity.PermissionStatus {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.status
}

func (f *fakeSource) SetUserID(context.Context, string) bool { return true }

func (f *fakeSource) StartTracking(_ context.Context, userID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startOK {
		f.tracking[userID] = true
	}

	return f.startOK
}

func (f *fakeSource) StopTracking(_ context.Context, userID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tracking, userID)

	return true
}

func (f *fakeSource) isTracking(userID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.tracking[userID]
}

func (f *fakeSource) TrackOnce(context.Context, string, *entity.LocationFix) ([]entity.GeofenceEvent, bool) {
	for _, ev := range f.trackEvents {
		f.events.Emit(ev)
	}

	return f.trackEvents, true
}

func (f *fakeSource) OnGeofenceEvent(fn func(entity.GeofenceEvent)) func() {
	return f.events.Subscribe(fn)
}

type geofencingFixtures struct {
	manager   *geofencingManager
	store     *memoryStore
	source    *fakeSource
	provider  *mockUC.MockLocationProvider
	publisher *mockSvc.MockEventPublisher
	host      *mockSvc.MockDeviceHost
}

// createTestGeofencingManager builds a manager over an in-memory store. A nil source
// makes the geofencing SDK unavailable.
func createTestGeofencingManager(t *testing.T, source *fakeSource, autoStart bool) geofencingFixtures {
	t.Helper()

	store := newMemoryStore(courtMission, courtDolores, courtHayes, court123)
	provider := mockUC.NewMockLocationProvider(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	host := mockSvc.NewMockDeviceHost(t)
	host.EXPECT().PushState(mock.Anything, mock.Anything).Maybe()
	provider.EXPECT().OnProximityEvent(mock.Anything).Return(func() {}).Maybe()

	deps := coordinatorDeps{
		provider:  provider,
		presence:  newMemoryPresenceService(store),
		publisher: publisher,
		host:      host,
		autoStart: autoStart,
		logger:    discardLogger(),
	}
	if source != nil {
		deps.source = source
	}
	manager := newGeofencingManager(deps, "prj_test_sk")
	t.Cleanup(manager.stopAll)

	return geofencingFixtures{
		manager:   manager,
		store:     store,
		source:    source,
		provider:  provider,
		publisher: publisher,
		host:      host,
	}
}

func (fx geofencingFixtures) start(t *testing.T, userID string) *Coordinator {
	t.Helper()

	_, err := fx.manager.Start(context.Background(), userID)
	require.NoError(t, err)
	coordinator, err := fx.manager.session(userID)
	require.NoError(t, err)

	return coordinator
}

// collectPublished records the kinds of published presence events.
func (fx geofencingFixtures) collectPublished(times int) func() []service.PresenceEventKind {
	var (
		mu    sync.Mutex
		kinds []service.PresenceEventKind
	)
	fx.publisher.EXPECT().PublishPresenceEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, ev *service.PresenceEvent) error {
			mu.Lock()
			kinds = append(kinds, ev.Kind)
			mu.Unlock()

			return nil
		}).Times(times)

	return func() []service.PresenceEventKind {
		mu.Lock()
		defer mu.Unlock()

		return append([]service.PresenceEventKind(nil), kinds...)
	}
}

func radarEvent(typ entity.GeofenceEventType, courtID, eventID string) entity.GeofenceEvent {
	return entity.GeofenceEvent{
		Type:            typ,
		Origin:          entity.OriginGeofence,
		UserID:          "u1",
		CourtID:         courtID,
		ExternalEventID: eventID,
		Timestamp:       time.Now().UTC(),
	}
}

func TestCoordinator_Start(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		source       func() *fakeSource
		autoStart    bool
		wantPhase    entity.GeofencingPhase
		wantStatus   entity.PermissionStatus
		wantTracking bool
		wantError    string
	}{
		{
			name:       "sdk unavailable",
			source:     func() *fakeSource { return nil },
			wantPhase:  entity.PhaseReadyUnavailable,
			wantStatus: entity.PermissionUnavailable,
		},
		{
			name: "sdk initialization fails",
			source: func() *fakeSource {
				s := newFakeSource(entity.PermissionGrantedBackground)
				s.initOK = false

				return s
			},
			wantPhase:  entity.PhaseReadyUnavailable,
			wantStatus: entity.PermissionUnavailable,
			wantError:  errSourceInitFailed,
		},
		{
			name:       "permission denied",
			source:     func() *fakeSource { return newFakeSource(entity.PermissionDenied) },
			autoStart:  true,
			wantPhase:  entity.PhaseReadyDenied,
			wantStatus: entity.PermissionDenied,
		},
		{
			name:       "permission unknown",
			source:     func() *fakeSource { return newFakeSource(entity.PermissionUnknown) },
			autoStart:  true,
			wantPhase:  entity.PhaseReadyIdle,
			wantStatus: entity.PermissionUnknown,
		},
		{
			name:       "granted without auto start",
			source:     func() *fakeSource { return newFakeSource(entity.PermissionGrantedForeground) },
			wantPhase:  entity.PhaseReadyIdle,
			wantStatus: entity.PermissionGrantedForeground,
		},
		{
			name:         "granted with auto start",
			source:       func() *fakeSource { return newFakeSource(entity.PermissionGrantedBackground) },
			autoStart:    true,
			wantPhase:    entity.PhaseReadyTracking,
			wantStatus:   entity.PermissionGrantedBackground,
			wantTracking: true,
		},
		{
			name: "auto start fails",
			source: func() *fakeSource {
				s := newFakeSource(entity.PermissionGrantedBackground)
				s.startOK = false

				return s
			},
			autoStart:  true,
			wantPhase:  entity.PhaseReadyIdle,
			wantStatus: entity.PermissionGrantedBackground,
			wantError:  errStartTrackingFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestGeofencingManager(t, tt.source(), tt.autoStart)
			if tt.wantPhase == entity.PhaseReadyUnavailable {
				fx.provider.EXPECT().IsTracking("u1").Return(false)
			}

			state, err := fx.manager.Start(context.Background(), "u1")

			require.NoError(t, err)
			assert.Equal(t, tt.wantPhase, state.Phase)
			assert.Equal(t, tt.wantStatus, state.PermissionStatus)
			assert.Equal(t, tt.wantTracking, state.Tracking)
			assert.Equal(t, tt.wantError, state.Error)
			assert.True(t, state.Initialized)
			assert.False(t, state.Loading)
			assert.Nil(t, state.ActiveCheckIn)
		})
	}
}

func TestCoordinator_Start_InitializesSourceOnce(t *testing.T) {
	t.Parallel()

	source := newFakeSource(entity.PermissionGrantedForeground)
	fx := createTestGeofencingManager(t, source, false)

	fx.start(t, "u1")
	fx.start(t, "u2")
	fx.start(t, "u1")

	source.mu.Lock()
	defer source.mu.Unlock()
	assert.Equal(t, 1, source.initCalls)
}

func TestCoordinator_HandleEvent_DuplicateEntryThenExit(t *testing.T) {
	t.Parallel()

	fx := createTestGeofencingManager(t, newFakeSource(entity.PermissionGrantedBackground), true)
	published := fx.collectPublished(2)
	c := fx.start(t, "u1")
	ctx := context.Background()

	c.HandleEvent(ctx, radarEvent(entity.GeofenceEventEntry, "court-1", "evt-1"))
	c.HandleEvent(ctx, radarEvent(entity.GeofenceEventEntry, "court-1", "evt-2"))
	require.NotNil(t, c.State().ActiveCheckIn)
	assert.Equal(t, "court-1", c.State().ActiveCheckIn.CourtID)

	c.HandleEvent(ctx, radarEvent(entity.GeofenceEventExit, "court-1", "evt-3"))

	state := c.State()
	assert.Nil(t, state.ActiveCheckIn)
	require.NotNil(t, state.LastEvent)
	assert.Equal(t, entity.GeofenceEventExit, state.LastEvent.Type)
	assert.Equal(t, 1, fx.store.recordCount())
	assert.Empty(t, fx.store.openRecords("u1", "court-1"))

	record := fx.store.records[0]
	assert.Equal(t, entity.EntryMethodRadar, record.EntryMethod)
	require.NotNil(t, record.RadarEventID)
	assert.Equal(t, "evt-1", *record.RadarEventID)
	assert.Equal(t, []service.PresenceEventKind{service.PresenceCheckedIn, service.PresenceCheckedOut}, published())
}

func TestCoordinator_SourceEventsAreQueued(t *testing.T) {
	t.Parallel()

	source := newFakeSource(entity.PermissionGrantedBackground)
	fx := createTestGeofencingManager(t, source, true)
	published := fx.collectPublished(1)
	c := fx.start(t, "u1")

	other := radarEvent(entity.GeofenceEventEntry, "court-2", "evt-0")
	other.UserID = "u2"
	source.events.Emit(other)
	source.events.Emit(radarEvent(entity.GeofenceEventEntry, "court-1", "evt-1"))

	assert.Eventually(t, func() bool {
		active := c.State().ActiveCheckIn

		return active != nil && active.CourtID == "court-1"
	}, time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool { return len(published()) == 1 }, time.Second, 10*time.Millisecond)
	assert.Empty(t, fx.store.openRecords("u2", "court-2"))
}

func TestCoordinator_HandleEvent_Dwell(t *testing.T) {
	t.Parallel()

	fx := createTestGeofencingManager(t, newFakeSource(entity.PermissionGrantedBackground), true)
	c := fx.start(t, "u1")

	c.HandleEvent(context.Background(), radarEvent(entity.GeofenceEventDwell, "court-1", "evt-1"))

	state := c.State()
	require.NotNil(t, state.LastEvent)
	assert.Equal(t, entity.GeofenceEventDwell, state.LastEvent.Type)
	assert.Nil(t, state.ActiveCheckIn)
	assert.Zero(t, fx.store.recordCount())
}

func TestCoordinator_HandleEvent_ExitOfOtherCourtKeepsCheckIn(t *testing.T) {
	t.Parallel()

	fx := createTestGeofencingManager(t, newFakeSource(entity.PermissionGrantedBackground), true)
	fx.collectPublished(1)
	c := fx.start(t, "u1")
	ctx := context.Background()

	c.HandleEvent(ctx, radarEvent(entity.GeofenceEventEntry, "court-1", "evt-1"))
	c.HandleEvent(ctx, radarEvent(entity.GeofenceEventExit, "court-2", "evt-2"))

	require.NotNil(t, c.State().ActiveCheckIn)
	assert.Equal(t, "court-1", c.State().ActiveCheckIn.CourtID)
}

func TestCoordinator_HandleEvent_PublishFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	fx := createTestGeofencingManager(t, newFakeSource(entity.PermissionGrantedBackground), true)
	fx.publisher.EXPECT().PublishPresenceEvent(mock.Anything, mock.Anything).Return(assert.AnError).Once()
	c := fx.start(t, "u1")

	c.HandleEvent(context.Background(), radarEvent(entity.GeofenceEventEntry, "court-1", "evt-1"))

	require.NotNil(t, c.State().ActiveCheckIn)
	assert.Empty(t, c.State().Error)
}

func TestCoordinator_EnableTracking_FromDenied(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		grant        entity.PermissionStatus
		wantOK       bool
		wantPhase    entity.GeofencingPhase
		wantCheckIn  bool
		wantTracking bool
	}{
		{
			name:         "user grants",
			grant:        entity.PermissionGrantedBackground,
			wantOK:       true,
			wantPhase:    entity.PhaseReadyTracking,
			wantCheckIn:  true,
			wantTracking: true,
		},
		{
			name:      "user denies again",
			grant:     entity.PermissionDenied,
			wantPhase: entity.PhaseReadyDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			source := newFakeSource(entity.PermissionDenied)
			source.grant = tt.grant
			fx := createTestGeofencingManager(t, source, true)
			ctx := context.Background()
			c := fx.start(t, "u1")
			require.Equal(t, entity.PhaseReadyDenied, c.State().Phase)

			// Opened by another device while this session was denied.
			_, err := newMemoryPresenceService(fx.store).CheckIn(ctx, "u1", "court-9", entity.EntryMethodManual, nil)
			require.NoError(t, err)
			require.Nil(t, c.State().ActiveCheckIn)

			ok, err := fx.manager.EnableTracking(ctx, "u1")

			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			state := c.State()
			assert.Equal(t, tt.wantPhase, state.Phase)
			assert.Equal(t, tt.wantTracking, state.Tracking)
			assert.Equal(t, tt.wantTracking, source.isTracking("u1"))
			if tt.wantCheckIn {
				require.NotNil(t, state.ActiveCheckIn)
				assert.Equal(t, "court-9", state.ActiveCheckIn.CourtID)
				assert.Empty(t, state.Error)
			} else {
				assert.Nil(t, state.ActiveCheckIn)
				assert.Equal(t, errPermissionDenied, state.Error)
			}
		})
	}
}

func TestCoordinator_RequestPermissions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		initial      entity.PermissionStatus
		grant        entity.PermissionStatus
		wantOK       bool
		wantPhase    entity.GeofencingPhase
		wantTracking bool
	}{
		{
			name:         "denied then granted starts tracking",
			initial:      entity.PermissionDenied,
			grant:        entity.PermissionGrantedBackground,
			wantOK:       true,
			wantPhase:    entity.PhaseReadyTracking,
			wantTracking: true,
		},
		{
			name:      "idle then granted stays idle",
			initial:   entity.PermissionUnknown,
			grant:     entity.PermissionGrantedForeground,
			wantOK:    true,
			wantPhase: entity.PhaseReadyIdle,
		},
		{
			name:      "idle then denied",
			initial:   entity.PermissionUnknown,
			grant:     entity.PermissionDenied,
			wantPhase: entity.PhaseReadyDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			source := newFakeSource(tt.initial)
			source.grant = tt.grant
			fx := createTestGeofencingManager(t, source, false)
			c := fx.start(t, "u1")

			ok, err := fx.manager.RequestPermissions(context.Background(), "u1")

			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			state := c.State()
			assert.Equal(t, tt.wantPhase, state.Phase)
			assert.Equal(t, tt.grant, state.PermissionStatus)
			assert.Equal(t, tt.wantTracking, state.Tracking)
		})
	}
}

func TestCoordinator_DisableTracking(t *testing.T) {
	t.Parallel()

	source := newFakeSource(entity.PermissionGrantedBackground)
	fx := createTestGeofencingManager(t, source, true)
	c := fx.start(t, "u1")
	require.True(t, source.isTracking("u1"))

	ok, err := fx.manager.DisableTracking(context.Background(), "u1")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entity.PhaseReadyIdle, c.State().Phase)
	assert.False(t, c.State().Tracking)
	assert.False(t, source.isTracking("u1"))
}

func TestCoordinator_Unavailable_ManualCheckIn(t *testing.T) {
	t.Parallel()

	fx := createTestGeofencingManager(t, nil, false)
	fx.provider.EXPECT().IsTracking("u1").Return(false)
	ctx := context.Background()

	state, err := fx.manager.Start(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, entity.PermissionUnavailable, state.PermissionStatus)

	ok, err := fx.manager.ManualCheckIn(ctx, "u1", "court-123")

	require.NoError(t, err)
	assert.True(t, ok)
	open := fx.store.openRecords("u1", "court-123")
	require.Len(t, open, 1)
	assert.Equal(t, entity.EntryMethodManual, open[0].EntryMethod)

	state, err = fx.manager.State("u1")
	require.NoError(t, err)
	require.NotNil(t, state.ActiveCheckIn)
	assert.Equal(t, "court-123", state.ActiveCheckIn.CourtID)
	assert.Equal(t, open[0].EnteredAt, state.ActiveCheckIn.EnteredAt)
}

func TestCoordinator_ManualCheckIn(t *testing.T) {
	t.Parallel()

	t.Run("switches from the cached court", func(t *testing.T) {
		t.Parallel()

		fx := createTestGeofencingManager(t, newFakeSource(entity.PermissionGrantedForeground), false)
		c := fx.start(t, "u1")
		ctx := context.Background()

		require.True(t, c.ManualCheckIn(ctx, "court-1"))
		require.True(t, c.ManualCheckIn(ctx, "court-2"))

		assert.Empty(t, fx.store.openRecords("u1", "court-1"))
		assert.Len(t, fx.store.openRecords("u1", "court-2"), 1)
		assert.Equal(t, "court-2", c.State().ActiveCheckIn.CourtID)
	})

	t.Run("unknown court", func(t *testing.T) {
		t.Parallel()

		fx := createTestGeofencingManager(t, newFakeSource(entity.PermissionGrantedForeground), false)
		c := fx.start(t, "u1")

		assert.False(t, c.ManualCheckIn(context.Background(), "court-404"))
		assert.Equal(t, errCheckInFailed, c.State().Error)
		assert.Nil(t, c.State().ActiveCheckIn)
		assert.Zero(t, fx.store.recordCount())
	})
}

func TestCoordinator_ManualCheckOut(t *testing.T) {
	t.Parallel()

	t.Run("closes the cached court", func(t *testing.T) {
		t.Parallel()

		fx := createTestGeofencingManager(t, newFakeSource(entity.PermissionGrantedForeground), false)
		c := fx.start(t, "u1")
		ctx := context.Background()
		require.True(t, c.ManualCheckIn(ctx, "court-1"))

		assert.True(t, c.ManualCheckOut(ctx))
		assert.Nil(t, c.State().ActiveCheckIn)
		assert.Empty(t, fx.store.openRecords("u1", "court-1"))
	})

	t.Run("without a cached court closes every open record", func(t *testing.T) {
		t.Parallel()

		fx := createTestGeofencingManager(t, newFakeSource(entity.PermissionGrantedForeground), false)
		c := fx.start(t, "u1")
		ctx := context.Background()
		_, err := newMemoryPresenceService(fx.store).CheckIn(ctx, "u1", "court-2", entity.EntryMethodManual, nil)
		require.NoError(t, err)

		assert.True(t, c.ManualCheckOut(ctx))
		assert.Empty(t, fx.store.openRecords("u1", "court-2"))
	})

	t.Run("nothing open", func(t *testing.T) {
		t.Parallel()

		fx := createTestGeofencingManager(t, newFakeSource(entity.PermissionGrantedForeground), false)
		c := fx.start(t, "u1")

		assert.False(t, c.ManualCheckOut(context.Background()))
		assert.Empty(t, c.State().Error)
		assert.Zero(t, fx.store.recordCount())
	})
}

func TestCoordinator_Reconcile_OverwritesCache(t *testing.T) {
	t.Parallel()

	fx := createTestGeofencingManager(t, newFakeSource(entity.PermissionGrantedForeground), false)
	c := fx.start(t, "u1")
	ctx := context.Background()
	require.True(t, c.ManualCheckIn(ctx, "court-1"))

	// Another device moved the user to court-9 while this one was backgrounded.
	writer := newMemoryPresenceService(fx.store)
	_, err := writer.SwitchCourt(ctx, "u1", "court-1", "court-9", entity.EntryMethodManual)
	require.NoError(t, err)
	open := fx.store.openRecords("u1", "court-9")
	require.Len(t, open, 1)

	state, err := fx.manager.Reconcile(ctx, "u1")

	require.NoError(t, err)
	require.NotNil(t, state.ActiveCheckIn)
	assert.Equal(t, entity.CheckIn{CourtID: "court-9", EnteredAt: open[0].EnteredAt}, *state.ActiveCheckIn)
}

func TestCoordinator_ForceLocationCheck_Radar(t *testing.T) {
	t.Parallel()

	fix := &entity.LocationFix{Latitude: 37.77491, Longitude: -122.41941}

	t.Run("events reach the coordinator", func(t *testing.T) {
		t.Parallel()

		source := newFakeSource(entity.PermissionGrantedBackground)
		source.trackEvents = []entity.GeofenceEvent{radarEvent(entity.GeofenceEventEntry, "court-1", "evt-1")}
		fx := createTestGeofencingManager(t, source, true)
		fx.collectPublished(1)
		fx.provider.EXPECT().GetCurrentLocation(mock.Anything, "u1").Return(fix)
		c := fx.start(t, "u1")

		assert.True(t, c.ForceLocationCheck(context.Background()))
		assert.Eventually(t, func() bool {
			active := c.State().ActiveCheckIn

			return active != nil && active.CourtID == "court-1"
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("no fix", func(t *testing.T) {
		t.Parallel()

		fx := createTestGeofencingManager(t, newFakeSource(entity.PermissionGrantedBackground), true)
		fx.provider.EXPECT().GetCurrentLocation(mock.Anything, "u1").Return(nil)
		c := fx.start(t, "u1")

		assert.False(t, c.ForceLocationCheck(context.Background()))
		assert.Equal(t, errLocationUnavailable, c.State().Error)
	})
}

func TestCoordinator_ForceLocationCheck_Fallback(t *testing.T) {
	t.Parallel()

	fix := &entity.LocationFix{Latitude: 37.77491, Longitude: -122.41941}
	fx := createTestGeofencingManager(t, nil, false)
	fx.provider.EXPECT().IsTracking("u1").Return(false)
	fx.provider.EXPECT().GetCurrentLocation(mock.Anything, "u1").Return(fix)
	fx.provider.EXPECT().EvaluateFix(mock.Anything, "u1", *fix).Return(nil).Once()
	c := fx.start(t, "u1")

	assert.True(t, c.ForceLocationCheck(context.Background()))
}

func TestCoordinator_Fallback_ProximityScan(t *testing.T) {
	t.Parallel()

	lp := createTestLocationProvider(t, testGeofencingConfig())
	lp.host.EXPECT().PushState("u1", mock.Anything).Maybe()
	publisher := mockSvc.NewMockEventPublisher(t)
	published := make(chan service.PresenceEventKind, 2)
	publisher.EXPECT().PublishPresenceEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, ev *service.PresenceEvent) error {
			published <- ev.Kind

			return nil
		}).Times(2)

	manager := newGeofencingManager(coordinatorDeps{
		provider:  lp.provider,
		presence:  newMemoryPresenceService(lp.store),
		publisher: publisher,
		host:      lp.host,
		logger:    discardLogger(),
	}, "")
	t.Cleanup(manager.stopAll)
	ctx := context.Background()

	state, err := manager.Start(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, entity.PhaseReadyUnavailable, state.Phase)

	lp.host.EXPECT().PermissionStatus("u1").Return(entity.PermissionGrantedBackground).Once()
	lp.host.EXPECT().StartBackgroundUpdates(mock.Anything, "u1", lp.cfg.MinDistanceMeters, lp.cfg.BatchInterval).Return(nil).Once()
	ok, err := manager.EnableTracking(ctx, "u1")
	require.NoError(t, err)
	require.True(t, ok)

	lp.provider.EvaluateFix(ctx, "u1", entity.LocationFix{Latitude: 37.7749, Longitude: -122.4194, Timestamp: time.Now()})
	require.Len(t, lp.store.openRecords("u1", "court-1"), 1)
	assert.Equal(t, service.PresenceCheckedIn, <-published)
	assert.Eventually(t, func() bool {
		s, _ := manager.State("u1")

		return s.ActiveCheckIn != nil && s.ActiveCheckIn.CourtID == "court-1"
	}, time.Second, 10*time.Millisecond)

	lp.provider.EvaluateFix(ctx, "u1", withTime(farAway, time.Now()))
	assert.Empty(t, lp.store.openRecords("u1", "court-1"))
	assert.Equal(t, service.PresenceCheckedOut, <-published)
	assert.Eventually(t, func() bool {
		s, _ := manager.State("u1")

		return s.ActiveCheckIn == nil
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, lp.store.recordCount())
}

func TestCoordinator_Stop_DiscardsInFlightWrite(t *testing.T) {
	t.Parallel()

	presence := mockUC.NewMockPresenceUsecase(t)
	provider := mockUC.NewMockLocationProvider(t)
	host := mockSvc.NewMockDeviceHost(t)
	host.EXPECT().PushState("u1", mock.Anything).Maybe()
	provider.EXPECT().OnProximityEvent(mock.Anything).Return(func() {})
	presence.EXPECT().ActiveCheckIn(mock.Anything, "u1").Return(nil, nil).Once()

	started := make(chan struct{})
	release := make(chan struct{})
	presence.EXPECT().SwitchCourt(mock.Anything, "u1", "", "court-1", entity.EntryMethodManual).
		RunAndReturn(func(context.Context, string, string, string, entity.EntryMethod) (*usecase.CheckInResult, error) {
			close(started)
			<-release

			return &usecase.CheckInResult{
				Record:  &entity.PresenceRecord{UserID: "u1", CourtID: "court-1", EnteredAt: time.Now()},
				Court:   courtMission,
				Created: true,
			}, nil
		}).Once()

	manager := newGeofencingManager(coordinatorDeps{
		source:    newFakeSource(entity.PermissionGrantedForeground),
		provider:  provider,
		presence:  presence,
		publisher: mockSvc.NewMockEventPublisher(t),
		host:      host,
		logger:    discardLogger(),
	}, "prj_test_sk")
	ctx := context.Background()
	_, err := manager.Start(ctx, "u1")
	require.NoError(t, err)
	c, err := manager.session("u1")
	require.NoError(t, err)

	var updates int
	var mu sync.Mutex
	c.Subscribe(func(entity.GeofencingState) {
		mu.Lock()
		updates++
		mu.Unlock()
	})

	result := make(chan bool, 1)
	go func() { result <- c.ManualCheckIn(ctx, "court-1") }()
	<-started
	mu.Lock()
	before := updates
	mu.Unlock()

	require.NoError(t, manager.Stop(ctx, "u1"))
	close(release)

	assert.True(t, <-result)
	assert.Nil(t, c.State().ActiveCheckIn)
	mu.Lock()
	assert.Equal(t, before, updates)
	mu.Unlock()

	// Events after Stop never reach the presence writer.
	c.HandleEvent(ctx, radarEvent(entity.GeofenceEventEntry, "court-2", "evt-1"))
	select {
	case <-c.Done():
	case <-time.After(time.Second):
		t.Fatal("event loop did not exit")
	}

	_, err = manager.State("u1")
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}
