package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"courtcrowd/internal/domain/entity"
	"courtcrowd/internal/domain/service"
	"courtcrowd/internal/event"
	"courtcrowd/internal/infra/metrics"
	"courtcrowd/internal/usecase"

	"github.com/google/uuid"
)

const eventQueueSize = 256

// State error messages surfaced to the presentation layer.
const (
	errSourceInitFailed    = "geofencing SDK initialization failed"
	errPermissionDenied    = "location permission denied"
	errStartTrackingFailed = "failed to start tracking"
	errStopTrackingFailed  = "failed to stop tracking"
	errCheckInFailed       = "check-in failed"
	errCheckOutFailed      = "check-out failed"
	errLocationUnavailable = "current location unavailable"
	errLocationCheckFailed = "location check failed"
	errReconcileFailed     = "failed to load active check-in"
)

// coordinatorDeps are shared by every coordinator a manager creates.
type coordinatorDeps struct {
	// source is nil when the geofencing SDK is unavailable.
	source    service.GeofenceSource
	provider  usecase.LocationProvider
	presence  usecase.PresenceUsecase
	publisher service.EventPublisher
	host      service.DeviceHost
	autoStart bool
	logger    *slog.Logger

	// initSource runs the one-time SDK initialization and reports whether it succeeded.
	initSource func(ctx context.Context) bool
}

// Coordinator owns the geofencing state of one user session. Operations are
// serialized; geofence events are queued and applied between operations.
// Once stopped, results of writes still in flight are discarded.
type Coordinator struct {
	coordinatorDeps
	userID string

	opMu sync.Mutex

	mu    sync.Mutex
	state entity.GeofencingState
	live  bool

	// fallback is set when no SDK is in use and the location provider detects presence.
	fallback bool

	states      event.Emitter[entity.GeofencingState]
	queue       chan entity.GeofenceEvent
	stop        chan struct{}
	stopOnce    sync.Once
	loopDone    chan struct{}
	unsubscribe []func()
}

func newCoordinator(deps coordinatorDeps, userID string) *Coordinator {
	return &Coordinator{
		coordinatorDeps: deps,
		userID:          userID,
		state: entity.GeofencingState{
			UserID:           userID,
			Phase:            entity.PhaseUninitialized,
			PermissionStatus: entity.PermissionUnknown,
		},
		live:     true,
		fallback: deps.source == nil,
		queue:    make(chan entity.GeofenceEvent, eventQueueSize),
		stop:     make(chan struct{}),
		loopDone: make(chan struct{}),
	}
}

// Start subscribes to event sources, initializes the geofencing SDK and reconciles
// the cached check-in. It must be called once before any other operation.
func (c *Coordinator) Start(ctx context.Context) entity.GeofencingState {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	return c.start(ctx)
}

func (c *Coordinator) start(ctx context.Context) entity.GeofencingState {
	c.update(func(s *entity.GeofencingState) {
		s.Phase = entity.PhaseInitializing
		s.Loading = true
	})

	if c.source != nil {
		c.unsubscribe = append(c.unsubscribe, c.source.OnGeofenceEvent(c.enqueue))
	}
	c.unsubscribe = append(c.unsubscribe, c.provider.OnProximityEvent(c.enqueue))
	go c.loop()

	c.initialize(ctx)
	c.reconcile(ctx)
	c.update(func(s *entity.GeofencingState) {
		s.Initialized = true
		s.Loading = false
	})

	return c.State()
}

func (c *Coordinator) initialize(ctx context.Context) {
	if !c.fallback && !c.initSource(ctx) {
		c.logger.Warn("Geofencing SDK initialization failed, using background fallback",
			slog.String("user_id", c.userID),
		)
		c.fallback = true
		c.update(func(s *entity.GeofencingState) { s.Error = errSourceInitFailed })
	}

	if c.fallback {
		tracking := c.provider.IsTracking(c.userID)
		if !tracking && c.autoStart && c.host.PermissionStatus(c.userID).AllowsBackground() {
			tracking = c.provider.StartBackgroundTracking(ctx, c.userID)
		}
		c.update(func(s *entity.GeofencingState) {
			s.Phase = entity.PhaseReadyUnavailable
			s.PermissionStatus = entity.PermissionUnavailable
			s.Tracking = tracking
		})

		return
	}

	c.source.SetUserID(ctx, c.userID)
	status := c.source.PermissionStatus(c.userID)

	phase := entity.PhaseReadyIdle
	errMsg := ""
	switch {
	case status == entity.PermissionDenied:
		phase = entity.PhaseReadyDenied
	case status.IsGranted() && c.autoStart:
		if c.source.StartTracking(ctx, c.userID) {
			phase = entity.PhaseReadyTracking
		} else {
			errMsg = errStartTrackingFailed
		}
	}

	c.update(func(s *entity.GeofencingState) {
		s.Phase = phase
		s.PermissionStatus = status
		s.Tracking = phase == entity.PhaseReadyTracking
		s.Error = errMsg
	})
}

// Stop unsubscribes from every event source and marks the coordinator as no longer live.
// It does not wait for an operation in progress.
func (c *Coordinator) Stop() {
	c.stopOnce.Do(func() {
		c.mu.Lock()
		c.live = false
		c.mu.Unlock()

		for _, unsubscribe := range c.unsubscribe {
			unsubscribe()
		}
		close(c.stop)
	})
}

// Done is closed once the event loop has exited after Stop.
func (c *Coordinator) Done() <-chan struct{} {
	return c.loopDone
}

// State returns a snapshot of the current state.
func (c *Coordinator) State() entity.GeofencingState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.Clone()
}

// Subscribe registers fn for every state change.
func (c *Coordinator) Subscribe(fn func(entity.GeofencingState)) (unsubscribe func()) {
	return c.states.Subscribe(fn)
}

func (c *Coordinator) RequestPermissions(ctx context.Context) bool {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.setLoading(true)
	defer c.setLoading(false)

	if c.fallback {
		status, err := c.host.RequestPermission(ctx, c.userID, true)
		if err != nil {
			c.logger.Warn("Location permission request failed",
				slog.String("user_id", c.userID),
				slog.Any("error", err),
			)

			return false
		}

		return status.IsGranted()
	}

	granted := c.source.RequestPermissions(ctx, c.userID)
	status := c.source.PermissionStatus(c.userID)
	if !granted {
		c.update(func(s *entity.GeofencingState) {
			s.Phase = entity.PhaseReadyDenied
			s.PermissionStatus = status
			s.Tracking = false
			s.Error = errPermissionDenied
		})

		return false
	}

	wasDenied := c.State().Phase == entity.PhaseReadyDenied
	c.update(func(s *entity.GeofencingState) {
		s.PermissionStatus = status
		s.Error = ""
		if wasDenied {
			s.Phase = entity.PhaseReadyIdle
		}
	})
	if wasDenied {
		return c.startTracking(ctx)
	}

	return true
}

func (c *Coordinator) EnableTracking(ctx context.Context) bool {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.setLoading(true)
	defer c.setLoading(false)

	if c.fallback {
		if !c.provider.StartBackgroundTracking(ctx, c.userID) {
			c.update(func(s *entity.GeofencingState) { s.Error = errStartTrackingFailed })

			return false
		}
		c.update(func(s *entity.GeofencingState) {
			s.Tracking = true
			s.Error = ""
		})

		return true
	}

	if !c.source.PermissionStatus(c.userID).IsGranted() {
		granted := c.source.RequestPermissions(ctx, c.userID)
		status := c.source.PermissionStatus(c.userID)
		if !granted {
			c.update(func(s *entity.GeofencingState) {
				s.Phase = entity.PhaseReadyDenied
				s.PermissionStatus = status
				s.Error = errPermissionDenied
			})

			return false
		}
		c.update(func(s *entity.GeofencingState) { s.PermissionStatus = status })
	}

	if !c.startTracking(ctx) {
		return false
	}
	c.reconcile(ctx)

	return true
}

func (c *Coordinator) startTracking(ctx context.Context) bool {
	if !c.source.StartTracking(ctx, c.userID) {
		c.update(func(s *entity.GeofencingState) { s.Error = errStartTrackingFailed })

		return false
	}
	c.update(func(s *entity.GeofencingState) {
		s.Phase = entity.PhaseReadyTracking
		s.Tracking = true
		s.Error = ""
	})

	return true
}

func (c *Coordinator) DisableTracking(ctx context.Context) bool {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.setLoading(true)
	defer c.setLoading(false)

	if c.fallback {
		c.provider.StopBackgroundTracking(ctx, c.userID)
		c.update(func(s *entity.GeofencingState) {
			s.Tracking = false
			s.Error = ""
		})
		c.reconcile(ctx)

		return true
	}

	if !c.source.StopTracking(ctx, c.userID) {
		c.update(func(s *entity.GeofencingState) { s.Error = errStopTrackingFailed })

		return false
	}
	c.update(func(s *entity.GeofencingState) {
		s.Phase = entity.PhaseReadyIdle
		s.Tracking = false
		s.Error = ""
	})

	return true
}

// ManualCheckIn writes a manual check-in for courtID. A cached check-in at another
// court is closed in the same transaction.
func (c *Coordinator) ManualCheckIn(ctx context.Context, courtID string) bool {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.setLoading(true)
	defer c.setLoading(false)

	var from string
	if active := c.State().ActiveCheckIn; active != nil {
		from = active.CourtID
	}

	result, err := c.presence.SwitchCourt(ctx, c.userID, from, courtID, entity.EntryMethodManual)
	if err != nil {
		c.logger.Warn("Manual check-in failed",
			slog.String("user_id", c.userID),
			slog.String("court_id", courtID),
			slog.Any("error", err),
		)
		c.update(func(s *entity.GeofencingState) { s.Error = errCheckInFailed })

		return false
	}

	c.update(func(s *entity.GeofencingState) {
		s.ActiveCheckIn = result.Record.ToCheckIn()
		s.Error = ""
	})

	return true
}

// ManualCheckOut closes the cached check-in. Without one, every open record of the user is closed.
func (c *Coordinator) ManualCheckOut(ctx context.Context) bool {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.setLoading(true)
	defer c.setLoading(false)

	var (
		closed bool
		err    error
	)
	if active := c.State().ActiveCheckIn; active != nil {
		var result *usecase.CheckOutResult
		result, err = c.presence.CheckOut(ctx, c.userID, active.CourtID)
		closed = err == nil && result.Closed
	} else {
		var count int64
		count, err = c.presence.CheckOutAll(ctx, c.userID)
		closed = count > 0
	}
	if err != nil {
		c.logger.Warn("Manual check-out failed",
			slog.String("user_id", c.userID),
			slog.Any("error", err),
		)
		c.update(func(s *entity.GeofencingState) { s.Error = errCheckOutFailed })

		return false
	}

	c.update(func(s *entity.GeofencingState) {
		s.ActiveCheckIn = nil
		s.Error = ""
	})

	return closed
}

// ForceLocationCheck takes a one-shot fix and evaluates it. Resulting events reach
// the coordinator through its subscriptions.
func (c *Coordinator) ForceLocationCheck(ctx context.Context) bool {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.setLoading(true)
	defer c.setLoading(false)

	fix := c.provider.GetCurrentLocation(ctx, c.userID)
	if fix == nil {
		c.update(func(s *entity.GeofencingState) { s.Error = errLocationUnavailable })

		return false
	}

	if c.fallback {
		c.provider.EvaluateFix(ctx, c.userID, *fix)

		return true
	}

	if _, ok := c.source.TrackOnce(ctx, c.userID, fix); !ok {
		c.update(func(s *entity.GeofencingState) { s.Error = errLocationCheckFailed })

		return false
	}

	return true
}

// Reconcile overwrites the cached check-in with the user's authoritative open record.
func (c *Coordinator) Reconcile(ctx context.Context) entity.GeofencingState {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.reconcile(ctx)

	return c.State()
}

func (c *Coordinator) reconcile(ctx context.Context) {
	active, err := c.presence.ActiveCheckIn(ctx, c.userID)
	if err != nil {
		c.logger.Warn("Reconciliation failed",
			slog.String("user_id", c.userID),
			slog.Any("error", err),
		)
		c.update(func(s *entity.GeofencingState) { s.Error = errReconcileFailed })

		return
	}

	c.update(func(s *entity.GeofencingState) {
		s.ActiveCheckIn = active
		if s.Error == errReconcileFailed {
			s.Error = ""
		}
	})
}

// HandleEvent applies one geofence event.
func (c *Coordinator) HandleEvent(ctx context.Context, ev entity.GeofenceEvent) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.handleEvent(ctx, ev)
}

func (c *Coordinator) handleEvent(ctx context.Context, ev entity.GeofenceEvent) {
	if ev.UserID != c.userID || !c.isLive() {
		return
	}
	if ev.Origin != entity.OriginProximity {
		metrics.GeofenceEvents.WithLabelValues(string(ev.Type), string(ev.Origin)).Inc()
	}

	c.update(func(s *entity.GeofencingState) {
		last := ev
		s.LastEvent = &last
	})

	switch {
	case ev.Type == entity.GeofenceEventDwell:
		c.logger.Debug("Dwell event observed",
			slog.String("user_id", c.userID),
			slog.String("court_id", ev.CourtID),
		)
	case ev.Origin == entity.OriginProximity:
		c.applyProximity(ctx, ev)
	case ev.Type == entity.GeofenceEventEntry:
		c.applyEntry(ctx, ev)
	case ev.Type == entity.GeofenceEventExit:
		c.applyExit(ctx, ev)
	}
}

// applyProximity mirrors a presence write the location provider has already made.
func (c *Coordinator) applyProximity(ctx context.Context, ev entity.GeofenceEvent) {
	kind := service.PresenceCheckedIn
	if ev.Type == entity.GeofenceEventExit {
		kind = service.PresenceCheckedOut
	}

	applied := c.update(func(s *entity.GeofencingState) {
		if kind == service.PresenceCheckedIn {
			s.ActiveCheckIn = &entity.CheckIn{CourtID: ev.CourtID, EnteredAt: ev.Timestamp}

			return
		}
		if s.ActiveCheckIn != nil && s.ActiveCheckIn.CourtID == ev.CourtID {
			s.ActiveCheckIn = nil
		}
	})
	if applied {
		c.confirm(ctx, kind, ev.CourtID, ev.CourtName, entity.EntryMethodBackground)
	}
}

func (c *Coordinator) applyEntry(ctx context.Context, ev entity.GeofenceEvent) {
	result, err := c.presence.CheckIn(ctx, c.userID, ev.CourtID, entity.EntryMethodRadar, ev.ExternalEventRef())
	if err != nil {
		c.logger.Warn("Check-in from geofence event failed",
			slog.String("user_id", c.userID),
			slog.String("court_id", ev.CourtID),
			slog.Any("error", err),
		)

		return
	}

	applied := c.update(func(s *entity.GeofencingState) {
		s.ActiveCheckIn = result.Record.ToCheckIn()
	})
	if applied && result.Created {
		c.confirm(ctx, service.PresenceCheckedIn, ev.CourtID, result.Court.Name, entity.EntryMethodRadar)
	}
}

func (c *Coordinator) applyExit(ctx context.Context, ev entity.GeofenceEvent) {
	result, err := c.presence.CheckOut(ctx, c.userID, ev.CourtID)
	if err != nil {
		c.logger.Warn("Check-out from geofence event failed",
			slog.String("user_id", c.userID),
			slog.String("court_id", ev.CourtID),
			slog.Any("error", err),
		)

		return
	}

	applied := c.update(func(s *entity.GeofencingState) {
		if s.ActiveCheckIn != nil && s.ActiveCheckIn.CourtID == ev.CourtID {
			s.ActiveCheckIn = nil
		}
	})
	if applied && result.Closed {
		c.confirm(ctx, service.PresenceCheckedOut, ev.CourtID, ev.CourtName, entity.EntryMethodRadar)
	}
}

// confirm publishes a presence event for the confirmation worker. Failures are logged.
func (c *Coordinator) confirm(ctx context.Context, kind service.PresenceEventKind, courtID, courtName string, method entity.EntryMethod) {
	presenceEvent := &service.PresenceEvent{
		EventID:    uuid.NewString(),
		Kind:       kind,
		UserID:     c.userID,
		CourtID:    courtID,
		CourtName:  courtName,
		Method:     method.String(),
		OccurredAt: time.Now().UTC(),
	}
	if err := c.publisher.PublishPresenceEvent(ctx, presenceEvent); err != nil {
		c.logger.Warn("Failed to publish presence event",
			slog.String("event_id", presenceEvent.EventID),
			slog.String("user_id", c.userID),
			slog.Any("error", err),
		)
	}
}

func (c *Coordinator) enqueue(ev entity.GeofenceEvent) {
	if ev.UserID != c.userID {
		return
	}
	select {
	case c.queue <- ev:
	default:
		c.logger.Warn("Geofence event queue full, dropping event",
			slog.String("user_id", c.userID),
			slog.String("type", string(ev.Type)),
			slog.String("court_id", ev.CourtID),
		)
	}
}

// loop applies queued events until Stop. Event writes are not tied to any request,
// so they run on a context detached from the caller.
func (c *Coordinator) loop() {
	defer close(c.loopDone)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for {
		select {
		case <-c.stop:
			return
		case ev := <-c.queue:
			c.HandleEvent(ctx, ev)
		}
	}
}

// update applies fn to the state and publishes the result. It reports false
// without touching the state once the coordinator is stopped.
func (c *Coordinator) update(fn func(*entity.GeofencingState)) bool {
	c.mu.Lock()
	if !c.live {
		c.mu.Unlock()

		return false
	}
	fn(&c.state)
	snapshot := c.state.Clone()
	c.mu.Unlock()

	c.states.Emit(snapshot)
	c.host.PushState(c.userID, snapshot)

	return true
}

func (c *Coordinator) setLoading(loading bool) {
	c.update(func(s *entity.GeofencingState) { s.Loading = loading })
}

func (c *Coordinator) isLive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.live
}
