package impl

import (
	"context"
	"log/slog"
	"sync"

	"courtcrowd/config"
	"courtcrowd/internal/domain/entity"
	domainerrors "courtcrowd/internal/domain/errors"
	"courtcrowd/internal/domain/service"
	"courtcrowd/internal/infra/metrics"
	"courtcrowd/internal/usecase"

	"go.uber.org/fx"
)

type geofencingManager struct {
	deps   coordinatorDeps
	logger *slog.Logger

	initOnce sync.Once
	initOK   bool

	mu       sync.Mutex
	sessions map[string]*Coordinator
}

// GeofencingManagerParams holds dependencies for GeofencingManager, injected by Fx.
type GeofencingManagerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Config     *config.Config
	Capability service.GeofenceCapability
	Provider   usecase.LocationProvider
	Presence   usecase.PresenceUsecase
	Publisher  service.EventPublisher
	Host       service.DeviceHost
	Logger     *slog.Logger
}

// NewGeofencingManager is the constructor for the per-user coordinator registry.
func NewGeofencingManager(params GeofencingManagerParams) usecase.GeofencingUsecase {
	var apiKey string
	if params.Config.Radar != nil {
		apiKey = params.Config.Radar.APIKey
	}

	source, ok := params.Capability.Source()
	if !ok {
		params.Logger.Info("Geofencing SDK unavailable, using background fallback",
			slog.String("reason", params.Capability.Reason()),
		)
	}

	m := newGeofencingManager(coordinatorDeps{
		source:    source,
		provider:  params.Provider,
		presence:  params.Presence,
		publisher: params.Publisher,
		host:      params.Host,
		autoStart: params.Config.Geofencing.AutoStart,
		logger:    params.Logger,
	}, apiKey)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			m.stopAll()

			return nil
		},
	})

	return m
}

func newGeofencingManager(deps coordinatorDeps, apiKey string) *geofencingManager {
	m := &geofencingManager{
		deps:     deps,
		logger:   deps.logger,
		sessions: make(map[string]*Coordinator),
	}
	m.deps.initSource = func(ctx context.Context) bool {
		m.initOnce.Do(func() {
			m.initOK = deps.source.Initialize(ctx, apiKey)
		})

		return m.initOK
	}

	return m
}

func (m *geofencingManager) Start(ctx context.Context, userID string) (entity.GeofencingState, error) {
	if userID == "" {
		return entity.GeofencingState{}, domainerrors.ErrValidationFailed.WrapMessage("user id is required")
	}

	m.mu.Lock()
	coordinator, ok := m.sessions[userID]
	if ok {
		m.mu.Unlock()

		return coordinator.Reconcile(ctx), nil
	}

	// Held until initialization ends so no operation overtakes it.
	coordinator = newCoordinator(m.deps, userID)
	coordinator.opMu.Lock()
	defer coordinator.opMu.Unlock()
	m.sessions[userID] = coordinator
	metrics.ActiveSessions.Set(float64(len(m.sessions)))
	m.mu.Unlock()

	m.logger.Info("Geofencing session started", slog.String("user_id", userID))

	return coordinator.start(ctx), nil
}

func (m *geofencingManager) Stop(_ context.Context, userID string) error {
	m.mu.Lock()
	coordinator, ok := m.sessions[userID]
	delete(m.sessions, userID)
	metrics.ActiveSessions.Set(float64(len(m.sessions)))
	m.mu.Unlock()

	if !ok {
		return domainerrors.ErrSessionNotFound
	}
	coordinator.Stop()
	m.logger.Info("Geofencing session stopped", slog.String("user_id", userID))

	return nil
}

func (m *geofencingManager) State(userID string) (entity.GeofencingState, error) {
	coordinator, err := m.session(userID)
	if err != nil {
		return entity.GeofencingState{}, err
	}

	return coordinator.State(), nil
}

func (m *geofencingManager) RequestPermissions(ctx context.Context, userID string) (bool, error) {
	coordinator, err := m.session(userID)
	if err != nil {
		return false, err
	}

	return coordinator.RequestPermissions(ctx), nil
}

func (m *geofencingManager) EnableTracking(ctx context.Context, userID string) (bool, error) {
	coordinator, err := m.session(userID)
	if err != nil {
		return false, err
	}

	return coordinator.EnableTracking(ctx), nil
}

func (m *geofencingManager) DisableTracking(ctx context.Context, userID string) (bool, error) {
	coordinator, err := m.session(userID)
	if err != nil {
		return false, err
	}

	return coordinator.DisableTracking(ctx), nil
}

func (m *geofencingManager) ManualCheckIn(ctx context.Context, userID, courtID string) (bool, error) {
	coordinator, err := m.session(userID)
	if err != nil {
		return false, err
	}

	return coordinator.ManualCheckIn(ctx, courtID), nil
}

func (m *geofencingManager) ManualCheckOut(ctx context.Context, userID string) (bool, error) {
	coordinator, err := m.session(userID)
	if err != nil {
		return false, err
	}

	return coordinator.ManualCheckOut(ctx), nil
}

func (m *geofencingManager) ForceLocationCheck(ctx context.Context, userID string) (bool, error) {
	coordinator, err := m.session(userID)
	if err != nil {
		return false, err
	}

	return coordinator.ForceLocationCheck(ctx), nil
}

func (m *geofencingManager) Reconcile(ctx context.Context, userID string) (entity.GeofencingState, error) {
	coordinator, err := m.session(userID)
	if err != nil {
		return entity.GeofencingState{}, err
	}

	return coordinator.Reconcile(ctx), nil
}

func (m *geofencingManager) Subscribe(userID string, fn func(entity.GeofencingState)) (func(), error) {
	coordinator, err := m.session(userID)
	if err != nil {
		return nil, err
	}

	return coordinator.Subscribe(fn), nil
}

func (m *geofencingManager) session(userID string) (*Coordinator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	coordinator, ok := m.sessions[userID]
	if !ok {
		return nil, domainerrors.ErrSessionNotFound
	}

	return coordinator, nil
}

func (m *geofencingManager) stopAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Coordinator)
	metrics.ActiveSessions.Set(0)
	m.mu.Unlock()

	for _, coordinator := range sessions {
		coordinator.Stop()
	}
}
