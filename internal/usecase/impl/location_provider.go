package impl

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"sync"
	"time"

	"courtcrowd/config"
	"courtcrowd/internal/domain/entity"
	"courtcrowd/internal/domain/repository"
	"courtcrowd/internal/domain/service"
	"courtcrowd/internal/errors"
	"courtcrowd/internal/event"
	"courtcrowd/internal/geo"
	"courtcrowd/internal/infra/metrics"
	"courtcrowd/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Fix ingestion results.
const (
	fixAccepted    = "accepted"
	fixFiltered    = "filtered"
	fixInvalid     = "invalid"
	fixRateLimited = "rate_limited"
	fixUntracked   = "untracked"
)

type trackedUser struct {
	limiter *rate.Limiter
	last    *entity.LocationFix
	pending *entity.LocationFix
}

type locationProvider struct {
	host     service.DeviceHost
	presence usecase.PresenceUsecase
	courts   repository.CourtRepository
	index    geo.CourtIndex
	cfg      *config.GeofencingConfig
	logger   *slog.Logger

	mu      sync.Mutex
	tracked map[string]*trackedUser

	events event.Emitter[entity.GeofenceEvent]
}

// LocationProviderParams holds dependencies for LocationProvider, injected by Fx.
type LocationProviderParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Host      service.DeviceHost
	Presence  usecase.PresenceUsecase
	CourtRepo repository.CourtRepository
	Index     geo.CourtIndex
	Logger    *slog.Logger
}

// NewLocationProvider creates the location provider and runs its background loop for the app lifetime.
func NewLocationProvider(params LocationProviderParams) usecase.LocationProvider {
	provider := newLocationProvider(params.Config.Geofencing, params.Host, params.Presence, params.CourtRepo, params.Index, params.Logger)

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				provider.Run(runCtx)
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return errors.Wrap(stopCtx.Err(), "location provider did not stop")
			}
		},
	})

	return provider
}

func newLocationProvider(
	cfg *config.GeofencingConfig,
	host service.DeviceHost,
	presence usecase.PresenceUsecase,
	courts repository.CourtRepository,
	index geo.CourtIndex,
	logger *slog.Logger,
) *locationProvider {
	return &locationProvider{
		host:     host,
		presence: presence,
		courts:   courts,
		index:    index,
		cfg:      cfg,
		logger:   logger.With(slog.String("component", "location_provider")),
		tracked:  make(map[string]*trackedUser),
	}
}

func (p *locationProvider) GetCurrentLocation(ctx context.Context, userID string) *entity.LocationFix {
	status := p.host.PermissionStatus(userID)
	if !status.IsGranted() {
		var err error
		status, err = p.host.RequestPermission(ctx, userID, false)
		if err != nil {
			p.logger.Warn("Foreground permission request failed",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)

			return nil
		}
		if !status.IsGranted() {
			return nil
		}
	}

	fix, err := p.host.CurrentFix(ctx, userID)
	if err != nil {
		p.logger.Warn("Failed to get current location",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)

		return nil
	}

	return fix
}

func (p *locationProvider) StartBackgroundTracking(ctx context.Context, userID string) bool {
	if p.IsTracking(userID) {
		return true
	}

	status := p.host.PermissionStatus(userID)
	if !status.AllowsBackground() {
		var err error
		status, err = p.host.RequestPermission(ctx, userID, true)
		if err != nil {
			p.logger.Warn("Background permission request failed",
				slog.String("user_id", userID),
				slog.Any("error", err),
			)

			return false
		}
		if !status.AllowsBackground() {
			p.logger.Info("Background location not granted",
				slog.String("user_id", userID),
				slog.String("status", string(status)),
			)

			return false
		}
	}

	if err := p.host.StartBackgroundUpdates(ctx, userID, p.cfg.MinDistanceMeters, p.cfg.BatchInterval); err != nil {
		p.logger.Warn("Failed to register background location task",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)

		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.tracked[userID]; !ok {
		p.tracked[userID] = &trackedUser{
			limiter: rate.NewLimiter(rate.Limit(p.cfg.FixRateLimit), p.cfg.FixBurst),
		}
		metrics.TrackedUsers.Inc()
	}

	return true
}

func (p *locationProvider) StopBackgroundTracking(ctx context.Context, userID string) bool {
	p.mu.Lock()
	if _, ok := p.tracked[userID]; ok {
		delete(p.tracked, userID)
		metrics.TrackedUsers.Dec()
	}
	p.mu.Unlock()

	if err := p.host.StopBackgroundUpdates(ctx, userID); err != nil {
		p.logger.Debug("Failed to unregister background location task",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}

	closed, err := p.presence.CheckOutAll(ctx, userID)
	if err != nil {
		p.logger.Warn("Failed to close open presence after stopping tracking",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	} else if closed > 0 {
		p.logger.Info("Closed open presence after stopping tracking",
			slog.String("user_id", userID),
			slog.Int64("closed", closed),
		)
	}

	return true
}

func (p *locationProvider) IsTracking(userID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, ok := p.tracked[userID]

	return ok
}

func (p *locationProvider) IngestFixes(_ context.Context, userID string, fixes []entity.LocationFix) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	user, ok := p.tracked[userID]
	if !ok {
		metrics.FixesIngested.WithLabelValues(fixUntracked).Add(float64(len(fixes)))

		return 0
	}
	if !user.limiter.Allow() {
		metrics.FixesIngested.WithLabelValues(fixRateLimited).Add(float64(len(fixes)))

		return 0
	}

	ordered := make([]entity.LocationFix, len(fixes))
	copy(ordered, fixes)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Timestamp.Before(ordered[j].Timestamp) })

	accepted := 0
	for i := range ordered {
		fix := ordered[i]
		if !validFix(fix) {
			metrics.FixesIngested.WithLabelValues(fixInvalid).Inc()

			continue
		}
		if user.last != nil && geo.DistanceMeters(user.last.Latitude, user.last.Longitude, fix.Latitude, fix.Longitude) < p.cfg.MinDistanceMeters {
			metrics.FixesIngested.WithLabelValues(fixFiltered).Inc()

			continue
		}
		user.last = &fix
		user.pending = &fix
		accepted++
		metrics.FixesIngested.WithLabelValues(fixAccepted).Inc()
	}

	return accepted
}

func (p *locationProvider) EvaluateFix(ctx context.Context, userID string, fix entity.LocationFix) []entity.GeofenceEvent {
	events, _ := p.evaluate(ctx, userID, fix)

	return events
}

func (p *locationProvider) OnProximityEvent(fn func(entity.GeofenceEvent)) (unsubscribe func()) {
	return p.events.Subscribe(fn)
}

func (p *locationProvider) RefreshCourts(ctx context.Context) error {
	courts, err := p.courts.ListCourts(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list courts")
	}
	if err := p.index.Rebuild(ctx, courts); err != nil {
		return errors.Wrap(err, "failed to rebuild court index")
	}
	metrics.IndexedCourts.Set(float64(p.index.Size()))

	return nil
}

func (p *locationProvider) Run(ctx context.Context) {
	if err := p.RefreshCourts(ctx); err != nil {
		p.logger.Error("Initial court index build failed", slog.Any("error", err))
	}

	batch := time.NewTicker(p.cfg.BatchInterval)
	defer batch.Stop()
	refresh := time.NewTicker(p.cfg.CourtRefreshInterval)
	defer refresh.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-batch.C:
			p.flush(ctx)
		case <-refresh.C:
			if err := p.RefreshCourts(ctx); err != nil {
				p.logger.Error("Court index refresh failed", slog.Any("error", err))
			}
		}
	}
}

// flush evaluates the latest pending fix of every tracked user.
func (p *locationProvider) flush(ctx context.Context) {
	p.mu.Lock()
	pending := make(map[string]entity.LocationFix)
	for userID, user := range p.tracked {
		if user.pending != nil {
			pending[userID] = *user.pending
			user.pending = nil
		}
	}
	p.mu.Unlock()

	if len(pending) == 0 {
		return
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.EvaluationWorkers)
	for userID, fix := range pending {
		g.Go(func() error {
			if _, ok := p.evaluate(gctx, userID, fix); !ok {
				p.requeue(userID, fix)
			}

			return nil
		})
	}
	_ = g.Wait()
	metrics.EvaluationDuration.Observe(time.Since(start).Seconds())
}

// requeue keeps a fix whose evaluation failed so the next batch retries it.
func (p *locationProvider) requeue(userID string, fix entity.LocationFix) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if user, ok := p.tracked[userID]; ok && user.pending == nil {
		user.pending = &fix
	}
}

// evaluate opens records for courts within the fallback radius and closes open
// records outside it. ok is false when any lookup or write failed.
func (p *locationProvider) evaluate(ctx context.Context, userID string, fix entity.LocationFix) (events []entity.GeofenceEvent, ok bool) {
	nearby, err := p.index.Within(ctx, fix.Latitude, fix.Longitude, p.cfg.FallbackRadiusMeters)
	if err != nil {
		p.logger.Warn("Court proximity lookup failed", slog.String("user_id", userID), slog.Any("error", err))

		return nil, false
	}
	open, err := p.presence.OpenRecords(ctx, userID)
	if err != nil {
		p.logger.Warn("Open presence lookup failed", slog.String("user_id", userID), slog.Any("error", err))

		return nil, false
	}

	openCourts := make(map[string]struct{}, len(open))
	for _, record := range open {
		openCourts[record.CourtID] = struct{}{}
	}

	ok = true
	inside := make(map[string]struct{}, len(nearby))
	for _, match := range nearby {
		courtID := match.Court.ID
		inside[courtID] = struct{}{}
		if _, isOpen := openCourts[courtID]; isOpen {
			continue
		}

		result, err := p.presence.CheckIn(ctx, userID, courtID, entity.EntryMethodBackground, nil)
		if err != nil {
			ok = false
			p.logger.Warn("Background check-in failed",
				slog.String("user_id", userID),
				slog.String("court_id", courtID),
				slog.Any("error", err),
			)

			continue
		}
		if result.Created {
			events = append(events, proximityEvent(entity.GeofenceEventEntry, userID, match.Court, fix.Timestamp))
		}
	}

	for _, record := range open {
		if _, in := inside[record.CourtID]; in {
			continue
		}

		result, err := p.presence.CheckOut(ctx, userID, record.CourtID)
		if err != nil {
			ok = false
			p.logger.Warn("Background check-out failed",
				slog.String("user_id", userID),
				slog.String("court_id", record.CourtID),
				slog.Any("error", err),
			)

			continue
		}
		if result.Closed {
			events = append(events, proximityEvent(entity.GeofenceEventExit, userID, &entity.Court{ID: record.CourtID}, fix.Timestamp))
		}
	}

	for _, ev := range events {
		metrics.GeofenceEvents.WithLabelValues(string(ev.Type), string(ev.Origin)).Inc()
		p.events.Emit(ev)
	}

	return events, ok
}

func proximityEvent(eventType entity.GeofenceEventType, userID string, court *entity.Court, at time.Time) entity.GeofenceEvent {
	if at.IsZero() {
		at = time.Now().UTC()
	}

	return entity.GeofenceEvent{
		Type:      eventType,
		Origin:    entity.OriginProximity,
		UserID:    userID,
		CourtID:   court.ID,
		CourtName: court.Name,
		Timestamp: at,
	}
}

func validFix(fix entity.LocationFix) bool {
	return !math.IsNaN(fix.Latitude) && !math.IsNaN(fix.Longitude) &&
		fix.Latitude >= -90 && fix.Latitude <= 90 &&
		fix.Longitude >= -180 && fix.Longitude <= 180
}
