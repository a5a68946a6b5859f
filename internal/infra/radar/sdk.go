package radar

import (
	"context"
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // Radar signs webhooks with HMAC-SHA1.
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"courtcrowd/config"
	"courtcrowd/internal/domain/entity"
	"courtcrowd/internal/domain/service"
	"courtcrowd/internal/errors"
	"courtcrowd/internal/event"
	"courtcrowd/internal/infra/metrics"
)

const recentEventCapacity = 1024

var (
	// ErrUnavailable is returned by webhook handling when Radar is not configured.
	ErrUnavailable = errors.New("radar is not available")
	// ErrInvalidPayload is returned for webhook bodies that are not Radar events.
	ErrInvalidPayload = errors.New("invalid radar webhook payload")
)

type tracker interface {
	Track(ctx context.Context, apiKey string, req *TrackRequest) (*TrackResponse, error)
}

// Webhooks receives Radar webhook deliveries.
type Webhooks interface {
	VerifySignature(signingToken, signature string) bool
	// HandleWebhook emits the events in payload and returns how many were emitted.
	HandleWebhook(ctx context.Context, payload []byte) (int, error)
}

// SDK is the Radar geofence event source. One instance serves every user of the process.
type SDK struct {
	client        tracker
	webhookSecret string
	host          service.DeviceHost
	logger        *slog.Logger

	apiKey      atomic.Pointer[string]
	initialized atomic.Bool

	mu       sync.RWMutex
	users    map[string]struct{}
	tracking map[string]struct{}

	events event.Emitter[entity.GeofenceEvent]
	recent *recentIDs
}

var (
	_ service.GeofenceSource = (*SDK)(nil)
	_ Webhooks               = (*SDK)(nil)
)

// Probe resolves the Radar capability once at startup.
func Probe(cfg *config.Config, host service.DeviceHost, logger *slog.Logger) service.GeofenceCapability {
	switch {
	case cfg.Radar == nil || !cfg.Radar.Enabled:
		logger.Info("Radar disabled, geofencing falls back to background proximity")

		return service.Unavailable("radar disabled")
	case cfg.Radar.APIKey == "":
		logger.Warn("Radar enabled without an API key, geofencing falls back to background proximity")

		return service.Unavailable("radar api key missing")
	}

	client := NewClient(cfg.Radar.BaseURL, cfg.Radar.Timeout)

	return service.Available(NewSDK(client, cfg.Radar.WebhookSecret, host, logger))
}

// NewSDK creates an uninitialized SDK.
func NewSDK(client tracker, webhookSecret string, host service.DeviceHost, logger *slog.Logger) *SDK {
	return &SDK{
		client:        client,
		webhookSecret: webhookSecret,
		host:          host,
		logger:        logger.With(slog.String("component", "radar")),
		users:         make(map[string]struct{}),
		tracking:      make(map[string]struct{}),
		recent:        newRecentIDs(recentEventCapacity),
	}
}

// WebhooksFor returns the webhook receiver of an available capability, or one that rejects every delivery.
func WebhooksFor(capability service.GeofenceCapability) Webhooks {
	if source, ok := capability.Source(); ok {
		if sdk, ok := source.(*SDK); ok {
			return sdk
		}
	}

	return disabledWebhooks{}
}

func (s *SDK) IsAvailable() bool {
	return true
}

func (s *SDK) Initialize(_ context.Context, apiKey string) bool {
	if apiKey == "" {
		s.logger.Warn("Radar initialization skipped: missing API key")

		return false
	}
	s.apiKey.Store(&apiKey)
	s.initialized.Store(true)

	return true
}

func (s *SDK) RequestPermissions(ctx context.Context, userID string) bool {
	if !s.initialized.Load() {
		return false
	}

	status, err := s.host.RequestPermission(ctx, userID, true)
	if err != nil {
		s.logger.Warn("Permission request failed",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)

		return false
	}

	return status.IsGranted()
}

func (s *SDK) PermissionStatus(userID string) entity.PermissionStatus {
	if !s.initialized.Load() {
		return entity.PermissionUnknown
	}

	return s.host.PermissionStatus(userID)
}

func (s *SDK) SetUserID(_ context.Context, userID string) bool {
	if !s.initialized.Load() || userID == "" {
		return false
	}

	s.mu.Lock()
	s.users[userID] = struct{}{}
	s.mu.Unlock()

	return true
}

func (s *SDK) StartTracking(_ context.Context, userID string) bool {
	if !s.initialized.Load() {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return false
	}
	s.tracking[userID] = struct{}{}

	return true
}

func (s *SDK) StopTracking(_ context.Context, userID string) bool {
	if !s.initialized.Load() {
		return false
	}

	s.mu.Lock()
	delete(s.tracking, userID)
	s.mu.Unlock()

	return true
}

func (s *SDK) isTracking(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.tracking[userID]

	return ok
}

// TrackOnce submits fix on behalf of the user. The returned events are also emitted to subscribers.
func (s *SDK) TrackOnce(ctx context.Context, userID string, fix *entity.LocationFix) ([]entity.GeofenceEvent, bool) {
	if !s.initialized.Load() || fix == nil {
		return nil, false
	}

	resp, err := s.client.Track(ctx, *s.apiKey.Load(), &TrackRequest{
		DeviceID:   userID,
		UserID:     userID,
		Latitude:   fix.Latitude,
		Longitude:  fix.Longitude,
		Accuracy:   fix.Accuracy,
		Foreground: true,
		UpdatedAt:  fix.Timestamp,
	})
	if err != nil {
		metrics.RadarRequests.WithLabelValues("track", metrics.OutcomeFailed).Inc()
		s.logger.Warn("Radar track failed",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)

		return nil, false
	}
	metrics.RadarRequests.WithLabelValues("track", metrics.OutcomeOK).Inc()

	var out []entity.GeofenceEvent
	for i := range resp.Events {
		normalized, ok := Normalize(&resp.Events[i], userID)
		if !ok || !s.recent.add(normalized.ExternalEventID) {
			continue
		}
		out = append(out, normalized)
		s.events.Emit(normalized)
	}

	return out, true
}

func (s *SDK) OnGeofenceEvent(fn func(entity.GeofenceEvent)) (unsubscribe func()) {
	return s.events.Subscribe(fn)
}

// VerifySignature checks X-Radar-Signature, the hex HMAC-SHA1 of X-Radar-Signing-Token.
func (s *SDK) VerifySignature(signingToken, signature string) bool {
	if s.webhookSecret == "" || signingToken == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha1.New, []byte(s.webhookSecret))
	mac.Write([]byte(signingToken))
	expected := mac.Sum(nil)

	got, err := hex.DecodeString(strings.TrimPrefix(signature, "v1="))
	if err != nil {
		return false
	}

	return hmac.Equal(expected, got)
}

type webhookPayload struct {
	Event  *Event  `json:"event"`
	Events []Event `json:"events"`
}

// HandleWebhook emits the webhook's events for users whose tracking is started.
func (s *SDK) HandleWebhook(_ context.Context, payload []byte) (int, error) {
	var body webhookPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return 0, errors.Wrap(ErrInvalidPayload, err.Error())
	}

	events := body.Events
	if body.Event != nil {
		events = append(events, *body.Event)
	}

	emitted := 0
	for i := range events {
		result := s.deliver(&events[i])
		metrics.WebhookDeliveries.WithLabelValues(events[i].Type, result).Inc()
		if result == metrics.OutcomeOK {
			emitted++
		}
	}

	return emitted, nil
}

func (s *SDK) deliver(ev *Event) string {
	normalized, ok := Normalize(ev, "")
	if !ok {
		return "ignored"
	}
	if !s.isTracking(normalized.UserID) {
		return "untracked"
	}
	if !s.recent.add(normalized.ExternalEventID) {
		return "duplicate"
	}
	s.events.Emit(normalized)

	return metrics.OutcomeOK
}

type disabledWebhooks struct{}

func (disabledWebhooks) VerifySignature(string, string) bool {
	return false
}

func (disabledWebhooks) HandleWebhook(context.Context, []byte) (int, error) {
	return 0, ErrUnavailable
}

// recentIDs is a bounded set of recently seen event ids.
type recentIDs struct {
	mu    sync.Mutex
	ids   map[string]struct{}
	order []string
	next  int
}

func newRecentIDs(capacity int) *recentIDs {
	return &recentIDs{
		ids:   make(map[string]struct{}, capacity),
		order: make([]string, capacity),
	}
}

// add returns false when id was seen recently. Empty ids are always accepted.
func (r *recentIDs) add(id string) bool {
	if id == "" {
		return true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[id]; ok {
		return false
	}
	if evicted := r.order[r.next]; evicted != "" {
		delete(r.ids, evicted)
	}
	r.order[r.next] = id
	r.ids[id] = struct{}{}
	r.next = (r.next + 1) % len(r.order)

	return true
}
