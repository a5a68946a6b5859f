// Package device bridges the server to the OS location services of connected mobile clients.
package device

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"courtcrowd/config"
	"courtcrowd/internal/domain/entity"
	"courtcrowd/internal/domain/service"
	"courtcrowd/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrNoDevice is returned when the user has no connected device.
	ErrNoDevice = errors.New("no device connected")
	// ErrNoFix is returned when the device answered a location request without a fix.
	ErrNoFix = errors.New("device returned no location fix")
)

// Conn is the write side of a device connection. *websocket.Conn satisfies it.
type Conn interface {
	WriteJSON(v any) error
	Close() error
}

// Session is one connected device. Writes are serialized.
type Session struct {
	userID string
	conn   Conn
	mu     sync.Mutex
}

// UserID returns the owner of the session.
func (s *Session) UserID() string {
	return s.userID
}

// Send writes msg to the device.
func (s *Session) Send(msg *Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return errors.Wrap(s.conn.WriteJSON(msg), "failed to write device message")
}

type pendingRequest struct {
	userID string
	reply  chan *Message
}

// Hub keeps device sessions per user and correlates requests with replies.
type Hub struct {
	timeout time.Duration
	logger  *slog.Logger

	mu       sync.RWMutex
	sessions map[string]map[*Session]struct{}
	statuses map[string]entity.PermissionStatus

	pendingMu sync.Mutex
	pending   map[string]pendingRequest
}

var _ service.DeviceHost = (*Hub)(nil)

// NewHub creates an empty hub. Requests wait at most cfg.Geofencing.DeviceTimeout for a reply.
func NewHub(cfg *config.Config, logger *slog.Logger) *Hub {
	return &Hub{
		timeout:  cfg.Geofencing.DeviceTimeout,
		logger:   logger.With(slog.String("component", "device_hub")),
		sessions: make(map[string]map[*Session]struct{}),
		statuses: make(map[string]entity.PermissionStatus),
		pending:  make(map[string]pendingRequest),
	}
}

// Register adds a connection for userID and returns its session.
func (h *Hub) Register(userID string, conn Conn) *Session {
	session := &Session{userID: userID, conn: conn}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sessions[userID] == nil {
		h.sessions[userID] = make(map[*Session]struct{})
	}
	h.sessions[userID][session] = struct{}{}

	return session
}

// Unregister removes the session and closes its connection.
func (h *Hub) Unregister(session *Session) {
	h.mu.Lock()
	if sessions, ok := h.sessions[session.userID]; ok {
		delete(sessions, session)
		if len(sessions) == 0 {
			delete(h.sessions, session.userID)
		}
	}
	h.mu.Unlock()

	if err := session.conn.Close(); err != nil {
		h.logger.Debug("Failed to close device connection",
			slog.String("user_id", session.userID),
			slog.Any("error", err),
		)
	}
}

// Connected reports whether the user has at least one connected device.
func (h *Hub) Connected(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.sessions[userID]) > 0
}

// SetPermissionStatus records a status the device reported on its own.
func (h *Hub) SetPermissionStatus(userID string, status entity.PermissionStatus) {
	if !status.IsValid() {
		return
	}

	h.mu.Lock()
	h.statuses[userID] = status
	h.mu.Unlock()
}

// Resolve delivers a device reply to the request waiting on msg.RequestID.
// It returns false when no request of this user is waiting.
func (h *Hub) Resolve(userID string, msg *Message) bool {
	h.pendingMu.Lock()
	req, ok := h.pending[msg.RequestID]
	if ok && req.userID == userID {
		delete(h.pending, msg.RequestID)
	}
	h.pendingMu.Unlock()

	if !ok || req.userID != userID {
		return false
	}

	// reply is buffered and has a single sender
	req.reply <- msg

	return true
}

func (h *Hub) PermissionStatus(userID string) entity.PermissionStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if status, ok := h.statuses[userID]; ok {
		return status
	}

	return entity.PermissionUnknown
}

func (h *Hub) RequestPermission(ctx context.Context, userID string, background bool) (entity.PermissionStatus, error) {
	reply, err := h.request(ctx, userID, &Message{Type: MessagePermissionRequest, Background: background})
	if err != nil {
		return entity.PermissionUnknown, err
	}

	status := reply.Status
	if !status.IsValid() {
		status = entity.PermissionUnknown
	}
	h.SetPermissionStatus(userID, status)

	return status, nil
}

func (h *Hub) CurrentFix(ctx context.Context, userID string) (*entity.LocationFix, error) {
	reply, err := h.request(ctx, userID, &Message{Type: MessageLocationRequest})
	if err != nil {
		return nil, err
	}
	if reply.Fix == nil {
		return nil, ErrNoFix
	}

	return reply.Fix, nil
}

func (h *Hub) StartBackgroundUpdates(_ context.Context, userID string, minDistanceMeters float64, interval time.Duration) error {
	return h.broadcast(userID, &Message{
		Type:              MessageTrackingStart,
		MinDistanceMeters: minDistanceMeters,
		IntervalSeconds:   int(interval / time.Second),
	})
}

func (h *Hub) StopBackgroundUpdates(_ context.Context, userID string) error {
	return h.broadcast(userID, &Message{Type: MessageTrackingStop})
}

func (h *Hub) PushState(userID string, state entity.GeofencingState) {
	snapshot := state.Clone()
	if err := h.broadcast(userID, &Message{Type: MessageState, State: &snapshot}); err != nil && !errors.Is(err, ErrNoDevice) {
		h.logger.Warn("Failed to push state",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}
}

func (h *Hub) snapshot(userID string) []*Session {
	h.mu.RLock()
	defer h.mu.RUnlock()

	sessions := make([]*Session, 0, len(h.sessions[userID]))
	for session := range h.sessions[userID] {
		sessions = append(sessions, session)
	}

	return sessions
}

// broadcast sends msg to every device of the user and succeeds when at least one write did.
func (h *Hub) broadcast(userID string, msg *Message) error {
	sessions := h.snapshot(userID)
	if len(sessions) == 0 {
		return ErrNoDevice
	}

	var errs []error
	for _, session := range sessions {
		if err := session.Send(msg); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == len(sessions) {
		return errors.Join(errs...)
	}

	return nil
}

// request broadcasts msg and waits for the first reply from any of the user's devices.
func (h *Hub) request(ctx context.Context, userID string, msg *Message) (*Message, error) {
	msg.RequestID = uuid.NewString()
	reply := make(chan *Message, 1)

	h.pendingMu.Lock()
	h.pending[msg.RequestID] = pendingRequest{userID: userID, reply: reply}
	h.pendingMu.Unlock()

	defer func() {
		h.pendingMu.Lock()
		delete(h.pending, msg.RequestID)
		h.pendingMu.Unlock()
	}()

	if err := h.broadcast(userID, msg); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	select {
	case resp := <-reply:
		if resp.Error != "" {
			return nil, errors.Errorf("device rejected %s: %s", msg.Type, resp.Error)
		}

		return resp, nil
	case <-ctx.Done():
		return nil, errors.Wrapf(ctx.Err(), "no reply to %s", msg.Type)
	}
}
