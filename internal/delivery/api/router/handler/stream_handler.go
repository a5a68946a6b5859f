package handler

import (
	"context"
	"log/slog"
	"time"

	"courtcrowd/internal/delivery/api/middleware"
	"courtcrowd/internal/delivery/api/response"
	"courtcrowd/internal/domain/entity"
	"courtcrowd/internal/infra/device"
	"courtcrowd/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	maxFrameBytes = 64 << 10

	// A device that misses pongs for pongWait is considered gone.
	pongWait     = 60 * time.Second
	pingInterval = pongWait * 9 / 10
	pingTimeout  = 5 * time.Second
)

// deviceBridge is the part of the device hub driven by the websocket read loop.
type deviceBridge interface {
	Register(userID string, conn device.Conn) *device.Session
	Unregister(session *device.Session)
	Resolve(userID string, msg *device.Message) bool
	SetPermissionStatus(userID string, status entity.PermissionStatus)
}

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In

	Hub          *device.Hub
	GeofencingUC usecase.GeofencingUsecase
	Provider     usecase.LocationProvider
	Logger       *slog.Logger
}

// StreamHandler upgrades the device connection used for state snapshots and OS location requests.
type StreamHandler struct {
	bridge       deviceBridge
	geofencingUC usecase.GeofencingUsecase
	provider     usecase.LocationProvider
	upgrader     websocket.Upgrader
	logger       *slog.Logger
}

// NewStreamHandler is the constructor for StreamHandler.
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	return &StreamHandler{
		bridge:       params.Hub,
		geofencingUC: params.GeofencingUC,
		provider:     params.Provider,
		upgrader:     websocket.Upgrader{},
		logger:       params.Logger.With(slog.String("component", "device_stream")),
	}
}

// Stream serves the device websocket until the client disconnects.
func (h *StreamHandler) Stream(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already replied to the client.
		h.logger.Debug("Websocket upgrade failed", slog.Any("error", err))

		return nil
	}
	conn.SetReadLimit(maxFrameBytes)
	// The HTTP server's write timeout would otherwise cut long-lived streams.
	_ = conn.NetConn().SetWriteDeadline(time.Time{})
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	session := h.bridge.Register(userID, conn)
	defer h.bridge.Unregister(session)

	stopPing := make(chan struct{})
	defer close(stopPing)
	go keepAlive(conn, stopPing)

	if state, err := h.geofencingUC.State(userID); err == nil {
		h.send(session, &device.Message{Type: device.MessageState, State: &state})
	}

	ctx := c.Request().Context()
	for {
		var msg device.Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("Device stream closed", slog.String("user_id", userID), slog.Any("error", err))
			}

			return nil
		}

		h.dispatch(ctx, session, &msg)
	}
}

func keepAlive(conn *websocket.Conn, stop <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(pingTimeout)); err != nil {
				return
			}
		}
	}
}

func (h *StreamHandler) dispatch(ctx context.Context, session *device.Session, msg *device.Message) {
	userID := session.UserID()

	switch {
	case msg.Type.IsReply():
		if !h.bridge.Resolve(userID, msg) {
			h.logger.Debug("Dropping unsolicited device reply",
				slog.String("user_id", userID),
				slog.String("request_id", msg.RequestID),
			)
		}
	case msg.Type == device.MessagePermissionStatus:
		h.bridge.SetPermissionStatus(userID, msg.Status)
	case msg.Type == device.MessageFixes:
		h.provider.IngestFixes(ctx, userID, msg.Fixes)
	case msg.Type == device.MessageForeground:
		// Reconcile may wait on a device reply that this loop has to read.
		go func() {
			state, err := h.geofencingUC.Reconcile(ctx, userID)
			if err != nil {
				h.send(session, &device.Message{Type: device.MessageState, Error: err.Error()})

				return
			}
			h.send(session, &device.Message{Type: device.MessageState, State: &state})
		}()
	default:
		h.logger.Debug("Ignoring device message", slog.String("type", string(msg.Type)))
	}
}

func (h *StreamHandler) send(session *device.Session, msg *device.Message) {
	if err := session.Send(msg); err != nil {
		h.logger.Debug("Failed to send device message",
			slog.String("user_id", session.UserID()),
			slog.Any("error", err),
		)
	}
}
