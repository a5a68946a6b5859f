package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "courtcrowd/internal/delivery/context"
	domainerrors "courtcrowd/internal/domain/errors"
	"courtcrowd/internal/domain/service"
	"courtcrowd/internal/errors"
	mockUC "courtcrowd/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPresenceEvent() *service.PresenceEvent {
	return &service.PresenceEvent{
		EventID:    "evt-1",
		Kind:       service.PresenceCheckedIn,
		UserID:     "user-1",
		CourtID:    "court-1",
		Method:     "radar",
		OccurredAt: time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC),
	}
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/test/subscriptions/presence"

	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(raw)
}

func encodedEvent(t *testing.T, event *service.PresenceEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockConfirmationUsecase) {
	t.Helper()

	confirmationUC := mockUC.NewMockConfirmationUsecase(t)
	processor := NewEventProcessor(EventProcessorParams{ConfirmationUC: confirmationUC, Logger: discardLogger()})

	return &PushHandler{processor: processor, logger: discardLogger()}, confirmationUC
}

func servePush(h *PushHandler, body, authorization string) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestPushHandler_DeliversPresenceEvent(t *testing.T) {
	t.Parallel()

	h, confirmationUC := newTestPushHandler(t)
	confirmationUC.EXPECT().DeliverPresenceEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, event *service.PresenceEvent) error {
			assert.Equal(t, "req-42", deliverycontext.GetRequestIDFromContext(ctx))
			assert.Equal(t, "evt-1", event.EventID)
			assert.Equal(t, service.PresenceCheckedIn, event.Kind)
			assert.Equal(t, "court-1", event.CourtID)

			return nil
		})

	rec := servePush(h, pushBody(t, encodedEvent(t, testPresenceEvent()), map[string]string{"request_id": "req-42"}), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_Outcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		data       func(t *testing.T) string
		deliverErr error
		delivered  bool
		wantCode   int
	}{
		{
			name:     "invalid base64",
			data:     func(*testing.T) string { return "%%%" },
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed event is acknowledged",
			data:     func(*testing.T) string { return base64.StdEncoding.EncodeToString([]byte("{")) },
			wantCode: http.StatusOK,
		},
		{
			name:       "delivery failure is retried",
			data:       func(t *testing.T) string { return encodedEvent(t, testPresenceEvent()) },
			deliverErr: errors.New("firebase unavailable"),
			delivered:  true,
			wantCode:   http.StatusServiceUnavailable,
		},
		{
			name:       "invalid event is acknowledged",
			data:       func(t *testing.T) string { return encodedEvent(t, &service.PresenceEvent{EventID: "evt-2"}) },
			deliverErr: domainerrors.ErrValidationFailed.WrapMessage("presence event requires user and court"),
			delivered:  true,
			wantCode:   http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, confirmationUC := newTestPushHandler(t)
			if tt.delivered {
				confirmationUC.EXPECT().DeliverPresenceEvent(mock.Anything, mock.Anything).Return(tt.deliverErr)
			}

			rec := servePush(h, pushBody(t, tt.data(t), nil), "")

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesPushToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		authorization string
		issuer        string
		validateErr   error
		wantCode      int
	}{
		{name: "valid token", authorization: "Bearer oidc", issuer: "https://accounts.google.com", wantCode: http.StatusOK},
		{name: "missing header", wantCode: http.StatusUnauthorized},
		{name: "not a bearer token", authorization: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "wrong issuer", authorization: "Bearer oidc", issuer: "https://evil.example.com", wantCode: http.StatusUnauthorized},
		{name: "validation fails", authorization: "Bearer oidc", validateErr: errors.New("token expired"), wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, confirmationUC := newTestPushHandler(t)
			h.verifyPushAuth = true
			h.audience = "https://worker.example.com/push"
			h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "oidc", token)
				assert.Equal(t, "https://worker.example.com/push", audience)
				if tt.validateErr != nil {
					return nil, tt.validateErr
				}

				return &idtoken.Payload{Issuer: tt.issuer, Claims: map[string]any{"email_verified": true}}, nil
			}
			if tt.wantCode == http.StatusOK {
				confirmationUC.EXPECT().DeliverPresenceEvent(mock.Anything, mock.Anything).Return(nil)
			}

			rec := servePush(h, pushBody(t, encodedEvent(t, testPresenceEvent()), nil), tt.authorization)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
