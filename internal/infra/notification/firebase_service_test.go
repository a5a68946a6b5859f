package notification

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"courtcrowd/config"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	calls [][]string
	err   error
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.calls = append(f.calls, message.Tokens)

	responses := make([]*messaging.SendResponse, len(message.Tokens))
	for i := range message.Tokens {
		responses[i] = &messaging.SendResponse{Success: true}
	}

	return &messaging.BatchResponse{SuccessCount: len(message.Tokens), Responses: responses}, nil
}

func TestFirebaseService_SendBatchNotification_Chunks(t *testing.T) {
	t.Parallel()

	tokens := make([]string, 1203)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token-%d", i)
	}

	sender := &fakeSender{}
	svc := &firebaseService{client: sender}

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(), tokens, "Checked in", "Court 9", nil)
	require.NoError(t, err)
	assert.Equal(t, 1203, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)

	require.Len(t, sender.calls, 3)
	assert.Len(t, sender.calls[0], 500)
	assert.Len(t, sender.calls[1], 500)
	assert.Len(t, sender.calls[2], 203)
}

func TestFirebaseService_SendBatchNotification_Empty(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	svc := &firebaseService{client: sender}

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(), nil, "t", "b", nil)
	require.NoError(t, err)
	assert.Zero(t, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)
	assert.Empty(t, sender.calls)
}

func TestFirebaseService_SendBatchNotification_Error(t *testing.T) {
	t.Parallel()

	svc := &firebaseService{client: &fakeSender{err: errors.New("quota exceeded")}}

	_, _, _, err := svc.SendBatchNotification(context.Background(), []string{"a"}, "t", "b", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestNew_WithoutCredentialsIsNoop(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := New(context.Background(), &config.Config{}, logger)
	require.NoError(t, err)

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(), []string{"a"}, "t", "b", nil)
	require.NoError(t, err)
	assert.Zero(t, success)
	assert.Zero(t, failure)
	assert.Nil(t, invalid)
}
