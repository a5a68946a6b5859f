package impl

import (
	"context"
	"testing"

	"courtcrowd/internal/domain/entity"
	domainerrors "courtcrowd/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeofencingManager_Start_RequiresUserID(t *testing.T) {
	t.Parallel()

	fx := createTestGeofencingManager(t, newFakeSource(entity.PermissionUnknown), false)

	_, err := fx.manager.Start(context.Background(), "")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestGeofencingManager_Start_ReusesSession(t *testing.T) {
	t.Parallel()

	fx := createTestGeofencingManager(t, newFakeSource(entity.PermissionUnknown), false)
	first := fx.start(t, "u1")

	state, err := fx.manager.Start(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, state.Initialized)

	second, err := fx.manager.session("u1")
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, fx.source.initCalls)
}

func TestGeofencingManager_NoSession(t *testing.T) {
	t.Parallel()

	fx := createTestGeofencingManager(t, newFakeSource(entity.PermissionUnknown), false)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{name: "stop", call: func() error { return fx.manager.Stop(ctx, "ghost") }},
		{name: "state", call: func() error {
			_, err := fx.manager.State("ghost")

			return err
		}},
		{name: "request permissions", call: func() error {
			_, err := fx.manager.RequestPermissions(ctx, "ghost")

			return err
		}},
		{name: "enable tracking", call: func() error {
			_, err := fx.manager.EnableTracking(ctx, "ghost")

			return err
		}},
		{name: "disable tracking", call: func() error {
			_, err := fx.manager.DisableTracking(ctx, "ghost")

			return err
		}},
		{name: "manual check-in", call: func() error {
			_, err := fx.manager.ManualCheckIn(ctx, "ghost", "court-1")

			return err
		}},
		{name: "manual check-out", call: func() error {
			_, err := fx.manager.ManualCheckOut(ctx, "ghost")

			return err
		}},
		{name: "force location check", call: func() error {
			_, err := fx.manager.ForceLocationCheck(ctx, "ghost")

			return err
		}},
		{name: "reconcile", call: func() error {
			_, err := fx.manager.Reconcile(ctx, "ghost")

			return err
		}},
		{name: "subscribe", call: func() error {
			_, err := fx.manager.Subscribe("ghost", func(entity.GeofencingState) {})

			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.ErrorIs(t, tt.call(), domainerrors.ErrSessionNotFound)
		})
	}
}
