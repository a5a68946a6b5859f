package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"courtcrowd/internal/domain/entity"
	domainerrors "courtcrowd/internal/domain/errors"
	"courtcrowd/internal/domain/repository"
	"courtcrowd/internal/errors"
	mockRepo "courtcrowd/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// presenceServiceFixtures holds all test dependencies for presence service tests.
type presenceServiceFixtures struct {
	service      *presenceService
	txManager    *mockRepo.MockTransactionManager
	presenceRepo *mockRepo.MockPresenceRepository
	courtRepo    *mockRepo.MockCourtRepository
	now          time.Time
}

func createTestPresenceService(t *testing.T) presenceServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	presenceRepo := mockRepo.NewMockPresenceRepository(t)
	courtRepo := mockRepo.NewMockCourtRepository(t)
	now := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)

	service := NewPresenceService(PresenceServiceParams{
		TxManager:    txManager,
		PresenceRepo: presenceRepo,
		CourtRepo:    courtRepo,
		Logger:       discardLogger(),
	}).(*presenceService)
	service.now = func() time.Time { return now }

	return presenceServiceFixtures{
		service:      service,
		txManager:    txManager,
		presenceRepo: presenceRepo,
		courtRepo:    courtRepo,
		now:          now,
	}
}

func TestPresenceService_CheckIn_CreatesRecord(t *testing.T) {
	fx := createTestPresenceService(t)
	ctx := context.Background()
	eventID := "radar-evt-1"

	fx.courtRepo.EXPECT().FindCourtByID(ctx, "court-1").Return(courtMission, nil)
	fx.presenceRepo.EXPECT().
		InsertOpen(ctx, mock.AnythingOfType("*entity.PresenceRecord")).
		Return(true, nil)

	result, err := fx.service.CheckIn(ctx, "user-1", "court-1", entity.EntryMethodRadar, &eventID)
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, courtMission, result.Court)
	assert.Equal(t, "user-1", result.Record.UserID)
	assert.Equal(t, "court-1", result.Record.CourtID)
	assert.Equal(t, entity.EntryMethodRadar, result.Record.EntryMethod)
	assert.Equal(t, fx.now, result.Record.EnteredAt)
	assert.Equal(t, &eventID, result.Record.RadarEventID)
	assert.True(t, result.Record.IsOpen())
}

func TestPresenceService_CheckIn_ReturnsExistingOpenRecord(t *testing.T) {
	fx := createTestPresenceService(t)
	ctx := context.Background()
	existing := &entity.PresenceRecord{
		ID:          uuid.New(),
		UserID:      "user-1",
		CourtID:     "court-1",
		EnteredAt:   fx.now.Add(-time.Hour),
		EntryMethod: entity.EntryMethodManual,
	}

	fx.courtRepo.EXPECT().FindCourtByID(ctx, "court-1").Return(courtMission, nil)
	fx.presenceRepo.EXPECT().InsertOpen(ctx, mock.Anything).Return(false, nil)
	fx.presenceRepo.EXPECT().FindOpen(ctx, "user-1", "court-1").Return(existing, nil)

	result, err := fx.service.CheckIn(ctx, "user-1", "court-1", entity.EntryMethodRadar, nil)
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, existing, result.Record)
}

func TestPresenceService_CheckIn_RetriesWhenConflictingRecordClosed(t *testing.T) {
	fx := createTestPresenceService(t)
	ctx := context.Background()

	fx.courtRepo.EXPECT().FindCourtByID(ctx, "court-1").Return(courtMission, nil)
	fx.presenceRepo.EXPECT().InsertOpen(ctx, mock.Anything).Return(false, nil).Once()
	fx.presenceRepo.EXPECT().FindOpen(ctx, "user-1", "court-1").Return(nil, repository.ErrPresenceNotFound).Once()
	fx.presenceRepo.EXPECT().InsertOpen(ctx, mock.Anything).Return(true, nil).Once()

	result, err := fx.service.CheckIn(ctx, "user-1", "court-1", entity.EntryMethodBackground, nil)
	require.NoError(t, err)
	assert.True(t, result.Created)
}

func TestPresenceService_CheckIn_GivesUpAfterRepeatedConflict(t *testing.T) {
	fx := createTestPresenceService(t)
	ctx := context.Background()

	fx.courtRepo.EXPECT().FindCourtByID(ctx, "court-1").Return(courtMission, nil)
	fx.presenceRepo.EXPECT().InsertOpen(ctx, mock.Anything).Return(false, nil).Twice()
	fx.presenceRepo.EXPECT().FindOpen(ctx, "user-1", "court-1").Return(nil, repository.ErrPresenceNotFound).Twice()

	_, err := fx.service.CheckIn(ctx, "user-1", "court-1", entity.EntryMethodBackground, nil)
	require.ErrorIs(t, err, domainerrors.ErrPresenceConflict)
}

func TestPresenceService_CheckIn_Errors(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection reset")

	tests := []struct {
		name    string
		userID  string
		courtID string
		method  entity.EntryMethod
		setup   func(fx presenceServiceFixtures)
		wantErr error
	}{
		{
			name:    "missing user",
			courtID: "court-1",
			method:  entity.EntryMethodManual,
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "missing court",
			userID:  "user-1",
			method:  entity.EntryMethodManual,
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "invalid method",
			userID:  "user-1",
			courtID: "court-1",
			method:  entity.EntryMethod("teleport"),
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown court",
			userID:  "user-1",
			courtID: "court-404",
			method:  entity.EntryMethodManual,
			setup: func(fx presenceServiceFixtures) {
				fx.courtRepo.EXPECT().FindCourtByID(mock.Anything, "court-404").Return(nil, repository.ErrCourtNotFound)
			},
			wantErr: domainerrors.ErrCourtNotFound,
		},
		{
			name:    "court deleted before insert",
			userID:  "user-1",
			courtID: "court-1",
			method:  entity.EntryMethodManual,
			setup: func(fx presenceServiceFixtures) {
				fx.courtRepo.EXPECT().FindCourtByID(mock.Anything, "court-1").Return(courtMission, nil)
				fx.presenceRepo.EXPECT().InsertOpen(mock.Anything, mock.Anything).Return(false, repository.ErrCourtNotFound)
			},
			wantErr: domainerrors.ErrCourtNotFound,
		},
		{
			name:    "insert failure",
			userID:  "user-1",
			courtID: "court-1",
			method:  entity.EntryMethodManual,
			setup: func(fx presenceServiceFixtures) {
				fx.courtRepo.EXPECT().FindCourtByID(mock.Anything, "court-1").Return(courtMission, nil)
				fx.presenceRepo.EXPECT().InsertOpen(mock.Anything, mock.Anything).Return(false, dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestPresenceService(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			result, err := fx.service.CheckIn(context.Background(), tt.userID, tt.courtID, tt.method, nil)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
		})
	}
}

func TestPresenceService_CheckOut(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		closed     int64
		wantClosed bool
	}{
		{name: "closes open record", closed: 1, wantClosed: true},
		{name: "no open record is a no-op", closed: 0, wantClosed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestPresenceService(t)
			ctx := context.Background()
			fx.presenceRepo.EXPECT().CloseOpen(ctx, "user-1", "court-1", fx.now).Return(tt.closed, nil)

			result, err := fx.service.CheckOut(ctx, "user-1", "court-1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantClosed, result.Closed)
			assert.Equal(t, fx.now, result.ExitedAt)
		})
	}
}

func TestPresenceService_CheckOut_Failure(t *testing.T) {
	fx := createTestPresenceService(t)
	ctx := context.Background()
	fx.presenceRepo.EXPECT().CloseOpen(ctx, "user-1", "court-1", fx.now).Return(0, errors.New("timeout"))

	result, err := fx.service.CheckOut(ctx, "user-1", "court-1")
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestPresenceService_SwitchCourt(t *testing.T) {
	fx := createTestPresenceService(t)
	ctx := context.Background()
	txRepo := mockRepo.NewMockPresenceRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)

	fx.courtRepo.EXPECT().FindCourtByID(ctx, "court-2").Return(courtDolores, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewPresenceRepository().Return(txRepo)
	txRepo.EXPECT().CloseOpen(ctx, "user-1", "court-1", fx.now).Return(1, nil)
	txRepo.EXPECT().InsertOpen(ctx, mock.Anything).Return(true, nil)

	result, err := fx.service.SwitchCourt(ctx, "user-1", "court-1", "court-2", entity.EntryMethodManual)
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, "court-2", result.Record.CourtID)
	assert.Equal(t, entity.EntryMethodManual, result.Record.EntryMethod)
}

func TestPresenceService_SwitchCourt_SameCourtIsCheckIn(t *testing.T) {
	fx := createTestPresenceService(t)
	ctx := context.Background()

	fx.courtRepo.EXPECT().FindCourtByID(ctx, "court-1").Return(courtMission, nil)
	fx.presenceRepo.EXPECT().InsertOpen(ctx, mock.Anything).Return(false, nil)
	fx.presenceRepo.EXPECT().FindOpen(ctx, "user-1", "court-1").Return(&entity.PresenceRecord{UserID: "user-1", CourtID: "court-1"}, nil)

	result, err := fx.service.SwitchCourt(ctx, "user-1", "court-1", "court-1", entity.EntryMethodManual)
	require.NoError(t, err)
	assert.False(t, result.Created)
}

func TestPresenceService_SwitchCourt_RollsBackOnFailure(t *testing.T) {
	fx := createTestPresenceService(t)
	ctx := context.Background()
	txErr := errors.New("serialization failure")

	fx.courtRepo.EXPECT().FindCourtByID(ctx, "court-2").Return(courtDolores, nil)
	fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(txErr)

	result, err := fx.service.SwitchCourt(ctx, "user-1", "court-1", "court-2", entity.EntryMethodManual)
	require.ErrorIs(t, err, txErr)
	assert.Nil(t, result)
}

func TestPresenceService_ActiveCheckIn(t *testing.T) {
	t.Parallel()

	entered := time.Date(2026, 5, 1, 17, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		record  *entity.PresenceRecord
		repoErr error
		want    *entity.CheckIn
		wantErr bool
	}{
		{
			name:   "open record",
			record: &entity.PresenceRecord{UserID: "user-1", CourtID: "court-9", EnteredAt: entered},
			want:   &entity.CheckIn{CourtID: "court-9", EnteredAt: entered},
		},
		{name: "no open record", repoErr: repository.ErrPresenceNotFound},
		{name: "lookup failure", repoErr: errors.New("boom"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestPresenceService(t)
			fx.presenceRepo.EXPECT().FindLatestOpenByUser(mock.Anything, "user-1").Return(tt.record, tt.repoErr)

			got, err := fx.service.ActiveCheckIn(context.Background(), "user-1")
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPresenceService_CheckOutAll(t *testing.T) {
	fx := createTestPresenceService(t)
	ctx := context.Background()
	fx.presenceRepo.EXPECT().CloseAllOpenByUser(ctx, "user-1", fx.now).Return(2, nil)

	closed, err := fx.service.CheckOutAll(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), closed)
}

func TestPresenceService_CourtOccupancy(t *testing.T) {
	fx := createTestPresenceService(t)
	ctx := context.Background()
	fx.courtRepo.EXPECT().FindCourtByID(ctx, "court-1").Return(courtMission, nil)
	fx.presenceRepo.EXPECT().CountOpenByCourt(ctx, "court-1").Return(7, nil)

	count, err := fx.service.CourtOccupancy(ctx, "court-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)

	_, err = fx.service.CourtOccupancy(ctx, "")
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPresenceService_RepeatedCheckInsKeepOneOpenRecord(t *testing.T) {
	t.Parallel()

	store := newMemoryStore(courtMission)
	service := newMemoryPresenceService(store)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.CheckIn(ctx, "user-1", "court-1", entity.EntryMethodRadar, nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, store.openRecords("user-1", "court-1"), 1)
	assert.Equal(t, 1, store.recordCount())
}

func TestPresenceService_CheckOutWithoutOpenRecordCreatesNothing(t *testing.T) {
	t.Parallel()

	store := newMemoryStore(courtMission)
	service := newMemoryPresenceService(store)

	result, err := service.CheckOut(context.Background(), "user-1", "court-1")
	require.NoError(t, err)
	assert.False(t, result.Closed)
	assert.Zero(t, store.recordCount())
}
