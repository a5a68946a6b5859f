package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"courtcrowd/internal/domain/entity"
	"courtcrowd/internal/domain/repository"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryStore is an in-memory court_presence and courts table with the open-record uniqueness rule.
type memoryStore struct {
	mu       sync.Mutex
	courts   map[string]*entity.Court
	records  []*entity.PresenceRecord
	failNext error
}

func newMemoryStore(courts ...*entity.Court) *memoryStore {
	store := &memoryStore{courts: make(map[string]*entity.Court)}
	for _, court := range courts {
		store.courts[court.ID] = court
	}

	return store
}

func (m *memoryStore) takeFailure() error {
	err := m.failNext
	m.failNext = nil

	return err
}

func (m *memoryStore) InsertOpen(_ context.Context, record *entity.PresenceRecord) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.takeFailure(); err != nil {
		return false, err
	}
	if _, ok := m.courts[record.CourtID]; !ok {
		return false, repository.ErrCourtNotFound
	}
	for _, r := range m.records {
		if r.UserID == record.UserID && r.CourtID == record.CourtID && r.IsOpen() {
			return false, nil
		}
	}
	stored := *record
	m.records = append(m.records, &stored)

	return true, nil
}

func (m *memoryStore) FindOpen(_ context.Context, userID, courtID string) (*entity.PresenceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.records {
		if r.UserID == userID && r.CourtID == courtID && r.IsOpen() {
			out := *r

			return &out, nil
		}
	}

	return nil, repository.ErrPresenceNotFound
}

func (m *memoryStore) FindLatestOpenByUser(ctx context.Context, userID string) (*entity.PresenceRecord, error) {
	records, _ := m.FindOpenByUser(ctx, userID)
	if len(records) == 0 {
		return nil, repository.ErrPresenceNotFound
	}

	return records[0], nil
}

func (m *memoryStore) FindOpenByUser(_ context.Context, userID string) ([]*entity.PresenceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*entity.PresenceRecord
	for _, r := range m.records {
		if r.UserID == userID && r.IsOpen() {
			copied := *r
			out = append(out, &copied)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EnteredAt.After(out[j].EnteredAt) })

	return out, nil
}

func (m *memoryStore) CloseOpen(_ context.Context, userID, courtID string, exitedAt time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.takeFailure(); err != nil {
		return 0, err
	}

	return m.closeWhere(func(r *entity.PresenceRecord) bool {
		return r.UserID == userID && r.CourtID == courtID
	}, exitedAt), nil
}

func (m *memoryStore) CloseAllOpenByUser(_ context.Context, userID string, exitedAt time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.takeFailure(); err != nil {
		return 0, err
	}

	return m.closeWhere(func(r *entity.PresenceRecord) bool { return r.UserID == userID }, exitedAt), nil
}

func (m *memoryStore) closeWhere(match func(*entity.PresenceRecord) bool, exitedAt time.Time) int64 {
	var closed int64
	for _, r := range m.records {
		if r.IsOpen() && match(r) {
			at := exitedAt
			if at.Before(r.EnteredAt) {
				at = r.EnteredAt
			}
			r.ExitedAt = &at
			closed++
		}
	}

	return closed
}

func (m *memoryStore) CountOpenByCourt(_ context.Context, courtID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var count int64
	for _, r := range m.records {
		if r.CourtID == courtID && r.IsOpen() {
			count++
		}
	}

	return count, nil
}

func (m *memoryStore) FindCourtByID(_ context.Context, id string) (*entity.Court, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	court, ok := m.courts[id]
	if !ok {
		return nil, repository.ErrCourtNotFound
	}

	return court, nil
}

func (m *memoryStore) ListCourts(_ context.Context) ([]*entity.Court, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*entity.Court, 0, len(m.courts))
	for _, court := range m.courts {
		out = append(out, court)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// Execute runs fn against the same store. Rollback is not modelled.
func (m *memoryStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(memoryFactory{store: m})
}

type memoryFactory struct {
	store *memoryStore
}

func (f memoryFactory) NewPresenceRepository() repository.PresenceRepository {
	return f.store
}

// openRecords returns the open records of (user, court).
func (m *memoryStore) openRecords(userID, courtID string) []*entity.PresenceRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*entity.PresenceRecord
	for _, r := range m.records {
		if r.UserID == userID && r.CourtID == courtID && r.IsOpen() {
			out = append(out, r)
		}
	}

	return out
}

func (m *memoryStore) recordCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.records)
}

func (m *memoryStore) failOnce(err error) {
	m.mu.Lock()
	m.failNext = err
	m.mu.Unlock()
}

func newMemoryPresenceService(store *memoryStore) *presenceService {
	return &presenceService{
		txManager:    store,
		presenceRepo: store,
		courtRepo:    store,
		logger:       discardLogger(),
		now:          time.Now,
	}
}

// Test courts around San Francisco.
var (
	courtMission = &entity.Court{ID: "court-1", Name: "Mission Court", Latitude: 37.77491, Longitude: -122.41941}
	courtDolores = &entity.Court{ID: "court-2", Name: "Dolores Park Court", Latitude: 37.7596, Longitude: -122.4269}
	courtHayes   = &entity.Court{ID: "court-9", Name: "Hayes Valley Court", Latitude: 37.7767, Longitude: -122.4241}
	court123     = &entity.Court{ID: "court-123", Name: "Golden Gate Park Court 3", Latitude: 37.7694, Longitude: -122.4862}
)
