package impl

import (
	"context"
	"log/slog"
	"time"

	"courtcrowd/internal/domain/entity"
	domainerrors "courtcrowd/internal/domain/errors"
	"courtcrowd/internal/domain/repository"
	"courtcrowd/internal/errors"
	"courtcrowd/internal/infra/metrics"
	"courtcrowd/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	transitionCheckIn  = "check_in"
	transitionCheckOut = "check_out"
)

type presenceService struct {
	txManager    repository.TransactionManager
	presenceRepo repository.PresenceRepository
	courtRepo    repository.CourtRepository
	logger       *slog.Logger
	now          func() time.Time
}

// PresenceServiceParams holds dependencies for PresenceService, injected by Fx.
type PresenceServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PresenceRepo repository.PresenceRepository
	CourtRepo    repository.CourtRepository
	Logger       *slog.Logger
}

// NewPresenceService is the constructor for the presence writer.
func NewPresenceService(params PresenceServiceParams) usecase.PresenceUsecase {
	return &presenceService{
		txManager:    params.TxManager,
		presenceRepo: params.PresenceRepo,
		courtRepo:    params.CourtRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (s *presenceService) CheckIn(ctx context.Context, userID, courtID string, method entity.EntryMethod, externalEventID *string) (*usecase.CheckInResult, error) {
	if err := validatePresenceInput(userID, courtID); err != nil {
		return nil, err
	}
	if !method.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid entry method")
	}

	court, err := s.findCourt(ctx, courtID)
	if err != nil {
		return nil, err
	}

	result, err := s.checkIn(ctx, s.presenceRepo, userID, court, method, externalEventID)
	recordTransition(transitionCheckIn, method, result != nil && result.Created, err)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *presenceService) CheckOut(ctx context.Context, userID, courtID string) (*usecase.CheckOutResult, error) {
	if err := validatePresenceInput(userID, courtID); err != nil {
		return nil, err
	}

	exitedAt := s.now().UTC()
	closed, err := s.presenceRepo.CloseOpen(ctx, userID, courtID, exitedAt)
	recordTransition(transitionCheckOut, "", closed > 0, err)
	if err != nil {
		return nil, errors.Wrap(err, "failed to close presence")
	}

	return &usecase.CheckOutResult{Closed: closed > 0, ExitedAt: exitedAt}, nil
}

func (s *presenceService) SwitchCourt(ctx context.Context, userID, fromCourtID, toCourtID string, method entity.EntryMethod) (*usecase.CheckInResult, error) {
	if fromCourtID == "" || fromCourtID == toCourtID {
		return s.CheckIn(ctx, userID, toCourtID, method, nil)
	}
	if err := validatePresenceInput(userID, toCourtID); err != nil {
		return nil, err
	}
	if !method.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid entry method")
	}

	court, err := s.findCourt(ctx, toCourtID)
	if err != nil {
		return nil, err
	}

	var result *usecase.CheckInResult
	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		presenceRepo := repoFactory.NewPresenceRepository()

		closed, err := presenceRepo.CloseOpen(ctx, userID, fromCourtID, s.now().UTC())
		if err != nil {
			return errors.Wrap(err, "failed to close previous court")
		}
		recordTransition(transitionCheckOut, "", closed > 0, nil)

		result, err = s.checkIn(ctx, presenceRepo, userID, court, method, nil)

		return err
	})
	recordTransition(transitionCheckIn, method, result != nil && result.Created, err)
	if err != nil {
		return nil, errors.Wrap(err, "failed to switch court")
	}

	return result, nil
}

func (s *presenceService) CheckOutAll(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("user id is required")
	}

	closed, err := s.presenceRepo.CloseAllOpenByUser(ctx, userID, s.now().UTC())
	if err != nil {
		return 0, errors.Wrap(err, "failed to close open presence")
	}
	if closed > 0 {
		metrics.PresenceTransitions.WithLabelValues(transitionCheckOut, "", metrics.OutcomeOK).Add(float64(closed))
	}

	return closed, nil
}

func (s *presenceService) OpenRecords(ctx context.Context, userID string) ([]*entity.PresenceRecord, error) {
	records, err := s.presenceRepo.FindOpenByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load open presence")
	}

	return records, nil
}

func (s *presenceService) ActiveCheckIn(ctx context.Context, userID string) (*entity.CheckIn, error) {
	record, err := s.presenceRepo.FindLatestOpenByUser(ctx, userID)
	if errors.Is(err, repository.ErrPresenceNotFound) {
		return nil, nil //nolint:nilnil // no open record is a valid state
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load active check-in")
	}

	return record.ToCheckIn(), nil
}

func (s *presenceService) CourtOccupancy(ctx context.Context, courtID string) (int64, error) {
	if courtID == "" {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("court id is required")
	}
	if _, err := s.findCourt(ctx, courtID); err != nil {
		return 0, err
	}

	count, err := s.presenceRepo.CountOpenByCourt(ctx, courtID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count court occupancy")
	}

	return count, nil
}

// checkIn inserts an open record or returns the one already open.
// A conflicting record that is closed before it can be read is retried once.
func (s *presenceService) checkIn(
	ctx context.Context,
	presenceRepo repository.PresenceRepository,
	userID string,
	court *entity.Court,
	method entity.EntryMethod,
	externalEventID *string,
) (*usecase.CheckInResult, error) {
	for range 2 {
		record := &entity.PresenceRecord{
			ID:           uuid.New(),
			UserID:       userID,
			CourtID:      court.ID,
			EnteredAt:    s.now().UTC(),
			EntryMethod:  method,
			RadarEventID: externalEventID,
		}

		created, err := presenceRepo.InsertOpen(ctx, record)
		if errors.Is(err, repository.ErrCourtNotFound) {
			return nil, domainerrors.ErrCourtNotFound
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to insert presence")
		}
		if created {
			return &usecase.CheckInResult{Record: record, Court: court, Created: true}, nil
		}

		existing, err := presenceRepo.FindOpen(ctx, userID, court.ID)
		if err == nil {
			return &usecase.CheckInResult{Record: existing, Court: court}, nil
		}
		if !errors.Is(err, repository.ErrPresenceNotFound) {
			return nil, errors.Wrap(err, "failed to load open presence")
		}

		s.logger.Debug("Open presence closed during check-in, retrying",
			slog.String("user_id", userID),
			slog.String("court_id", court.ID),
		)
	}

	return nil, domainerrors.ErrPresenceConflict
}

func (s *presenceService) findCourt(ctx context.Context, courtID string) (*entity.Court, error) {
	court, err := s.courtRepo.FindCourtByID(ctx, courtID)
	if errors.Is(err, repository.ErrCourtNotFound) {
		return nil, domainerrors.ErrCourtNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find court")
	}

	return court, nil
}

func validatePresenceInput(userID, courtID string) error {
	switch {
	case userID == "":
		return domainerrors.ErrValidationFailed.WrapMessage("user id is required")
	case courtID == "":
		return domainerrors.ErrValidationFailed.WrapMessage("court id is required")
	}

	return nil
}

func recordTransition(kind string, method entity.EntryMethod, changed bool, err error) {
	outcome := metrics.OutcomeNoop
	switch {
	case err != nil:
		outcome = metrics.OutcomeFailed
	case changed:
		outcome = metrics.OutcomeOK
	}
	metrics.PresenceTransitions.WithLabelValues(kind, string(method), outcome).Inc()
}
