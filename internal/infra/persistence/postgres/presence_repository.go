package postgres

import (
	"context"
	"time"

	"courtcrowd/internal/domain/entity"
	domainerrors "courtcrowd/internal/domain/errors"
	"courtcrowd/internal/domain/repository"
	"courtcrowd/internal/errors"
	"courtcrowd/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// openPresence matches rows that are still checked in.
const openPresence = "exited_at IS NULL"

// presenceRepository implements the repository.PresenceRepository interface.
type presenceRepository struct {
	db *gorm.DB
}

// NewPresenceRepository is the constructor for presenceRepository.
func NewPresenceRepository(db *gorm.DB) repository.PresenceRepository {
	return &presenceRepository{db: db}
}

// InsertOpen inserts an open record, relying on ux_court_presence_open to ignore duplicates.
func (repo *presenceRepository) InsertOpen(ctx context.Context, record *entity.PresenceRecord) (bool, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	presenceM := fromPresenceDomain(record)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:     []clause.Column{{Name: "user_id"}, {Name: "court_id"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: openPresence}}},
			DoNothing:   true,
		}).
		Create(presenceM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, repository.ErrCourtNotFound
		}
		if isCheckConstraintViolation(result.Error) || isNotNullConstraintViolation(result.Error) {
			return false, domainerrors.ErrPresenceWriteFailed.WrapMessage("invalid presence record")
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to insert presence record")
	}

	return result.RowsAffected > 0, nil
}

// FindOpen returns the open record for (user, court).
func (repo *presenceRepository) FindOpen(ctx context.Context, userID, courtID string) (*entity.PresenceRecord, error) {
	var presenceM model.CourtPresenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND court_id = ?", userID, courtID).
		Where(openPresence).
		Order("entered_at DESC").
		First(&presenceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPresenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find open presence")
	}

	return toPresenceDomain(&presenceM), nil
}

// FindLatestOpenByUser returns the user's most recently entered open record.
func (repo *presenceRepository) FindLatestOpenByUser(ctx context.Context, userID string) (*entity.PresenceRecord, error) {
	var presenceM model.CourtPresenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where(openPresence).
		Order("entered_at DESC").
		First(&presenceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPresenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest open presence")
	}

	return toPresenceDomain(&presenceM), nil
}

// FindOpenByUser returns every open record of the user, newest first.
func (repo *presenceRepository) FindOpenByUser(ctx context.Context, userID string) ([]*entity.PresenceRecord, error) {
	var presenceModels []*model.CourtPresenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where(openPresence).
		Order("entered_at DESC").
		Find(&presenceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find open presence by user")
	}

	records := make([]*entity.PresenceRecord, 0, len(presenceModels))
	for _, presenceM := range presenceModels {
		records = append(records, toPresenceDomain(presenceM))
	}

	return records, nil
}

// CloseOpen sets exited_at on the open record of (user, court).
// exited_at is clamped to entered_at so clock skew cannot violate the check constraint.
func (repo *presenceRepository) CloseOpen(ctx context.Context, userID, courtID string, exitedAt time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CourtPresenceModel{}).
		Where("user_id = ? AND court_id = ?", userID, courtID).
		Where(openPresence).
		Update("exited_at", gorm.Expr("GREATEST(?::timestamptz, entered_at)", exitedAt))
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to close presence record")
	}

	return result.RowsAffected, nil
}

// CloseAllOpenByUser closes every open record of the user.
func (repo *presenceRepository) CloseAllOpenByUser(ctx context.Context, userID string, exitedAt time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CourtPresenceModel{}).
		Where("user_id = ?", userID).
		Where(openPresence).
		Update("exited_at", gorm.Expr("GREATEST(?::timestamptz, entered_at)", exitedAt))
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to close presence records")
	}

	return result.RowsAffected, nil
}

// CountOpenByCourt returns the number of open records for a court.
func (repo *presenceRepository) CountOpenByCourt(ctx context.Context, courtID string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CourtPresenceModel{}).
		Where("court_id = ?", courtID).
		Where(openPresence).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count open presence")
	}

	return count, nil
}

// --- Mapper Functions ---

func toPresenceDomain(data *model.CourtPresenceModel) *entity.PresenceRecord {
	if data == nil {
		return nil
	}

	return &entity.PresenceRecord{
		ID:           data.ID,
		UserID:       data.UserID,
		CourtID:      data.CourtID,
		EnteredAt:    data.EnteredAt,
		ExitedAt:     data.ExitedAt,
		EntryMethod:  entity.EntryMethod(data.EntryMethod),
		RadarEventID: data.RadarEventID,
	}
}

func fromPresenceDomain(data *entity.PresenceRecord) *model.CourtPresenceModel {
	if data == nil {
		return nil
	}

	return &model.CourtPresenceModel{
		ID:           data.ID,
		UserID:       data.UserID,
		CourtID:      data.CourtID,
		EnteredAt:    data.EnteredAt,
		ExitedAt:     data.ExitedAt,
		EntryMethod:  data.EntryMethod.String(),
		RadarEventID: data.RadarEventID,
	}
}
