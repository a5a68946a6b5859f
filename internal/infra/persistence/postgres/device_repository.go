package postgres

import (
	"context"

	"courtcrowd/internal/domain/entity"
	domainerrors "courtcrowd/internal/domain/errors"
	"courtcrowd/internal/domain/repository"
	"courtcrowd/internal/errors"
	"courtcrowd/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// UpsertDevice persists a device, refreshing the push token of an existing (user, device) pair.
func (repo *deviceRepository) UpsertDevice(ctx context.Context, device *entity.UserDevice) error {
	if device.ID == uuid.Nil {
		device.ID = uuid.New()
	}
	deviceM := fromDeviceDomain(device)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"push_token": deviceM.PushToken,
				"platform":   deviceM.Platform,
				"is_active":  true,
				"updated_at": gorm.Expr("now()"),
				"deleted_at": nil,
			}),
		}).
		Create(deviceM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrDeviceRegistrationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindActiveDevicesByUser retrieves all active devices for a specific user (excluding soft-deleted).
func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error) {
	var deviceModels []*model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	devices := make([]*entity.UserDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// DeleteDevice removes a device by its ID (soft delete).
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserDeviceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM UserDeviceModel to a domain UserDevice entity.
func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	if data == nil {
		return nil
	}

	return &entity.UserDevice{
		ID:        data.ID,
		UserID:    data.UserID,
		PushToken: data.PushToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain UserDevice entity to a GORM UserDeviceModel.
func fromDeviceDomain(data *entity.UserDevice) *model.UserDeviceModel {
	if data == nil {
		return nil
	}

	return &model.UserDeviceModel{
		ID:        data.ID,
		UserID:    data.UserID,
		PushToken: data.PushToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
