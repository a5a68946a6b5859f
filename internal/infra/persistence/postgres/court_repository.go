package postgres

import (
	"context"

	"courtcrowd/internal/domain/entity"
	"courtcrowd/internal/domain/repository"
	"courtcrowd/internal/errors"
	"courtcrowd/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// courtRepository implements the repository.CourtRepository interface.
type courtRepository struct {
	db *gorm.DB
}

// NewCourtRepository is the constructor for courtRepository.
func NewCourtRepository(db *gorm.DB) repository.CourtRepository {
	return &courtRepository{db: db}
}

// FindCourtByID retrieves a court by its ID.
func (repo *courtRepository) FindCourtByID(ctx context.Context, id string) (*entity.Court, error) {
	var courtM model.CourtModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&courtM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourtNotFound
		}

		return nil, errors.Wrap(err, "failed to find court by ID")
	}

	return toCourtDomain(&courtM), nil
}

// ListCourts returns every court ordered by ID.
func (repo *courtRepository) ListCourts(ctx context.Context) ([]*entity.Court, error) {
	var courtModels []*model.CourtModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&courtModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list courts")
	}

	courts := make([]*entity.Court, 0, len(courtModels))
	for _, courtM := range courtModels {
		courts = append(courts, toCourtDomain(courtM))
	}

	return courts, nil
}

func toCourtDomain(data *model.CourtModel) *entity.Court {
	if data == nil {
		return nil
	}

	return &entity.Court{
		ID:        data.ID,
		Name:      data.Name,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
