package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"autokomis/backoffice/internal/apperrors"
	"autokomis/backoffice/internal/models/dtos"
	"autokomis/backoffice/internal/models/entities"
	gormModels "autokomis/backoffice/internal/models/gorm"
	"autokomis/backoffice/internal/store"
)

// CarRepository is the relational CarStore backed by the cars table. It is
// the authoritative production backend; rows use the mapper's snake_case
// shape and updates are last-write-wins full-row saves.
type CarRepository struct {
	db *gorm.DB
}

var _ store.CarStore = (*CarRepository)(nil)

// NewCarRepository creates a new GORM-based car repository
func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

func (r *CarRepository) List(ctx context.Context) ([]entities.Car, error) {
	var rows []gormModels.Car

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	cars := make([]entities.Car, 0, len(rows))
	for _, row := range rows {
		cars = append(cars, store.FromRow(row))
	}
	return cars, nil
}

func (r *CarRepository) GetByID(ctx context.Context, id string) (*entities.Car, error) {
	var row gormModels.Car

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("car not found: " + id)
		}
		return nil, apperrors.NewStorageError(err)
	}

	car := store.FromRow(row)
	return &car, nil
}

func (r *CarRepository) Insert(ctx context.Context, car *entities.Car) (*entities.Car, error) {
	var existing gormModels.Car
	err := r.db.WithContext(ctx).
		Where("id = ?", car.ID).
		First(&existing).Error
	if err == nil {
		return nil, apperrors.NewConflictError("duplicate car id: " + car.ID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewStorageError(err)
	}

	row := store.ToRow(*car)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	stored := store.FromRow(row)
	return &stored, nil
}

func (r *CarRepository) UpdateByID(ctx context.Context, id string, patch *dtos.CarPatch) (*entities.Car, error) {
	var row gormModels.Car

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("car not found: " + id)
		}
		return nil, apperrors.NewStorageError(err)
	}

	car := store.FromRow(row)
	patch.Apply(&car)
	car.UpdatedAt = time.Time{} // mapper stamps a fresh timestamp

	updated := store.ToRow(car)
	if err := r.db.WithContext(ctx).Save(&updated).Error; err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	result := store.FromRow(updated)
	return &result, nil
}

func (r *CarRepository) DeleteByID(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gormModels.Car{})

	if result.Error != nil {
		return apperrors.NewStorageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("car not found: " + id)
	}
	return nil
}
