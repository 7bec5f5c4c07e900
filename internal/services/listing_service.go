package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"autokomis/backoffice/internal/apperrors"
	"autokomis/backoffice/internal/constants"
	"autokomis/backoffice/internal/logging"
	"autokomis/backoffice/internal/models/dtos"
	"autokomis/backoffice/internal/models/entities"
	"autokomis/backoffice/internal/store"
)

const (
	minYear = 1950
	maxYear = 2050
)

// ListingService is the single seam the handlers talk to for car listings.
// The backing store is chosen once at startup; the service validates input,
// owns id and timestamp assignment, and keeps the status transitions
// idempotent. It never retries a failed store call.
type ListingService struct {
	store store.CarStore
}

func NewListingService(carStore store.CarStore) *ListingService {
	return &ListingService{store: carStore}
}

func (s *ListingService) List(ctx context.Context) ([]entities.Car, error) {
	return s.store.List(ctx)
}

func (s *ListingService) Get(ctx context.Context, id string) (*entities.Car, error) {
	return s.store.GetByID(ctx, id)
}

// Create assigns a fresh id and timestamps, validates required fields and
// inserts the record.
func (s *ListingService) Create(ctx context.Context, patch *dtos.CarPatch) (*entities.Car, error) {
	if err := validateCreate(patch); err != nil {
		return nil, err
	}

	var car entities.Car
	patch.Apply(&car)

	now := time.Now().UTC()
	car.ID = uuid.New().String()
	car.CreatedAt = now
	car.UpdatedAt = now

	created, err := s.store.Insert(ctx, &car)
	if err != nil {
		return nil, err
	}

	logging.Info("car listing created", "car_id", created.ID, "title", created.Title)
	return created, nil
}

// Update merges a full or partial field set onto an existing record. The id
// and createdAt are not patchable; updatedAt is refreshed by the store.
func (s *ListingService) Update(ctx context.Context, id string, patch *dtos.CarPatch) (*entities.Car, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}
	return s.store.UpdateByID(ctx, id, patch)
}

// SetSoldBadge flips the cosmetic sold overlay. It never touches status.
func (s *ListingService) SetSoldBadge(ctx context.Context, id string, sold bool) (*entities.Car, error) {
	return s.store.UpdateByID(ctx, id, &dtos.CarPatch{SoldBadge: &sold})
}

// SetStatus performs the markSold/restore transition. Setting the current
// status again is a no-op success, not an error; soldBadge is untouched.
func (s *ListingService) SetStatus(ctx context.Context, id string, status string) (*entities.Car, error) {
	if constants.CoerceStatus(status) == "" {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid status %q", status))
	}

	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Status == status {
		return existing, nil
	}

	return s.store.UpdateByID(ctx, id, &dtos.CarPatch{Status: &status})
}

func (s *ListingService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return err
	}
	logging.Info("car listing deleted", "car_id", id)
	return nil
}

func validateCreate(patch *dtos.CarPatch) error {
	if patch.Title == nil || *patch.Title == "" {
		return apperrors.NewValidationError("title is required")
	}
	if patch.Engine == nil || *patch.Engine == "" {
		return apperrors.NewValidationError("engine is required")
	}
	if patch.Year == nil {
		return apperrors.NewValidationError("year is required")
	}
	if patch.Mileage == nil {
		return apperrors.NewValidationError("mileage is required")
	}
	return validatePatch(patch)
}

func validatePatch(patch *dtos.CarPatch) error {
	if patch.Title != nil && *patch.Title == "" {
		return apperrors.NewValidationError("title cannot be empty")
	}
	if patch.Engine != nil && *patch.Engine == "" {
		return apperrors.NewValidationError("engine cannot be empty")
	}
	if patch.Year != nil && (*patch.Year < minYear || *patch.Year > maxYear) {
		return apperrors.NewValidationError(fmt.Sprintf("year must be between %d and %d", minYear, maxYear))
	}
	if patch.Mileage != nil && *patch.Mileage < 0 {
		return apperrors.NewValidationError("mileage cannot be negative")
	}
	return nil
}
