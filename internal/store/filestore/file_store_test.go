package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"autokomis/backoffice/internal/apperrors"
	"autokomis/backoffice/internal/models/dtos"
	"autokomis/backoffice/internal/models/entities"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "cars.json"), "")
}

func seedCar(t *testing.T, s *FileStore, id string, createdAt time.Time) *entities.Car {
	t.Helper()
	car, err := s.Insert(context.Background(), &entities.Car{
		ID:        id,
		Title:     "Car " + id,
		Year:      2020,
		Mileage:   1000,
		Engine:    "1.6",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	})
	if err != nil {
		t.Fatalf("insert %s: %v", id, err)
	}
	return car
}

func TestReadAllLenientOnCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cars.json")
	if err := os.WriteFile(path, []byte("{not json["), 0644); err != nil {
		t.Fatal(err)
	}

	s := New(path, "")
	cars, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("expected lenient read, got error %v", err)
	}
	if len(cars) != 0 {
		t.Errorf("expected empty collection, got %d records", len(cars))
	}
}

func TestCreatesEmptyFileWhenMissing(t *testing.T) {
	s := newTestStore(t)

	cars, err := s.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(cars) != 0 {
		t.Errorf("expected empty collection, got %d", len(cars))
	}
	if _, err := os.Stat(s.path); err != nil {
		t.Errorf("expected backing file to exist: %v", err)
	}
}

func TestSeedsFromSeedFile(t *testing.T) {
	dir := t.TempDir()
	seedPath := filepath.Join(dir, "seed.json")
	seed := `[{"id":"seed-1","title":"Seed Car","year":2018,"mileage":50000,"engine":"2.0","images":[],"equipment":[],"created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-01T00:00:00Z"}]`
	if err := os.WriteFile(seedPath, []byte(seed), 0644); err != nil {
		t.Fatal(err)
	}

	s := New(filepath.Join(dir, "cars.json"), seedPath)
	cars, err := s.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(cars) != 1 || cars[0].ID != "seed-1" {
		t.Errorf("expected seeded record, got %+v", cars)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	seedCar(t, s, "old", base)
	seedCar(t, s, "newest", base.Add(48*time.Hour))
	seedCar(t, s, "middle", base.Add(24*time.Hour))

	cars, err := s.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"newest", "middle", "old"}
	for i, id := range want {
		if cars[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, cars[i].ID)
		}
	}
}

func TestInsertDuplicateIDConflicts(t *testing.T) {
	s := newTestStore(t)
	seedCar(t, s, "dup", time.Now())

	_, err := s.Insert(context.Background(), &entities.Car{ID: "dup", Title: "again"})
	if !apperrors.IsCode(err, apperrors.CodeConflict) {
		t.Errorf("expected conflict error, got %v", err)
	}
}

func TestUpdateMergesAndRefreshesTimestamp(t *testing.T) {
	s := newTestStore(t)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seedCar(t, s, "u1", created)

	price := "45 000 zł"
	updated, err := s.UpdateByID(context.Background(), "u1", &dtos.CarPatch{PriceText: &price})
	if err != nil {
		t.Fatal(err)
	}

	if updated.PriceText != price {
		t.Errorf("expected patched price, got %q", updated.PriceText)
	}
	if updated.Title != "Car u1" {
		t.Errorf("unpatched field changed: %q", updated.Title)
	}
	if !updated.UpdatedAt.After(created) {
		t.Errorf("expected refreshed updatedAt, got %v", updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(created) {
		t.Errorf("createdAt must be preserved, got %v", updated.CreatedAt)
	}
}

func TestUpdateUnknownIDNotFound(t *testing.T) {
	s := newTestStore(t)

	title := "x"
	_, err := s.UpdateByID(context.Background(), "ghost", &dtos.CarPatch{Title: &title})
	if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestDeleteUnknownIDLeavesCollectionUnchanged(t *testing.T) {
	s := newTestStore(t)
	seedCar(t, s, "keep", time.Now())

	err := s.DeleteByID(context.Background(), "ghost")
	if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Errorf("expected not found, got %v", err)
	}

	cars, _ := s.List(context.Background())
	if len(cars) != 1 {
		t.Errorf("collection changed on failed delete: %d records", len(cars))
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	s := newTestStore(t)
	seedCar(t, s, "gone", time.Now())

	if err := s.DeleteByID(context.Background(), "gone"); err != nil {
		t.Fatal(err)
	}

	_, err := s.GetByID(context.Background(), "gone")
	if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Errorf("expected not found after delete, got %v", err)
	}
}

func TestSequentialPatchesBothPersist(t *testing.T) {
	s := newTestStore(t)
	seedCar(t, s, "d1", time.Now())

	color := "czerwony"
	if _, err := s.UpdateByID(context.Background(), "d1", &dtos.CarPatch{Color: &color}); err != nil {
		t.Fatal(err)
	}
	doors := 3
	if _, err := s.UpdateByID(context.Background(), "d1", &dtos.CarPatch{Doors: &doors}); err != nil {
		t.Fatal(err)
	}

	car, err := s.GetByID(context.Background(), "d1")
	if err != nil {
		t.Fatal(err)
	}
	if car.Color != color || car.Doors != doors {
		t.Errorf("expected both updates persisted, got color=%q doors=%d", car.Color, car.Doors)
	}
}
