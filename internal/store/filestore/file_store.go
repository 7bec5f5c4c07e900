package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"autokomis/backoffice/internal/apperrors"
	"autokomis/backoffice/internal/logging"
	"autokomis/backoffice/internal/models/dtos"
	"autokomis/backoffice/internal/models/entities"
	gormModels "autokomis/backoffice/internal/models/gorm"
	"autokomis/backoffice/internal/store"
)

// FileStore keeps the listing collection as a single JSON array of backend
// rows on local disk. Every mutation is a full-file rewrite; the mutex only
// serializes writers inside this process. It is the dev/fallback backend for
// a single-admin deployment, not a multi-writer store.
type FileStore struct {
	path     string
	seedPath string
	mu       sync.Mutex
}

var _ store.CarStore = (*FileStore)(nil)

// New creates a file store over path. When the file is missing it is created
// on first read, seeded from seedPath if that file exists.
func New(path, seedPath string) *FileStore {
	return &FileStore{path: path, seedPath: seedPath}
}

// readAll loads the whole collection. The read is lenient: a missing or
// corrupted file yields an empty collection, never an error to the caller.
func (s *FileStore) readAll() []gormModels.Car {
	if err := s.ensureFile(); err != nil {
		logging.Warn("car file unavailable", "path", s.path, "error", err.Error())
		return []gormModels.Car{}
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		logging.Warn("car file read failed", "path", s.path, "error", err.Error())
		return []gormModels.Car{}
	}

	var rows []gormModels.Car
	if err := json.Unmarshal(data, &rows); err != nil {
		logging.Warn("car file is not valid JSON, starting empty", "path", s.path, "error", err.Error())
		return []gormModels.Car{}
	}

	return rows
}

// writeAll serializes the full collection and overwrites the file. There is
// no append path.
func (s *FileStore) writeAll(rows []gormModels.Car) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cars: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) ensureFile() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	if s.seedPath != "" {
		if seed, err := os.ReadFile(s.seedPath); err == nil {
			logging.Info("seeding car file", "path", s.path, "seed", s.seedPath)
			return os.WriteFile(s.path, seed, 0644)
		}
	}

	return os.WriteFile(s.path, []byte("[]"), 0644)
}

func (s *FileStore) List(ctx context.Context) ([]entities.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.readAll()
	cars := make([]entities.Car, 0, len(rows))
	for _, row := range rows {
		cars = append(cars, store.FromRow(row))
	}

	sort.SliceStable(cars, func(i, j int) bool {
		return cars[i].CreatedAt.After(cars[j].CreatedAt)
	})

	return cars, nil
}

func (s *FileStore) GetByID(ctx context.Context, id string) (*entities.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.readAll() {
		if row.ID == id {
			car := store.FromRow(row)
			return &car, nil
		}
	}
	return nil, apperrors.NewNotFoundError("car not found: " + id)
}

func (s *FileStore) Insert(ctx context.Context, car *entities.Car) (*entities.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.readAll()
	for _, row := range rows {
		if row.ID == car.ID {
			return nil, apperrors.NewConflictError("duplicate car id: " + car.ID)
		}
	}

	rows = append(rows, store.ToRow(*car))
	if err := s.writeAll(rows); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	stored := store.FromRow(rows[len(rows)-1])
	return &stored, nil
}

func (s *FileStore) UpdateByID(ctx context.Context, id string, patch *dtos.CarPatch) (*entities.Car, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.readAll()
	for i, row := range rows {
		if row.ID != id {
			continue
		}

		car := store.FromRow(row)
		patch.Apply(&car)
		car.UpdatedAt = time.Time{} // mapper stamps a fresh timestamp

		rows[i] = store.ToRow(car)
		if err := s.writeAll(rows); err != nil {
			return nil, apperrors.NewStorageError(err)
		}

		updated := store.FromRow(rows[i])
		return &updated, nil
	}

	return nil, apperrors.NewNotFoundError("car not found: " + id)
}

func (s *FileStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.readAll()
	kept := rows[:0]
	found := false
	for _, row := range rows {
		if row.ID == id {
			found = true
			continue
		}
		kept = append(kept, row)
	}

	if !found {
		return apperrors.NewNotFoundError("car not found: " + id)
	}

	if err := s.writeAll(kept); err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}
