package common

import (
	"context"
	"errors"
	"testing"
	"time"

	"autokomis/backoffice/internal/models/entities"
)

func testCache() *ListingCache {
	return NewListingCache(NewCacheService(60, 600), time.Minute)
}

func loaderReturning(cars []entities.Car) func(context.Context) ([]entities.Car, error) {
	return func(ctx context.Context) ([]entities.Car, error) {
		return cars, nil
	}
}

func TestLoadCallsLoaderOnceWhileWarm(t *testing.T) {
	lc := testCache()
	calls := 0
	loader := func(ctx context.Context) ([]entities.Car, error) {
		calls++
		return []entities.Car{{ID: "a"}}, nil
	}

	for i := 0; i < 3; i++ {
		cars, err := lc.Load(context.Background(), loader)
		if err != nil {
			t.Fatal(err)
		}
		if len(cars) != 1 {
			t.Fatalf("expected 1 car, got %d", len(cars))
		}
	}

	if calls != 1 {
		t.Errorf("expected a single loader call, got %d", calls)
	}
}

func TestLoadPropagatesLoaderError(t *testing.T) {
	lc := testCache()
	wantErr := errors.New("backend down")

	_, err := lc.Load(context.Background(), func(ctx context.Context) ([]entities.Car, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected loader error, got %v", err)
	}
}

func TestUpsertLocalReplacesExistingEntry(t *testing.T) {
	lc := testCache()
	lc.Load(context.Background(), loaderReturning([]entities.Car{
		{ID: "a", Title: "old"},
		{ID: "b", Title: "other"},
	}))

	lc.UpsertLocal(entities.Car{ID: "a", Title: "new"})

	cars, _ := lc.Load(context.Background(), loaderReturning(nil))
	if len(cars) != 2 {
		t.Fatalf("expected 2 cars, got %d", len(cars))
	}
	for _, c := range cars {
		if c.ID == "a" && c.Title != "new" {
			t.Errorf("expected replaced entry, got %q", c.Title)
		}
		if c.ID == "a" && c.UpdatedAt.IsZero() {
			t.Error("expected fresh updatedAt stamp")
		}
	}
}

func TestUpsertLocalPrependsNewEntry(t *testing.T) {
	lc := testCache()
	lc.Load(context.Background(), loaderReturning([]entities.Car{{ID: "a"}}))

	lc.UpsertLocal(entities.Car{ID: "fresh"})

	cars, _ := lc.Load(context.Background(), loaderReturning(nil))
	if len(cars) != 2 || cars[0].ID != "fresh" {
		t.Errorf("expected new entry first, got %v", cars)
	}
}

func TestUpsertLocalOnColdCacheStaysCold(t *testing.T) {
	lc := testCache()

	lc.UpsertLocal(entities.Car{ID: "a"})

	calls := 0
	lc.Load(context.Background(), func(ctx context.Context) ([]entities.Car, error) {
		calls++
		return nil, nil
	})
	if calls != 1 {
		t.Error("expected cold cache to hit loader on next Load")
	}
}

func TestRemoveLocalEvictsEntry(t *testing.T) {
	lc := testCache()
	lc.Load(context.Background(), loaderReturning([]entities.Car{{ID: "a"}, {ID: "b"}}))

	lc.RemoveLocal("a")

	cars, _ := lc.Load(context.Background(), loaderReturning(nil))
	if len(cars) != 1 || cars[0].ID != "b" {
		t.Errorf("expected only b left, got %v", cars)
	}
}

func TestInvalidateForcesReload(t *testing.T) {
	lc := testCache()
	lc.Load(context.Background(), loaderReturning([]entities.Car{{ID: "a"}}))

	lc.Invalidate()

	cars, err := lc.Load(context.Background(), loaderReturning([]entities.Car{{ID: "x"}, {ID: "y"}}))
	if err != nil {
		t.Fatal(err)
	}
	if len(cars) != 2 {
		t.Errorf("expected rebuilt collection, got %v", cars)
	}
}
