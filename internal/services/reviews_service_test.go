package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"autokomis/backoffice/internal/common"
)

type fakePlaces struct {
	calls   int
	details *common.PlaceDetails
	err     error
}

func (f *fakePlaces) FetchDetails() (*common.PlaceDetails, error) {
	f.calls++
	return f.details, f.err
}

func TestReviewsGetCachesResult(t *testing.T) {
	fake := &fakePlaces{details: &common.PlaceDetails{Rating: 4.8, UserRatingsTotal: 120}}
	svc := NewReviewsService(common.NewCacheService(60, 600), fake, time.Hour)

	for i := 0; i < 3; i++ {
		details, err := svc.Get(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if details.Rating != 4.8 {
			t.Errorf("unexpected rating %v", details.Rating)
		}
	}

	if fake.calls != 1 {
		t.Errorf("expected single upstream call, got %d", fake.calls)
	}
}

func TestReviewsGetPropagatesColdFetchError(t *testing.T) {
	fake := &fakePlaces{err: errors.New("quota exceeded")}
	svc := NewReviewsService(common.NewCacheService(60, 600), fake, time.Hour)

	if _, err := svc.Get(context.Background()); err == nil {
		t.Error("expected error from cold fetch")
	}
}

func TestReviewsRefreshKeepsStaleCopyOnFailure(t *testing.T) {
	cache := common.NewCacheService(60, 600)
	fake := &fakePlaces{details: &common.PlaceDetails{Rating: 4.5}}
	svc := NewReviewsService(cache, fake, time.Hour)

	if _, err := svc.Get(context.Background()); err != nil {
		t.Fatal(err)
	}

	fake.err = errors.New("upstream down")
	if err := svc.Refresh(context.Background()); err == nil {
		t.Error("expected refresh error")
	}

	details, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("expected stale copy to survive, got %v", err)
	}
	if details.Rating != 4.5 {
		t.Errorf("stale copy lost: %v", details.Rating)
	}
}
