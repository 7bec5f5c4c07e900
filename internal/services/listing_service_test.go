package services

import (
	"context"
	"path/filepath"
	"testing"

	"autokomis/backoffice/internal/apperrors"
	"autokomis/backoffice/internal/models/dtos"
	"autokomis/backoffice/internal/store/filestore"
)

func newTestService(t *testing.T) *ListingService {
	t.Helper()
	return NewListingService(filestore.New(filepath.Join(t.TempDir(), "cars.json"), ""))
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func minimalCar() *dtos.CarPatch {
	return &dtos.CarPatch{
		Title:   strPtr("Test"),
		Year:    intPtr(2020),
		Mileage: intPtr(1000),
		Engine:  strPtr("1.0"),
	}
}

func TestCreateAssignsIDAndDefaults(t *testing.T) {
	svc := newTestService(t)

	car, err := svc.Create(context.Background(), minimalCar())
	if err != nil {
		t.Fatal(err)
	}

	if car.ID == "" {
		t.Error("expected generated id")
	}
	if car.Status != "" {
		t.Errorf("expected default status unset, got %q", car.Status)
	}
	if car.Images == nil || len(car.Images) != 0 {
		t.Errorf("expected empty images, got %v", car.Images)
	}
	if car.CreatedAt.IsZero() || car.UpdatedAt.IsZero() {
		t.Error("expected timestamps assigned")
	}
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	svc := newTestService(t)

	cases := []struct {
		name  string
		patch *dtos.CarPatch
	}{
		{"missing title", &dtos.CarPatch{Year: intPtr(2020), Mileage: intPtr(0), Engine: strPtr("1.0")}},
		{"missing engine", &dtos.CarPatch{Title: strPtr("T"), Year: intPtr(2020), Mileage: intPtr(0)}},
		{"missing year", &dtos.CarPatch{Title: strPtr("T"), Mileage: intPtr(0), Engine: strPtr("1.0")}},
		{"missing mileage", &dtos.CarPatch{Title: strPtr("T"), Year: intPtr(2020), Engine: strPtr("1.0")}},
		{"year too old", &dtos.CarPatch{Title: strPtr("T"), Year: intPtr(1900), Mileage: intPtr(0), Engine: strPtr("1.0")}},
		{"year too new", &dtos.CarPatch{Title: strPtr("T"), Year: intPtr(2100), Mileage: intPtr(0), Engine: strPtr("1.0")}},
		{"negative mileage", &dtos.CarPatch{Title: strPtr("T"), Year: intPtr(2020), Mileage: intPtr(-5), Engine: strPtr("1.0")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.patch)
			if !apperrors.IsCode(err, apperrors.CodeValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestMarkSoldIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, minimalCar())
	if err != nil {
		t.Fatal(err)
	}

	first, err := svc.SetStatus(ctx, created.ID, "sold")
	if err != nil {
		t.Fatal(err)
	}
	if first.Status != "sold" {
		t.Fatalf("expected sold, got %q", first.Status)
	}

	second, err := svc.SetStatus(ctx, created.ID, "sold")
	if err != nil {
		t.Fatalf("second markSold must be a no-op success, got %v", err)
	}
	if second.Status != "sold" {
		t.Errorf("expected sold after repeat, got %q", second.Status)
	}
}

func TestRestoreIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, _ := svc.Create(ctx, minimalCar())
	if _, err := svc.SetStatus(ctx, created.ID, "sold"); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		car, err := svc.SetStatus(ctx, created.ID, "active")
		if err != nil {
			t.Fatalf("restore %d failed: %v", i+1, err)
		}
		if car.Status != "active" {
			t.Errorf("expected active, got %q", car.Status)
		}
	}
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	svc := newTestService(t)
	created, _ := svc.Create(context.Background(), minimalCar())

	_, err := svc.SetStatus(context.Background(), created.ID, "reserved")
	if !apperrors.IsCode(err, apperrors.CodeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestSoldBadgeAndStatusAreOrthogonal(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, _ := svc.Create(ctx, minimalCar())
	if _, err := svc.SetStatus(ctx, created.ID, "active"); err != nil {
		t.Fatal(err)
	}

	badged, err := svc.SetSoldBadge(ctx, created.ID, true)
	if err != nil {
		t.Fatal(err)
	}
	if badged.Status != "active" {
		t.Errorf("soldBadge toggle changed status to %q", badged.Status)
	}
	if !badged.SoldBadge {
		t.Error("expected soldBadge true")
	}

	sold, err := svc.SetStatus(ctx, created.ID, "sold")
	if err != nil {
		t.Fatal(err)
	}
	if !sold.SoldBadge {
		t.Error("status transition changed soldBadge")
	}
}

func TestUpdateMergesWithoutTouchingIdentity(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, _ := svc.Create(ctx, minimalCar())

	updated, err := svc.Update(ctx, created.ID, &dtos.CarPatch{
		Brand:      strPtr("Audi"),
		FirstOwner: boolPtr(true),
	})
	if err != nil {
		t.Fatal(err)
	}

	if updated.ID != created.ID {
		t.Error("id must be immutable")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("createdAt must be preserved")
	}
	if updated.Brand != "Audi" || !updated.FirstOwner {
		t.Errorf("patch not applied: %+v", updated)
	}
}

func TestDeleteUnknownIDReturnsNotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.Delete(context.Background(), "ghost")
	if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}
