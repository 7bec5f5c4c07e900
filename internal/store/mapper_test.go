package store

import (
	"reflect"
	"testing"
	"time"

	"autokomis/backoffice/internal/models/entities"
	gormModels "autokomis/backoffice/internal/models/gorm"
)

func fullCar() entities.Car {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return entities.Car{
		ID:                "car-1",
		Title:             "BMW 320d xDrive",
		Brand:             "BMW",
		Model:             "320d",
		Year:              2019,
		Mileage:           84000,
		Engine:            "2.0d 190KM",
		EngineCapacityCcm: 1995,
		PowerKw:           140,
		FuelType:          "diesel",
		Transmission:      "automatic",
		Drivetrain:        "awd",
		BodyType:          "sedan",
		Condition:         "very-good",
		Origin:            "germany",
		RegisteredIn:      "poland",
		SaleDocument:      "invoice-margin",
		Color:             "czarny",
		Doors:             4,
		Seats:             5,
		PriceText:         "99 900 zł",
		Status:            "active",
		SoldBadge:         false,
		FirstOwner:        true,
		MainImagePath:     "/uploads/bmw-front.jpg",
		Images:            []string{"/uploads/bmw-front.jpg", "/uploads/bmw-rear.jpg"},
		VideoURL:          "https://youtu.be/abc123",
		Equipment:         []string{"abs", "navigation", "heated-seats"},
		Description:       "Serwisowany w ASO.",
		CreatedAt:         created,
		UpdatedAt:         created.Add(time.Hour),
	}
}

func TestMapperRoundTrip(t *testing.T) {
	car := fullCar()

	got := FromRow(ToRow(car))

	if !reflect.DeepEqual(car, got) {
		t.Errorf("round trip mismatch:\nwant %+v\ngot  %+v", car, got)
	}
}

func TestMapperCoercesUnknownEnums(t *testing.T) {
	car := fullCar()
	car.FuelType = "not-a-real-type"
	car.Transmission = "triptronic-9000"
	car.Status = "pending"

	row := ToRow(car)

	if row.FuelType != "" {
		t.Errorf("expected unset fuel_type, got %q", row.FuelType)
	}
	if row.Transmission != "" {
		t.Errorf("expected unset transmission, got %q", row.Transmission)
	}
	if row.Status != "" {
		t.Errorf("expected unset status, got %q", row.Status)
	}
}

func TestMapperDropsUnknownEquipment(t *testing.T) {
	car := fullCar()
	car.Equipment = []string{"abs", "flux-capacitor", "navigation", "abs"}

	row := ToRow(car)

	want := []string{"abs", "navigation"}
	if !reflect.DeepEqual([]string(row.Equipment), want) {
		t.Errorf("expected %v, got %v", want, row.Equipment)
	}
}

func TestMapperDefaultsAbsentCollections(t *testing.T) {
	car := entities.Car{ID: "car-2", Title: "Test", UpdatedAt: time.Now()}

	row := ToRow(car)

	if row.Images == nil || len(row.Images) != 0 {
		t.Errorf("expected empty images, got %v", row.Images)
	}
	if row.Equipment == nil || len(row.Equipment) != 0 {
		t.Errorf("expected empty equipment, got %v", row.Equipment)
	}
}

func TestMapperStampsUpdatedAtWhenZero(t *testing.T) {
	car := entities.Car{ID: "car-3", Title: "Test"}

	before := time.Now().UTC()
	row := ToRow(car)
	after := time.Now().UTC()

	if row.UpdatedAt.Before(before) || row.UpdatedAt.After(after) {
		t.Errorf("expected updated_at stamped with current time, got %v", row.UpdatedAt)
	}
}

func TestFromRowNeverFabricatesID(t *testing.T) {
	row := gormModels.Car{Title: "orphan"}

	car := FromRow(row)

	if car.ID != "" {
		t.Errorf("expected empty id, got %q", car.ID)
	}
}
