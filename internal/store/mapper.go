package store

import (
	"time"

	"autokomis/backoffice/internal/constants"
	"autokomis/backoffice/internal/models/entities"
	gormModels "autokomis/backoffice/internal/models/gorm"
)

// The mapper is the single translation point between the canonical camelCase
// record and the snake_case backend row. It never returns an error: unknown
// enum values are narrowed to unset and unknown equipment keys are dropped.
// Fields outside the declared shape do not survive a round trip; that
// narrowing is deliberate.

// ToRow converts a canonical record to the backend row shape. Absent slices
// become empty, and a zero updated_at is stamped with the current UTC time.
func ToRow(car entities.Car) gormModels.Car {
	row := gormModels.Car{
		ID:                car.ID,
		Title:             car.Title,
		Brand:             car.Brand,
		Model:             car.Model,
		Year:              car.Year,
		Mileage:           car.Mileage,
		Engine:            car.Engine,
		EngineCapacityCcm: car.EngineCapacityCcm,
		PowerKw:           car.PowerKw,
		FuelType:          constants.CoerceEnum(car.FuelType, constants.FuelTypes),
		Transmission:      constants.CoerceEnum(car.Transmission, constants.Transmissions),
		Drivetrain:        constants.CoerceEnum(car.Drivetrain, constants.Drivetrains),
		BodyType:          constants.CoerceEnum(car.BodyType, constants.BodyTypes),
		Condition:         constants.CoerceEnum(car.Condition, constants.Conditions),
		Origin:            constants.CoerceEnum(car.Origin, constants.Origins),
		RegisteredIn:      constants.CoerceEnum(car.RegisteredIn, constants.RegisteredInValues),
		SaleDocument:      constants.CoerceEnum(car.SaleDocument, constants.SaleDocuments),
		Color:             car.Color,
		Doors:             car.Doors,
		Seats:             car.Seats,
		PriceText:         car.PriceText,
		Status:            constants.CoerceStatus(car.Status),
		SoldBadge:         car.SoldBadge,
		FirstOwner:        car.FirstOwner,
		MainImagePath:     car.MainImagePath,
		Images:            gormModels.StringList(car.Images),
		VideoURL:          car.VideoURL,
		Equipment:         gormModels.StringList(constants.FilterEquipment(car.Equipment)),
		Description:       car.Description,
		CreatedAt:         car.CreatedAt,
		UpdatedAt:         car.UpdatedAt,
	}

	if row.Images == nil {
		row.Images = gormModels.StringList{}
	}
	if row.Equipment == nil {
		row.Equipment = gormModels.StringList{}
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = time.Now().UTC()
	}

	return row
}

// FromRow converts a backend row back to the canonical record. It never
// fabricates required fields; a row without an id is the caller's problem.
func FromRow(row gormModels.Car) entities.Car {
	car := entities.Car{
		ID:                row.ID,
		Title:             row.Title,
		Brand:             row.Brand,
		Model:             row.Model,
		Year:              row.Year,
		Mileage:           row.Mileage,
		Engine:            row.Engine,
		EngineCapacityCcm: row.EngineCapacityCcm,
		PowerKw:           row.PowerKw,
		FuelType:          constants.CoerceEnum(row.FuelType, constants.FuelTypes),
		Transmission:      constants.CoerceEnum(row.Transmission, constants.Transmissions),
		Drivetrain:        constants.CoerceEnum(row.Drivetrain, constants.Drivetrains),
		BodyType:          constants.CoerceEnum(row.BodyType, constants.BodyTypes),
		Condition:         constants.CoerceEnum(row.Condition, constants.Conditions),
		Origin:            constants.CoerceEnum(row.Origin, constants.Origins),
		RegisteredIn:      constants.CoerceEnum(row.RegisteredIn, constants.RegisteredInValues),
		SaleDocument:      constants.CoerceEnum(row.SaleDocument, constants.SaleDocuments),
		Color:             row.Color,
		Doors:             row.Doors,
		Seats:             row.Seats,
		PriceText:         row.PriceText,
		Status:            constants.CoerceStatus(row.Status),
		SoldBadge:         row.SoldBadge,
		FirstOwner:        row.FirstOwner,
		MainImagePath:     row.MainImagePath,
		Images:            []string(row.Images),
		VideoURL:          row.VideoURL,
		Equipment:         constants.FilterEquipment([]string(row.Equipment)),
		Description:       row.Description,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}

	if car.Images == nil {
		car.Images = []string{}
	}
	if car.Equipment == nil {
		car.Equipment = []string{}
	}

	return car
}
