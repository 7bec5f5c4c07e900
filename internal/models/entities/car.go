package entities

import (
	"time"

	"autokomis/backoffice/internal/constants"
)

// Car is the canonical in-memory listing record. JSON tags use the camelCase
// shape the admin panel and public pages consume; the snake_case backend
// shape lives in models/gorm and is produced by the store mapper.
type Car struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Brand             string    `json:"brand,omitempty"`
	Model             string    `json:"model,omitempty"`
	Year              int       `json:"year"`
	Mileage           int       `json:"mileage"`
	Engine            string    `json:"engine"`
	EngineCapacityCcm int       `json:"engineCapacityCcm,omitempty"`
	PowerKw           int       `json:"powerKw,omitempty"`
	FuelType          string    `json:"fuelType,omitempty"`
	Transmission      string    `json:"transmission,omitempty"`
	Drivetrain        string    `json:"drivetrain,omitempty"`
	BodyType          string    `json:"bodyType,omitempty"`
	Condition         string    `json:"condition,omitempty"`
	Origin            string    `json:"origin,omitempty"`
	RegisteredIn      string    `json:"registeredIn,omitempty"`
	SaleDocument      string    `json:"saleDocument,omitempty"`
	Color             string    `json:"color,omitempty"`
	Doors             int       `json:"doors,omitempty"`
	Seats             int       `json:"seats,omitempty"`
	PriceText         string    `json:"priceText,omitempty"`
	Status            string    `json:"status,omitempty"`
	SoldBadge         bool      `json:"soldBadge"`
	FirstOwner        bool      `json:"firstOwner"`
	MainImagePath     string    `json:"mainImagePath,omitempty"`
	Images            []string  `json:"images"`
	VideoURL          string    `json:"videoUrl,omitempty"`
	Equipment         []string  `json:"equipment"`
	Description       string    `json:"description,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// IsDisplayedSold returns the public active-vs-sold bucketing: status wins
// when set, the cosmetic badge is the fallback.
func (c *Car) IsDisplayedSold() bool {
	if c.Status != "" {
		return c.Status == string(constants.StatusSold)
	}
	return c.SoldBadge
}

// CoverImage returns the explicit main image when set, otherwise the first
// element of the ordered image list.
func (c *Car) CoverImage() string {
	if c.MainImagePath != "" {
		return c.MainImagePath
	}
	if len(c.Images) > 0 {
		return c.Images[0]
	}
	return ""
}
