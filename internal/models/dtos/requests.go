package dtos

import "autokomis/backoffice/internal/models/entities"

// CarPatch carries a full or partial set of mutable car fields. Nil pointers
// mean "leave unchanged"; id and createdAt are never patchable.
type CarPatch struct {
	Title             *string   `json:"title,omitempty"`
	Brand             *string   `json:"brand,omitempty"`
	Model             *string   `json:"model,omitempty"`
	Year              *int      `json:"year,omitempty"`
	Mileage           *int      `json:"mileage,omitempty"`
	Engine            *string   `json:"engine,omitempty"`
	EngineCapacityCcm *int      `json:"engineCapacityCcm,omitempty"`
	PowerKw           *int      `json:"powerKw,omitempty"`
	FuelType          *string   `json:"fuelType,omitempty"`
	Transmission      *string   `json:"transmission,omitempty"`
	Drivetrain        *string   `json:"drivetrain,omitempty"`
	BodyType          *string   `json:"bodyType,omitempty"`
	Condition         *string   `json:"condition,omitempty"`
	Origin            *string   `json:"origin,omitempty"`
	RegisteredIn      *string   `json:"registeredIn,omitempty"`
	SaleDocument      *string   `json:"saleDocument,omitempty"`
	Color             *string   `json:"color,omitempty"`
	Doors             *int      `json:"doors,omitempty"`
	Seats             *int      `json:"seats,omitempty"`
	PriceText         *string   `json:"priceText,omitempty"`
	Status            *string   `json:"status,omitempty"`
	SoldBadge         *bool     `json:"soldBadge,omitempty"`
	FirstOwner        *bool     `json:"firstOwner,omitempty"`
	MainImagePath     *string   `json:"mainImagePath,omitempty"`
	Images            *[]string `json:"images,omitempty"`
	VideoURL          *string   `json:"videoUrl,omitempty"`
	Equipment         *[]string `json:"equipment,omitempty"`
	Description       *string   `json:"description,omitempty"`
}

// Apply merges the set fields onto car. Enum narrowing happens later in the
// store mapper, not here.
func (p *CarPatch) Apply(car *entities.Car) {
	if p.Title != nil {
		car.Title = *p.Title
	}
	if p.Brand != nil {
		car.Brand = *p.Brand
	}
	if p.Model != nil {
		car.Model = *p.Model
	}
	if p.Year != nil {
		car.Year = *p.Year
	}
	if p.Mileage != nil {
		car.Mileage = *p.Mileage
	}
	if p.Engine != nil {
		car.Engine = *p.Engine
	}
	if p.EngineCapacityCcm != nil {
		car.EngineCapacityCcm = *p.EngineCapacityCcm
	}
	if p.PowerKw != nil {
		car.PowerKw = *p.PowerKw
	}
	if p.FuelType != nil {
		car.FuelType = *p.FuelType
	}
	if p.Transmission != nil {
		car.Transmission = *p.Transmission
	}
	if p.Drivetrain != nil {
		car.Drivetrain = *p.Drivetrain
	}
	if p.BodyType != nil {
		car.BodyType = *p.BodyType
	}
	if p.Condition != nil {
		car.Condition = *p.Condition
	}
	if p.Origin != nil {
		car.Origin = *p.Origin
	}
	if p.RegisteredIn != nil {
		car.RegisteredIn = *p.RegisteredIn
	}
	if p.SaleDocument != nil {
		car.SaleDocument = *p.SaleDocument
	}
	if p.Color != nil {
		car.Color = *p.Color
	}
	if p.Doors != nil {
		car.Doors = *p.Doors
	}
	if p.Seats != nil {
		car.Seats = *p.Seats
	}
	if p.PriceText != nil {
		car.PriceText = *p.PriceText
	}
	if p.Status != nil {
		car.Status = *p.Status
	}
	if p.SoldBadge != nil {
		car.SoldBadge = *p.SoldBadge
	}
	if p.FirstOwner != nil {
		car.FirstOwner = *p.FirstOwner
	}
	if p.MainImagePath != nil {
		car.MainImagePath = *p.MainImagePath
	}
	if p.Images != nil {
		car.Images = *p.Images
	}
	if p.VideoURL != nil {
		car.VideoURL = *p.VideoURL
	}
	if p.Equipment != nil {
		car.Equipment = *p.Equipment
	}
	if p.Description != nil {
		car.Description = *p.Description
	}
}

// SoldBadgeRequest toggles the cosmetic sold overlay on a listing.
type SoldBadgeRequest struct {
	SoldBadge *bool `json:"soldBadge"`
}

// StatusRequest drives the markSold/restore transition.
type StatusRequest struct {
	Status string `json:"status"`
}

// ContactLeadRequest is the public contact form payload.
type ContactLeadRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Message string  `json:"message"`
	CarID   *string `json:"carId,omitempty"`
}

// NewsletterRequest is the newsletter signup payload.
type NewsletterRequest struct {
	Email string `json:"email"`
}

// LoginRequest carries the admin panel password.
type LoginRequest struct {
	Password string `json:"password"`
}

// UploadTokenResponse is the presigned upload link payload.
type UploadTokenResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in"`
}

// UploadResponse is returned after a stored upload.
type UploadResponse struct {
	URL string `json:"url"`
}
