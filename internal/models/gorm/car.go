package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// StringList stores an ordered string slice as a JSON column. It keeps the
// same representation under Postgres (jsonb) and the sqlite test driver.
type StringList []string

// Scan implements the sql.Scanner interface for StringList
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*l = StringList{}
		return nil
	}

	var result []string
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}

	*l = result
	return nil
}

// Value implements the driver.Valuer interface for StringList
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal([]string(l))
}

// Car is the backend row shape: snake_case columns in the cars table and the
// snake_case wire shape the flat-file store writes to disk.
type Car struct {
	ID                string     `gorm:"column:id;primaryKey" json:"id"`
	Title             string     `gorm:"column:title" json:"title"`
	Brand             string     `gorm:"column:brand" json:"brand,omitempty"`
	Model             string     `gorm:"column:model" json:"model,omitempty"`
	Year              int        `gorm:"column:year" json:"year"`
	Mileage           int        `gorm:"column:mileage" json:"mileage"`
	Engine            string     `gorm:"column:engine" json:"engine"`
	EngineCapacityCcm int        `gorm:"column:engine_capacity_ccm" json:"engine_capacity_ccm,omitempty"`
	PowerKw           int        `gorm:"column:power_kw" json:"power_kw,omitempty"`
	FuelType          string     `gorm:"column:fuel_type" json:"fuel_type,omitempty"`
	Transmission      string     `gorm:"column:transmission" json:"transmission,omitempty"`
	Drivetrain        string     `gorm:"column:drivetrain" json:"drivetrain,omitempty"`
	BodyType          string     `gorm:"column:body_type" json:"body_type,omitempty"`
	Condition         string     `gorm:"column:condition" json:"condition,omitempty"`
	Origin            string     `gorm:"column:origin" json:"origin,omitempty"`
	RegisteredIn      string     `gorm:"column:registered_in" json:"registered_in,omitempty"`
	SaleDocument      string     `gorm:"column:sale_document" json:"sale_document,omitempty"`
	Color             string     `gorm:"column:color" json:"color,omitempty"`
	Doors             int        `gorm:"column:doors" json:"doors,omitempty"`
	Seats             int        `gorm:"column:seats" json:"seats,omitempty"`
	PriceText         string     `gorm:"column:price_text" json:"price_text,omitempty"`
	Status            string     `gorm:"column:status" json:"status,omitempty"`
	SoldBadge         bool       `gorm:"column:sold_badge" json:"sold_badge"`
	FirstOwner        bool       `gorm:"column:first_owner" json:"first_owner"`
	MainImagePath     string     `gorm:"column:main_image_path" json:"main_image_path,omitempty"`
	Images            StringList `gorm:"column:images;type:jsonb" json:"images"`
	VideoURL          string     `gorm:"column:video_url" json:"video_url,omitempty"`
	Equipment         StringList `gorm:"column:equipment;type:jsonb" json:"equipment"`
	Description       string     `gorm:"column:description" json:"description,omitempty"`
	CreatedAt         time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Car) TableName() string {
	return "cars"
}
