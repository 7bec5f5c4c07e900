package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	gormModels "autokomis/backoffice/internal/models/gorm"
)

var PgDB *gorm.DB

func InitPostgresORM() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsnFromEnv()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := db.AutoMigrate(&gormModels.Car{}); err != nil {
		return nil, fmt.Errorf("failed to migrate cars table: %w", err)
	}

	PgDB = db
	return db, nil
}
