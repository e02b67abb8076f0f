package database

import (
	"log"

	"github.com/cetler74/dbcars-sub001/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Vehicle{}, &models.Booking{}, &models.AvailabilityNote{}); err != nil {
		return err
	}

	// Calendar lookups scan bookings of one vehicle by date window.
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_booking_vehicle_window
		ON bookings (vehicle_id, pickup_date, dropoff_date)
	`).Error
}
