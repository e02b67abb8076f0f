package models

import (
	"time"

	"gorm.io/datatypes"
)

type Vehicle struct {
	ID           uint                        `gorm:"primaryKey" json:"id"`
	Make         string                      `gorm:"type:varchar(100);not null" json:"make"`
	Model        string                      `gorm:"type:varchar(100);not null" json:"model"`
	Year         int                         `json:"year"`
	Category     string                      `gorm:"type:varchar(50);index" json:"category"`
	Transmission string                      `gorm:"type:varchar(20)" json:"transmission"`
	FuelType     string                      `gorm:"type:varchar(20)" json:"fuel_type"`
	Seats        int                         `json:"seats"`
	DailyRate    float64                     `gorm:"not null" json:"daily_rate"`
	Location     string                      `gorm:"type:varchar(100)" json:"location"`
	Features     datatypes.JSONSlice[string] `json:"features"`
	IsActive     bool                        `gorm:"not null" json:"is_active"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
}

// DisplayName is what the cars listing shows and sorts by.
func (v Vehicle) DisplayName() string {
	return v.Make + " " + v.Model
}
