package models

import (
	"fmt"
	"strings"
	"time"
)

type BookingStatus string

const (
	StatusPending        BookingStatus = "pending"
	StatusWaitingPayment BookingStatus = "waiting_payment"
	StatusConfirmed      BookingStatus = "confirmed"
	StatusActive         BookingStatus = "active"
	StatusCompleted      BookingStatus = "completed"
	StatusCancelled      BookingStatus = "cancelled"
)

var bookingStatuses = []BookingStatus{
	StatusPending,
	StatusWaitingPayment,
	StatusConfirmed,
	StatusActive,
	StatusCompleted,
	StatusCancelled,
}

func (s BookingStatus) Valid() bool {
	for _, v := range bookingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseBookingStatus normalizes a raw status string coming from the API or the
// sync queue. Unknown values are rejected here so the calendar never sees them.
func ParseBookingStatus(raw string) (BookingStatus, error) {
	s := BookingStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("unknown booking status %q", raw)
	}
	return s, nil
}

type Booking struct {
	ID           uint          `gorm:"primaryKey;autoIncrement:false" json:"id"`
	VehicleID    uint          `gorm:"not null;index" json:"vehicle_id"`
	UnitID       *uint         `gorm:"index" json:"unit_id,omitempty"`
	Reference    string        `gorm:"type:varchar(64)" json:"reference"`
	CustomerName string        `gorm:"type:varchar(255)" json:"customer_name"`
	PickupDate   time.Time     `gorm:"not null;index" json:"pickup_date"`
	DropoffDate  time.Time     `gorm:"not null;index" json:"dropoff_date"`
	Status       BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
