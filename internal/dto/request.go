package dto

import "time"

const DateLayout = "2006-01-02"

type CreateNoteRequest struct {
	NoteDate string `json:"note_date" validate:"required,datetime=2006-01-02"`
	NoteType string `json:"note_type" validate:"required,oneof=maintenance blocked special"`
	Note     string `json:"note" validate:"max=2000"`
	UnitID   *uint  `json:"unit_id,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CreateVehicleRequest struct {
	Make         string   `json:"make" validate:"required,max=100"`
	Model        string   `json:"model" validate:"required,max=100"`
	Year         int      `json:"year" validate:"required,gte=1950,lte=2100"`
	Category     string   `json:"category" validate:"required,max=50"`
	Transmission string   `json:"transmission" validate:"required,oneof=manual automatic"`
	FuelType     string   `json:"fuel_type" validate:"required,oneof=petrol diesel hybrid electric"`
	Seats        int      `json:"seats" validate:"required,gt=0,lte=60"`
	DailyRate    float64  `json:"daily_rate" validate:"required,gt=0"`
	Location     string   `json:"location" validate:"max=100"`
	Features     []string `json:"features" validate:"dive,required,max=50"`
}

// BookingEvent is the payload of booking.* messages from the rental backend.
// Older producers send the status as booking_status.
type BookingEvent struct {
	ID            uint      `json:"id"`
	VehicleID     uint      `json:"vehicle_id"`
	UnitID        *uint     `json:"unit_id,omitempty"`
	Reference     string    `json:"reference"`
	CustomerName  string    `json:"customer_name"`
	PickupDate    time.Time `json:"pickup_date"`
	DropoffDate   time.Time `json:"dropoff_date"`
	Status        string    `json:"status"`
	BookingStatus string    `json:"booking_status"`
}

func (e BookingEvent) RawStatus() string {
	if e.Status != "" {
		return e.Status
	}
	return e.BookingStatus
}
