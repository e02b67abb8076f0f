package dto

import (
	"time"

	"github.com/cetler74/dbcars-sub001/internal/availability"
	"github.com/cetler74/dbcars-sub001/internal/models"
)

type BookingResponse struct {
	ID           uint                 `json:"id"`
	VehicleID    uint                 `json:"vehicle_id"`
	UnitID       *uint                `json:"unit_id,omitempty"`
	Reference    string               `json:"reference"`
	CustomerName string               `json:"customer_name"`
	PickupDate   time.Time            `json:"pickup_date"`
	DropoffDate  time.Time            `json:"dropoff_date"`
	Status       models.BookingStatus `json:"status"`
}

type NoteResponse struct {
	ID        uint            `json:"id"`
	VehicleID uint            `json:"vehicle_id"`
	UnitID    *uint           `json:"unit_id,omitempty"`
	NoteDate  string          `json:"note_date"`
	NoteType  models.NoteType `json:"note_type"`
	Note      string          `json:"note"`
}

type DayResponse struct {
	Date       string                 `json:"date"`
	Status     availability.DayStatus `json:"status"`
	StartTimes []string               `json:"start_times"`
	EndTimes   []string               `json:"end_times"`
	Notes      []NoteResponse         `json:"notes"`
	Bookings   []BookingResponse      `json:"bookings"`
}

type CalendarCell struct {
	DayResponse
	InMonth bool `json:"in_month"`
}

type CalendarResponse struct {
	VehicleID uint                           `json:"vehicle_id"`
	Year      int                            `json:"year"`
	Month     int                            `json:"month"`
	Weeks     [][]CalendarCell               `json:"weeks"`
	Summary   map[availability.DayStatus]int `json:"summary"`
}

type VehicleResponse struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Category     string   `json:"category"`
	Transmission string   `json:"transmission"`
	FuelType     string   `json:"fuel_type"`
	Seats        int      `json:"seats"`
	DailyRate    float64  `json:"daily_rate"`
	Location     string   `json:"location"`
	Features     []string `json:"features"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		VehicleID:    b.VehicleID,
		UnitID:       b.UnitID,
		Reference:    b.Reference,
		CustomerName: b.CustomerName,
		PickupDate:   b.PickupDate,
		DropoffDate:  b.DropoffDate,
		Status:       b.Status,
	}
}

func ToNoteResponse(n *models.AvailabilityNote) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		VehicleID: n.VehicleID,
		UnitID:    n.UnitID,
		NoteDate:  n.Date().Format(DateLayout),
		NoteType:  n.NoteType,
		Note:      n.Note,
	}
}

func ToDayResponse(info *availability.DayInfo) DayResponse {
	resp := DayResponse{
		Date:       info.Date.Format(DateLayout),
		Status:     info.Status,
		StartTimes: info.StartTimes,
		EndTimes:   info.EndTimes,
		Notes:      make([]NoteResponse, len(info.Notes)),
		Bookings:   make([]BookingResponse, len(info.Bookings)),
	}
	for i := range info.Notes {
		resp.Notes[i] = ToNoteResponse(&info.Notes[i])
	}
	for i := range info.Bookings {
		resp.Bookings[i] = ToBookingResponse(&info.Bookings[i])
	}
	return resp
}

func ToCalendarResponse(vehicleID uint, m *availability.Month) CalendarResponse {
	resp := CalendarResponse{
		VehicleID: vehicleID,
		Year:      m.Year,
		Month:     int(m.Month),
		Weeks:     make([][]CalendarCell, len(m.Weeks)),
		Summary:   m.StatusCounts(),
	}
	for i, week := range m.Weeks {
		cells := make([]CalendarCell, len(week))
		for j := range week {
			cells[j] = CalendarCell{DayResponse: ToDayResponse(&week[j].DayInfo), InMonth: week[j].InMonth}
		}
		resp.Weeks[i] = cells
	}
	return resp
}

func ToVehicleResponse(v *models.Vehicle) VehicleResponse {
	features := []string(v.Features)
	if features == nil {
		features = []string{}
	}
	return VehicleResponse{
		ID:           v.ID,
		Name:         v.DisplayName(),
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		Category:     v.Category,
		Transmission: v.Transmission,
		FuelType:     v.FuelType,
		Seats:        v.Seats,
		DailyRate:    v.DailyRate,
		Location:     v.Location,
		Features:     features,
	}
}
