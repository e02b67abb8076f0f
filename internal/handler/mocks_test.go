package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/cetler74/dbcars-sub001/internal/availability"
	"github.com/cetler74/dbcars-sub001/internal/middleware"
	"github.com/cetler74/dbcars-sub001/internal/models"
	"github.com/cetler74/dbcars-sub001/internal/service"
	"github.com/labstack/echo/v4"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = middleware.NewValidator()
	return e
}

func newContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// --- Mock AvailabilityService ---

type mockAvailabilityService struct {
	monthFn func(ctx context.Context, vehicleID uint, year int, month time.Month, unitID *uint) (*availability.Month, error)
	dayFn   func(ctx context.Context, vehicleID uint, date time.Time, unitID *uint) (*availability.DayInfo, error)
}

func (m *mockAvailabilityService) MonthCalendar(ctx context.Context, vehicleID uint, year int, month time.Month, unitID *uint) (*availability.Month, error) {
	return m.monthFn(ctx, vehicleID, year, month, unitID)
}
func (m *mockAvailabilityService) Day(ctx context.Context, vehicleID uint, date time.Time, unitID *uint) (*availability.DayInfo, error) {
	return m.dayFn(ctx, vehicleID, date, unitID)
}

// --- Mock NoteService ---

type mockNoteService struct {
	createFn func(ctx context.Context, note *models.AvailabilityNote) error
	listFn   func(ctx context.Context, vehicleID uint, from, to time.Time) ([]models.AvailabilityNote, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (m *mockNoteService) CreateNote(ctx context.Context, note *models.AvailabilityNote) error {
	return m.createFn(ctx, note)
}
func (m *mockNoteService) ListNotes(ctx context.Context, vehicleID uint, from, to time.Time) ([]models.AvailabilityNote, error) {
	return m.listFn(ctx, vehicleID, from, to)
}
func (m *mockNoteService) DeleteNote(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

// --- Mock BookingService ---

type mockBookingService struct {
	getFn    func(ctx context.Context, id uint) (*models.Booking, error)
	listFn   func(ctx context.Context, vehicleID uint, status *models.BookingStatus) ([]models.Booking, error)
	updateFn func(ctx context.Context, id uint, status models.BookingStatus) (*models.Booking, error)
	syncFn   func(ctx context.Context, booking *models.Booking) error
}

func (m *mockBookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	return m.getFn(ctx, id)
}
func (m *mockBookingService) ListBookings(ctx context.Context, vehicleID uint, status *models.BookingStatus) ([]models.Booking, error) {
	return m.listFn(ctx, vehicleID, status)
}
func (m *mockBookingService) UpdateStatus(ctx context.Context, id uint, status models.BookingStatus) (*models.Booking, error) {
	return m.updateFn(ctx, id, status)
}
func (m *mockBookingService) SyncBooking(ctx context.Context, booking *models.Booking) error {
	return m.syncFn(ctx, booking)
}

// --- Mock VehicleService ---

type mockVehicleService struct {
	listFn   func(ctx context.Context, filter service.VehicleFilter) ([]models.Vehicle, error)
	getFn    func(ctx context.Context, id uint) (*models.Vehicle, error)
	createFn func(ctx context.Context, vehicle *models.Vehicle) error
}

func (m *mockVehicleService) ListVehicles(ctx context.Context, filter service.VehicleFilter) ([]models.Vehicle, error) {
	return m.listFn(ctx, filter)
}
func (m *mockVehicleService) GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error) {
	return m.getFn(ctx, id)
}
func (m *mockVehicleService) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	return m.createFn(ctx, vehicle)
}
