package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cetler74/dbcars-sub001/internal/availability"
	"github.com/cetler74/dbcars-sub001/internal/models"
	"github.com/cetler74/dbcars-sub001/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrInvalidMonth    = errors.New("year must be 1970-9999 and month 1-12")
)

type AvailabilityService interface {
	MonthCalendar(ctx context.Context, vehicleID uint, year int, month time.Month, unitID *uint) (*availability.Month, error)
	Day(ctx context.Context, vehicleID uint, date time.Time, unitID *uint) (*availability.DayInfo, error)
}

type availabilityService struct {
	vehicleRepo repository.VehicleRepository
	bookingRepo repository.BookingRepository
	noteRepo    repository.NoteRepository
	loc         *time.Location
}

// NewAvailabilityService builds the calendar service. Calendar days are cut in
// loc; a nil loc means UTC.
func NewAvailabilityService(
	vehicleRepo repository.VehicleRepository,
	bookingRepo repository.BookingRepository,
	noteRepo repository.NoteRepository,
	loc *time.Location,
) AvailabilityService {
	if loc == nil {
		loc = time.UTC
	}
	return &availabilityService{
		vehicleRepo: vehicleRepo,
		bookingRepo: bookingRepo,
		noteRepo:    noteRepo,
		loc:         loc,
	}
}

func (s *availabilityService) MonthCalendar(ctx context.Context, vehicleID uint, year int, month time.Month, unitID *uint) (*availability.Month, error) {
	if year < 1970 || year > 9999 || month < time.January || month > time.December {
		return nil, ErrInvalidMonth
	}

	start, end := availability.GridRange(year, month)
	bookings, notes, err := s.load(ctx, vehicleID, unitID, start, end)
	if err != nil {
		return nil, err
	}

	m := availability.BuildMonth(year, month, bookings, notes)
	return &m, nil
}

func (s *availabilityService) Day(ctx context.Context, vehicleID uint, date time.Time, unitID *uint) (*availability.DayInfo, error) {
	day := availability.DateOnly(date)
	bookings, notes, err := s.load(ctx, vehicleID, unitID, day, day)
	if err != nil {
		return nil, err
	}

	info := availability.ResolveDay(day, bookings, notes)
	return &info, nil
}

// load fetches everything touching the dates first..last (inclusive) and moves
// booking timestamps into the business location.
func (s *availabilityService) load(ctx context.Context, vehicleID uint, unitID *uint, first, last time.Time) ([]models.Booking, []models.AvailabilityNote, error) {
	if _, err := s.vehicleRepo.FindByID(ctx, vehicleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrVehicleNotFound
		}
		return nil, nil, fmt.Errorf("find vehicle: %w", err)
	}

	from := s.midnight(first)
	to := s.midnight(last).AddDate(0, 0, 1)

	bookings, err := s.bookingRepo.FindInWindow(ctx, vehicleID, unitID, from, to)
	if err != nil {
		return nil, nil, fmt.Errorf("find bookings: %w", err)
	}
	for i := range bookings {
		bookings[i].PickupDate = bookings[i].PickupDate.In(s.loc)
		bookings[i].DropoffDate = bookings[i].DropoffDate.In(s.loc)
	}

	notes, err := s.noteRepo.FindByVehicle(ctx, vehicleID, unitID, first, last)
	if err != nil {
		return nil, nil, fmt.Errorf("find notes: %w", err)
	}

	return bookings, notes, nil
}

func (s *availabilityService) midnight(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, s.loc)
}
