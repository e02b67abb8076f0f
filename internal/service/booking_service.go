package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/cetler74/dbcars-sub001/internal/models"
	"github.com/cetler74/dbcars-sub001/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("booking status transition is not allowed")
	ErrInvalidBooking    = errors.New("booking needs an id, a vehicle and pickup_date <= dropoff_date")
	ErrInvalidStatus     = errors.New("unknown booking status")
)

// transitions lists the statuses an admin may move a booking to.
// completed and cancelled are terminal.
var transitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusPending:        {models.StatusWaitingPayment, models.StatusConfirmed, models.StatusCancelled},
	models.StatusWaitingPayment: {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed:      {models.StatusActive, models.StatusCancelled},
	models.StatusActive:         {models.StatusCompleted},
}

func CanTransition(from, to models.BookingStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type StatusChange struct {
	BookingID uint                 `json:"booking_id"`
	VehicleID uint                 `json:"vehicle_id"`
	From      models.BookingStatus `json:"from"`
	To        models.BookingStatus `json:"to"`
}

type BookingService interface {
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context, vehicleID uint, status *models.BookingStatus) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id uint, status models.BookingStatus) (*models.Booking, error)
	SyncBooking(ctx context.Context, booking *models.Booking) error
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	publisher   EventPublisher
}

func NewBookingService(bookingRepo repository.BookingRepository, publisher EventPublisher) BookingService {
	return &bookingService{bookingRepo: bookingRepo, publisher: publisher}
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, vehicleID uint, status *models.BookingStatus) ([]models.Booking, error) {
	return s.bookingRepo.FindByVehicle(ctx, vehicleID, status)
}

func (s *bookingService) UpdateStatus(ctx context.Context, id uint, status models.BookingStatus) (*models.Booking, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	var result *models.Booking
	var change *StatusChange

	err := s.bookingRepo.WithTx(ctx, func(tx *gorm.DB) error {
		// Lock the booking row so concurrent admin actions serialize
		booking, err := s.bookingRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if booking.Status == status {
			result = booking
			return nil
		}
		if !CanTransition(booking.Status, status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, status)
		}

		if err := s.bookingRepo.UpdateStatus(ctx, tx, id, status); err != nil {
			return err
		}

		change = &StatusChange{BookingID: id, VehicleID: booking.VehicleID, From: booking.Status, To: status}
		booking.Status = status
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if change != nil && s.publisher != nil {
		if err := s.publisher.Publish(ctx, KeyBookingStatusChanged, change); err != nil {
			log.Printf("[BookingService] publish status change for booking %d: %v", id, err)
		}
	}

	return result, nil
}

// SyncBooking stores a booking pushed by the rental backend. Bookings with an
// inverted date range are refused here rather than left for the calendar to
// silently ignore.
func (s *bookingService) SyncBooking(ctx context.Context, booking *models.Booking) error {
	if booking.ID == 0 || booking.VehicleID == 0 || booking.DropoffDate.Before(booking.PickupDate) {
		return ErrInvalidBooking
	}
	if !booking.Status.Valid() {
		return ErrInvalidStatus
	}
	if err := s.bookingRepo.Upsert(ctx, booking); err != nil {
		return fmt.Errorf("upsert booking %d: %w", booking.ID, err)
	}
	return nil
}
