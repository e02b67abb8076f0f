package service

import (
	"context"
	"time"

	"github.com/cetler74/dbcars-sub001/internal/models"
	"gorm.io/gorm"
)

// --- Mock VehicleRepository ---

type mockVehicleRepo struct {
	createFn     func(ctx context.Context, v *models.Vehicle) error
	findByIDFn   func(ctx context.Context, id uint) (*models.Vehicle, error)
	findActiveFn func(ctx context.Context) ([]models.Vehicle, error)
}

func (m *mockVehicleRepo) Create(ctx context.Context, v *models.Vehicle) error {
	return m.createFn(ctx, v)
}
func (m *mockVehicleRepo) FindByID(ctx context.Context, id uint) (*models.Vehicle, error) {
	if m.findByIDFn == nil {
		return &models.Vehicle{ID: id}, nil
	}
	return m.findByIDFn(ctx, id)
}
func (m *mockVehicleRepo) FindActive(ctx context.Context) ([]models.Vehicle, error) {
	return m.findActiveFn(ctx)
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	upsertFn       func(ctx context.Context, b *models.Booking) error
	findByIDFn     func(ctx context.Context, id uint) (*models.Booking, error)
	findByVehicle  func(ctx context.Context, vehicleID uint, status *models.BookingStatus) ([]models.Booking, error)
	findInWindowFn func(ctx context.Context, vehicleID uint, unitID *uint, from, to time.Time) ([]models.Booking, error)
	updateStatusFn func(ctx context.Context, bookingID uint, status models.BookingStatus) error
}

func (m *mockBookingRepo) Upsert(ctx context.Context, b *models.Booking) error {
	return m.upsertFn(ctx, b)
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockBookingRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockBookingRepo) FindByVehicle(ctx context.Context, vehicleID uint, status *models.BookingStatus) ([]models.Booking, error) {
	return m.findByVehicle(ctx, vehicleID, status)
}
func (m *mockBookingRepo) FindInWindow(ctx context.Context, vehicleID uint, unitID *uint, from, to time.Time) ([]models.Booking, error) {
	if m.findInWindowFn == nil {
		return nil, nil
	}
	return m.findInWindowFn(ctx, vehicleID, unitID, from, to)
}
func (m *mockBookingRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uint, status models.BookingStatus) error {
	return m.updateStatusFn(ctx, bookingID, status)
}
func (m *mockBookingRepo) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

// --- Mock NoteRepository ---

type mockNoteRepo struct {
	createFn        func(ctx context.Context, n *models.AvailabilityNote) error
	findByIDFn      func(ctx context.Context, id uint) (*models.AvailabilityNote, error)
	findByVehicleFn func(ctx context.Context, vehicleID uint, unitID *uint, from, to time.Time) ([]models.AvailabilityNote, error)
	deleteFn        func(ctx context.Context, id uint) error
}

func (m *mockNoteRepo) Create(ctx context.Context, n *models.AvailabilityNote) error {
	return m.createFn(ctx, n)
}
func (m *mockNoteRepo) FindByID(ctx context.Context, id uint) (*models.AvailabilityNote, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockNoteRepo) FindByVehicle(ctx context.Context, vehicleID uint, unitID *uint, from, to time.Time) ([]models.AvailabilityNote, error) {
	if m.findByVehicleFn == nil {
		return nil, nil
	}
	return m.findByVehicleFn(ctx, vehicleID, unitID, from, to)
}
func (m *mockNoteRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

// --- Mock EventPublisher ---

type published struct {
	key     string
	payload any
}

type mockPublisher struct {
	sent []published
	err  error
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	m.sent = append(m.sent, published{key: routingKey, payload: payload})
	return m.err
}
