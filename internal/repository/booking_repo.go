package repository

import (
	"context"
	"time"

	"github.com/cetler74/dbcars-sub001/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository interface {
	Upsert(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error)
	FindByVehicle(ctx context.Context, vehicleID uint, status *models.BookingStatus) ([]models.Booking, error)
	FindInWindow(ctx context.Context, vehicleID uint, unitID *uint, from, to time.Time) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uint, status models.BookingStatus) error
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

// Upsert stores a booking received from the rental backend, keyed by its id.
func (r *bookingRepository) Upsert(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"vehicle_id", "unit_id", "reference", "customer_name",
			"pickup_date", "dropoff_date", "status", "updated_at",
		}),
	}).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindByIDForUpdate acquires a row-level lock on the booking within the given transaction.
func (r *bookingRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByVehicle(ctx context.Context, vehicleID uint, status *models.BookingStatus) ([]models.Booking, error) {
	var bookings []models.Booking
	q := r.db.WithContext(ctx).Where("vehicle_id = ?", vehicleID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Order("pickup_date ASC, id ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindInWindow returns bookings of a vehicle that touch [from, to). With a unit
// id, bookings not assigned to any unit are included as well.
func (r *bookingRepository) FindInWindow(ctx context.Context, vehicleID uint, unitID *uint, from, to time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	q := r.db.WithContext(ctx).
		Where("vehicle_id = ? AND pickup_date < ? AND dropoff_date >= ?", vehicleID, to, from)
	if unitID != nil {
		q = q.Where("unit_id IS NULL OR unit_id = ?", *unitID)
	}
	if err := q.Order("pickup_date ASC, id ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uint, status models.BookingStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}
