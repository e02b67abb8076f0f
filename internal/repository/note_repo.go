package repository

import (
	"context"
	"time"

	"github.com/cetler74/dbcars-sub001/internal/models"
	"gorm.io/gorm"
)

type NoteRepository interface {
	Create(ctx context.Context, note *models.AvailabilityNote) error
	FindByID(ctx context.Context, id uint) (*models.AvailabilityNote, error)
	FindByVehicle(ctx context.Context, vehicleID uint, unitID *uint, from, to time.Time) ([]models.AvailabilityNote, error)
	Delete(ctx context.Context, id uint) error
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *models.AvailabilityNote) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *noteRepository) FindByID(ctx context.Context, id uint) (*models.AvailabilityNote, error) {
	var note models.AvailabilityNote
	if err := r.db.WithContext(ctx).First(&note, id).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// FindByVehicle returns notes dated within [from, to], both inclusive.
func (r *noteRepository) FindByVehicle(ctx context.Context, vehicleID uint, unitID *uint, from, to time.Time) ([]models.AvailabilityNote, error) {
	var notes []models.AvailabilityNote
	q := r.db.WithContext(ctx).
		Where("vehicle_id = ? AND note_date >= ? AND note_date <= ?", vehicleID, from, to)
	if unitID != nil {
		q = q.Where("unit_id IS NULL OR unit_id = ?", *unitID)
	}
	if err := q.Order("note_date ASC, id ASC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *noteRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.AvailabilityNote{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
