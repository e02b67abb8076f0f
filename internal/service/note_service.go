package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cetler74/dbcars-sub001/internal/models"
	"github.com/cetler74/dbcars-sub001/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrNoteNotFound    = errors.New("note not found")
	ErrInvalidNoteType = errors.New("note_type must be one of maintenance, blocked, special")
	ErrInvalidRange    = errors.New("from must not be after to")
)

type NoteService interface {
	CreateNote(ctx context.Context, note *models.AvailabilityNote) error
	ListNotes(ctx context.Context, vehicleID uint, from, to time.Time) ([]models.AvailabilityNote, error)
	DeleteNote(ctx context.Context, id uint) error
}

type noteService struct {
	noteRepo    repository.NoteRepository
	vehicleRepo repository.VehicleRepository
	publisher   EventPublisher
}

func NewNoteService(noteRepo repository.NoteRepository, vehicleRepo repository.VehicleRepository, publisher EventPublisher) NoteService {
	return &noteService{noteRepo: noteRepo, vehicleRepo: vehicleRepo, publisher: publisher}
}

func (s *noteService) CreateNote(ctx context.Context, note *models.AvailabilityNote) error {
	if !note.NoteType.Valid() {
		return ErrInvalidNoteType
	}

	if _, err := s.vehicleRepo.FindByID(ctx, note.VehicleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVehicleNotFound
		}
		return fmt.Errorf("find vehicle: %w", err)
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return fmt.Errorf("create note: %w", err)
	}

	s.publish(ctx, KeyNoteCreated, note)
	return nil
}

func (s *noteService) ListNotes(ctx context.Context, vehicleID uint, from, to time.Time) ([]models.AvailabilityNote, error) {
	if from.After(to) {
		return nil, ErrInvalidRange
	}
	return s.noteRepo.FindByVehicle(ctx, vehicleID, nil, from, to)
}

func (s *noteService) DeleteNote(ctx context.Context, id uint) error {
	note, err := s.noteRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("find note: %w", err)
	}

	if err := s.noteRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("delete note: %w", err)
	}

	s.publish(ctx, KeyNoteDeleted, note)
	return nil
}

// Calendar consumers pick changes up on their next fetch anyway, so a failed
// publish is logged and not returned.
func (s *noteService) publish(ctx context.Context, key string, note *models.AvailabilityNote) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, key, note); err != nil {
		log.Printf("[NoteService] publish %s for note %d: %v", key, note.ID, err)
	}
}
