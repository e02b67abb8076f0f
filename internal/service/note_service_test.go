package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cetler74/dbcars-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func sampleNote() *models.AvailabilityNote {
	return &models.AvailabilityNote{
		VehicleID: 7,
		NoteDate:  datatypes.Date(time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)),
		NoteType:  models.NoteMaintenance,
		Note:      "brake pads",
	}
}

func TestCreateNote_Success(t *testing.T) {
	repo := &mockNoteRepo{
		createFn: func(ctx context.Context, n *models.AvailabilityNote) error {
			n.ID = 1
			return nil
		},
	}
	pub := &mockPublisher{}

	svc := NewNoteService(repo, &mockVehicleRepo{}, pub)
	note := sampleNote()
	err := svc.CreateNote(context.Background(), note)

	require.NoError(t, err)
	assert.Equal(t, uint(1), note.ID)
	require.Len(t, pub.sent, 1)
	assert.Equal(t, KeyNoteCreated, pub.sent[0].key)
}

func TestCreateNote_NilPublisher(t *testing.T) {
	repo := &mockNoteRepo{
		createFn: func(ctx context.Context, n *models.AvailabilityNote) error { return nil },
	}

	svc := NewNoteService(repo, &mockVehicleRepo{}, nil)

	assert.NoError(t, svc.CreateNote(context.Background(), sampleNote()))
}

func TestCreateNote_PublishFailureIsNotFatal(t *testing.T) {
	repo := &mockNoteRepo{
		createFn: func(ctx context.Context, n *models.AvailabilityNote) error { return nil },
	}
	pub := &mockPublisher{err: errors.New("channel closed")}

	svc := NewNoteService(repo, &mockVehicleRepo{}, pub)

	assert.NoError(t, svc.CreateNote(context.Background(), sampleNote()))
}

func TestCreateNote_InvalidType(t *testing.T) {
	svc := NewNoteService(&mockNoteRepo{}, &mockVehicleRepo{}, nil)
	note := sampleNote()
	note.NoteType = "holiday"

	err := svc.CreateNote(context.Background(), note)

	assert.ErrorIs(t, err, ErrInvalidNoteType)
}

func TestCreateNote_VehicleNotFound(t *testing.T) {
	vehicles := &mockVehicleRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Vehicle, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewNoteService(&mockNoteRepo{}, vehicles, nil)

	err := svc.CreateNote(context.Background(), sampleNote())

	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestListNotes_InvalidRange(t *testing.T) {
	svc := NewNoteService(&mockNoteRepo{}, &mockVehicleRepo{}, nil)

	_, err := svc.ListNotes(context.Background(), 7,
		time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestListNotes_Success(t *testing.T) {
	repo := &mockNoteRepo{
		findByVehicleFn: func(ctx context.Context, vehicleID uint, unitID *uint, from, to time.Time) ([]models.AvailabilityNote, error) {
			assert.Nil(t, unitID)
			return []models.AvailabilityNote{*sampleNote()}, nil
		},
	}
	svc := NewNoteService(repo, &mockVehicleRepo{}, nil)

	notes, err := svc.ListNotes(context.Background(), 7,
		time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestDeleteNote_Success(t *testing.T) {
	var deleted uint
	repo := &mockNoteRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.AvailabilityNote, error) {
			n := sampleNote()
			n.ID = id
			return n, nil
		},
		deleteFn: func(ctx context.Context, id uint) error {
			deleted = id
			return nil
		},
	}
	pub := &mockPublisher{}

	svc := NewNoteService(repo, &mockVehicleRepo{}, pub)
	err := svc.DeleteNote(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, uint(3), deleted)
	require.Len(t, pub.sent, 1)
	assert.Equal(t, KeyNoteDeleted, pub.sent[0].key)
}

func TestDeleteNote_NotFound(t *testing.T) {
	repo := &mockNoteRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.AvailabilityNote, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewNoteService(repo, &mockVehicleRepo{}, nil)

	err := svc.DeleteNote(context.Background(), 3)

	assert.ErrorIs(t, err, ErrNoteNotFound)
}
