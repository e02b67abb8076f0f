package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

type NoteType string

const (
	NoteMaintenance NoteType = "maintenance"
	NoteBlocked     NoteType = "blocked"
	NoteSpecial     NoteType = "special"
)

func (t NoteType) Valid() bool {
	switch t {
	case NoteMaintenance, NoteBlocked, NoteSpecial:
		return true
	}
	return false
}

func ParseNoteType(raw string) (NoteType, error) {
	t := NoteType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown note type %q", raw)
	}
	return t, nil
}

// AvailabilityNote is a manual annotation for one calendar day of a vehicle,
// optionally narrowed to a single unit of that vehicle.
type AvailabilityNote struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	VehicleID uint           `gorm:"not null;index:idx_note_vehicle_date" json:"vehicle_id"`
	UnitID    *uint          `gorm:"index" json:"unit_id,omitempty"`
	NoteDate  datatypes.Date `gorm:"not null;index:idx_note_vehicle_date" json:"note_date"`
	NoteType  NoteType       `gorm:"type:varchar(20);not null" json:"note_type"`
	Note      string         `gorm:"type:text" json:"note"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Date returns the note date as a time.Time at midnight.
func (n AvailabilityNote) Date() time.Time {
	return time.Time(n.NoteDate)
}
