package availability

import (
	"time"

	"github.com/cetler74/dbcars-sub001/internal/models"
)

type DayStatus string

const (
	StatusAvailable   DayStatus = "available"
	StatusReserved    DayStatus = "reserved"
	StatusOutOnRent   DayStatus = "out_on_rent"
	StatusReturned    DayStatus = "returned"
	StatusMaintenance DayStatus = "maintenance"
	StatusBlocked     DayStatus = "blocked"
)

// precedence lists the day statuses from highest to lowest priority.
// blocked ranks below returned, so a booking on the same day wins over a
// manual block. Product has not signed off on changing that.
var precedence = []DayStatus{
	StatusMaintenance,
	StatusOutOnRent,
	StatusReserved,
	StatusReturned,
	StatusBlocked,
}

// AllStatuses returns every day status, available first.
func AllStatuses() []DayStatus {
	return append([]DayStatus{StatusAvailable}, precedence...)
}

// InferStatusFromBooking returns the status a single booking implies for day.
// The second result is false when the booking has no say over the day, which
// is the case for cancelled bookings and unrecognized statuses.
func InferStatusFromBooking(day time.Time, b models.Booking) (DayStatus, bool) {
	day = DateOnly(day)
	pickup := DateOnly(b.PickupDate)
	dropoff := DateOnly(b.DropoffDate)

	switch b.Status {
	case models.StatusPending, models.StatusWaitingPayment:
		return StatusReserved, true
	case models.StatusConfirmed, models.StatusActive:
		switch {
		case day.Before(pickup):
			return StatusReserved, true
		case !day.Before(dropoff):
			return StatusReturned, true
		default:
			return StatusOutOnRent, true
		}
	case models.StatusCompleted:
		return StatusReturned, true
	default:
		return "", false
	}
}

func noteStatus(n models.AvailabilityNote) (DayStatus, bool) {
	switch n.NoteType {
	case models.NoteMaintenance:
		return StatusMaintenance, true
	case models.NoteBlocked:
		return StatusBlocked, true
	default:
		return "", false
	}
}

func highest(candidates map[DayStatus]struct{}) DayStatus {
	for _, s := range precedence {
		if _, ok := candidates[s]; ok {
			return s
		}
	}
	return StatusAvailable
}
