package availability

import (
	"time"

	"github.com/cetler74/dbcars-sub001/internal/models"
)

// TimeLabelLayout formats pickup and dropoff times on a calendar cell.
const TimeLabelLayout = "03:04 PM"

type DayInfo struct {
	Date       time.Time
	Status     DayStatus
	StartTimes []string
	EndTimes   []string
	Notes      []models.AvailabilityNote
	Bookings   []models.Booking
}

// DateOnly drops the time of day, keeping the calendar date of t in its own
// location. The result is midnight UTC so dates compare with Equal/Before.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ResolveDay derives the calendar status of a single day from the bookings and
// notes of one vehicle. Callers filter by vehicle beforehand.
func ResolveDay(date time.Time, bookings []models.Booking, notes []models.AvailabilityNote) DayInfo {
	day := DateOnly(date)
	info := DayInfo{
		Date:       day,
		Status:     StatusAvailable,
		StartTimes: []string{},
		EndTimes:   []string{},
		Notes:      []models.AvailabilityNote{},
		Bookings:   []models.Booking{},
	}

	for _, b := range bookings {
		if day.Before(DateOnly(b.PickupDate)) || day.After(DateOnly(b.DropoffDate)) {
			continue
		}
		info.Bookings = append(info.Bookings, b)
	}
	for _, n := range notes {
		if DateOnly(n.Date()).Equal(day) {
			info.Notes = append(info.Notes, n)
		}
	}

	candidates := make(map[DayStatus]struct{})
	for _, n := range info.Notes {
		if s, ok := noteStatus(n); ok {
			candidates[s] = struct{}{}
		}
	}

	live := 0
	for _, b := range info.Bookings {
		if s, ok := InferStatusFromBooking(day, b); ok {
			candidates[s] = struct{}{}
		}
		if b.Status != models.StatusCancelled {
			live++
		}
	}

	info.Status = highest(candidates)

	// A day touched by a live booking never reads as available.
	if info.Status == StatusAvailable && live > 0 {
		info.Status = StatusOutOnRent
	}

	for _, b := range info.Bookings {
		if DateOnly(b.PickupDate).Equal(day) {
			info.StartTimes = append(info.StartTimes, b.PickupDate.Format(TimeLabelLayout))
		}
		if DateOnly(b.DropoffDate).Equal(day) {
			info.EndTimes = append(info.EndTimes, b.DropoffDate.Format(TimeLabelLayout))
		}
	}

	return info
}
