package availability

import (
	"time"

	"github.com/cetler74/dbcars-sub001/internal/models"
)

type Cell struct {
	DayInfo
	InMonth bool
}

type Month struct {
	Year  int
	Month time.Month
	Weeks [][]Cell
}

// GridRange returns the first and last date shown for a month: the Sunday on
// or before the 1st and the Saturday on or after the last day.
func GridRange(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))
	return start, end
}

// GridDates lists every date of the month grid, Sunday-first, in whole weeks.
func GridDates(year int, month time.Month) []time.Time {
	start, end := GridRange(year, month)
	dates := make([]time.Time, 0, 42)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func BuildMonth(year int, month time.Month, bookings []models.Booking, notes []models.AvailabilityNote) Month {
	dates := GridDates(year, month)
	m := Month{Year: year, Month: month, Weeks: make([][]Cell, 0, len(dates)/7)}

	for i := 0; i < len(dates); i += 7 {
		week := make([]Cell, 0, 7)
		for _, d := range dates[i : i+7] {
			week = append(week, Cell{
				DayInfo: ResolveDay(d, bookings, notes),
				InMonth: d.Month() == month,
			})
		}
		m.Weeks = append(m.Weeks, week)
	}
	return m
}

// StatusCounts counts the days of the month itself per status; padding days
// from adjacent months are left out.
func (m Month) StatusCounts() map[DayStatus]int {
	counts := make(map[DayStatus]int, len(precedence)+1)
	for _, s := range AllStatuses() {
		counts[s] = 0
	}
	for _, week := range m.Weeks {
		for _, c := range week {
			if c.InMonth {
				counts[c.Status]++
			}
		}
	}
	return counts
}
