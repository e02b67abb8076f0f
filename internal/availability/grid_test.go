package availability

import (
	"testing"
	"time"

	"github.com/cetler74/dbcars-sub001/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridRange_PadsToWholeWeeks(t *testing.T) {
	start, end := GridRange(2025, time.March)

	assert.Equal(t, day(2025, time.February, 23), start)
	assert.Equal(t, day(2025, time.April, 5), end)
	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, time.Saturday, end.Weekday())
}

func TestGridDates_MonthStartingOnSunday(t *testing.T) {
	dates := GridDates(2015, time.February)

	require.Len(t, dates, 28)
	assert.Equal(t, day(2015, time.February, 1), dates[0])
	assert.Equal(t, day(2015, time.February, 28), dates[27])
}

func TestGridDates_CrossesYearBoundary(t *testing.T) {
	dates := GridDates(2024, time.December)

	require.Len(t, dates, 35)
	assert.Equal(t, day(2024, time.December, 1), dates[0])
	assert.Equal(t, day(2025, time.January, 4), dates[34])
}

func TestBuildMonth_Shape(t *testing.T) {
	m := BuildMonth(2025, time.March, nil, nil)

	require.Len(t, m.Weeks, 6)
	for _, week := range m.Weeks {
		require.Len(t, week, 7)
		assert.Equal(t, time.Sunday, week[0].Date.Weekday())
	}
	assert.False(t, m.Weeks[0][0].InMonth)
	assert.True(t, m.Weeks[0][6].InMonth)
	assert.Equal(t, day(2025, time.March, 1), m.Weeks[0][6].Date)
	assert.False(t, m.Weeks[5][6].InMonth)
}

func TestBuildMonth_ResolvesEveryCell(t *testing.T) {
	bookings := []models.Booking{sampleBooking(models.StatusConfirmed)}
	notes := []models.AvailabilityNote{note(1, day(2025, time.March, 20), models.NoteMaintenance)}

	m := BuildMonth(2025, time.March, bookings, notes)

	byDate := make(map[time.Time]Cell)
	for _, week := range m.Weeks {
		for _, c := range week {
			byDate[c.Date] = c
		}
	}
	assert.Equal(t, StatusOutOnRent, byDate[day(2025, time.March, 10)].Status)
	assert.Equal(t, StatusReturned, byDate[day(2025, time.March, 12)].Status)
	assert.Equal(t, StatusMaintenance, byDate[day(2025, time.March, 20)].Status)
	assert.Equal(t, StatusAvailable, byDate[day(2025, time.February, 23)].Status)
}

func TestMonth_StatusCountsOnlyCountMonthDays(t *testing.T) {
	b := sampleBooking(models.StatusConfirmed)
	b.PickupDate = at(2025, time.February, 25, 9, 0)
	b.DropoffDate = at(2025, time.March, 2, 9, 0)

	counts := BuildMonth(2025, time.March, []models.Booking{b}, nil).StatusCounts()

	assert.Equal(t, 1, counts[StatusOutOnRent])
	assert.Equal(t, 1, counts[StatusReturned])
	assert.Equal(t, 29, counts[StatusAvailable])
	assert.Equal(t, 0, counts[StatusBlocked])
}
