package nsecalendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyExpiry(t *testing.T) {
	calendar := NewHolidayCalendar()

	t.Run("2024 series", func(t *testing.T) {
		expected := map[time.Month]time.Time{
			time.January:   nseDate(2024, time.January, 25),
			time.February:  nseDate(2024, time.February, 29),
			time.March:     nseDate(2024, time.March, 28),
			time.April:     nseDate(2024, time.April, 25),
			time.May:       nseDate(2024, time.May, 30),
			time.June:      nseDate(2024, time.June, 27),
			time.July:      nseDate(2024, time.July, 25),
			time.August:    nseDate(2024, time.August, 29),
			time.September: nseDate(2024, time.September, 26),
			time.October:   nseDate(2024, time.October, 31),
			time.November:  nseDate(2024, time.November, 28),
			time.December:  nseDate(2024, time.December, 26),
		}

		assert.Equal(t, expected, calendar.AllMonthlyExpiries(2024))
	})

	t.Run("holiday on the last Thursday walks back", func(t *testing.T) {
		// Bakri Id fell on Thu 2023-06-29, so June 2023 expired on Wednesday
		expiry := calendar.MonthlyExpiry(2023, time.June)
		assert.Equal(t, nseDate(2023, time.June, 28), expiry)
		assert.Equal(t, time.Wednesday, expiry.Weekday())
	})

	t.Run("spot checks across years", func(t *testing.T) {
		assert.Equal(t, nseDate(2018, time.March, 29), calendar.MonthlyExpiry(2018, time.March))
		assert.Equal(t, nseDate(2019, time.October, 31), calendar.MonthlyExpiry(2019, time.October))
		assert.Equal(t, nseDate(2020, time.November, 26), calendar.MonthlyExpiry(2020, time.November))
		assert.Equal(t, nseDate(2021, time.January, 28), calendar.MonthlyExpiry(2021, time.January))
		assert.Equal(t, nseDate(2022, time.October, 27), calendar.MonthlyExpiry(2022, time.October))
		assert.Equal(t, nseDate(2023, time.November, 30), calendar.MonthlyExpiry(2023, time.November))
	})
}

// Sweeps every covered month and asserts the holiday walk-back never leaves
// the expiry month. The rule itself has no month-boundary guard, so this
// keeps the assumption checked against the loaded tables.
func TestMonthlyExpiry_StaysInMonth(t *testing.T) {
	calendar := NewHolidayCalendar()

	for year := 2018; year <= 2024; year++ {
		for month := time.January; month <= time.December; month++ {
			expiry := calendar.MonthlyExpiry(year, month)

			assert.Equal(t, year, expiry.Year())
			assert.Equal(t, month, expiry.Month())
			assert.True(t, calendar.IsTradingDay(expiry))
			assert.LessOrEqual(t, int(expiry.Weekday()), int(time.Thursday))
		}
	}
}

func TestWeeklyExpiries(t *testing.T) {
	calendar := NewHolidayCalendar()

	t.Run("january 2024 has four Thursdays", func(t *testing.T) {
		expiries := calendar.WeeklyExpiries(2024, time.January)
		assert.Equal(t, []time.Time{
			nseDate(2024, time.January, 4),
			nseDate(2024, time.January, 11),
			nseDate(2024, time.January, 18),
			nseDate(2024, time.January, 25),
		}, expiries)
	})

	t.Run("holiday Thursday shifts to Wednesday", func(t *testing.T) {
		// Ambedkar Jayanti fell on Thu 2022-04-14
		expiries := calendar.WeeklyExpiries(2022, time.April)
		assert.Equal(t, []time.Time{
			nseDate(2022, time.April, 7),
			nseDate(2022, time.April, 13),
			nseDate(2022, time.April, 21),
			nseDate(2022, time.April, 28),
		}, expiries)
	})

	t.Run("monthly expiry is the last weekly expiry", func(t *testing.T) {
		expiries := calendar.WeeklyExpiries(2024, time.October)
		assert.Equal(t, calendar.MonthlyExpiry(2024, time.October), expiries[len(expiries)-1])
	})
}

func TestIsExpiryDay(t *testing.T) {
	calendar := NewHolidayCalendar()

	assert.True(t, calendar.IsExpiryDay(nseDate(2024, time.January, 25)))
	assert.False(t, calendar.IsExpiryDay(nseDate(2024, time.January, 24)))
	assert.False(t, calendar.IsExpiryDay(nseDate(2024, time.January, 4)))
}

func TestClassifyExpiryBucket(t *testing.T) {
	calendar := NewHolidayCalendar()
	asOf := nseDate(2024, time.January, 1)

	t.Run("bucket boundaries", func(t *testing.T) {
		// expiries chosen so that the trading-day distance from Jan 1 2024
		// hits each boundary exactly
		testCases := []struct {
			expiry time.Time
			dte    int
			bucket ExpiryBucket
		}{
			{nseDate(2024, time.January, 10), 7, CurrentWeek},
			{nseDate(2024, time.January, 11), 8, NextWeek},
			{nseDate(2024, time.January, 19), 14, NextWeek},
			{nseDate(2024, time.January, 20), 15, CurrentMonth},
			{nseDate(2024, time.February, 13), 30, CurrentMonth},
			{nseDate(2024, time.February, 14), 31, NextMonth},
		}

		for _, tc := range testCases {
			dte, err := calendar.TradingDaysBetween(asOf, tc.expiry)
			assert.Nil(t, err)
			assert.Equal(t, tc.dte, dte)

			bucket, err := calendar.ClassifyExpiryBucket(tc.expiry, asOf)
			assert.Nil(t, err)
			assert.Equal(t, tc.bucket, bucket)
		}
	})

	t.Run("expiry day itself is current week", func(t *testing.T) {
		bucket, err := calendar.ClassifyExpiryBucket(nseDate(2024, time.January, 25), nseDate(2024, time.January, 25))
		assert.Nil(t, err)
		assert.Equal(t, CurrentWeek, bucket)
	})

	t.Run("as-of after expiry is rejected", func(t *testing.T) {
		_, err := calendar.ClassifyExpiryBucket(nseDate(2024, time.January, 25), nseDate(2024, time.January, 29))
		assert.ErrorIs(t, err, InvalidDateRangeErr)
	})

	t.Run("buckets validate and describe", func(t *testing.T) {
		for _, bucket := range []ExpiryBucket{CurrentWeek, NextWeek, CurrentMonth, NextMonth} {
			assert.Nil(t, bucket.Validate())
			assert.NotEqual(t, "Unknown bucket", bucket.Description())
		}

		assert.NotNil(t, ExpiryBucket("XX").Validate())
		assert.Equal(t, "Unknown bucket", ExpiryBucket("XX").Description())
	})
}
