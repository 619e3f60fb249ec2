package nsecalendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsTradingDay(t *testing.T) {
	calendar := NewHolidayCalendar()

	t.Run("regular weekday", func(t *testing.T) {
		assert.True(t, calendar.IsTradingDay(nseDate(2024, time.January, 15)))
	})

	t.Run("gazetted holiday", func(t *testing.T) {
		// Republic Day
		assert.False(t, calendar.IsTradingDay(nseDate(2024, time.January, 26)))
	})

	t.Run("weekend", func(t *testing.T) {
		assert.False(t, calendar.IsTradingDay(nseDate(2024, time.January, 20)))
		assert.False(t, calendar.IsTradingDay(nseDate(2024, time.January, 21)))
	})

	t.Run("holiday falling on a weekend still reported as non-trading", func(t *testing.T) {
		// Republic Day 2020 was a Sunday
		assert.False(t, calendar.IsTradingDay(nseDate(2020, time.January, 26)))
		assert.True(t, calendar.IsHoliday(nseDate(2020, time.January, 26)))
	})

	t.Run("clock and zone are ignored", func(t *testing.T) {
		ist := time.FixedZone("IST", 5*3600+30*60)
		assert.False(t, calendar.IsTradingDay(time.Date(2024, time.January, 26, 15, 29, 59, 0, ist)))
	})

	t.Run("weekday outside holiday coverage", func(t *testing.T) {
		assert.True(t, calendar.IsTradingDay(nseDate(2030, time.January, 2)))
		assert.False(t, calendar.CoversYear(2030))
		assert.True(t, calendar.CoversYear(2024))
	})
}

func TestTradingDaysBetween(t *testing.T) {
	calendar := NewHolidayCalendar()

	t.Run("half-open interval excludes end", func(t *testing.T) {
		// Jan 15-24 2024 contains two weekend days and no holidays
		count, err := calendar.TradingDaysBetween(nseDate(2024, time.January, 15), nseDate(2024, time.January, 25))
		assert.Nil(t, err)
		assert.Equal(t, 8, count)
	})

	t.Run("holiday inside the span is skipped", func(t *testing.T) {
		// adds Thu 25, skips Fri 26 (Republic Day) and the weekend
		count, err := calendar.TradingDaysBetween(nseDate(2024, time.January, 15), nseDate(2024, time.January, 29))
		assert.Nil(t, err)
		assert.Equal(t, 9, count)
	})

	t.Run("same day yields zero", func(t *testing.T) {
		count, err := calendar.TradingDaysBetween(nseDate(2024, time.January, 15), nseDate(2024, time.January, 15))
		assert.Nil(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("single non-trading day yields zero", func(t *testing.T) {
		count, err := calendar.TradingDaysBetween(nseDate(2024, time.January, 26), nseDate(2024, time.January, 27))
		assert.Nil(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("single trading day yields one", func(t *testing.T) {
		count, err := calendar.TradingDaysBetween(nseDate(2024, time.January, 15), nseDate(2024, time.January, 16))
		assert.Nil(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("start after end is rejected", func(t *testing.T) {
		_, err := calendar.TradingDaysBetween(nseDate(2024, time.January, 25), nseDate(2024, time.January, 15))
		assert.ErrorIs(t, err, InvalidDateRangeErr)
	})
}

func TestTradingDayWalks(t *testing.T) {
	calendar := NewHolidayCalendar()

	t.Run("previous trading day walks over holiday and weekend", func(t *testing.T) {
		// Mon Jan 29 -> Thu Jan 25 (Fri 26 Republic Day, then weekend)
		assert.Equal(t, nseDate(2024, time.January, 25), calendar.PreviousTradingDay(nseDate(2024, time.January, 29)))
	})

	t.Run("next trading day walks over weekend", func(t *testing.T) {
		assert.Equal(t, nseDate(2024, time.January, 29), calendar.NextTradingDay(nseDate(2024, time.January, 25)))
	})

	t.Run("next trading day walks over holiday Monday", func(t *testing.T) {
		// Fri Mar 22 -> Tue Mar 26 (Mon Mar 25 Holi)
		assert.Equal(t, nseDate(2024, time.March, 26), calendar.NextTradingDay(nseDate(2024, time.March, 22)))
	})

	t.Run("walks are strict and land on trading days", func(t *testing.T) {
		for d := nseDate(2024, time.January, 1); d.Before(nseDate(2024, time.March, 1)); d = d.AddDate(0, 0, 1) {
			next := calendar.NextTradingDay(d)
			assert.True(t, next.After(d))
			assert.True(t, calendar.IsTradingDay(next))

			prev := calendar.PreviousTradingDay(d)
			assert.True(t, prev.Before(d))
			assert.True(t, calendar.IsTradingDay(prev))
		}
	})
}

func TestTradingDaysInMonth(t *testing.T) {
	calendar := NewHolidayCalendar()

	t.Run("january 2024", func(t *testing.T) {
		days := calendar.TradingDaysInMonth(2024, time.January)
		assert.Equal(t, 22, len(days))
		assert.Equal(t, nseDate(2024, time.January, 1), days[0])
		assert.Equal(t, nseDate(2024, time.January, 31), days[len(days)-1])
	})

	t.Run("days are ascending and trading", func(t *testing.T) {
		days := calendar.TradingDaysInMonth(2023, time.November)
		for i, d := range days {
			assert.True(t, calendar.IsTradingDay(d))
			if i > 0 {
				assert.True(t, d.After(days[i-1]))
			}
		}
	})
}
