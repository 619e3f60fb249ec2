package nsecalendar

import (
	"fmt"
	"time"
)

var InvalidDateRangeErr = fmt.Errorf("start date is after end date")

// HolidayCalendar answers trading-day queries for the NSE. The holiday set is
// built once from the literal tables and never mutated, so a single instance
// is safe to share across goroutines.
//
// Holiday data covers 2018-2024. Outside that range the calendar degrades to
// weekend-only adjustment: dates are still classified by weekday, but no
// gazetted holidays are known. Use CoversYear to detect the degraded case.
type HolidayCalendar struct {
	holidays map[time.Time]struct{}
	years    map[int]struct{}
}

func NewHolidayCalendar() *HolidayCalendar {
	c := &HolidayCalendar{
		holidays: make(map[time.Time]struct{}),
		years:    make(map[int]struct{}),
	}

	for _, table := range holidayTables {
		for _, d := range table {
			c.holidays[d] = struct{}{}
			c.years[d.Year()] = struct{}{}
		}
	}

	return c
}

// truncateToDate drops the clock and zone so map lookups compare calendar
// dates only.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (c *HolidayCalendar) IsHoliday(t time.Time) bool {
	_, found := c.holidays[truncateToDate(t)]
	return found
}

// IsTradingDay reports whether t is neither a weekend day nor a gazetted
// holiday.
func (c *HolidayCalendar) IsTradingDay(t time.Time) bool {
	return !isWeekend(t) && !c.IsHoliday(t)
}

// TradingDaysBetween counts trading days in the half-open interval
// [start, end): start itself is counted when it is a trading day, end never
// is. start == end yields 0. start after end returns InvalidDateRangeErr.
func (c *HolidayCalendar) TradingDaysBetween(start, end time.Time) (int, error) {
	startDate := truncateToDate(start)
	endDate := truncateToDate(end)

	if startDate.After(endDate) {
		return 0, fmt.Errorf("TradingDaysBetween: %s > %s: %w", startDate.Format("2006-01-02"), endDate.Format("2006-01-02"), InvalidDateRangeErr)
	}

	count := 0
	for d := startDate; d.Before(endDate); d = d.AddDate(0, 0, 1) {
		if c.IsTradingDay(d) {
			count++
		}
	}

	return count, nil
}

// PreviousTradingDay returns the closest trading day strictly before t.
func (c *HolidayCalendar) PreviousTradingDay(t time.Time) time.Time {
	d := truncateToDate(t).AddDate(0, 0, -1)
	for !c.IsTradingDay(d) {
		d = d.AddDate(0, 0, -1)
	}

	return d
}

// NextTradingDay returns the closest trading day strictly after t.
func (c *HolidayCalendar) NextTradingDay(t time.Time) time.Time {
	d := truncateToDate(t).AddDate(0, 0, 1)
	for !c.IsTradingDay(d) {
		d = d.AddDate(0, 0, 1)
	}

	return d
}

// TradingDaysInMonth lists the trading days of a month in ascending order.
func (c *HolidayCalendar) TradingDaysInMonth(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	var days []time.Time
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		if c.IsTradingDay(d) {
			days = append(days, d)
		}
	}

	return days
}

// CoversYear reports whether gazetted holiday data is loaded for year.
func (c *HolidayCalendar) CoversYear(year int) bool {
	_, found := c.years[year]
	return found
}
