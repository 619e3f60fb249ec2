package nsecalendar

import (
	"fmt"
	"time"
)

// ExpiryBucket classifies a contract by trading days to expiry. Derived from
// a (expiry, as-of) pair, never stored.
type ExpiryBucket string

const (
	CurrentWeek  ExpiryBucket = "CW"
	NextWeek     ExpiryBucket = "NW"
	CurrentMonth ExpiryBucket = "CM"
	NextMonth    ExpiryBucket = "NM"
)

func (b ExpiryBucket) Validate() error {
	if b != CurrentWeek && b != NextWeek && b != CurrentMonth && b != NextMonth {
		return fmt.Errorf("ExpiryBucket: Validate: invalid expiry bucket: %s", b)
	}

	return nil
}

func (b ExpiryBucket) Description() string {
	switch b {
	case CurrentWeek:
		return "Current Week (<=7 DTE) - 0DTE strategies, weekly spreads"
	case NextWeek:
		return "Next Week (8-14 DTE) - short-term credit spreads"
	case CurrentMonth:
		return "Current Month (15-30 DTE) - monthly iron condors"
	case NextMonth:
		return "Next Month (31+ DTE) - LEAPS, diagonal spreads"
	default:
		return "Unknown bucket"
	}
}

// MonthlyExpiry returns the monthly derivatives expiry for the given month:
// the last Thursday, walked back to the previous trading day when that
// Thursday is a holiday.
func (c *HolidayCalendar) MonthlyExpiry(year int, month time.Month) time.Time {
	// last calendar day, then back to the last Thursday
	lastDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1)
	daysSinceThursday := (int(lastDay.Weekday()) - int(time.Thursday) + 7) % 7
	expiry := lastDay.AddDate(0, 0, -daysSinceThursday)

	for !c.IsTradingDay(expiry) {
		expiry = expiry.AddDate(0, 0, -1)
	}

	return expiry
}

// WeeklyExpiries returns every weekly expiry of the month: each Thursday,
// holiday-adjusted backward to a trading day. The monthly expiry appears in
// the list as well, since it is also a Thursday.
func (c *HolidayCalendar) WeeklyExpiries(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	var expiries []time.Time
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Thursday {
			continue
		}

		expiry := d
		for !c.IsTradingDay(expiry) {
			expiry = expiry.AddDate(0, 0, -1)
		}

		expiries = append(expiries, expiry)
	}

	return expiries
}

// AllMonthlyExpiries maps each month of a year to its monthly expiry.
func (c *HolidayCalendar) AllMonthlyExpiries(year int) map[time.Month]time.Time {
	expiries := make(map[time.Month]time.Time, 12)
	for month := time.January; month <= time.December; month++ {
		expiries[month] = c.MonthlyExpiry(year, month)
	}

	return expiries
}

// IsExpiryDay reports whether t is the monthly expiry of its own month.
func (c *HolidayCalendar) IsExpiryDay(t time.Time) bool {
	d := truncateToDate(t)
	return d.Equal(c.MonthlyExpiry(d.Year(), d.Month()))
}

// ClassifyExpiryBucket buckets a contract by trading days between asOf and
// expiry (half-open, so the as-of session itself is counted and the expiry
// session is not). asOf after expiry returns InvalidDateRangeErr.
func (c *HolidayCalendar) ClassifyExpiryBucket(expiry, asOf time.Time) (ExpiryBucket, error) {
	dte, err := c.TradingDaysBetween(asOf, expiry)
	if err != nil {
		return "", fmt.Errorf("ClassifyExpiryBucket: %w", err)
	}

	switch {
	case dte <= 7:
		return CurrentWeek, nil
	case dte <= 14:
		return NextWeek, nil
	case dte <= 30:
		return CurrentMonth, nil
	default:
		return NextMonth, nil
	}
}
