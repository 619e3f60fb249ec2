package nsecalendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
)

const reportDateLayout = "2006-01-02"

// AnnualExpiryReport renders the month-by-month derivatives schedule for a
// year: session count, monthly expiry, and the holiday-adjusted weeklies.
func (c *HolidayCalendar) AnnualExpiryReport(year int) string {
	display := &strings.Builder{}

	table := tablewriter.NewWriter(display)

	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnSeparator("")
	display.WriteString(fmt.Sprintf("Expiry schedule for %d:\n", year))

	for month := time.January; month <= time.December; month++ {
		weeklies := c.WeeklyExpiries(year, month)
		weekly := make([]string, 0, len(weeklies))
		for _, expiry := range weeklies {
			weekly = append(weekly, expiry.Format(reportDateLayout))
		}

		sessions := fmt.Sprintf("%d sessions", len(c.TradingDaysInMonth(year, month)))
		monthly := fmt.Sprintf("monthly %s", c.MonthlyExpiry(year, month).Format(reportDateLayout))

		table.Append([]string{month.String(), sessions, monthly, fmt.Sprintf("weekly %s", strings.Join(weekly, ", "))})
	}

	table.Render()

	return display.String()
}
