package loan

import (
	"fmt"
	"time"
)

// FormatPayoffDate renders a payoff date as a short month-year label,
// e.g. "Nov 2030".
func FormatPayoffDate(date time.Time) string {
	return date.Format("Jan 2006")
}

// FormatTimeRemaining renders a month count as years and months,
// e.g. "4 yrs, 11 mos", "1 yr", "1 mo".
func FormatTimeRemaining(monthsRemaining int) string {
	years := monthsRemaining / 12
	months := monthsRemaining % 12

	switch {
	case years == 0:
		return fmt.Sprintf("%d %s", months, plural(months, "mo", "mos"))
	case months == 0:
		return fmt.Sprintf("%d %s", years, plural(years, "yr", "yrs"))
	default:
		return fmt.Sprintf("%d %s, %d %s",
			years, plural(years, "yr", "yrs"),
			months, plural(months, "mo", "mos"))
	}
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
