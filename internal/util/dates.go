package util

import "time"

// MonthRange returns the first and last calendar day of a month, both
// normalized to midnight UTC so they can be used as inclusive filter bounds.
func MonthRange(month int, year int) (time.Time, time.Time) {
	goMonth := time.Month(month)

	var y int
	if year > 0 {
		y = year
	} else {
		y = time.Now().Year()
	}

	firstOfMonth := time.Date(y, goMonth, 1, 0, 0, 0, 0, time.UTC)
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	return firstOfMonth, lastOfMonth
}

// YearRange returns January 1st and December 31st of a year.
func YearRange(year int) (time.Time, time.Time) {
	firstOfYear := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	lastOfYear := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)

	return firstOfYear, lastOfYear
}

// MonthKey formats a date as its YYYY-MM month bucket.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// PrevMonth returns the first day of the month before the given date.
func PrevMonth(t time.Time) time.Time {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return firstOfMonth.AddDate(0, -1, 0)
}
