package expense

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the only accepted textual date layout.
const DateFormat = "2006-01-02"

// Expense is a single dated expense record. Amount is stored in cents.
type Expense struct {
	ID       int64
	Date     time.Time
	Category string
	Amount   int64
	Note     string
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func New(date time.Time, category string, amount int64, note string) (Expense, error) {
	e := Expense{
		Date:     date,
		Category: strings.TrimSpace(category),
		Amount:   amount,
		Note:     note,
	}

	if err := e.Validate(); err != nil {
		return Expense{}, err
	}

	return e, nil
}

func (e Expense) Validate() error {
	if e.Category == "" {
		return &ValidationError{Field: "category", Reason: "must not be empty"}
	}

	if e.Amount < 0 {
		return &ValidationError{Field: "amount", Reason: "must not be negative"}
	}

	if e.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "must be a valid calendar date"}
	}

	return nil
}

// MonthKey returns the YYYY-MM bucket the expense belongs to.
func (e Expense) MonthKey() string {
	return e.Date.Format("2006-01")
}

// ParseDate parses a YYYY-MM-DD string into a calendar date normalized to
// midnight UTC, so two dates compare equal regardless of time-of-day.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateFormat, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &ValidationError{
			Field:  "date",
			Reason: fmt.Sprintf("%q does not match YYYY-MM-DD", value),
		}
	}

	return Day(t), nil
}

// Day truncates a time to its calendar date in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}
