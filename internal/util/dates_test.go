package util

import (
	"testing"
	"time"
)

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		month     int
		year      int
		wantFirst time.Time
		wantLast  time.Time
	}{
		{
			name:      "thirty one day month",
			month:     3,
			year:      2024,
			wantFirst: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantLast:  time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "thirty day month",
			month:     4,
			year:      2024,
			wantFirst: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			wantLast:  time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "leap february",
			month:     2,
			year:      2024,
			wantFirst: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantLast:  time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "non leap february",
			month:     2,
			year:      2023,
			wantFirst: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
			wantLast:  time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "december",
			month:     12,
			year:      2024,
			wantFirst: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			wantLast:  time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			first, last := MonthRange(test.month, test.year)

			if !first.Equal(test.wantFirst) {
				t.Errorf("first = %v, want %v", first, test.wantFirst)
			}

			if !last.Equal(test.wantLast) {
				t.Errorf("last = %v, want %v", last, test.wantLast)
			}
		})
	}
}

func TestMonthRangeDefaultsToCurrentYear(t *testing.T) {
	first, _ := MonthRange(1, 0)

	if first.Year() != time.Now().Year() {
		t.Errorf("first.Year() = %d, want %d", first.Year(), time.Now().Year())
	}
}

func TestYearRange(t *testing.T) {
	first, last := YearRange(2024)

	if !first.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first = %v", first)
	}

	if !last.Equal(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("last = %v", last)
	}
}

func TestMonthKey(t *testing.T) {
	got := MonthKey(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))
	if got != "2024-03" {
		t.Errorf("MonthKey() = %q, want 2024-03", got)
	}
}

func TestPrevMonth(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "mid month",
			in:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "january rolls into previous year",
			in:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			want: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := PrevMonth(test.in); !got.Equal(test.want) {
				t.Errorf("PrevMonth() = %v, want %v", got, test.want)
			}
		})
	}
}
