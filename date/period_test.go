package date

import (
	"testing"
	"time"
)

func TestNewRange(t *testing.T) {
	testCases := []struct {
		name   string
		in     Date
		period Period
		want   Range
	}{
		{"day", New(2025, time.September, 8), Daily, Range{New(2025, time.September, 8), New(2025, time.September, 8)}},
		{"a Wednesday", New(2025, time.September, 10), Weekly, Range{New(2025, time.September, 8), New(2025, time.September, 14)}},
		{"a Sunday", New(2025, time.September, 14), Weekly, Range{New(2025, time.September, 8), New(2025, time.September, 14)}},
		{"a Monday", New(2025, time.September, 8), Weekly, Range{New(2025, time.September, 8), New(2025, time.September, 14)}},
		{"a leap year", New(2024, time.February, 15), Monthly, Range{New(2024, time.February, 1), New(2024, time.February, 29)}},
		{"december", New(2023, time.December, 24), Monthly, Range{New(2023, time.December, 1), New(2023, time.December, 31)}},
		{"Q2", New(2025, time.May, 20), Quarterly, Range{New(2025, time.April, 1), New(2025, time.June, 30)}},
		{"Q4", New(2025, time.October, 1), Quarterly, Range{New(2025, time.October, 1), New(2025, time.December, 31)}},
		{"year", New(2025, time.September, 8), Yearly, Range{New(2025, time.January, 1), New(2025, time.December, 31)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewRange(tc.in, tc.period); got != tc.want {
				t.Errorf("NewRange(%v, %v) = %v, want %v", tc.in, tc.period, got, tc.want)
			}
		})
	}
}

func TestRange_Contains(t *testing.T) {
	r := NewRange(New(2023, time.October, 15), Monthly)
	testCases := []struct {
		in   Date
		want bool
	}{
		{New(2023, time.October, 1), true},
		{New(2023, time.October, 31), true},
		{New(2023, time.September, 30), false},
		{New(2023, time.November, 1), false},
	}
	for _, tc := range testCases {
		if got := r.Contains(tc.in); got != tc.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", r, tc.in, got, tc.want)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"daily", Daily, false},
		{"week", Weekly, false},
		{"Mes", Monthly, false},
		{"trimestre", Quarterly, false},
		{"año", Yearly, false},
		{"year", Yearly, false},
		{"unknown", Daily, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if (err != nil) != tc.wantErr {
				t.Errorf("ParsePeriod() error = %v, wantErr %v", err, tc.wantErr)
				return
			}
			if got != tc.want {
				t.Errorf("ParsePeriod() = %v, want %v", got, tc.want)
			}
		})
	}
}
