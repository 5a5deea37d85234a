package date

import (
	"fmt"
	"strings"
	"time"
)

// Period is a calendar period: the day, week, month, quarter or year containing a date.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "day"
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case Quarterly:
		return "quarter"
	case Yearly:
		return "year"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// ParsePeriod parses a period name, in English or Spanish.
func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(p) {
	case "daily", "day", "dia", "día":
		return Daily, nil
	case "weekly", "week", "semana":
		return Weekly, nil
	case "monthly", "month", "mes":
		return Monthly, nil
	case "quarterly", "quarter", "trimestre":
		return Quarterly, nil
	case "yearly", "year", "ano", "año":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %q", p)
	}
}

// StartOf returns the first day of the period containing d. Weeks start on Monday.
func (d Date) StartOf(period Period) Date {
	switch period {
	case Daily:
		return d
	case Weekly:
		offset := (int(d.time().Weekday()) + 6) % 7 // days since Monday
		return d.Add(-offset)
	case Monthly:
		return New(d.y, d.m, 1)
	case Quarterly:
		return New(d.y, (d.m-1)/3*3+1, 1)
	case Yearly:
		return New(d.y, time.January, 1)
	default:
		panic("unknown period")
	}
}

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(period Period) Date {
	switch period {
	case Daily:
		return d
	case Weekly:
		return d.StartOf(Weekly).Add(6)
	case Monthly:
		return New(d.y, d.m+1, 0)
	case Quarterly:
		return New(d.y, (d.m-1)/3*3+4, 0) // day 0 is the last day of the previous month
	case Yearly:
		return New(d.y+1, time.January, 0)
	default:
		panic("unknown period")
	}
}

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange returns the period containing d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// Contains reports whether date is in the range.
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
