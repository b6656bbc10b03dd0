// Package caldate is the date/time kernel: pure calendar-date
// arithmetic with no I/O. Every "occurred on" value in the system is a
// Date, never a timestamp — the canonical contract is date-only.
package caldate

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/now"
)

// ErrInvalidDateFormat is returned by ParseDate when the input is neither
// a YYYY-MM-DD date nor an ISO-8601 instant.
var ErrInvalidDateFormat = errors.New("invalid date format")

const layout = "2006-01-02"

// Date is a pure calendar date: no time-of-day, no zone.
type Date struct {
	t time.Time
}

// NewDate builds a Date from a year/month/day triple.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Year returns the calendar year.
func (d Date) Year() int { return d.t.Year() }

// Month returns the calendar month (1-12).
func (d Date) Month() int { return int(d.t.Month()) }

// Day returns the day-of-month.
func (d Date) Day() int { return d.t.Day() }

// Before reports whether d is strictly before o.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// After reports whether d is strictly after o.
func (d Date) After(o Date) bool { return d.t.After(o.t) }

// Equal reports whether d and o are the same calendar date.
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// AddDays returns the date n days from d.
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// DaysSince returns the number of days between o (earlier) and d.
func (d Date) DaysSince(o Date) int {
	return int(d.t.Sub(o.t).Hours() / 24)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// String formats the date as YYYY-MM-DD.
func (d Date) String() string { return d.t.Format(layout) }

// MarshalJSON encodes the date as a YYYY-MM-DD JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a YYYY-MM-DD JSON string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ToTime returns the date as a UTC midnight time.Time, for GORM columns.
func (d Date) ToTime() time.Time { return d.t }

// Value implements driver.Valuer so GORM/database-sql can persist a Date
// as a native date column.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.t, nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	if src == nil {
		*d = Date{}
		return nil
	}
	switch v := src.(type) {
	case time.Time:
		*d = FromTime(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("caldate: cannot scan %T into Date", src)
	}
}

// FromTime truncates a time.Time to its calendar date.
func FromTime(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// TodayIn returns the current calendar date in the given IANA zone. An
// unknown zone falls back to UTC.
func TodayIn(zone string) Date {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		loc = time.UTC
	}
	t := time.Now().In(loc)
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// MonthBounds returns the inclusive first and last day of (year, month).
func MonthBounds(year, month int) (Date, Date) {
	first := NewDate(year, time.Month(month), 1)
	nowT := now.With(first.t)
	last := FromTime(nowT.EndOfMonth())
	return first, last
}

// PreviousMonth returns the (year, month) preceding the given one.
func PreviousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// DaysInMonth returns the number of days in (year, month).
func DaysInMonth(year, month int) int {
	_, last := MonthBounds(year, month)
	return last.Day()
}

// ClampDay returns the valid day-of-month for (year, month), clamping
// day down to the last day of the month when it overflows (e.g. day 31
// in February becomes 28 or 29).
func ClampDay(year, month, day int) int {
	maxDay := DaysInMonth(year, month)
	if day > maxDay {
		return maxDay
	}
	if day < 1 {
		return 1
	}
	return day
}

// ParseDate accepts a YYYY-MM-DD date string or an ISO-8601 instant
// (taking only its date part). Anything else fails with
// ErrInvalidDateFormat.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, ErrInvalidDateFormat
	}

	if t, err := time.Parse(layout, s); err == nil {
		return FromTime(t), nil
	}

	// ISO-8601 instants: with an RFC 3339 offset, a basic "+0700" offset,
	// or no offset at all; fractional seconds are accepted in each.
	for _, l := range []string{time.RFC3339, "2006-01-02T15:04:05Z0700", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(l, s); err == nil {
			return FromTime(t), nil
		}
	}

	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
}

// Weekday returns the day of week with Monday=0 .. Sunday=6.
func Weekday(d Date) int {
	wd := int(d.t.Weekday())
	return (wd + 6) % 7
}
