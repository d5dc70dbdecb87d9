package partitioner

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date -- a calendar day (proleptic Gregorian, no time of day, no zone)
//
// The zero value is used by Resolve() to mark an unset bound.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf -- returns the calendar day of ts (in ts's own location)
func DateOf(ts time.Time) Date {
	var y, m, d = ts.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate -- parses a date in the format 'YYYY-MM-DD'
func ParseDate(s string) (Date, error) {
	var ts, err = time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q is not a 'YYYY-MM-DD' date", ErrInvalidArgument, s)
	}
	return DateOf(ts), nil
}

// Today -- the local calendar day
func Today() Date {
	return DateOf(time.Now())
}

// DaysIn -- number of days in the given month (29 for February in leap years)
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// IsValid -- true if d names an existing day between the years 1 and 9999
func (d Date) IsValid() bool {
	if d.Year < 1 || d.Year > 9999 {
		return false
	}
	return DateOf(d.time()) == d
}

// Compare -- returns -1, 0 or +1 depending on whether d is before, equal to or after other
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

func (d Date) AddDays(n int) Date {
	return DateOf(d.time().AddDate(0, 0, n))
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// midnight UTC, so day arithmetic never crosses a DST change
func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}
