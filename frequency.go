package partitioner

import (
	"fmt"
	"strings"
)

// Frequency -- the granularity of the generated index patterns
//
// Frequencies are ordered from coarse to fine: Year < Month < Day
type Frequency int

const (
	// Year -- one pattern per year, e.g. 'logs-2018'
	Year Frequency = iota + 1
	// Month -- one pattern per month, e.g. 'logs-2018-02' (full years collapse to 'logs-2018-*')
	Month
	// Day -- one pattern per day, e.g. 'logs-2018-02-04' (full months and years collapse to wildcards)
	Day
)

var frequencyNames = map[Frequency]string{
	Year:  "year",
	Month: "month",
	Day:   "day",
}

func (f Frequency) String() string {
	if name, ok := frequencyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Frequency(%d)", int(f))
}

func (f Frequency) IsValid() bool {
	return f >= Year && f <= Day
}

// Truncate -- sets the fields of d that are too granular to 1
// - Day returns YYYY-MM-DD
// - Month returns YYYY-MM-01
// - Year returns YYYY-01-01
func (f Frequency) Truncate(d Date) Date {
	if f < Day {
		d.Day = 1
		if f < Month {
			d.Month = 1
		}
	}
	return d
}

// ParseFrequency -- accepts 'year', 'month' and 'day' (as well as 'yearly', 'monthly' and 'daily')
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "year", "yearly":
		return Year, nil
	case "month", "monthly":
		return Month, nil
	case "day", "daily":
		return Day, nil
	}
	return 0, fmt.Errorf("%w: unknown frequency %q", ErrInvalidConfig, s)
}
