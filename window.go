package partitioner

import (
	"fmt"
	"iter"
)

const secondsPerDay = 24 * 60 * 60

// TimeWindow -- a closed interval of days, both 'since' and 'until' are included
//
// Only windows built by NewTimeWindow are valid, the zero TimeWindow is empty (no days).
type TimeWindow struct {
	since, until Date
}

// NewTimeWindow -- fails with ErrInvalidArgument for invalid dates and ErrRange if since is after until
func NewTimeWindow(since, until Date) (TimeWindow, error) {
	if !since.IsValid() {
		return TimeWindow{}, fmt.Errorf("%w: 'since' must be a valid date, got %v", ErrInvalidArgument, since)
	}
	if !until.IsValid() {
		return TimeWindow{}, fmt.Errorf("%w: 'until' must be a valid date, got %v", ErrInvalidArgument, until)
	}
	if since.After(until) {
		return TimeWindow{}, fmt.Errorf("%w: 'since' (%v) can't be after 'until' (%v)", ErrRange, since, until)
	}
	return TimeWindow{since: since, until: until}, nil
}

// windows that didn't come from NewTimeWindow
func (w TimeWindow) isEmpty() bool {
	return !w.since.IsValid() || !w.until.IsValid() || w.since.After(w.until)
}

func (w TimeWindow) Since() Date { return w.since }
func (w TimeWindow) Until() Date { return w.until }

// DeltaYears -- difference of the year numbers (not the number of elapsed years)
func (w TimeWindow) DeltaYears() int {
	return w.until.Year - w.since.Year
}

// DeltaDays -- whole days between since and until (0 for a single-day window)
func (w TimeWindow) DeltaDays() int {
	// time.Duration overflows after ~292 years, so we stick to unix seconds
	return int((w.until.time().Unix() - w.since.time().Unix()) / secondsPerDay)
}

// Len -- number of days in the window
func (w TimeWindow) Len() int {
	if w.isEmpty() {
		return 0
	}
	return w.DeltaDays() + 1
}

// Days -- every day from since to until (ascending)
//
// The sequence can be iterated more than once.
func (w TimeWindow) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if w.isEmpty() {
			return
		}
		var ts = w.since.time()
		var end = w.until.time()
		for !ts.After(end) {
			if !yield(DateOf(ts)) {
				return
			}
			ts = ts.AddDate(0, 0, 1)
		}
	}
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("[%v, %v]", w.since, w.until)
}
