package partitioner

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/mreithub/go-faster/faster"
	"github.com/sirupsen/logrus"
)

// DefaultEscape is the character in index patterns that gets replaced with the formatted date
const DefaultEscape = '*'

const monthsPerYear = 12

// Partitioner -- maps date ranges to the (minimal) list of index patterns covering them
//
// For an index pattern 'logs-*' and daily indexes, the range 2018-01-01..2018-02-03
// maps to 'logs-2018-01-*', 'logs-2018-02-01', 'logs-2018-02-02', 'logs-2018-02-03'.
//
// A Partitioner is immutable and can be shared between goroutines.
type Partitioner struct {
	frequency Frequency
	formatter DateFormatter
	escape    rune
	now       func() Date
	log       logrus.FieldLogger
}

type Option func(p *Partitioner)

// WithFrequency -- the granularity of the underlying indexes (default: Day)
func WithFrequency(f Frequency) Option {
	return func(p *Partitioner) { p.frequency = f }
}

// WithFormatter -- how dates are rendered (default: big-endian with '-' as separator)
func WithFormatter(f DateFormatter) Option {
	return func(p *Partitioner) { p.formatter = f }
}

// WithEscape -- the placeholder character in index patterns (default: '*')
func WithEscape(escape rune) Option {
	return func(p *Partitioner) { p.escape = escape }
}

// WithNowFunc -- supplies the current date for open ranges (default: Today)
func WithNowFunc(now func() Date) Option {
	return func(p *Partitioner) { p.now = now }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Partitioner) { p.log = log }
}

// NewPartitioner -- creates a Partitioner, fails with ErrInvalidConfig if one of the options is unusable
func NewPartitioner(opts ...Option) (*Partitioner, error) {
	var formatter, err = NewBigEndianFormatter(DefaultSeparator)
	if err != nil {
		return nil, err
	}

	var rc = Partitioner{
		frequency: Day,
		formatter: formatter,
		escape:    DefaultEscape,
		now:       Today,
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&rc)
	}

	if !rc.frequency.IsValid() {
		return nil, fmt.Errorf("%w: unknown frequency %v", ErrInvalidConfig, rc.frequency)
	}
	if rc.formatter == nil {
		return nil, fmt.Errorf("%w: the formatter must implement DateFormatter", ErrInvalidConfig)
	}
	if rc.escape == 0 {
		return nil, fmt.Errorf("%w: missing escape character", ErrInvalidConfig)
	}
	if rc.now == nil {
		return nil, fmt.Errorf("%w: missing now function", ErrInvalidConfig)
	}
	if rc.log == nil {
		rc.log = logrus.StandardLogger()
	}
	return &rc, nil
}

// MustNewPartitioner -- like NewPartitioner() but panics on invalid options
func MustNewPartitioner(opts ...Option) *Partitioner {
	var rc, err = NewPartitioner(opts...)
	if err != nil {
		panic(err)
	}
	return rc
}

func (p *Partitioner) Frequency() Frequency      { return p.frequency }
func (p *Partitioner) Formatter() DateFormatter { return p.formatter }
func (p *Partitioner) Escape() rune             { return p.escape }

// replaces the escape character in pattern with the formatted date
func (p *Partitioner) index(pattern string, fmtDate string) string {
	return strings.ReplaceAll(pattern, string(p.escape), fmtDate)
}

// Partition -- returns the index patterns covering every day in window (in chronological order)
//
// With Day frequency, months that are fully covered by the window collapse to a month
// wildcard, with Month frequency every month counts as full. Years with 12 full months
// collapse to a year wildcard. With Year frequency, there's one (wildcard-less) pattern per year.
// The zero TimeWindow yields nil.
func (p *Partitioner) Partition(pattern string, window TimeWindow) []string {
	var rc []string
	for yearStart, yearDays := range groupBy(window.Days(), Year.Truncate) {
		var year = yearStart.Year
		if p.frequency == Year {
			rc = append(rc, p.index(pattern, p.formatter.FormatYear(year, false)))
			continue
		}

		// patterns for the current year, replaced by a single wildcard if all months are full
		var yearIndexes []string
		var fullMonths = 0
		for monthStart, monthDays := range groupBy(slices.Values(yearDays), Month.Truncate) {
			var month = monthStart.Month
			if p.frequency == Month {
				fullMonths++
				yearIndexes = append(yearIndexes, p.index(pattern, p.formatter.FormatMonth(year, month, false)))
			} else if len(monthDays) == DaysIn(year, month) {
				fullMonths++
				yearIndexes = append(yearIndexes, p.index(pattern, p.formatter.FormatMonth(year, month, true)))
			} else {
				for _, d := range monthDays {
					yearIndexes = append(yearIndexes, p.index(pattern, p.formatter.FormatDay(d.Year, d.Month, d.Day)))
				}
			}
		}

		if fullMonths == monthsPerYear {
			rc = append(rc, p.index(pattern, p.formatter.FormatYear(year, true)))
		} else {
			rc = append(rc, yearIndexes...)
		}
	}
	return rc
}

// Resolve -- returns the index patterns for the given range (use the zero Date for an unset bound)
//
// - since and until: Partition() of [since, until]
// - since only: Partition() of [since, now]
// - until only: the patterns of [until, now] in exclusion form ('-logs-2018-02-04'), followed
//   by the plain pattern. With Year frequency and until in the current year, that'd exclude the
//   whole current year, so only the plain pattern is returned.
//
// Fails with ErrUsage if pattern lacks the escape character or if both bounds are unset.
func (p *Partitioner) Resolve(pattern string, since, until Date) ([]string, error) {
	defer faster.TrackFn().Done()

	if !strings.ContainsRune(pattern, p.escape) {
		return nil, fmt.Errorf("%w: index pattern %q doesn't contain the escape character %q", ErrUsage, pattern, p.escape)
	}
	if since.IsZero() && until.IsZero() {
		return nil, fmt.Errorf("%w: 'since' or 'until' is required to resolve %q", ErrUsage, pattern)
	}

	var rc []string
	if since.IsZero() {
		var window, err = NewTimeWindow(until, p.now())
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %q: %w", pattern, err)
		}

		if p.frequency == Year && window.DeltaYears() < 1 {
			rc = []string{pattern}
		} else {
			rc = p.Partition(pattern, window)
			for i := range rc {
				rc[i] = exclude(rc[i])
			}
			rc = append(rc, pattern)
		}
	} else {
		if until.IsZero() {
			until = p.now()
		}
		var window, err = NewTimeWindow(since, until)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %q: %w", pattern, err)
		}
		rc = p.Partition(pattern, window)
	}

	p.log.WithFields(logrus.Fields{
		"pattern":   pattern,
		"since":     since,
		"until":     until,
		"frequency": p.frequency,
		"count":     len(rc),
	}).Debug("resolved index patterns")
	return rc, nil
}

// exclude -- turns an index name into its (Elasticsearch style) exclusion form
func exclude(index string) string {
	return "-" + index
}

// groupBy -- splits a sorted sequence of days into runs with the same key
func groupBy(days iter.Seq[Date], key func(Date) Date) iter.Seq2[Date, []Date] {
	return func(yield func(Date, []Date) bool) {
		var groupKey Date
		var group []Date
		for d := range days {
			var k = key(d)
			if len(group) > 0 && k != groupKey {
				if !yield(groupKey, group) {
					return
				}
				group = nil
			}
			groupKey = k
			group = append(group, d)
		}
		if len(group) > 0 {
			yield(groupKey, group)
		}
	}
}

// Default -- daily partitioning with big-endian dates, '-' as separator and '*' as escape character
var Default = MustNewPartitioner()

// Resolve -- shorthand for Default.Resolve()
func Resolve(pattern string, since, until Date) ([]string, error) {
	return Default.Resolve(pattern, since, until)
}
