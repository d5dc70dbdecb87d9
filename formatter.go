package partitioner

import (
	"fmt"
	"strings"
	"time"
)

// Wildcard is the literal that replaces the fields below a collapsed year or month
const Wildcard = "*"

// DefaultSeparator is used by the default formatter ('2018-02-04')
const DefaultSeparator = '-'

// characters that would break an index name (or the wildcard)
const invalidSeparators = "\\/*?\"<>| ,"

// DateFormatter -- turns years, months and days into index name segments
//
// Implementations have to be safe for concurrent use. The wildcard flag asks for
// the fields below the given granularity to be replaced with Wildcard.
type DateFormatter interface {
	FormatYear(year int, wildcard bool) string
	FormatMonth(year int, month time.Month, wildcard bool) string
	FormatDay(year int, month time.Month, day int) string
}

// Ordering -- the order of the year, month and day fields
type Ordering int

const (
	// BigEndian -- year, month, day (e.g. 2018-04-22)
	BigEndian Ordering = iota
	// LittleEndian -- day, month, year (e.g. 22-04-2018)
	LittleEndian
	// MiddleEndian -- month, day, year (e.g. 04-22-2018)
	MiddleEndian
)

var orderingNames = map[Ordering]string{
	BigEndian:    "big-endian",
	LittleEndian: "little-endian",
	MiddleEndian: "middle-endian",
}

func (o Ordering) String() string {
	if name, ok := orderingNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Ordering(%d)", int(o))
}

// ParseOrdering -- accepts 'big-endian', 'little-endian' and 'middle-endian' (or 'big', 'little', 'middle')
func ParseOrdering(s string) (Ordering, error) {
	var name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "-endian")
	for o, fullName := range orderingNames {
		if strings.TrimSuffix(fullName, "-endian") == name {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown date ordering %q", ErrInvalidConfig, s)
}

// NewFormatter -- returns the DateFormatter for the given ordering, fails if sep can't be used in index names
func NewFormatter(ordering Ordering, sep rune) (DateFormatter, error) {
	var base, err = newBaseFormatter(sep)
	if err != nil {
		return nil, err
	}

	switch ordering {
	case BigEndian:
		return BigEndianFormatter{base}, nil
	case LittleEndian:
		return LittleEndianFormatter{base}, nil
	case MiddleEndian:
		return MiddleEndianFormatter{base}, nil
	}
	return nil, fmt.Errorf("%w: unknown date ordering %v", ErrInvalidConfig, ordering)
}

func NewBigEndianFormatter(sep rune) (BigEndianFormatter, error) {
	var base, err = newBaseFormatter(sep)
	return BigEndianFormatter{base}, err
}

func NewLittleEndianFormatter(sep rune) (LittleEndianFormatter, error) {
	var base, err = newBaseFormatter(sep)
	return LittleEndianFormatter{base}, err
}

func NewMiddleEndianFormatter(sep rune) (MiddleEndianFormatter, error) {
	var base, err = newBaseFormatter(sep)
	return MiddleEndianFormatter{base}, err
}

// shared by all orderings: holds the separator and joins fields with it
type baseFormatter struct {
	sep string
}

func newBaseFormatter(sep rune) (baseFormatter, error) {
	if sep == 0 || strings.ContainsRune(invalidSeparators, sep) {
		return baseFormatter{}, fmt.Errorf("%w: the separator %q is not valid", ErrInvalidConfig, sep)
	}
	return baseFormatter{sep: string(sep)}, nil
}

// Separator -- the string placed between fields
func (f baseFormatter) Separator() string { return f.sep }

func (f baseFormatter) join(fields ...string) string {
	return strings.Join(fields, f.sep)
}

func yearField(y int) string         { return fmt.Sprintf("%04d", y) }
func monthField(m time.Month) string { return fmt.Sprintf("%02d", int(m)) }
func dayField(d int) string          { return fmt.Sprintf("%02d", d) }

// BigEndianFormatter -- most significant field first: '2018', '2018-*', '2018-04', '2018-04-*', '2018-04-22'
type BigEndianFormatter struct{ baseFormatter }

func (f BigEndianFormatter) FormatYear(y int, wildcard bool) string {
	if wildcard {
		return f.join(yearField(y), Wildcard)
	}
	return yearField(y)
}

func (f BigEndianFormatter) FormatMonth(y int, m time.Month, wildcard bool) string {
	if wildcard {
		return f.join(yearField(y), monthField(m), Wildcard)
	}
	return f.join(yearField(y), monthField(m))
}

func (f BigEndianFormatter) FormatDay(y int, m time.Month, d int) string {
	return f.join(yearField(y), monthField(m), dayField(d))
}

// LittleEndianFormatter -- least significant field first: '2018', '*-2018', '04-2018', '*-04-2018', '22-04-2018'
type LittleEndianFormatter struct{ baseFormatter }

func (f LittleEndianFormatter) FormatYear(y int, wildcard bool) string {
	if wildcard {
		return f.join(Wildcard, yearField(y))
	}
	return yearField(y)
}

func (f LittleEndianFormatter) FormatMonth(y int, m time.Month, wildcard bool) string {
	if wildcard {
		return f.join(Wildcard, monthField(m), yearField(y))
	}
	return f.join(monthField(m), yearField(y))
}

func (f LittleEndianFormatter) FormatDay(y int, m time.Month, d int) string {
	return f.join(dayField(d), monthField(m), yearField(y))
}

// MiddleEndianFormatter -- month, day, year: '2018', '*-2018', '04-2018', '04-*-2018', '04-22-2018'
type MiddleEndianFormatter struct{ baseFormatter }

func (f MiddleEndianFormatter) FormatYear(y int, wildcard bool) string {
	if wildcard {
		return f.join(Wildcard, yearField(y))
	}
	return yearField(y)
}

func (f MiddleEndianFormatter) FormatMonth(y int, m time.Month, wildcard bool) string {
	if wildcard {
		return f.join(monthField(m), Wildcard, yearField(y))
	}
	return f.join(monthField(m), yearField(y))
}

func (f MiddleEndianFormatter) FormatDay(y int, m time.Month, d int) string {
	return f.join(monthField(m), dayField(d), yearField(y))
}

// interface declarations
var _ DateFormatter = BigEndianFormatter{}
var _ DateFormatter = LittleEndianFormatter{}
var _ DateFormatter = MiddleEndianFormatter{}
