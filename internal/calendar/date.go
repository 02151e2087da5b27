package calendar

import (
	"fmt"
	"strings"
	"time"

	dnderr "github.com/KirkDiggler/creature-arena/internal/errors"
)

const layout = "2006-01-02"

// Date is an immutable calendar day with no time or zone component.
type Date struct {
	year  int
	month int
	day   int
}

// NewDate validates and returns the date. Month must be 1-12 and the day must
// exist in that month.
func NewDate(year, month, day int) (Date, error) {
	if year < 1 {
		return Date{}, dnderr.InvalidArgumentf("invalid year: %d", year).
			WithMeta("year", year)
	}

	if month < 1 || month > 12 {
		return Date{}, dnderr.InvalidArgumentf("invalid month: %d", month).
			WithMeta("month", month)
	}

	if day < 1 || day > daysIn(year, month) {
		return Date{}, dnderr.InvalidArgumentf("invalid day %d for %04d-%02d", day, year, month).
			WithMeta("day", day)
	}

	return Date{year: year, month: month, day: day}, nil
}

// MustDate is NewDate for literals known to be valid. It panics otherwise.
func MustDate(year, month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// Parse reads a YYYY-MM-DD date. The result obeys the same rules as NewDate.
func Parse(value string) (Date, error) {
	t, err := time.Parse(layout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument,
			fmt.Sprintf("invalid date %q", value))
	}
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// FromTime drops the clock part of t, keeping t's own location.
func FromTime(t time.Time) Date {
	return Date{year: t.Year(), month: int(t.Month()), day: t.Day()}
}

func (d Date) Year() int  { return d.year }
func (d Date) Month() int { return d.month }
func (d Date) Day() int   { return d.day }

// IsZero reports whether d was never constructed.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Compare returns -1, 0 or 1 when d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return sign(d.year - other.year)
	case d.month != other.month:
		return sign(d.month - other.month)
	default:
		return sign(d.day - other.day)
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }
func (d Date) Equal(other Date) bool  { return d.Compare(other) == 0 }

// YearsUntil counts the whole years from d to other, decremented when other's
// month and day fall before d's month and day. Negative if other precedes d.
func (d Date) YearsUntil(other Date) int {
	years := other.year - d.year
	if other.month < d.month || (other.month == d.month && other.day < d.day) {
		years--
	}
	return years
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Compact formats the date as YYYYMMDD.
func (d Date) Compact() string {
	return fmt.Sprintf("%04d%02d%02d", d.year, d.month, d.day)
}

func daysIn(year, month int) int {
	// Day zero of the next month is the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
