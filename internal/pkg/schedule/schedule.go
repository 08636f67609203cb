package schedule

import (
	"errors"
	"fmt"
	"time"
)

// CutoffHour is the local wall-clock hour after which a day's orders are
// frozen for customers.
const CutoffHour = 8

var ErrInvalidDate = errors.New("invalid date")

// Day identifies a calendar day with no time-of-day and no zone attached.
// Delivery-day identity is zone-naive; only the cutoff instant is zone-aware.
type Day struct {
	year  int
	month time.Month
	day   int
}

func NewDay(year int, month time.Month, day int) Day {
	return Day{year: year, month: month, day: day}
}

// DayOf strips the time-of-day from t, keeping the calendar date as t's own
// location reads it.
func DayOf(t time.Time) Day {
	return Day{year: t.Year(), month: t.Month(), day: t.Day()}
}

// ParseDay parses a day in "2006-01-02" form.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Day{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DayOf(t), nil
}

func (d Day) IsZero() bool {
	return d == Day{}
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// UTCKey maps the day to 00:00 UTC on the same calendar date. This is a
// storage and query partition key, not a time-zone conversion.
func (d Day) UTCKey() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the day n calendar days later.
func (d Day) AddDays(n int) Day {
	return DayOf(d.UTCKey().AddDate(0, 0, n))
}

// ResolveLocation resolves an IANA zone identifier, falling back to UTC when
// the identifier is empty or unknown. It never fails; callers that care about
// the fallback log it themselves.
func ResolveLocation(tzID string) *time.Location {
	if tzID == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tzID)
	if err != nil {
		return time.UTC
	}
	return loc
}

// CancelUntil computes the absolute instant after which the day's orders
// become immutable to customers: CutoffHour on that calendar day as wall-clock
// time in the resolved zone, converted to UTC. DST offsets in effect on that
// date are honored by time.Date.
func CancelUntil(d Day, tzID string) time.Time {
	loc := ResolveLocation(tzID)
	return time.Date(d.year, d.month, d.day, CutoffHour, 0, 0, 0, loc).UTC()
}
