// Package models defines data structures and domain types.
package models

import "time"

// DateLayout is the canonical calendar-day layout used for display and storage.
const DateLayout = "2006-01-02"

// Record is one hourly bikeshare observation.
type Record struct {
	Date    time.Time
	Hour    int
	Season  int
	Weekday int
	Count   int64
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range from two dates, truncating both to the day.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: Day(start), End: Day(end)}
}

// Day truncates t to midnight UTC of the same calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a calendar day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// Contains reports whether d falls within the range, both ends inclusive.
func (r DateRange) Contains(d time.Time) bool {
	d = Day(d)
	return !d.Before(r.Start) && !d.After(r.End)
}

// IsEmpty reports whether no day can satisfy the range.
func (r DateRange) IsEmpty() bool {
	return r.Start.After(r.End)
}

// Clamp limits each endpoint to the given bounds independently.
// An inverted range stays inverted.
func (r DateRange) Clamp(bounds DateRange) DateRange {
	return DateRange{
		Start: clampDay(r.Start, bounds),
		End:   clampDay(r.End, bounds),
	}
}

// Days returns the number of calendar days covered, or 0 for an empty range.
func (r DateRange) Days() int {
	if r.IsEmpty() {
		return 0
	}
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// String formats the range as "start → end".
func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + " → " + r.End.Format(DateLayout)
}

func clampDay(d time.Time, bounds DateRange) time.Time {
	d = Day(d)
	if d.Before(bounds.Start) {
		return bounds.Start
	}
	if d.After(bounds.End) {
		return bounds.End
	}
	return d
}
