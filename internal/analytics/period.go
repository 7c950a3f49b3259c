package analytics

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"

	secondsPerDay = 24 * 60 * 60
)

// Window is an inclusive range of calendar days. Start and End are always
// midnight UTC and Start never comes after End.
type Window struct {
	Start time.Time
	End   time.Time
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole number of calendar days from a to b. It
// counts in Unix seconds so spans beyond the range of time.Duration stay
// exact.
func DaysBetween(a, b time.Time) int {
	return int((Day(b).Unix() - Day(a).Unix()) / secondsPerDay)
}

// Resolve returns the window of length days ending on ref.
func Resolve(ref time.Time, length int) (Window, error) {
	if length <= 0 {
		return Window{}, fmt.Errorf("%w: length %d", ErrInvalidWindow, length)
	}
	end := Day(ref)
	return Window{Start: end.AddDate(0, 0, -(length - 1)), End: end}, nil
}

// NewWindow builds a window from explicit bounds.
func NewWindow(from, to time.Time) (Window, error) {
	from, to = Day(from), Day(to)
	if from.After(to) {
		return Window{}, fmt.Errorf("%w: %s is after %s", ErrInvalidWindow, from.Format(DateLayout), to.Format(DateLayout))
	}
	return Window{Start: from, End: to}, nil
}

// Days is the number of calendar days covered, both ends included.
func (w Window) Days() int {
	return DaysBetween(w.Start, w.End) + 1
}

// Previous is the window of equal length ending the day before w.Start.
func (w Window) Previous() Window {
	n := w.Days()
	end := w.Start.AddDate(0, 0, -1)
	return Window{Start: end.AddDate(0, 0, -(n - 1)), End: end}
}

func (w Window) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(w.Start) && !d.After(w.End)
}

// DayIndex is the zero-based day offset of t from w.Start. It may fall
// outside [0, Days()).
func (w Window) DayIndex(t time.Time) int {
	return DaysBetween(w.Start, t)
}

func (w Window) Labels() []string {
	labels := make([]string, w.Days())
	for i := range labels {
		labels[i] = w.Start.AddDate(0, 0, i).Format(DateLayout)
	}
	return labels
}

// ParseDate accepts a plain calendar date or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q", ErrInvalidWindow, s)
	}
	return Day(t), nil
}

// ResolveWindow picks the reporting window for a request. An explicit
// date_from/date_to range wins; otherwise the window of length days ends on
// the date filter, or on now when no date is given.
func ResolveWindow(f Filters, now time.Time, length int) (Window, error) {
	if f.Date != "" && (f.DateFrom != "" || f.DateTo != "") {
		return Window{}, fmt.Errorf("%w: date cannot be combined with date_from/date_to", ErrInvalidWindow)
	}
	if length <= 0 {
		return Window{}, fmt.Errorf("%w: length %d", ErrInvalidWindow, length)
	}

	if f.DateFrom != "" || f.DateTo != "" {
		to := Day(now)
		if f.DateTo != "" {
			t, err := ParseDate(f.DateTo)
			if err != nil {
				return Window{}, err
			}
			to = t
		}
		if f.DateFrom == "" {
			return Resolve(to, length)
		}
		from, err := ParseDate(f.DateFrom)
		if err != nil {
			return Window{}, err
		}
		return NewWindow(from, to)
	}

	ref := now
	if f.Date != "" {
		t, err := ParseDate(f.Date)
		if err != nil {
			return Window{}, err
		}
		ref = t
	}
	return Resolve(ref, length)
}

// MonthKey formats the revenue-target month a date belongs to.
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}
