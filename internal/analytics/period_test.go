package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	w, err := Resolve(time.Date(2024, 1, 31, 18, 30, 0, 0, time.UTC), 31)
	require.NoError(t, err)
	assert.Equal(t, date("2024-01-01"), w.Start)
	assert.Equal(t, date("2024-01-31"), w.End)
	assert.Equal(t, 31, w.Days())

	for _, n := range []int{0, -3} {
		_, err := Resolve(date("2024-01-31"), n)
		assert.ErrorIs(t, err, ErrInvalidWindow)
	}
}

func TestWindow_PreviousIsContiguous(t *testing.T) {
	refs := []string{"2024-01-01", "2024-02-29", "2024-03-31", "2023-12-31"}
	for _, ref := range refs {
		for _, n := range []int{1, 2, 7, 30, 31, 365} {
			w, err := Resolve(date(ref), n)
			require.NoError(t, err)
			p := w.Previous()

			assert.Equal(t, w.Days(), p.Days(), "%s/%d same length", ref, n)
			assert.Equal(t, w.Start.AddDate(0, 0, -1), p.End, "%s/%d contiguous", ref, n)
			assert.True(t, p.End.Before(w.Start), "%s/%d non-overlapping", ref, n)
		}
	}
}

func TestWindow_CenturiesLongRange(t *testing.T) {
	w, err := ResolveWindow(Filters{DateFrom: "1600-01-01", DateTo: "2024-01-31"}, date("2024-03-15"), 31)
	require.NoError(t, err)

	want := int((date("2024-01-31").Unix()-date("1600-01-01").Unix())/86400) + 1
	assert.Equal(t, want, w.Days())
	assert.Greater(t, w.Days(), 150000)

	p := w.Previous()
	assert.Equal(t, w.Days(), p.Days(), "same length")
	assert.Equal(t, date("1599-12-31"), p.End, "contiguous")
	assert.Equal(t, w.Days()-1, w.DayIndex(w.End))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2024-01-01", "2024-01-01", 0},
		{"2024-01-01", "2024-03-01", 60},
		{"2024-03-01", "2024-01-01", -60},
		{"1700-01-01", "2100-01-01", 146097},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DaysBetween(date(tt.a), date(tt.b)), "%s..%s", tt.a, tt.b)
	}
}

func TestWindow_Contains(t *testing.T) {
	w, err := NewWindow(date("2024-01-10"), date("2024-01-12"))
	require.NoError(t, err)

	assert.True(t, w.Contains(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2024, 1, 12, 23, 59, 59, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2024, 1, 9, 23, 59, 59, 0, time.UTC)))
	assert.False(t, w.Contains(date("2024-01-13")))
	assert.Equal(t, []string{"2024-01-10", "2024-01-11", "2024-01-12"}, w.Labels())
}

func TestNewWindow_Inverted(t *testing.T) {
	_, err := NewWindow(date("2024-02-01"), date("2024-01-01"))
	assert.True(t, errors.Is(err, ErrInvalidWindow))
}

func TestResolveWindow(t *testing.T) {
	now := date("2024-03-15").Add(9 * time.Hour)

	tests := []struct {
		name      string
		filters   Filters
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{name: "defaults to now", filters: Filters{}, wantStart: "2024-02-14", wantEnd: "2024-03-15"},
		{name: "reference date", filters: Filters{Date: "2024-01-31"}, wantStart: "2024-01-01", wantEnd: "2024-01-31"},
		{name: "rfc3339 date", filters: Filters{Date: "2024-01-31T22:10:00Z"}, wantStart: "2024-01-01", wantEnd: "2024-01-31"},
		{name: "explicit range", filters: Filters{DateFrom: "2024-01-05", DateTo: "2024-01-09"}, wantStart: "2024-01-05", wantEnd: "2024-01-09"},
		{name: "only date_to", filters: Filters{DateTo: "2024-01-31"}, wantStart: "2024-01-01", wantEnd: "2024-01-31"},
		{name: "only date_from", filters: Filters{DateFrom: "2024-03-01"}, wantStart: "2024-03-01", wantEnd: "2024-03-15"},
		{name: "inverted range", filters: Filters{DateFrom: "2024-02-01", DateTo: "2024-01-01"}, wantErr: true},
		{name: "date with range", filters: Filters{Date: "2024-01-31", DateFrom: "2024-01-01"}, wantErr: true},
		{name: "malformed", filters: Filters{Date: "31/01/2024"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ResolveWindow(tt.filters, now, 31)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWindow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, w.Start.Format(DateLayout))
			assert.Equal(t, tt.wantEnd, w.End.Format(DateLayout))
		})
	}
}
