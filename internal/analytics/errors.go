package analytics

import "errors"

var (
	// ErrInvalidWindow is returned for non-positive window lengths, inverted
	// or unparseable date ranges, and conflicting date filters.
	ErrInvalidWindow = errors.New("invalid date window")

	// ErrDataUnavailable is returned when no snapshot can be obtained.
	ErrDataUnavailable = errors.New("data unavailable")
)
