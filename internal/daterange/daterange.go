// Package daterange provides the date-interval primitives shared by the
// tenancy allocation rules. Boundaries are inclusive: two ranges that merely
// touch on a single date overlap.
package daterange

import "time"

// Range is a date interval. A nil End means the range is open-ended and
// extends to +infinity, not to "today".
type Range struct {
	Start time.Time
	End   *time.Time
}

// Closed builds a bounded range.
func Closed(start, end time.Time) Range {
	return Range{Start: start, End: &end}
}

// Open builds an open-ended range starting at start.
func Open(start time.Time) Range {
	return Range{Start: start}
}

// IsOpenEnded reports whether the range has no end date
func (r Range) IsOpenEnded() bool {
	return r.End == nil
}

// Overlaps reports whether the two ranges share at least one date.
// Comparison is inclusive on both endpoints and symmetric; open ends are
// treated as +infinity.
func (r Range) Overlaps(other Range) bool {
	return startsOnOrBeforeEnd(r.Start, other.End) && startsOnOrBeforeEnd(other.Start, r.End)
}

// Contains reports whether the range covers the given date, endpoints included.
func (r Range) Contains(date time.Time) bool {
	if date.Before(r.Start) {
		return false
	}
	return r.End == nil || !date.After(*r.End)
}

// Encloses reports whether other lies entirely within r, endpoints included.
func (r Range) Encloses(other Range) bool {
	if other.Start.Before(r.Start) {
		return false
	}
	if r.End == nil {
		return true
	}
	if other.End == nil {
		return false
	}
	return !other.End.After(*r.End)
}

// Valid reports whether Start <= End (always true for open-ended ranges).
func (r Range) Valid() bool {
	return r.End == nil || !r.Start.After(*r.End)
}

func startsOnOrBeforeEnd(start time.Time, end *time.Time) bool {
	return end == nil || !start.After(*end)
}
