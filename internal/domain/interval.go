package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInterval возвращается, если start >= end
var ErrInvalidInterval = errors.New("domain: interval start must be before end")

// Interval half-open time range [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds an interval enforcing Start < End
func NewInterval(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, fmt.Errorf("%w: [%s, %s)", ErrInvalidInterval,
			start.Format(DateTimeFormat), end.Format(DateTimeFormat))
	}
	return Interval{Start: start, End: end}, nil
}

// IntervalOf builds [start, start+minutes)
func IntervalOf(start time.Time, minutes int) (Interval, error) {
	return NewInterval(start, start.Add(time.Duration(minutes)*time.Minute))
}

// Duration returns End - Start
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps reports whether a and b intersect.
// Touching intervals (a.End == b.Start) do not overlap.
func Overlaps(a, b Interval) bool {
	// not (a.End <= b.Start || a.Start >= b.End)
	return a.End.After(b.Start) && a.Start.Before(b.End)
}

// Contains reports whether candidate lies fully inside window
func Contains(window, candidate Interval) bool {
	return !candidate.Start.Before(window.Start) && !candidate.End.After(window.End)
}

// StartTime formats Start as HH:MM
func (i Interval) StartTime() string {
	return i.Start.Format(TimeFormat)
}

// EndTime formats End as HH:MM
func (i Interval) EndTime() string {
	return i.End.Format(TimeFormat)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.Start.Format(DateTimeFormat), i.End.Format(DateTimeFormat))
}
