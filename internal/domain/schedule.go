package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

var (
	// ErrSundayWindow возвращается при попытке задать часы работы на воскресенье
	ErrSundayWindow = errors.New("domain: sunday cannot have an opening window")

	// ErrDuplicateWindow возвращается, если для дня задано несколько окон
	ErrDuplicateWindow = errors.New("domain: duplicate opening window for weekday")

	// ErrInvalidWindow возвращается, если open >= close или время некорректно
	ErrInvalidWindow = errors.New("domain: invalid opening window")
)

// Window opening hours of a single weekday
type Window struct {
	Weekday time.Weekday
	Period  string // "dopoldne" / "popoldne", only for display
	Open    types.TimeString
	Close   types.TimeString
}

// On materializes the window on date in loc
func (w Window) On(date time.Time, loc *time.Location) (Interval, error) {
	open, err := w.Open.On(date, loc)
	if err != nil {
		return Interval{}, err
	}
	closeAt, err := w.Close.On(date, loc)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(open, closeAt)
}

// OpeningHours weekly opening-hours table.
// Immutable after construction; Sunday and absent days are closed.
type OpeningHours struct {
	windows map[time.Weekday]Window
}

// NewOpeningHours validates windows and builds the table
func NewOpeningHours(windows []Window) (OpeningHours, error) {
	table := make(map[time.Weekday]Window, len(windows))

	for _, w := range windows {
		if w.Weekday == time.Sunday {
			return OpeningHours{}, ErrSundayWindow
		}
		if _, exists := table[w.Weekday]; exists {
			return OpeningHours{}, fmt.Errorf("%w: %s", ErrDuplicateWindow, WeekdayNames[w.Weekday])
		}
		if err := w.Open.Validate(); err != nil {
			return OpeningHours{}, fmt.Errorf("%w: %s open: %v", ErrInvalidWindow, WeekdayNames[w.Weekday], err)
		}
		if err := w.Close.Validate(); err != nil {
			return OpeningHours{}, fmt.Errorf("%w: %s close: %v", ErrInvalidWindow, WeekdayNames[w.Weekday], err)
		}
		if !w.Open.IsBefore(w.Close) {
			return OpeningHours{}, fmt.Errorf("%w: %s %s-%s", ErrInvalidWindow, WeekdayNames[w.Weekday], w.Open, w.Close)
		}
		table[w.Weekday] = w
	}

	return OpeningHours{windows: table}, nil
}

// WindowFor returns the window of weekday, false when closed
func (h OpeningHours) WindowFor(weekday time.Weekday) (Window, bool) {
	if weekday == time.Sunday {
		return Window{}, false
	}
	w, ok := h.windows[weekday]
	return w, ok
}

// Windows returns a copy of the table ordered Monday..Saturday
func (h OpeningHours) Windows() []Window {
	result := make([]Window, 0, len(h.windows))
	for _, wd := range WeekdayOrder {
		if w, ok := h.windows[wd]; ok {
			result = append(result, w)
		}
	}
	return result
}

// DefaultWindows salon hours used when config has none
func DefaultWindows() []Window {
	morning := func(wd time.Weekday) Window {
		return Window{Weekday: wd, Period: "dopoldne", Open: "08:00", Close: "12:00"}
	}
	afternoon := func(wd time.Weekday, closeAt types.TimeString) Window {
		return Window{Weekday: wd, Period: "popoldne", Open: "14:00", Close: closeAt}
	}

	return []Window{
		morning(time.Monday),
		morning(time.Tuesday),
		afternoon(time.Wednesday, "19:00"),
		afternoon(time.Thursday, "19:00"),
		afternoon(time.Friday, "19:00"),
		afternoon(time.Saturday, "18:00"),
	}
}

// ParseWeekday maps a canonical weekday name back to time.Weekday
func ParseWeekday(name string) (time.Weekday, bool) {
	for wd, n := range WeekdayNames {
		if n == name {
			return wd, true
		}
	}
	return time.Sunday, false
}
