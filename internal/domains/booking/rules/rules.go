// Package rules holds the slot rules every booking must satisfy before it is stored.
package rules

import (
	"errors"
	"fmt"

	"mykuliah/config"
	"mykuliah/internal/domains/booking/model"
	"mykuliah/shared/clock"
	"mykuliah/shared/timezone"
)

var (
	ErrOutsideOperatingHours = errors.New("booking must start and end within operating hours")
	ErrInvalidRange          = errors.New("end time must be after start time")
	ErrSlotTaken             = errors.New("time slot already booked")
)

// Interval is a half-open [Start, End) span within one day.
type Interval struct {
	Start clock.TimeOfDay
	End   clock.TimeOfDay
}

func IntervalOf(b model.Booking) Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// Overlaps reports whether a and b share any instant. Intervals that only touch
// at a boundary do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && a.End > b.Start
}

// Hours is the daily window bookings must fit in, boundaries included.
type Hours struct {
	Open  clock.TimeOfDay
	Close clock.TimeOfDay
}

// DefaultHours is 07:00 to 18:00.
var DefaultHours = Hours{Open: clock.New(7, 0), Close: clock.New(18, 0)}

func NewHours(opening, closing string) (Hours, error) {
	o, err := clock.Parse(opening)
	if err != nil {
		return Hours{}, fmt.Errorf("invalid opening time: %w", err)
	}

	c, err := clock.Parse(closing)
	if err != nil {
		return Hours{}, fmt.Errorf("invalid closing time: %w", err)
	}

	if !o.Before(c) {
		return Hours{}, fmt.Errorf("opening time %s must be before closing time %s", o, c)
	}

	return Hours{Open: o, Close: c}, nil
}

// Check validates a slot against the window first and then against itself.
func (h Hours) Check(start, end clock.TimeOfDay) error {
	if start < h.Open || start > h.Close || end < h.Open || end > h.Close {
		return fmt.Errorf("%w (%s-%s)", ErrOutsideOperatingHours, h.Open, h.Close)
	}

	if start >= end {
		return ErrInvalidRange
	}

	return nil
}

// FindConflict returns the first blocking booking in existing that shares the
// candidate's room and date and overlaps its interval.
func FindConflict(candidate model.Booking, existing []model.Booking) (model.Booking, bool) {
	for _, b := range existing {
		if !b.Blocking() || b.RoomID != candidate.RoomID || !timezone.SameDate(b.Date, candidate.Date) {
			continue
		}

		if Overlaps(IntervalOf(b), IntervalOf(candidate)) {
			return b, true
		}
	}

	return model.Booking{}, false
}

// NoConflict builds the guard the store evaluates under its write lock.
func NoConflict(candidate model.Booking) func(existing []model.Booking) error {
	return func(existing []model.Booking) error {
		if b, found := FindConflict(candidate, existing); found {
			return fmt.Errorf("%w: %s is taken %s-%s", ErrSlotTaken, b.RoomName, b.StartTime, b.EndTime)
		}

		return nil
	}
}

// HoursFromConfig reads the window from APP_OPERATING_HOURS_*.
func HoursFromConfig(cfg *config.Config) (Hours, error) {
	return NewHours(cfg.App.OperatingHours.Open, cfg.App.OperatingHours.Close)
}
