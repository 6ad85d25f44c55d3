// Package clock holds wall-clock values that carry no date, such as the start and end of a booking slot.
package clock

import (
	"fmt"
	"time"

	"mykuliah/shared/constant"
)

const minutesPerDay = 24 * 60

// TimeOfDay is the number of minutes elapsed since midnight.
type TimeOfDay int

// Parse reads an "HH:MM" 24-hour value.
func Parse(value string) (TimeOfDay, error) {
	t, err := time.Parse(constant.TimeOfDayLayout, value)
	if err != nil {
		return 0, fmt.Errorf("failed to parse time of day %q: %w", value, err)
	}

	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(value string) TimeOfDay {
	t, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return t
}

// New builds a TimeOfDay from an hour and minute pair.
func New(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < minutesPerDay
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t > other
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}
