package timezone

import (
	"time"

	"mykuliah/config"
	"mykuliah/shared/constant"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC")
		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Msg("Application timezone initialized")
}

// GetLocation returns the application timezone, UTC when it has not been resolved.
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// Today returns midnight of the current date in the application timezone.
func Today() time.Time {
	return StartOfDay(Now())
}

// StartOfDay truncates t to midnight of its calendar date in the application timezone.
func StartOfDay(t time.Time) time.Time {
	local := t.In(GetLocation())

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, GetLocation())
}

// ParseDate parses a "2006-01-02" calendar date in the application timezone.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(constant.DateLayout, value, GetLocation())
}

// FormatDate renders t as a "2006-01-02" calendar date in the application timezone.
func FormatDate(t time.Time) string {
	return t.In(GetLocation()).Format(constant.DateLayout)
}

// SameDate reports whether a and b fall on the same calendar date in the application timezone.
func SameDate(a, b time.Time) bool {
	return FormatDate(a) == FormatDate(b)
}

// Format formats t in the application timezone
func Format(t time.Time, layout string) string {
	return t.In(GetLocation()).Format(layout)
}
