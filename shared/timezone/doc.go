// Package timezone pins every booking date to the campus timezone.
//
// Usage:
//
//	now := timezone.Now()                          // current time in app timezone
//	today := timezone.Today()                      // midnight of the current app date
//	day, err := timezone.ParseDate("2025-03-01")   // calendar date in app timezone
//	label := timezone.FormatDate(day)              // "2025-03-01"
//
// The timezone comes from APP_TIMEZONE and is resolved when the package is
// imported. Use IANA names such as "Asia/Kuala_Lumpur" or "UTC".
package timezone
