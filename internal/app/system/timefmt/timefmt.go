// Package timefmt renders stored timestamps as the human-readable strings
// used throughout the dashboard (tables, detail views, CSV export).
//
// Upstream records frequently arrive with missing timestamps, which decode
// to the zero time; both formatters render that case as "N/A" so callers
// never need their own fallback.
package timefmt

import "time"

const (
	dateLayout     = "Jan 2, 2006"
	dateTimeLayout = "Jan 2, 2006 3:04 PM"

	// Missing is rendered for zero timestamps.
	Missing = "N/A"
)

// FormatDate renders t as "Jan 2, 2006", or Missing for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return Missing
	}
	return t.Format(dateLayout)
}

// FormatDateTime renders t as "Jan 2, 2006 3:04 PM", or Missing for the
// zero time.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return Missing
	}
	return t.Format(dateTimeLayout)
}
