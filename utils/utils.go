package utils

import (
	"time"
)

// TimestampLayout renders as DD-MM-YYYY hh:mm AM/PM
const TimestampLayout = "02-01-2006 03:04 PM"

// FormatTimestamp formats t in its own location
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
