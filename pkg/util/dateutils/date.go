package dateutils

import (
	"fmt"
	"time"
)

// DefaultLayout is the human-oriented timestamp layout used across log output.
const DefaultLayout = "2006-01-02 15:04:05"

// Now returns the current UTC time.
func Now() time.Time {
	return time.Now().UTC()
}

// Format renders the given time with the default layout.
func Format(t time.Time) string {
	return t.Format(DefaultLayout)
}

// ISOFormat renders the given time as an ISO-8601 / RFC3339 string.
func ISOFormat(t time.Time) string {
	return t.Format(time.RFC3339)
}

// TimeAgo returns a human-readable description of how long ago t was.
func TimeAgo(t time.Time) string {
	diff := time.Now().UTC().Sub(t)

	days := int(diff.Hours() / 24)
	switch {
	case days > 365:
		return fmt.Sprintf("%d year(s) ago", days/365)
	case days > 30:
		return fmt.Sprintf("%d month(s) ago", days/30)
	case days > 0:
		return fmt.Sprintf("%d day(s) ago", days)
	case diff >= time.Hour:
		return fmt.Sprintf("%d hour(s) ago", int(diff.Hours()))
	case diff >= time.Minute:
		return fmt.Sprintf("%d minute(s) ago", int(diff.Minutes()))
	default:
		return "Just now"
	}
}
