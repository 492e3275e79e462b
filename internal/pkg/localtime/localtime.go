package localtime

import "time"

const (
	// Offset is the fixed WIB (UTC+7) wall-clock shift used for article stamps.
	Offset = 7 * time.Hour

	DateLayout  = "2006-01-02"
	ClockLayout = "15:04:05"
)

// Clock returns the current instant. Tests replace it.
type Clock func() time.Time

// Stamp formats t as a WIB date and time of day. The host time zone is never
// consulted: t is converted to UTC and shifted by Offset before formatting.
func Stamp(t time.Time) (date string, clock string) {
	shifted := t.UTC().Add(Offset)
	return shifted.Format(DateLayout), shifted.Format(ClockLayout)
}

// Now stamps the current instant reported by c, or time.Now when c is nil.
func Now(c Clock) (string, string) {
	if c == nil {
		c = time.Now
	}
	return Stamp(c())
}
