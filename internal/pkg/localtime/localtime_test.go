package localtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStamp(t *testing.T) {
	instant := time.Date(2024, 3, 10, 18, 30, 5, 999, time.UTC)

	date, clock := Stamp(instant)
	assert.Equal(t, "2024-03-11", date)
	assert.Equal(t, "01:30:05", clock)
}

func TestStampIgnoresInputZone(t *testing.T) {
	instant := time.Date(2024, 3, 10, 18, 30, 5, 0, time.UTC)
	berlin := instant.In(time.FixedZone("CET", 3600))
	jakarta := instant.In(time.FixedZone("WIB", 7*3600))

	wantDate, wantClock := Stamp(instant)
	for _, in := range []time.Time{berlin, jakarta} {
		date, clock := Stamp(in)
		assert.Equal(t, wantDate, date)
		assert.Equal(t, wantClock, clock)
	}
}

func TestNowUsesClock(t *testing.T) {
	fixed := func() time.Time { return time.Date(2023, 12, 31, 17, 0, 0, 0, time.UTC) }

	date, clock := Now(fixed)
	assert.Equal(t, "2024-01-01", date)
	assert.Equal(t, "00:00:00", clock)
}

func TestNowDefaultsToWallClock(t *testing.T) {
	date, clock := Now(nil)
	_, err := time.Parse(DateLayout, date)
	assert.NoError(t, err)
	_, err = time.Parse(ClockLayout, clock)
	assert.NoError(t, err)
}
