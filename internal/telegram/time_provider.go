package telegram

import "time"

type timeProvider interface {
	// Now is the zone's wall clock, UTC is the real instant.
	Now() time.Time
	UTC() time.Time
	UTCDiff() time.Duration
	ZoneName() string
}

type stdTime struct {
	utcDiff  time.Duration
	zoneName string
}

func (s stdTime) ZoneName() string {
	return s.zoneName
}

func (s stdTime) UTCDiff() time.Duration {
	return s.utcDiff
}

// Now is wall clock time of the bot's zone, so that "today" on the
// calendar matches what its users see.
func (s stdTime) Now() time.Time {
	return time.Now().UTC().Add(s.utcDiff)
}

func (s stdTime) UTC() time.Time {
	return time.Now().UTC()
}
