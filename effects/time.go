package effects

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

func NewTimeSpan(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}

// SpanSince is the span from a past instant up to now, used by diagnostic
// views to report how long a registration has been live.
func SpanSince(from time.Time) TimeSpan {
	return timespan.BetweenTimes(from, time.Now())
}
