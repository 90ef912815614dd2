package timebound

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

// Between returns the span covering the two instants.
func Between(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}

// Stopwatch measures the span since its start, for asserting that a
// suspension really lasted (or stayed under) some duration.
type Stopwatch struct {
	start time.Time
}

func Start() *Stopwatch {
	return &Stopwatch{start: time.Now()}
}

func (s *Stopwatch) Span() TimeSpan {
	return timespan.BetweenTimes(s.start, time.Now())
}

func (s *Stopwatch) Elapsed() time.Duration {
	return s.Span().Duration()
}
