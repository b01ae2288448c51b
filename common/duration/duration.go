package duration

import (
	"time"

	"github.com/hako/durafmt"
)

// String returns a human-readable representation of d, limited to its two
// most significant units. Durations below a millisecond are shown in microseconds.
func String(d time.Duration) string {
	if d < time.Millisecond {
		d = d.Round(time.Microsecond)
	} else {
		d = d.Round(time.Millisecond)
	}
	return durafmt.Parse(d).LimitFirstN(2).String()
}
