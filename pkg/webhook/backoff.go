package webhook

import (
	"math/rand/v2"
	"time"
)

// backoff returns the delay before retry number attempt (starting at 1):
// initial doubled per attempt, capped at max, with +-10% jitter.
func backoff(attempt int, initial, max time.Duration) time.Duration {
	if attempt <= 0 || initial <= 0 {
		return 0
	}
	d := initial
	for i := 1; i < attempt && d < max; i++ {
		d *= 2
	}
	if max > 0 && d > max {
		d = max
	}
	jitter := (rand.Float64()*0.2 - 0.1) * float64(d)
	return d + time.Duration(jitter)
}
