package summarize

import "time"

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryBaseDelay is the first retry delay; later delays grow
// linearly from it.
const DefaultRetryBaseDelay = 2 * time.Second

// DefaultMaxAttempts is the total number of language model calls made
// before giving up.
const DefaultMaxAttempts = 3

// LinearBackoff returns the delays slept between attempts when making at
// most maxAttempts calls: base, 2*base, ... (maxAttempts-1 entries).
func LinearBackoff(base time.Duration, maxAttempts int) []time.Duration {
	if maxAttempts < 2 {
		return nil
	}
	delays := make([]time.Duration, maxAttempts-1)
	for i := range delays {
		delays[i] = base * time.Duration(i+1)
	}
	return delays
}

// DefaultRetryDelays returns the backoff delays for model retries: 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return LinearBackoff(DefaultRetryBaseDelay, DefaultMaxAttempts)
}
