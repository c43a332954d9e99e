package handler

import "time"

// SetOutcomeTimeout swaps the result dispatch timeout, the returned func restores it.
func SetOutcomeTimeout(d time.Duration) func() {
	prev := outcomeTimeout
	outcomeTimeout = d

	return func() {
		outcomeTimeout = prev
	}
}
