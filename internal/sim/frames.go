package sim

import (
	"context"
	"time"
)

// Limit forwards at most n frame signals from in, then closes the returned
// channel. It also closes once ctx is done.
func Limit(ctx context.Context, in <-chan time.Time, n int) <-chan time.Time {
	out := make(chan time.Time)
	go func() {
		defer close(out)
		for i := 0; i < n; i++ {
			var t time.Time
			select {
			case <-ctx.Done():
				return
			case t = <-in:
			}
			select {
			case <-ctx.Done():
				return
			case out <- t:
			}
		}
	}()
	return out
}
