package syncchan

import (
	"testing"
	"time"
)

// WaitFor polls cond with a short interval until it returns true or
// timeout elapses, failing t otherwise. It is a test helper for the
// "goroutine must be blocked before we act" race inherent to testing
// blocking primitives: a bare time.Sleep is either too short (flaky) or
// too long (slow), so scenario tests poll an observable condition
// instead.
func WaitFor(t testing.TB, timeout time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}

	if !cond() {
		t.Fatalf("timed out after %s waiting for condition", timeout)
	}
}
