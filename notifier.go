package syncchan

import "sync"

// notifier is the wake-up target a single Select call registers on every
// channel it is waiting on. It is allocated once per Select invocation and
// lives for the duration of that call, identified by its stable memory
// address, which in Go is simply pointer identity (*notifier used as a
// waitlist element).
type notifier struct {
	mu   sync.Mutex
	cond *sync.Cond
}

func newNotifier() *notifier {
	n := &notifier{}
	n.cond = sync.NewCond(&n.mu)
	return n
}

// wake signals n's condition variable. The caller must already hold the
// lock of the channel whose waiter list n was found on - that is what
// prevents a missed wakeup (see the sleep-path comment inside Select).
func (n *notifier) wake() {
	n.mu.Lock()
	n.cond.Signal()
	n.mu.Unlock()
}
