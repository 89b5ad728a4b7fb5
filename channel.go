// Package syncchan implements a bounded, thread-safe, multi-producer /
// multi-consumer message channel with blocking and non-blocking
// send/receive, explicit close semantics, and a multi-way Select that
// waits on a set of pending send/receive intents across arbitrary
// channels and commits exactly one of them.
package syncchan

import (
	"log/slog"
	"sync"

	"github.com/gofrs/uuid"

	"github.com/networkteam/syncchan/internal/fifobuffer"
	"github.com/networkteam/syncchan/internal/waitlist"
)

// Channel is a bounded FIFO queue of opaque payloads shared between any
// number of senders and receivers. The zero value is not usable; create
// one with New or NewWithOptions.
type Channel struct {
	id uuid.UUID

	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond

	buf  *fifobuffer.Buffer
	open bool

	waitingSend *waitlist.List[*notifier]
	waitingRecv *waitlist.List[*notifier]

	log *slog.Logger
}

// ChannelOptions configures a Channel created with NewWithOptions.
type ChannelOptions struct {
	// Logger overrides the default component logger.
	// Default: slog.Default().
	Logger *slog.Logger
}

// DefaultChannelOptions returns the default options for a Channel.
func DefaultChannelOptions() ChannelOptions {
	return ChannelOptions{}
}

// New creates a new open Channel with the given fixed capacity, using
// default options. Capacity must be greater than 0 - this implementation
// does not support zero-capacity (synchronous rendezvous) channels.
func New(capacity int) *Channel {
	return NewWithOptions(capacity, DefaultChannelOptions())
}

// NewWithOptions creates a new open Channel with the given fixed capacity
// and options.
func NewWithOptions(capacity int, opts ChannelOptions) *Channel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	id := uuid.Must(uuid.NewV7())
	ch := &Channel{
		id:          id,
		buf:         fifobuffer.New(capacity),
		open:        true,
		waitingSend: waitlist.New[*notifier](),
		waitingRecv: waitlist.New[*notifier](),
		log:         logger.With("component", "syncchan", "channel", id),
	}
	ch.notFull = sync.NewCond(&ch.mu)
	ch.notEmpty = sync.NewCond(&ch.mu)

	ch.log.Debug("channel created", "capacity", capacity)
	return ch
}

// ID returns the channel's unique identity, useful for correlating log
// lines across multiple channels.
func (ch *Channel) ID() uuid.UUID {
	return ch.id
}

// Send blocks until payload can be appended to the buffer, the channel is
// closed, or an internal error occurs.
func (ch *Channel) Send(payload any) error {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if !ch.open {
		return ErrClosed
	}

	for ch.buf.Len() == ch.buf.Cap() {
		ch.notFull.Wait()
		if !ch.open {
			return ErrClosed
		}
	}

	if err := ch.buf.Add(payload); err != nil {
		return ErrGeneric
	}

	ch.notEmpty.Signal()
	ch.wakeWaiters(ch.waitingRecv)
	return nil
}

// Receive blocks until a payload is available, the channel is closed, or
// an internal error occurs.
func (ch *Channel) Receive() (any, error) {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if !ch.open {
		return nil, ErrClosed
	}

	for ch.buf.Len() == 0 {
		ch.notEmpty.Wait()
		if !ch.open {
			return nil, ErrClosed
		}
	}

	payload, err := ch.buf.Remove()
	if err != nil {
		return nil, ErrGeneric
	}

	ch.notFull.Signal()
	ch.wakeWaiters(ch.waitingSend)
	return payload, nil
}

// TrySend appends payload without blocking. It returns ErrChannelFull if
// the buffer has no spare capacity.
func (ch *Channel) TrySend(payload any) error {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if !ch.open {
		return ErrClosed
	}
	if ch.buf.Len() == ch.buf.Cap() {
		return ErrChannelFull
	}

	if err := ch.buf.Add(payload); err != nil {
		return ErrGeneric
	}

	ch.notEmpty.Signal()
	ch.wakeWaiters(ch.waitingRecv)
	return nil
}

// TryReceive pops a payload without blocking. It returns ErrChannelEmpty
// if the buffer holds no payload.
func (ch *Channel) TryReceive() (any, error) {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if !ch.open {
		return nil, ErrClosed
	}
	if ch.buf.Len() == 0 {
		return nil, ErrChannelEmpty
	}

	payload, err := ch.buf.Remove()
	if err != nil {
		return nil, ErrGeneric
	}

	ch.notFull.Signal()
	ch.wakeWaiters(ch.waitingSend)
	return payload, nil
}

// Close flips the channel to closed and wakes every blocked or waiting
// sender/receiver/select. It returns ErrClosed if the channel was already
// closed. Close never drains or discards buffered data for the caller -
// it simply makes the channel terminal; a subsequent Receive/TryReceive
// always observes ErrClosed rather than any buffered payload, since close
// is immediate and terminal rather than a drain-then-close.
func (ch *Channel) Close() error {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if !ch.open {
		return ErrClosed
	}

	ch.open = false
	ch.notFull.Broadcast()
	ch.notEmpty.Broadcast()
	ch.wakeWaiters(ch.waitingSend)
	ch.wakeWaiters(ch.waitingRecv)

	ch.log.Debug("channel closed")
	return nil
}

// Destroy releases the channel's internal buffer and waiter lists. It
// returns ErrDestroy if the channel is still open. The caller is
// responsible for ensuring no Send/Receive/Select call is in flight.
func (ch *Channel) Destroy() error {
	ch.mu.Lock()
	if ch.open {
		ch.mu.Unlock()
		return ErrDestroy
	}
	ch.buf.Free()
	ch.mu.Unlock()

	ch.waitingSend.Destroy()
	ch.waitingRecv.Destroy()

	ch.log.Debug("channel destroyed")
	return nil
}

// wakeWaiters signals every notifier registered by a Select call on the
// given waiter list. It must be called with ch.mu held: a Select call
// only ever discovers a notifier while holding ch.mu, so holding it here
// is what prevents a missed wakeup (see select.go).
func (ch *Channel) wakeWaiters(list *waitlist.List[*notifier]) {
	list.Each(func(n *notifier) {
		n.wake()
	})
}
