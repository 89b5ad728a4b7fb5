package syncchan

import "errors"

// Sentinel errors returned by Channel and Select operations. Callers
// should compare with errors.Is rather than ==, so a future wrapped
// variant (e.g. fmt.Errorf("%w: ...", ErrGeneric)) stays compatible.
var (
	// ErrClosed is returned by Send/Receive/TrySend/TryReceive/Select when
	// the channel was observed closed, and by Close on an already-closed
	// channel.
	ErrClosed = errors.New("syncchan: channel is closed")

	// ErrChannelFull is returned by TrySend when the buffer has no spare
	// capacity.
	ErrChannelFull = errors.New("syncchan: channel is full")

	// ErrChannelEmpty is returned by TryReceive when the buffer holds no
	// payload.
	ErrChannelEmpty = errors.New("syncchan: channel is empty")

	// ErrDestroy is returned by Destroy when called on a channel that is
	// still open.
	ErrDestroy = errors.New("syncchan: destroy called on an open channel")

	// ErrGeneric surfaces a lower-level failure (buffer internal error)
	// that leaves the caller's operation abandoned without a partial
	// mutation.
	ErrGeneric = errors.New("syncchan: internal channel error")
)
