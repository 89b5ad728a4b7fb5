package syncchan

// Typed wraps a *Channel to give a single Go static type ergonomic,
// type-safe send/receive methods without reimplementing the locking core
// per element type. Use Raw to get back the underlying *Channel for use
// in a Select call alongside channels of other element types - Select
// always operates on the untyped payload, the same way the Go runtime's
// own select erases element types internally.
type Typed[T any] struct {
	ch *Channel
}

// NewTyped creates a new Typed channel with the given fixed capacity,
// using default options.
func NewTyped[T any](capacity int) *Typed[T] {
	return &Typed[T]{ch: New(capacity)}
}

// NewTypedWithOptions creates a new Typed channel with the given fixed
// capacity and options.
func NewTypedWithOptions[T any](capacity int, opts ChannelOptions) *Typed[T] {
	return &Typed[T]{ch: NewWithOptions(capacity, opts)}
}

// Raw returns the underlying untyped *Channel.
func (t *Typed[T]) Raw() *Channel {
	return t.ch
}

// Send blocks until v can be appended, the channel is closed, or an
// internal error occurs.
func (t *Typed[T]) Send(v T) error {
	return t.ch.Send(v)
}

// Receive blocks until a value is available, the channel is closed, or an
// internal error occurs.
func (t *Typed[T]) Receive() (T, error) {
	payload, err := t.ch.Receive()
	if err != nil {
		var zero T
		return zero, err
	}
	return payload.(T), nil
}

// TrySend appends v without blocking.
func (t *Typed[T]) TrySend(v T) error {
	return t.ch.TrySend(v)
}

// TryReceive pops a value without blocking.
func (t *Typed[T]) TryReceive() (T, error) {
	payload, err := t.ch.TryReceive()
	if err != nil {
		var zero T
		return zero, err
	}
	return payload.(T), nil
}

// Close flips the channel to closed. See Channel.Close.
func (t *Typed[T]) Close() error {
	return t.ch.Close()
}

// Destroy releases the channel's resources. See Channel.Destroy.
func (t *Typed[T]) Destroy() error {
	return t.ch.Destroy()
}
