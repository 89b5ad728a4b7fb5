package syncchan_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/syncchan"
)

func TestChannel_CapacityOnePingPong(t *testing.T) {
	t.Parallel()

	ch := syncchan.New(1)
	defer ch.Close()

	var wg sync.WaitGroup
	wg.Add(2)

	var received []any
	go func() {
		defer wg.Done()
		for i := 0; i < 3; i++ {
			v, err := ch.Receive()
			require.NoError(t, err)
			received = append(received, v)
		}
	}()

	go func() {
		defer wg.Done()
		for i := 1; i <= 3; i++ {
			require.NoError(t, ch.Send(i))
		}
	}()

	wg.Wait()
	assert.Equal(t, []any{1, 2, 3}, received)
}

func TestChannel_NonBlockingFull(t *testing.T) {
	t.Parallel()

	ch := syncchan.New(2)
	defer ch.Close()

	require.NoError(t, ch.TrySend("x"))
	require.NoError(t, ch.TrySend("y"))

	err := ch.TrySend("z")
	assert.ErrorIs(t, err, syncchan.ErrChannelFull)

	v, err := ch.TryReceive()
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	require.NoError(t, ch.TrySend("z"))
}

func TestChannel_NonBlockingEmpty(t *testing.T) {
	t.Parallel()

	ch := syncchan.New(1)
	defer ch.Close()

	_, err := ch.TryReceive()
	assert.ErrorIs(t, err, syncchan.ErrChannelEmpty)
}

func TestChannel_CloseWakesBlockedSender(t *testing.T) {
	t.Parallel()

	ch := syncchan.New(1)
	require.NoError(t, ch.Send("fills buffer"))

	var parked atomic.Bool
	done := make(chan error, 1)
	go func() {
		parked.Store(true)
		done <- ch.Send("blocks")
	}()

	// Give the sender a moment to actually park on notFull before closing.
	syncchan.WaitFor(t, time.Second, parked.Load)
	time.Sleep(10 * time.Millisecond)

	require.NoError(t, ch.Close())

	select {
	case err := <-done:
		assert.ErrorIs(t, err, syncchan.ErrClosed)
	case <-time.After(time.Second):
		t.Fatal("blocked sender was not woken by Close")
	}

	_, err := ch.TryReceive()
	assert.ErrorIs(t, err, syncchan.ErrClosed)
}

func TestChannel_CloseIsIdempotentlyAnError(t *testing.T) {
	t.Parallel()

	ch := syncchan.New(1)
	require.NoError(t, ch.Close())
	assert.ErrorIs(t, ch.Close(), syncchan.ErrClosed)
}

func TestChannel_OperationsAfterCloseReturnClosedError(t *testing.T) {
	t.Parallel()

	ch := syncchan.New(1)
	require.NoError(t, ch.Close())

	assert.ErrorIs(t, ch.Send("x"), syncchan.ErrClosed)
	_, err := ch.Receive()
	assert.ErrorIs(t, err, syncchan.ErrClosed)
	assert.ErrorIs(t, ch.TrySend("x"), syncchan.ErrClosed)
	_, err = ch.TryReceive()
	assert.ErrorIs(t, err, syncchan.ErrClosed)
}

func TestChannel_DestroyOnOpenChannelErrorsAndStaysUsable(t *testing.T) {
	t.Parallel()

	ch := syncchan.New(1)

	assert.ErrorIs(t, ch.Destroy(), syncchan.ErrDestroy)

	// The channel must still be fully usable.
	require.NoError(t, ch.TrySend("x"))
	v, err := ch.TryReceive()
	require.NoError(t, err)
	assert.Equal(t, "x", v)
}

func TestChannel_DestroyAfterCloseSucceeds(t *testing.T) {
	t.Parallel()

	ch := syncchan.New(1)
	require.NoError(t, ch.Close())
	assert.NoError(t, ch.Destroy())
}

func TestChannel_FIFOOrderUnderConcurrency(t *testing.T) {
	t.Parallel()

	ch := syncchan.New(4)
	defer ch.Close()

	const n = 200
	go func() {
		for i := 0; i < n; i++ {
			_ = ch.Send(i)
		}
	}()

	for i := 0; i < n; i++ {
		v, err := ch.Receive()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}
