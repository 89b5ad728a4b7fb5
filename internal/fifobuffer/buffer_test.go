package fifobuffer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/syncchan/internal/fifobuffer"
)

func TestBuffer_Basic(t *testing.T) {
	t.Parallel()

	b := fifobuffer.New(3)

	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 3, b.Cap())

	require.NoError(t, b.Add("a"))
	require.NoError(t, b.Add("b"))
	assert.Equal(t, 2, b.Len())

	v, err := b.Remove()
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	assert.Equal(t, 1, b.Len())
}

func TestBuffer_FIFOOrder(t *testing.T) {
	t.Parallel()

	b := fifobuffer.New(4)
	for _, v := range []string{"1", "2", "3"} {
		require.NoError(t, b.Add(v))
	}

	for _, want := range []string{"1", "2", "3"} {
		got, err := b.Remove()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestBuffer_Full(t *testing.T) {
	t.Parallel()

	b := fifobuffer.New(2)
	require.NoError(t, b.Add("a"))
	require.NoError(t, b.Add("b"))

	err := b.Add("c")
	assert.ErrorIs(t, err, fifobuffer.ErrFull)
	assert.Equal(t, 2, b.Len())
}

func TestBuffer_Empty(t *testing.T) {
	t.Parallel()

	b := fifobuffer.New(2)

	_, err := b.Remove()
	assert.ErrorIs(t, err, fifobuffer.ErrEmpty)
}

func TestBuffer_WrapAround(t *testing.T) {
	t.Parallel()

	b := fifobuffer.New(2)
	require.NoError(t, b.Add("a"))
	require.NoError(t, b.Add("b"))

	v, err := b.Remove()
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	// Slot freed by removing "a" should be reused without disturbing "b".
	require.NoError(t, b.Add("c"))
	assert.Equal(t, 2, b.Len())

	v, err = b.Remove()
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	v, err = b.Remove()
	require.NoError(t, err)
	assert.Equal(t, "c", v)
}

func TestBuffer_NewPanicsOnNonPositiveCapacity(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		fifobuffer.New(0)
	})
}
