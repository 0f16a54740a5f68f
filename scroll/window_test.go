package scroll

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWindowBounds(t *testing.T) {
	t.Parallel()

	w := NewWindow(200, 50)
	start, end := w.Bounds()
	require.Equal(t, 0, start)
	require.Equal(t, 50, end)
}

func TestWindowMoveClamped(t *testing.T) {
	t.Parallel()

	// Moving far past the end clamps to N - windowSize, not beyond.
	w := NewWindow(200, 50)
	w.Move(DirForward, 1000)
	require.Equal(t, 150, w.Start())

	// Repeated calls past the boundary have no further effect.
	w.Move(DirForward, 10)
	require.Equal(t, 150, w.Start())

	w.Move(DirBackward, 1000)
	require.Equal(t, 0, w.Start())
	w.Move(DirBackward, 1)
	require.Equal(t, 0, w.Start())
}

func TestWindowRoundTrip(t *testing.T) {
	t.Parallel()

	// Down k then up k restores the start whenever neither move clamps.
	w := NewWindow(200, 50)
	w.Jump(40)
	w.Move(DirForward, 30)
	w.Move(DirBackward, 30)
	require.Equal(t, 40, w.Start())
}

func TestWindowJumpClamped(t *testing.T) {
	t.Parallel()

	w := NewWindow(200, 50)
	w.Jump(-10)
	require.Equal(t, 0, w.Start())
	w.Jump(500)
	require.Equal(t, 150, w.Start())
	w.Jump(75)
	require.Equal(t, 75, w.Start())
}

func TestWindowSmallerCollection(t *testing.T) {
	t.Parallel()

	// N < windowSize: the window covers the whole collection.
	w := NewWindow(10, 50)
	start, end := w.Bounds()
	require.Equal(t, 0, start)
	require.Equal(t, 10, end)

	w.Move(DirForward, 5)
	require.Equal(t, 0, w.Start())
}

func TestWindowNoOpMoves(t *testing.T) {
	t.Parallel()

	w := NewWindow(200, 50)
	w.Jump(40)
	w.Move(DirNone, 10)
	w.Move(DirForward, 0)
	w.Move(DirForward, -5)
	require.Equal(t, 40, w.Start())
}

func TestWindowSetCount(t *testing.T) {
	t.Parallel()

	w := NewWindow(200, 50)
	w.Jump(150)

	w.SetCount(100)
	require.Equal(t, 50, w.Start())

	w.SetCount(0)
	start, end := w.Bounds()
	require.Equal(t, 0, start)
	require.Equal(t, 0, end)
}
