package scroll

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngineScrollCycle(t *testing.T) {
	t.Parallel()

	eng, _ := newTestEngine(Options{Count: 1000, BaseSize: Size{Main: 50}, Overscan: 5})
	defer eng.Close()
	eng.SetViewportSize(500, 80)

	require.Equal(t, Range{Start: 0, End: 14}, eng.VisibleRange())

	// The host reports a scroll; the range follows and motion turns on.
	eng.UpdateScroll(1000, 0)
	r := eng.VisibleRange()
	require.Equal(t, 15, r.Start)
	require.True(t, r.Contains(20))
	require.True(t, eng.Motion().Scrolling)
	require.Equal(t, DirForward, eng.Motion().Main)
}

func TestEngineRows(t *testing.T) {
	t.Parallel()

	eng, _ := newTestEngine(Options{Count: 100, BaseSize: Size{Main: 50}, Overscan: 2})
	defer eng.Close()
	eng.SetViewportSize(200, 80)

	rows := eng.Rows()
	require.Len(t, rows, 6) // four visible plus two overscan below, clamped above

	require.Equal(t, 0, rows[0].Index)
	require.Equal(t, 0, rows[0].Offset)
	for i, row := range rows {
		require.Equal(t, i, row.Index)
		require.Equal(t, i*50, row.Offset)
		require.Equal(t, 50, row.Size.Main)
	}
}

func TestEngineMeasuredSizesFlowIntoRows(t *testing.T) {
	t.Parallel()

	eng, _ := newTestEngine(Options{Count: 10, BaseSize: Size{Main: 5}})
	defer eng.Close()
	eng.SetViewportSize(100, 80)

	eng.SetItemSize(0, Size{Main: 12, Cross: 40})

	rows := eng.Rows()
	require.Equal(t, 12, rows[0].Size.Main)
	require.Equal(t, 12, rows[1].Offset)

	main, cross := eng.TotalSize()
	require.Equal(t, 9*5+12, main)
	require.Equal(t, 40, cross)
}

func TestEngineSetCountResetsMeasurements(t *testing.T) {
	t.Parallel()

	eng, _ := newTestEngine(Options{Count: 10, BaseSize: Size{Main: 5}})
	defer eng.Close()

	eng.SetItemSize(3, Size{Main: 100})
	eng.SetCount(20)

	require.Equal(t, 20, eng.Count())
	main, _ := eng.TotalSize()
	require.Equal(t, 20*5, main)
	require.Equal(t, 5, eng.ItemSize(3).Main)
}

func TestEngineAdjustScroll(t *testing.T) {
	t.Parallel()

	eng, _ := newTestEngine(Options{Count: 100, BaseSize: Size{Main: 10}})
	defer eng.Close()
	eng.SetViewportSize(100, 80)

	// An anchor correction moves the viewport without turning motion on.
	eng.AdjustScroll(300, 0)
	require.Equal(t, 300, eng.Viewport().OffsetMain)
	require.False(t, eng.Motion().Scrolling)

	// The adjusted position is the baseline for the next real update.
	eng.UpdateScroll(300, 0)
	require.False(t, eng.Motion().Scrolling)
	eng.UpdateScroll(310, 0)
	require.True(t, eng.Motion().Scrolling)
	require.Equal(t, DirForward, eng.Motion().Main)
}

func TestEngineResizeKeepsMeasurements(t *testing.T) {
	t.Parallel()

	eng, _ := newTestEngine(Options{Count: 10, BaseSize: Size{Main: 5}})
	defer eng.Close()

	eng.SetItemSize(3, Size{Main: 100})
	eng.Resize(20)

	require.Equal(t, 20, eng.Count())
	require.Equal(t, 100, eng.ItemSize(3).Main)
	main, _ := eng.TotalSize()
	require.Equal(t, 19*5+100, main)
}

func TestEngineItemOffset(t *testing.T) {
	t.Parallel()

	eng, _ := newTestEngine(Options{Count: 100, BaseSize: Size{Main: 50}})
	defer eng.Close()

	require.Equal(t, 0, eng.ItemOffset(0))
	require.Equal(t, 300, eng.ItemOffset(6))

	eng.SetItemSize(5, Size{Main: 200})
	require.Equal(t, 450, eng.ItemOffset(6))
}

func TestEngineConcurrentUse(t *testing.T) {
	t.Parallel()

	eng, _ := newTestEngine(Options{Count: 1000, BaseSize: Size{Main: 10}, Overscan: 3})
	defer eng.Close()
	eng.SetViewportSize(100, 80)

	// Measurements, scroll updates, and reads race; the engine must stay
	// internally consistent (run with -race).
	var wg sync.WaitGroup
	for g := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				switch g {
				case 0:
					eng.SetItemSize(i, Size{Main: 10 + i%4})
				case 1:
					eng.UpdateScroll(i*3, 0)
				case 2:
					_ = eng.Rows()
				default:
					_, _ = eng.TotalSize()
					_ = eng.Motion()
				}
			}
		}()
	}
	wg.Wait()

	r := eng.VisibleRange()
	require.LessOrEqual(t, r.Start, r.End)
	require.Less(t, r.End, 1000)
}

func TestEngineEmpty(t *testing.T) {
	t.Parallel()

	eng, _ := newTestEngine(Options{Count: 0, BaseSize: Size{Main: 50}})
	defer eng.Close()
	eng.SetViewportSize(100, 80)

	require.Equal(t, Range{}, eng.VisibleRange())
	require.Nil(t, eng.Rows())
}
