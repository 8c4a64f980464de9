package slider

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spinslider/internal/autoplay"
)

func numbers(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func newSlider(n, visible int, infinite bool, cb Callbacks[int]) *Slider[int] {
	opts := DefaultOptions()
	opts.VisibleCount = visible
	opts.Infinite = infinite
	return New(numbers(n), opts, cb)
}

func TestNavigationFiresSlideChange(t *testing.T) {
	var changes []int
	s := newSlider(10, 3, false, Callbacks[int]{OnSlideChange: func(i int) { changes = append(changes, i) }})

	s.Next()
	s.Next()
	s.Next()
	s.Next()
	assert.Equal(t, 7, s.Index())
	assert.Equal(t, []int{3, 6, 7, 7}, changes)

	s.Previous()
	assert.Equal(t, 4, s.Index())
}

func TestWraparound(t *testing.T) {
	s := newSlider(10, 3, true, Callbacks[int]{})

	s.Previous()
	assert.Equal(t, 7, s.Index(), "back from 0 snaps to last full page")

	s.JumpTo(6)
	s.Next()
	assert.Equal(t, 9, s.Index(), "forward wrap may overhang")
	assert.Equal(t, 1, s.VisibleRange().Len(), "overhang is clipped")

	s.Next()
	assert.Equal(t, 2, s.Index())
}

func TestDisableWrapClampsIndex(t *testing.T) {
	s := newSlider(10, 3, true, Callbacks[int]{})
	s.JumpTo(6)
	s.Next()
	require.Equal(t, 9, s.Index())

	s.SetInfinite(false)
	assert.Equal(t, 7, s.Index())
}

func TestInitialIndexClamped(t *testing.T) {
	opts := DefaultOptions()
	opts.VisibleCount = 3
	opts.InitialIndex = 50
	s := New(numbers(10), opts, Callbacks[int]{})
	assert.Equal(t, 7, s.Index())
}

func TestFewerItemsThanWindowNeverGoesNegative(t *testing.T) {
	s := newSlider(2, 5, false, Callbacks[int]{})
	s.Next()
	assert.Equal(t, 0, s.Index())
	s.Previous()
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 1, s.TotalPages())
	assert.False(t, s.Pagination().Visible())
}

func TestEmptySliderIgnoresNavigation(t *testing.T) {
	changed := false
	s := newSlider(0, 1, true, Callbacks[int]{OnSlideChange: func(int) { changed = true }})
	assert.True(t, s.Empty())
	s.Next()
	s.Previous()
	s.GoToPage(3)
	assert.False(t, changed)
	assert.Equal(t, 0, s.TotalPages())
	assert.Equal(t, 0, s.RenderRange().Len())
}

func TestGoToPage(t *testing.T) {
	s := newSlider(10, 3, false, Callbacks[int]{})
	s.GoToPage(2)
	assert.Equal(t, 6, s.Index())
	assert.Equal(t, 2, s.Page())
	s.GoToPage(3)
	assert.Equal(t, 7, s.Index())
}

func TestJumpToRejectsInvalidIndex(t *testing.T) {
	s := newSlider(10, 3, false, Callbacks[int]{})
	assert.False(t, s.JumpTo(8))
	assert.False(t, s.JumpTo(-1))
	assert.Equal(t, 0, s.Index())
	assert.True(t, s.JumpTo(7))
}

func TestSwipeDrivesNavigation(t *testing.T) {
	var starts, ends int
	s := newSlider(10, 2, false, Callbacks[int]{
		OnSwipeStart: func() { starts++ },
		OnSwipeEnd:   func() { ends++ },
	})

	g := s.Gesture()
	g.PointerDown(300, 10)
	g.PointerUp(200, 10)
	assert.Equal(t, 2, s.Index(), "leftward drag goes forward")

	g.PointerDown(0, 0)
	g.PointerUp(80, 0)
	assert.Equal(t, 0, s.Index(), "rightward drag goes back")

	g.KeyDown("ArrowRight")
	assert.Equal(t, 2, s.Index())
	g.KeyDown("ArrowLeft")
	assert.Equal(t, 0, s.Index())

	assert.Equal(t, 2, starts)
	assert.Equal(t, 2, ends)
}

func TestClickAfterSwipeIsSwallowedOnce(t *testing.T) {
	var clicked []int
	s := newSlider(10, 1, false, Callbacks[int]{OnItemClick: func(item, index int) { clicked = append(clicked, index) }})

	s.Gesture().PointerDown(100, 0)
	s.Gesture().PointerUp(0, 0)
	require.Equal(t, 1, s.Index())

	assert.False(t, s.ClickItem(1), "release click after a drag is swallowed")
	assert.True(t, s.ClickItem(1))
	assert.Equal(t, []int{1}, clicked)

	s.Gesture().PointerDown(100, 0)
	s.Gesture().PointerUp(90, 0)
	assert.True(t, s.ClickItem(1), "a short drag is a tap")
	assert.False(t, s.ClickItem(42), "out of range")
}

func TestActivateItemIgnoresSwipeFlag(t *testing.T) {
	var clicked []int
	s := newSlider(10, 1, false, Callbacks[int]{OnItemClick: func(item, index int) { clicked = append(clicked, index) }})

	s.Gesture().PointerDown(100, 0)
	s.Gesture().PointerUp(0, 0)

	assert.True(t, s.ActivateItem(1))
	assert.False(t, s.ActivateItem(-1))
	assert.Equal(t, []int{1}, clicked)
	assert.True(t, s.Gesture().Flag().IsSet(), "the flag still guards the next pointer click")
}

func TestMaterializeOnlyRendersRange(t *testing.T) {
	s := newSlider(100, 2, false, Callbacks[int]{})
	s.JumpTo(40)

	var calls int
	rendered := Materialize(s, func(item, index int) string {
		calls++
		return strconv.Itoa(item)
	})
	assert.Equal(t, 6, calls)
	require.Len(t, rendered, 6)
	assert.Equal(t, 38, rendered[0].Index)
	assert.Equal(t, "43", rendered[5].Value)
}

func TestLayout(t *testing.T) {
	opts := DefaultOptions()
	opts.VisibleCount = 2
	opts.SidePeek = 10
	s := New(numbers(20), opts, Callbacks[int]{})
	s.JumpTo(6)

	l := s.Layout(120)
	assert.Equal(t, 50, l.ItemWidth)
	assert.Equal(t, -290, l.TrackOffset)
	assert.Equal(t, 200, l.LeadingSpacer)
	assert.Equal(t, 500, l.TrailingSpacer)
}

func TestSetItemsShrinksIndex(t *testing.T) {
	s := newSlider(10, 3, false, Callbacks[int]{})
	s.JumpTo(7)
	s.SetItems(numbers(5))
	assert.Equal(t, 2, s.Index())
}

func TestAutoPlayLifecycle(t *testing.T) {
	var starts, stops int
	opts := DefaultOptions()
	opts.AutoPlay = true
	opts.AutoPlayInterval = time.Hour
	s := New(numbers(5), opts, Callbacks[int]{
		OnAutoPlayStart: func() { starts++ },
		OnAutoPlayStop:  func() { stops++ },
	})

	assert.False(t, s.AutoPlaying(), "nothing runs before attach")

	s.AttachAutoPlay(context.Background(), func(autoplay.Tick) {})
	require.True(t, s.AutoPlaying())
	assert.Equal(t, 1, starts)

	s.SetInfinite(true)
	assert.Equal(t, 2, starts, "changing wrap restarts the timer")
	assert.Equal(t, 1, stops)

	s.SetAutoPlay(false)
	assert.False(t, s.AutoPlaying())
	assert.Equal(t, 2, stops)

	s.SetAutoPlay(true)
	s.DetachAutoPlay()
	assert.False(t, s.AutoPlaying())
	assert.Equal(t, 3, stops)

	s.SetAutoPlay(false)
	s.SetAutoPlay(true)
	assert.False(t, s.AutoPlaying(), "detached slider never restarts")
}

func TestAutoPlaySkippedWhenEverythingFits(t *testing.T) {
	opts := DefaultOptions()
	opts.AutoPlay = true
	opts.VisibleCount = 4
	s := New(numbers(4), opts, Callbacks[int]{})
	s.AttachAutoPlay(context.Background(), func(autoplay.Tick) {})
	assert.False(t, s.AutoPlaying())

	s.SetItems(numbers(6))
	assert.True(t, s.AutoPlaying())
	s.DetachAutoPlay()
}

func TestHandleTickAdvancesSilently(t *testing.T) {
	changed := false
	opts := DefaultOptions()
	opts.AutoPlay = true
	opts.AutoPlayInterval = 2 * time.Millisecond
	opts.Infinite = true
	s := New(numbers(3), opts, Callbacks[int]{OnSlideChange: func(int) { changed = true }})

	ticks := make(chan autoplay.Tick, 8)
	s.AttachAutoPlay(context.Background(), func(tk autoplay.Tick) {
		select {
		case ticks <- tk:
		default:
		}
	})
	defer s.DetachAutoPlay()

	var tick autoplay.Tick
	select {
	case tick = <-ticks:
	case <-time.After(time.Second):
		t.Fatal("no tick")
	}

	require.True(t, s.HandleTick(tick))
	assert.Equal(t, 1, s.Index())
	assert.False(t, changed)

	s.SetAutoPlay(false)
	assert.False(t, s.HandleTick(tick), "tick from a stopped timer is stale")
	assert.Equal(t, 1, s.Index())
}
