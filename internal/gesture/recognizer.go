// Package gesture turns raw pointer, touch and keyboard input into discrete
// swipe events.
//
// A Recognizer is driven by a single event stream and is not safe for
// concurrent use.
package gesture

import "math"

// DefaultMinSwipeDistance is the horizontal travel, in pixels, a drag must
// exceed before it counts as a swipe.
const DefaultMinSwipeDistance = 50

// Key names accepted by KeyDown.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Point is a position in host coordinates.
type Point struct {
	X, Y float64
}

// Options configures a Recognizer. Nil callbacks are ignored.
type Options struct {
	// OnSwipeLeft fires for a leftward drag and for the right arrow key.
	OnSwipeLeft func()
	// OnSwipeRight fires for a rightward drag and for the left arrow key.
	OnSwipeRight func()

	// OnGestureStart fires when a pointer or touch starts tracking.
	OnGestureStart func()
	// OnGestureEnd fires when tracking stops, whether or not a swipe fired.
	OnGestureEnd func()

	// MinSwipeDistance is the strict lower bound on |deltaX| for a swipe.
	// Zero selects DefaultMinSwipeDistance unless NoThreshold is set.
	MinSwipeDistance float64
	// NoThreshold keeps a zero MinSwipeDistance, so any horizontal
	// movement swipes.
	NoThreshold bool

	// Flag is shared with the click handler that suppresses the click
	// following a drag. A new flag is allocated when nil.
	Flag *SwipeFlag
}

// Recognizer tracks one in-flight gesture.
type Recognizer struct {
	opts Options
	flag *SwipeFlag

	origin        Point
	tracking      bool
	pointerActive bool
}

// New creates a Recognizer in the idle state.
func New(opts Options) *Recognizer {
	if opts.MinSwipeDistance == 0 && !opts.NoThreshold {
		opts.MinSwipeDistance = DefaultMinSwipeDistance
	}
	flag := opts.Flag
	if flag == nil {
		flag = &SwipeFlag{}
	}
	return &Recognizer{opts: opts, flag: flag}
}

// Flag returns the one-shot flag set by completed swipes.
func (r *Recognizer) Flag() *SwipeFlag {
	return r.flag
}

// Active reports whether a mouse button is held down on the surface.
func (r *Recognizer) Active() bool {
	return r.pointerActive
}

// Tracking reports whether a gesture origin is recorded.
func (r *Recognizer) Tracking() bool {
	return r.tracking
}

// Origin returns the recorded start point, if any.
func (r *Recognizer) Origin() (Point, bool) {
	return r.origin, r.tracking
}

// MinSwipeDistance returns the configured threshold.
func (r *Recognizer) MinSwipeDistance() float64 {
	return r.opts.MinSwipeDistance
}

// PointerDown starts a mouse drag at (x, y). A second press while already
// tracking restarts the gesture from the new origin.
func (r *Recognizer) PointerDown(x, y float64) {
	r.pointerActive = true
	r.begin(x, y)
}

// PointerUp ends a mouse drag at (x, y). Without a preceding PointerDown it
// only resets state; a touch gesture it cuts short ends without a swipe.
func (r *Recognizer) PointerUp(x, y float64) {
	if !r.pointerActive || !r.tracking {
		r.abandon()
		return
	}
	r.resolve(x)
}

// PointerLeave abandons a mouse drag without firing a swipe, however far the
// pointer travelled.
func (r *Recognizer) PointerLeave() {
	r.abandon()
}

// TouchStart starts a touch gesture at (x, y).
func (r *Recognizer) TouchStart(x, y float64) {
	r.begin(x, y)
}

// TouchEnd ends a touch gesture at (x, y). It is a no-op when nothing is
// being tracked.
func (r *Recognizer) TouchEnd(x, y float64) {
	if !r.tracking {
		return
	}
	r.resolve(x)
}

// KeyDown maps arrow keys straight to swipe callbacks. The left arrow means
// "go back", which is the same intent as a rightward drag, so directions
// are inverted relative to drags. It reports whether the key was handled.
func (r *Recognizer) KeyDown(key string) bool {
	switch key {
	case KeyArrowLeft:
		call(r.opts.OnSwipeRight)
		return true
	case KeyArrowRight:
		call(r.opts.OnSwipeLeft)
		return true
	}
	return false
}

func (r *Recognizer) begin(x, y float64) {
	r.origin = Point{X: x, Y: y}
	r.tracking = true
	call(r.opts.OnGestureStart)
}

// abandon returns to idle, firing OnGestureEnd only if a gesture was live.
func (r *Recognizer) abandon() {
	wasTracking := r.tracking
	r.pointerActive = false
	r.tracking = false
	r.origin = Point{}
	if wasTracking {
		call(r.opts.OnGestureEnd)
	}
}

func (r *Recognizer) resolve(x float64) {
	deltaX := x - r.origin.X
	r.pointerActive = false
	r.tracking = false
	r.origin = Point{}

	if math.Abs(deltaX) > r.opts.MinSwipeDistance {
		r.flag.Set()
		if deltaX < 0 {
			call(r.opts.OnSwipeLeft)
		} else {
			call(r.opts.OnSwipeRight)
		}
	}
	call(r.opts.OnGestureEnd)
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
