// Package slider holds the stateful side of the carousel: the current index,
// navigation, click suppression after drags, pagination and the auto-play
// lifecycle. All arithmetic is delegated to package carousel and all input
// interpretation to package gesture.
//
// A Slider is owned by a single event loop and is not safe for concurrent
// use. The only method meant to be reached from another goroutine is the
// deliver function handed to AttachAutoPlay, which must post the tick back
// to the owning loop before calling HandleTick.
package slider

import (
	"context"
	"time"

	"spinslider/internal/autoplay"
	"spinslider/internal/carousel"
	"spinslider/internal/gesture"
)

// Options are the per-instance settings. Zero values are replaced by the
// defaults from DefaultOptions where a zero makes no sense.
type Options struct {
	VisibleCount     int
	SidePeek         int
	AutoPlay         bool
	AutoPlayInterval time.Duration
	Infinite         bool
	MinSwipeDistance float64
	InitialIndex     int
	MaxVisiblePages  int
	Overscan         int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		VisibleCount:     1,
		SidePeek:         32,
		AutoPlayInterval: autoplay.DefaultInterval,
		MinSwipeDistance: gesture.DefaultMinSwipeDistance,
		MaxVisiblePages:  10,
		Overscan:         carousel.DefaultOverscan,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.VisibleCount < 1 {
		o.VisibleCount = d.VisibleCount
	}
	if o.AutoPlayInterval <= 0 {
		o.AutoPlayInterval = d.AutoPlayInterval
	}
	if o.MinSwipeDistance <= 0 {
		o.MinSwipeDistance = d.MinSwipeDistance
	}
	if o.MaxVisiblePages < 1 {
		o.MaxVisiblePages = d.MaxVisiblePages
	}
	if o.Overscan < 0 {
		o.Overscan = d.Overscan
	}
	return o
}

// Callbacks are optional hooks fired by the slider. OnSlideChange fires for
// user navigation only; auto-play advances move the index silently.
type Callbacks[T any] struct {
	OnSlideChange   func(index int)
	OnItemClick     func(item T, index int)
	OnSwipeStart    func()
	OnSwipeEnd      func()
	OnAutoPlayStart func()
	OnAutoPlayStop  func()
}

// Slider tracks the leading index of the visible window over items.
type Slider[T any] struct {
	items     []T
	opts      Options
	callbacks Callbacks[T]
	index     int

	flag    *gesture.SwipeFlag
	gesture *gesture.Recognizer

	ticker      autoplay.Ticker
	autoCtx     context.Context
	autoDeliver func(autoplay.Tick)
	autoRunning bool
}

// New creates a slider positioned at opts.InitialIndex, clamped to the last
// full window.
func New[T any](items []T, opts Options, callbacks Callbacks[T]) *Slider[T] {
	s := &Slider[T]{
		items:     items,
		opts:      opts.withDefaults(),
		callbacks: callbacks,
		flag:      &gesture.SwipeFlag{},
	}
	s.index = s.clampToLastPage(s.opts.InitialIndex)
	s.gesture = gesture.New(gesture.Options{
		OnSwipeLeft:      s.Next,
		OnSwipeRight:     s.Previous,
		OnGestureStart:   callbacks.OnSwipeStart,
		OnGestureEnd:     callbacks.OnSwipeEnd,
		MinSwipeDistance: s.opts.MinSwipeDistance,
		Flag:             s.flag,
	})
	return s
}

// Items returns the underlying sequence.
func (s *Slider[T]) Items() []T { return s.items }

// Len returns the number of items.
func (s *Slider[T]) Len() int { return len(s.items) }

// Empty reports whether there is nothing to show. Hosts render nothing for
// an empty slider.
func (s *Slider[T]) Empty() bool { return len(s.items) == 0 }

// Index returns the leading index of the visible window.
func (s *Slider[T]) Index() int { return s.index }

// Options returns the effective options.
func (s *Slider[T]) Options() Options { return s.opts }

// Gesture returns the recognizer hosts feed raw input into.
func (s *Slider[T]) Gesture() *gesture.Recognizer { return s.gesture }

// Item returns the item at index.
func (s *Slider[T]) Item(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(s.items) {
		return zero, false
	}
	return s.items[index], true
}

// SetItems replaces the sequence. The index is pulled back if the new
// sequence is shorter, and auto-play is re-evaluated.
func (s *Slider[T]) SetItems(items []T) {
	s.items = items
	if s.index >= len(items) || !s.opts.Infinite {
		s.index = s.clampToLastPage(s.index)
	}
	s.restartAutoPlay()
}

// SetInfinite switches wraparound on or off.
func (s *Slider[T]) SetInfinite(on bool) {
	if s.opts.Infinite == on {
		return
	}
	s.opts.Infinite = on
	if !on {
		s.index = s.clampToLastPage(s.index)
	}
	s.restartAutoPlay()
}

// Next moves one window forward.
func (s *Slider[T]) Next() {
	if s.Empty() {
		return
	}
	s.change(carousel.NextIndex(s.index, s.opts.VisibleCount, len(s.items), s.opts.Infinite))
}

// Previous moves one window back.
func (s *Slider[T]) Previous() {
	if s.Empty() {
		return
	}
	s.change(carousel.PreviousIndex(s.index, s.opts.VisibleCount, len(s.items), s.opts.Infinite))
}

// GoToPage jumps to the first index of page.
func (s *Slider[T]) GoToPage(page int) {
	if s.Empty() {
		return
	}
	s.change(carousel.PageStartIndex(page, s.opts.VisibleCount, len(s.items)))
}

// JumpTo moves to index if a full window fits there and reports whether it
// did.
func (s *Slider[T]) JumpTo(index int) bool {
	if !carousel.IsValidIndex(index, s.opts.VisibleCount, len(s.items)) {
		return false
	}
	s.change(index)
	return true
}

// ClickItem activates the item at index. The first click after a completed
// swipe is swallowed and clears the swipe flag; it reports whether the
// click went through.
func (s *Slider[T]) ClickItem(index int) bool {
	if s.flag.Consume() {
		return false
	}
	item, ok := s.Item(index)
	if !ok {
		return false
	}
	if s.callbacks.OnItemClick != nil {
		s.callbacks.OnItemClick(item, index)
	}
	return true
}

// ActivateItem fires the click callback for index without consulting the
// swipe flag. Keyboard activation never follows a drag.
func (s *Slider[T]) ActivateItem(index int) bool {
	item, ok := s.Item(index)
	if !ok {
		return false
	}
	if s.callbacks.OnItemClick != nil {
		s.callbacks.OnItemClick(item, index)
	}
	return true
}

// Page returns the page the index falls on.
func (s *Slider[T]) Page() int {
	return carousel.CurrentPage(s.index, s.opts.VisibleCount)
}

// TotalPages returns the number of pages.
func (s *Slider[T]) TotalPages() int {
	return carousel.TotalPages(len(s.items), s.opts.VisibleCount)
}

// Pagination returns the pagination layout for the current position.
func (s *Slider[T]) Pagination() carousel.Pagination {
	return carousel.PaginationFor(s.index, s.opts.VisibleCount, len(s.items), s.opts.MaxVisiblePages)
}

// RenderRange returns the items to materialize.
func (s *Slider[T]) RenderRange() carousel.Range {
	return carousel.RenderRange(s.index, s.opts.VisibleCount, len(s.items), s.opts.Overscan)
}

// VisibleRange returns the items currently in view, with any wraparound
// overhang clipped.
func (s *Slider[T]) VisibleRange() carousel.Range {
	return carousel.VisibleRange(s.index, s.opts.VisibleCount, len(s.items))
}

// IsCurrent reports whether index is the leading visible item.
func (s *Slider[T]) IsCurrent(index int) bool {
	return index == s.index
}

func (s *Slider[T]) change(index int) {
	s.index = max(0, index)
	if s.callbacks.OnSlideChange != nil {
		s.callbacks.OnSlideChange(s.index)
	}
}

func (s *Slider[T]) clampToLastPage(index int) int {
	last := max(0, len(s.items)-s.opts.VisibleCount)
	return max(0, min(index, last))
}
