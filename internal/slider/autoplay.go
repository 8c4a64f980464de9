package slider

import (
	"context"
	"time"

	"spinslider/internal/autoplay"
	"spinslider/internal/carousel"
)

// AttachAutoPlay hands the slider the context and delivery function its
// auto-advance timer runs with, then starts the timer if auto-play applies.
// deliver is called on the timer goroutine; it must hand the tick to the
// goroutine that owns the slider, which then calls HandleTick.
func (s *Slider[T]) AttachAutoPlay(ctx context.Context, deliver func(autoplay.Tick)) {
	s.autoCtx = ctx
	s.autoDeliver = deliver
	s.syncAutoPlay()
}

// DetachAutoPlay stops the timer for good. Call it on teardown; ticks still
// in flight are ignored by HandleTick afterwards.
func (s *Slider[T]) DetachAutoPlay() {
	s.stopAutoPlay()
	s.autoCtx = nil
	s.autoDeliver = nil
}

// SetAutoPlay enables or disables auto-advance.
func (s *Slider[T]) SetAutoPlay(on bool) {
	if s.opts.AutoPlay == on {
		return
	}
	s.opts.AutoPlay = on
	s.syncAutoPlay()
}

// SetAutoPlayInterval changes the auto-advance period, restarting a running
// timer.
func (s *Slider[T]) SetAutoPlayInterval(d time.Duration) {
	if d <= 0 || d == s.opts.AutoPlayInterval {
		return
	}
	s.opts.AutoPlayInterval = d
	s.restartAutoPlay()
}

// AutoPlaying reports whether the auto-advance timer is running.
func (s *Slider[T]) AutoPlaying() bool {
	return s.autoRunning
}

// HandleTick advances one window if tick came from the running timer and
// reports whether it did. Stale ticks from a stopped or replaced timer are
// dropped.
func (s *Slider[T]) HandleTick(tick autoplay.Tick) bool {
	if !s.autoRunning || !s.ticker.Current(tick.Generation) {
		return false
	}
	s.index = max(0, carousel.NextIndex(s.index, s.opts.VisibleCount, len(s.items), s.opts.Infinite))
	return true
}

// autoPlayApplies mirrors the host rule: nothing to cycle through when every
// item already fits on screen.
func (s *Slider[T]) autoPlayApplies() bool {
	return s.opts.AutoPlay && s.autoDeliver != nil && len(s.items) > s.opts.VisibleCount
}

func (s *Slider[T]) syncAutoPlay() {
	if s.autoPlayApplies() {
		s.startAutoPlay()
	} else {
		s.stopAutoPlay()
	}
}

// restartAutoPlay re-arms the timer after one of its inputs changed.
func (s *Slider[T]) restartAutoPlay() {
	s.stopAutoPlay()
	s.syncAutoPlay()
}

func (s *Slider[T]) startAutoPlay() {
	if s.autoRunning {
		return
	}
	ctx := s.autoCtx
	if ctx == nil {
		ctx = context.Background()
	}
	s.ticker.Start(ctx, s.opts.AutoPlayInterval, s.autoDeliver)
	s.autoRunning = true
	if s.callbacks.OnAutoPlayStart != nil {
		s.callbacks.OnAutoPlayStart()
	}
}

func (s *Slider[T]) stopAutoPlay() {
	if !s.autoRunning {
		return
	}
	s.ticker.Stop()
	s.autoRunning = false
	if s.callbacks.OnAutoPlayStop != nil {
		s.callbacks.OnAutoPlayStop()
	}
}
