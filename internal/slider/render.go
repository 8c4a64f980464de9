package slider

import "spinslider/internal/carousel"

// Rendered pairs a materialized item with its index in the sequence.
type Rendered[R any] struct {
	Index int
	Value R
}

// Materialize calls render for every item in the render range. Items
// outside the range are never rendered, which bounds the work for long
// sequences.
func Materialize[T, R any](s *Slider[T], render func(item T, index int) R) []Rendered[R] {
	r := s.RenderRange()
	out := make([]Rendered[R], 0, r.Len())
	for i := r.StartIndex; i < r.EndIndex; i++ {
		out = append(out, Rendered[R]{Index: i, Value: render(s.items[i], i)})
	}
	return out
}

// Layout is the track geometry for one viewport width.
type Layout struct {
	ItemWidth      int
	TrackOffset    int
	LeadingSpacer  int
	TrailingSpacer int
}

// Layout computes item width, track offset and the spacer widths that stand
// in for unmaterialized items.
func (s *Slider[T]) Layout(viewportWidth int) Layout {
	w := carousel.ItemWidth(viewportWidth, s.opts.SidePeek, s.opts.VisibleCount)
	lead, trail := carousel.Spacers(s.RenderRange(), len(s.items), w)
	return Layout{
		ItemWidth:      w,
		TrackOffset:    carousel.TrackOffset(w, s.index, s.opts.SidePeek),
		LeadingSpacer:  lead,
		TrailingSpacer: trail,
	}
}
