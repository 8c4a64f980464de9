package carousel

// ItemWidth returns the width of one item when visibleCount items share the
// viewport minus a sidePeek gutter on each side. Units are whatever the
// caller measures the viewport in (pixels on the web, cells in a terminal).
func ItemWidth(viewportWidth, sidePeek, visibleCount int) int {
	if visibleCount <= 0 {
		return 0
	}
	w := (viewportWidth - sidePeek*2) / visibleCount
	if w < 0 {
		return 0
	}
	return w
}

// TrackOffset returns the horizontal translation of the item track so that
// currentIndex sits just right of the leading peek gutter.
func TrackOffset(itemWidth, currentIndex, sidePeek int) int {
	return -(itemWidth * currentIndex) + sidePeek
}

// Spacers returns the widths of the placeholders that stand in for the
// unmaterialized items before and after r.
func Spacers(r Range, totalItems, itemWidth int) (leading, trailing int) {
	leading = r.StartIndex * itemWidth
	if r.EndIndex < totalItems {
		trailing = (totalItems - r.EndIndex) * itemWidth
	}
	return leading, trailing
}

// VisibleRange returns the window [currentIndex, currentIndex+visibleCount)
// clipped to the sequence. In wrap mode NextIndex can produce a window that
// overhangs the end; the overhang is dropped rather than filled with leading
// items.
func VisibleRange(currentIndex, visibleCount, totalItems int) Range {
	start := max(0, min(currentIndex, totalItems))
	end := max(start, min(totalItems, currentIndex+visibleCount))
	return Range{StartIndex: start, EndIndex: end}
}
