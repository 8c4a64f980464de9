// Package carousel holds the index and viewport arithmetic behind the slider.
//
// Every function here is pure: the same inputs always give the same result
// and nothing is retained between calls. Counts are expected to be
// non-negative; visibleCount is expected to be at least 1. Where a caller
// breaks that contract the functions return a deterministic value instead of
// panicking on a division by zero.
package carousel

// Range is a half-open index interval [StartIndex, EndIndex).
type Range struct {
	StartIndex int
	EndIndex   int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	return r.EndIndex - r.StartIndex
}

// Contains reports whether index lies inside the range.
func (r Range) Contains(index int) bool {
	return index >= r.StartIndex && index < r.EndIndex
}

// DefaultOverscan is the overscan multiplier used when the caller has no preference.
const DefaultOverscan = 1

// RenderRange returns the items that should be materialized: the visible
// window plus visibleCount*overscanMultiplier items of buffer on each side,
// clamped to [0, totalItems].
func RenderRange(currentIndex, visibleCount, totalItems, overscanMultiplier int) Range {
	overscan := visibleCount * overscanMultiplier
	start := max(0, currentIndex-overscan)
	end := min(totalItems, currentIndex+visibleCount+overscan)
	return Range{StartIndex: start, EndIndex: end}
}

// NextIndex returns the index one window forward.
//
// Without wraparound it clamps at the last full page. With wraparound the
// result is taken modulo totalItems and may leave a partial window hanging
// past the end of the sequence; renderers must clip that overhang.
// Degenerate wraparound (a window wider than the sequence, or no items)
// clamps and never goes below 0.
func NextIndex(currentIndex, visibleCount, totalItems int, infinite bool) int {
	if infinite {
		if canWrap(visibleCount, totalItems) {
			return mod(currentIndex+visibleCount, totalItems)
		}
		return max(0, min(totalItems-visibleCount, currentIndex+visibleCount))
	}
	return min(totalItems-visibleCount, currentIndex+visibleCount)
}

// PreviousIndex returns the index one window back.
//
// With wraparound, stepping back from 0 snaps to the last full page. This is
// deliberately asymmetric with NextIndex, which can land on a partial window.
func PreviousIndex(currentIndex, visibleCount, totalItems int, infinite bool) int {
	if infinite && canWrap(visibleCount, totalItems) && currentIndex == 0 {
		return totalItems - visibleCount
	}
	return max(0, currentIndex-visibleCount)
}

// IsValidIndex reports whether a full window starting at index fits.
func IsValidIndex(index, visibleCount, totalItems int) bool {
	return index >= 0 && index <= totalItems-visibleCount
}

// CurrentPage returns the zero-based page the index falls on.
func CurrentPage(currentIndex, visibleCount int) int {
	if visibleCount <= 0 {
		return 0
	}
	return floorDiv(currentIndex, visibleCount)
}

// TotalPages returns ceil(totalItems / visibleCount).
func TotalPages(totalItems, visibleCount int) int {
	if visibleCount <= 0 {
		return 0
	}
	return ceilDiv(totalItems, visibleCount)
}

// VisiblePageWindow returns the page numbers to show as pagination controls.
// When there are more pages than maxVisible the window is centered on
// currentPage and clamped so it never runs past either end.
func VisiblePageWindow(totalPages, currentPage, maxVisible int) []int {
	if totalPages <= maxVisible {
		return sequence(0, totalPages-1)
	}

	half := floorDiv(maxVisible, 2)
	start := max(0, min(currentPage-half, totalPages-maxVisible))
	end := min(start+maxVisible-1, totalPages-1)
	return sequence(start, end)
}

// PageStartIndex returns the index a pagination control for page jumps to.
// The last page is pulled back so a full window still fits, and never
// below 0 when the window is wider than the sequence.
func PageStartIndex(page, visibleCount, totalItems int) int {
	return max(0, min(page*visibleCount, totalItems-visibleCount))
}

// canWrap reports whether modular wraparound is meaningful. With fewer items
// than a window (or none at all) the modulo would divide by zero or land
// outside [0, totalItems), so wrap mode degrades to clamping at 0.
func canWrap(visibleCount, totalItems int) bool {
	return totalItems > 0 && visibleCount <= totalItems
}

// sequence returns [from, to] inclusive, or an empty slice when to < from.
func sequence(from, to int) []int {
	if to < from {
		return []int{}
	}
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) == (b < 0)) {
		q++
	}
	return q
}

// mod returns a non-negative remainder for positive n.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
