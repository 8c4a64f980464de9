package carousel

// Dot is one numbered pagination control.
type Dot struct {
	Page    int
	Current bool
}

// Pagination describes everything a pagination renderer draws: the page
// window plus the shortcuts and ellipses that appear when the window does
// not reach the true first or last page.
type Pagination struct {
	TotalPages  int
	CurrentPage int
	Dots        []Dot

	// First and Last mark jump-to-end controls outside the window; the
	// ellipsis flags mark pages skipped between those controls and the window.
	First            bool
	LeadingEllipsis  bool
	TrailingEllipsis bool
	Last             bool
}

// Visible reports whether pagination should be drawn at all. A single page
// (or none) has nothing to navigate.
func (p Pagination) Visible() bool {
	return p.TotalPages > 1
}

// LastPage returns the final page number.
func (p Pagination) LastPage() int {
	return p.TotalPages - 1
}

// PaginationFor builds the pagination layout for the given position.
func PaginationFor(currentIndex, visibleCount, totalItems, maxVisible int) Pagination {
	total := TotalPages(totalItems, visibleCount)
	current := CurrentPage(currentIndex, visibleCount)

	p := Pagination{
		TotalPages:  total,
		CurrentPage: current,
	}
	if total <= 1 {
		return p
	}

	pages := VisiblePageWindow(total, current, maxVisible)
	if len(pages) == 0 {
		return p
	}
	p.Dots = make([]Dot, len(pages))
	for i, page := range pages {
		p.Dots[i] = Dot{Page: page, Current: page == current}
	}

	first, last := pages[0], pages[len(pages)-1]
	p.First = first > 0
	p.LeadingEllipsis = first > 1
	p.TrailingEllipsis = last < total-2
	p.Last = last < total-1
	return p
}
