package input

import (
	"spinslider/internal/domain"
	"spinslider/internal/slider"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Slider *slider.Slider[domain.Item]
}

// CurrentIndex returns the leading visible index
func (c *ModelContext) CurrentIndex() int {
	return c.Slider.Index()
}

// TotalItems returns the number of items in the slider
func (c *ModelContext) TotalItems() int {
	return c.Slider.Len()
}

// VisibleCount returns how many items share the track
func (c *ModelContext) VisibleCount() int {
	return c.Slider.Options().VisibleCount
}

// CurrentPage returns the page the slider is on
func (c *ModelContext) CurrentPage() int {
	return c.Slider.Page()
}

// TotalPages returns the number of pages
func (c *ModelContext) TotalPages() int {
	return c.Slider.TotalPages()
}
