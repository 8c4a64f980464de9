package views

import (
	"github.com/charmbracelet/lipgloss"

	"spinslider/internal/carousel"
)

const (
	dotGlyph       = "○"
	activeDotGlyph = "●"
	edgeDotGlyph   = "◦"
	ellipsisGlyph  = "…"
)

// renderPagination draws the page dots centered in width and returns a zone
// per control, relative to the row's origin. Nothing is drawn for a single
// page.
func (r *Renderer) renderPagination(p carousel.Pagination, width int) (string, []Zone) {
	if !p.Visible() {
		return "", nil
	}

	type piece struct {
		text string
		page int
		link bool
	}
	var pieces []piece

	if p.First {
		pieces = append(pieces, piece{text: r.styles.Dot.Render(edgeDotGlyph), page: 0, link: true})
		if p.LeadingEllipsis {
			pieces = append(pieces, piece{text: r.styles.Ellipsis.Render(ellipsisGlyph)})
		}
	}
	for _, d := range p.Dots {
		if d.Current {
			pieces = append(pieces, piece{text: r.styles.DotActive.Render(activeDotGlyph), page: d.Page, link: true})
		} else {
			pieces = append(pieces, piece{text: r.styles.Dot.Render(dotGlyph), page: d.Page, link: true})
		}
	}
	if p.Last {
		if p.TrailingEllipsis {
			pieces = append(pieces, piece{text: r.styles.Ellipsis.Render(ellipsisGlyph)})
		}
		pieces = append(pieces, piece{text: r.styles.Dot.Render(edgeDotGlyph), page: p.LastPage(), link: true})
	}

	// one space between controls
	total := 0
	for i, pc := range pieces {
		total += lipgloss.Width(pc.text)
		if i > 0 {
			total++
		}
	}
	x := max(0, (width-total)/2)

	var zones []Zone
	line := lipgloss.NewStyle().Width(x).Render("")
	for i, pc := range pieces {
		if i > 0 {
			line += " "
			x++
		}
		w := lipgloss.Width(pc.text)
		if pc.link {
			zones = append(zones, Zone{Kind: ZonePage, Value: pc.page, X: x, Y: 0, W: w, H: 1})
		}
		line += pc.text
		x += w
	}
	return line, zones
}
