package views

import (
	"github.com/charmbracelet/lipgloss"
)

// ButtonWidth is the width of each navigation button column
const ButtonWidth = 3

// Slot is one visible position on the track. A slot with no content is the
// clipped overhang of a wrapped window.
type Slot struct {
	Index   int
	Content string
}

// TrackView describes the row of cards
type TrackView struct {
	Slots          []Slot
	ItemWidth      int
	PeekWidth      int
	PeekLeft       bool
	PeekRight      bool
	ShowNavigation bool
}

// TrackWidth returns the width available to peeks and cards once the
// navigation buttons are placed
func TrackWidth(totalWidth int, showNavigation bool) int {
	if showNavigation {
		return max(0, totalWidth-2*ButtonWidth)
	}
	return max(0, totalWidth)
}

// renderTrack lays the track out left to right and records a zone per
// button and card, relative to the top-left of the row
func (r *Renderer) renderTrack(t TrackView) (string, []Zone) {
	var pieces []string
	var zones []Zone
	x := 0

	add := func(s string, z *Zone) {
		w := lipgloss.Width(s)
		if z != nil {
			z.X, z.Y, z.W, z.H = x, 0, w, CardHeight
			zones = append(zones, *z)
		}
		pieces = append(pieces, s)
		x += w
	}

	if t.ShowNavigation {
		add(r.button("‹"), &Zone{Kind: ZonePrevious})
	}

	if t.PeekLeft {
		add(r.cards.RenderPeek(t.PeekWidth), nil)
	} else {
		add(blank(t.PeekWidth, CardHeight), nil)
	}

	for _, slot := range t.Slots {
		if slot.Content == "" {
			add(blank(t.ItemWidth, CardHeight), nil)
			continue
		}
		add(slot.Content, &Zone{Kind: ZoneItem, Value: slot.Index})
	}

	if t.PeekRight {
		add(r.cards.RenderPeek(t.PeekWidth), nil)
	} else {
		add(blank(t.PeekWidth, CardHeight), nil)
	}

	if t.ShowNavigation {
		add(r.button("›"), &Zone{Kind: ZoneNext})
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, pieces...), zones
}

func (r *Renderer) button(glyph string) string {
	return r.styles.Button.
		Width(ButtonWidth).
		Height(CardHeight).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(glyph)
}
