package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"spinslider/internal/domain"
)

const (
	// CardBodyHeight is the number of content lines inside a card border
	CardBodyHeight = 6
	// CardHeight is the full rendered height of a card
	CardHeight = CardBodyHeight + 2
	// MinCardWidth is the narrowest card that still fits its border and a label
	MinCardWidth = 8
)

// CardRenderer draws individual slider items
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{styles: styles}
}

// RenderCard draws item as a bordered card exactly width cells wide
func (cr *CardRenderer) RenderCard(item domain.Item, index, total, width int, current bool) string {
	inner := max(0, width-2)

	category := lipgloss.NewStyle().
		Foreground(lipgloss.Color(GetCategoryColor(item.Category))).
		Render(truncate(item.Category, inner))

	marker := ""
	if current {
		marker = " ◆"
	}
	label := domain.Label(index, total)

	lines := []string{
		cr.styles.CardTitle.Render(truncate(item.Title, inner)),
		category,
		"",
		truncate(item.Description, inner),
		"",
		cr.styles.Dim.Render(truncate(label+marker, inner)),
	}

	style := cr.styles.Card
	if current {
		style = cr.styles.CardCurrent
	}
	return style.
		Width(inner).
		Height(CardBodyHeight).
		Render(strings.Join(lines, "\n"))
}

// RenderPeek draws the sliver of a neighbouring card shown in the side gutter
func (cr *CardRenderer) RenderPeek(width int) string {
	if width < 2 {
		return blank(width, CardHeight)
	}
	return cr.styles.Peek.
		Width(width - 2).
		Height(CardBodyHeight).
		Render("")
}

// blank returns an empty block of the given size
func blank(width, height int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Width(width).Height(height).Render("")
}

// truncate shortens s to at most width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
