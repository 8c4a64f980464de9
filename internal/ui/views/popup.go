package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"spinslider/internal/domain"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderItemDetails renders the body of the details popup for an item
func (pr *PopupRenderer) RenderItemDetails(item domain.Item, index, total int) string {
	var b strings.Builder
	b.WriteString(pr.styles.CardTitle.Render(item.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(GetCategoryColor(item.Category))).
		Render(item.Category))
	b.WriteString("\n\n")
	b.WriteString(item.Description)
	b.WriteString("\n\n")
	b.WriteString(pr.styles.Dim.Render(fmt.Sprintf("#%d · %s", item.ID, domain.Label(index, total))))
	b.WriteString("\n")
	b.WriteString(pr.styles.Dim.Render("esc to close"))
	return b.String()
}

// RenderPopupOverlay centers the popup on a canvas of the given size. The
// main content is replaced while the popup is open.
func (pr *PopupRenderer) RenderPopupOverlay(popupContent string, width, height int) string {
	styled := pr.styles.Popup.Render(popupContent)
	if width <= 0 || height <= 0 {
		return styled
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styled)
}
