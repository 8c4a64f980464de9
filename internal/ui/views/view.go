package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"spinslider/internal/carousel"
	"spinslider/internal/domain"
)

// Card is a materialized item handed to the renderer
type Card struct {
	Index int
	Item  domain.Item
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Title  string

	Cards          []Card
	Total          int
	Current        int
	VisibleCount   int
	SidePeek       int
	Infinite       bool
	ShowNavigation bool
	ShowPagination bool
	Pagination     carousel.Pagination

	Dragging      bool
	AutoPlaying   bool
	StatusMessage string
	StatusIsError bool
	Prompt        string
	HelpView      string

	Popup      *domain.Item
	PopupIndex int
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	cards  *CardRenderer
	popups *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		cards:  NewCardRenderer(styles),
		popups: NewPopupRenderer(styles),
	}
}

// Render produces the complete frame. Zones are in screen cells.
func (r *Renderer) Render(state ViewState) Frame {
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	padX, padY := r.styles.Main.GetPaddingLeft(), r.styles.Main.GetPaddingTop()
	width := termWidth - r.styles.Main.GetHorizontalPadding()

	if state.Popup != nil {
		body := r.popups.RenderItemDetails(*state.Popup, state.PopupIndex, state.Total)
		return Frame{Content: r.popups.RenderPopupOverlay(body, state.Width, state.Height)}
	}

	var blocks []string
	var zones []Zone
	var surface Zone
	y := 0
	push := func(s string) int {
		top := y
		blocks = append(blocks, s)
		y += lipgloss.Height(s)
		return top
	}

	push(r.styles.Title.Render(state.Title))

	switch {
	case state.Total == 0:
		push(r.styles.Dim.Render("No items to show. Add [[items]] to the config file."))
	default:
		trackWidth := TrackWidth(width, state.ShowNavigation)
		itemWidth := carousel.ItemWidth(trackWidth, state.SidePeek, state.VisibleCount)
		if itemWidth < MinCardWidth {
			push(r.styles.StatusError.Render("Terminal too narrow for the slider."))
			break
		}

		track, trackZones := r.renderTrack(r.trackView(state, itemWidth))
		top := push(track)
		zones = append(zones, offsetZones(trackZones, 0, top)...)
		bottom := y

		if state.ShowPagination {
			dots, dotZones := r.renderPagination(state.Pagination, lipgloss.Width(track))
			if dots != "" {
				row := push(dots)
				zones = append(zones, offsetZones(dotZones, 0, row)...)
				bottom = y
			}
		}
		surface = Zone{Kind: ZoneSurface, X: 0, Y: top, W: lipgloss.Width(track), H: bottom - top}
	}

	push(r.renderStatus(state))
	if state.Prompt != "" {
		push(r.styles.Prompt.Render(state.Prompt))
	}

	content := strings.Join(blocks, "\n")
	if state.HelpView != "" {
		helpText := r.styles.Help.Render(state.HelpView)
		availableLines := state.Height - r.styles.Main.GetVerticalPadding()
		paddingNeeded := availableLines - y - lipgloss.Height(helpText)
		if paddingNeeded > 0 {
			content += strings.Repeat("\n", paddingNeeded)
		}
		content += "\n" + helpText
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}

	frame := Frame{
		Content: mainStyle.Render(content),
		Zones:   offsetZones(zones, padX, padY),
	}
	if surface.Kind == ZoneSurface {
		surface.X += padX
		surface.Y += padY
		frame.Surface = surface
	}
	return frame
}

// trackView places the materialized cards into the visible slots
func (r *Renderer) trackView(state ViewState, itemWidth int) TrackView {
	byIndex := make(map[int]domain.Item, len(state.Cards))
	for _, c := range state.Cards {
		byIndex[c.Index] = c.Item
	}

	// a wrapped window can overhang the end; those slots stay blank
	visible := carousel.VisibleRange(state.Current, state.VisibleCount, state.Total)
	slots := make([]Slot, 0, state.VisibleCount)
	for i := 0; i < state.VisibleCount; i++ {
		index := state.Current + i
		item, ok := byIndex[index]
		if !ok || !visible.Contains(index) {
			slots = append(slots, Slot{Index: index})
			continue
		}
		slots = append(slots, Slot{
			Index:   index,
			Content: r.cards.RenderCard(item, index, state.Total, itemWidth, index == state.Current),
		})
	}

	wraps := state.Infinite && state.Total > state.VisibleCount
	return TrackView{
		Slots:          slots,
		ItemWidth:      itemWidth,
		PeekWidth:      state.SidePeek,
		PeekLeft:       state.SidePeek > 0 && (state.Current > 0 || wraps),
		PeekRight:      state.SidePeek > 0 && (state.Current+state.VisibleCount < state.Total || wraps),
		ShowNavigation: state.ShowNavigation,
	}
}

func (r *Renderer) renderStatus(state ViewState) string {
	var indicators []string
	if state.Total > 0 {
		indicators = append(indicators, fmt.Sprintf("page %d/%d", state.Pagination.CurrentPage+1, max(1, state.Pagination.TotalPages)))
	}
	if state.Dragging {
		indicators = append(indicators, r.styles.StatusDragging.Render("⇆ dragging"))
	}
	if state.AutoPlaying {
		indicators = append(indicators, r.styles.StatusPlaying.Render("▶ auto-play"))
	}
	if state.Infinite {
		indicators = append(indicators, "∞ wrap")
	}

	line := strings.Join(indicators, " | ")
	if state.StatusMessage != "" {
		msg := state.StatusMessage
		if state.StatusIsError {
			msg = r.styles.StatusError.Render(msg)
		}
		if line != "" {
			line = msg + "  " + line
		} else {
			line = msg
		}
	}
	if line == "" {
		line = " "
	}
	return r.styles.Status.Render(line)
}
