package ui

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"spinslider/internal/autoplay"
	"spinslider/internal/carousel"
	"spinslider/internal/config"
	"spinslider/internal/domain"
	"spinslider/internal/eventbus"
	"spinslider/internal/gesture"
	"spinslider/internal/slider"
	"spinslider/internal/ui/input"
	inputtypes "spinslider/internal/ui/input/types"
	"spinslider/internal/ui/views"
)

const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	slider *slider.Slider[domain.Item]

	width       int
	height      int
	help        help.Model
	inPagerMode bool // tracks if we're currently in pager mode

	// pointer state; pressZone is the control under the last press
	pressZone views.Zone
	pressed   bool

	statusMessage string
	statusIsError bool

	popup      *domain.Item
	popupIndex int

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	helpOps      *HelpOps
	inputHandler *input.Handler
	inputCtx     *input.ModelContext

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	m := &Model{
		bus:          bus,
		config:       cfg,
		help:         help.New(),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(cfg.UISettings.Title),
		helpOps:      NewHelpOps(nil),
		inputHandler: input.New(inputtypes.DefaultKeyMap()),
	}

	s := cfg.Slider
	opts := slider.Options{
		VisibleCount:     s.VisibleCount,
		SidePeek:         s.SidePeek,
		AutoPlay:         s.AutoPlay,
		AutoPlayInterval: s.AutoPlayInterval(),
		Infinite:         s.Infinite,
		MinSwipeDistance: float64(s.MinSwipeDistance),
		InitialIndex:     s.InitialIndex,
		MaxVisiblePages:  s.MaxVisiblePages,
		Overscan:         carousel.DefaultOverscan,
	}
	m.slider = slider.New(cfg.Items, opts, slider.Callbacks[domain.Item]{
		OnSlideChange:   m.onSlideChange,
		OnItemClick:     m.onItemClick,
		OnSwipeStart:    func() { m.publish(eventbus.SwipeStartedEvent{}) },
		OnSwipeEnd:      func() { m.publish(eventbus.SwipeEndedEvent{}) },
		OnAutoPlayStart: m.onAutoPlayStart,
		OnAutoPlayStop:  func() { m.publish(eventbus.AutoPlayStoppedEvent{}) },
	})
	m.inputCtx = &input.ModelContext{Slider: m.slider}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// AttachAutoPlay starts the auto-advance timer if configured. send must
// post a message to the running program; ticks come back as
// AutoPlayTickMsg.
func (m *Model) AttachAutoPlay(ctx context.Context, send func(tea.Msg)) {
	m.slider.AttachAutoPlay(ctx, func(t autoplay.Tick) {
		send(AutoPlayTickMsg{Tick: t})
	})
}

// Close stops background work owned by the model
func (m *Model) Close() {
	m.slider.DetachAutoPlay()
}

// Slider exposes the underlying slider
func (m *Model) Slider() *slider.Slider[domain.Item] {
	return m.slider
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputCtx)
		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.BlurMsg:
		// a drag cannot survive losing the terminal
		m.cancelPointer()
		return m, nil

	case AutoPlayTickMsg:
		m.slider.HandleTick(msg.Tick)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			m.publish(eventbus.ErrorEvent{Message: "Help pager failed", Err: msg.err})
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		m.statusIsError = false
		return m, nil

	case EventMsg:
		if e, ok := msg.Event.(eventbus.ErrorEvent); ok {
			return m, m.setStatus(e.Message, true)
		}
		return m, nil
	}

	return m, m.inputHandler.Update(msg)
}

// View renders the model
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	return m.frame().Content
}

// frame renders the current state with its click zones
func (m *Model) frame() views.Frame {
	return m.renderer.Render(m.viewState())
}

func (m *Model) viewState() views.ViewState {
	opts := m.slider.Options()
	cards := slider.Materialize(m.slider, func(item domain.Item, index int) views.Card {
		return views.Card{Index: index, Item: item}
	})

	return views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Title:          m.config.UISettings.Title,
		Cards:          materializedCards(cards),
		Total:          m.slider.Len(),
		Current:        m.slider.Index(),
		VisibleCount:   opts.VisibleCount,
		SidePeek:       m.cells(opts.SidePeek),
		Infinite:       opts.Infinite,
		ShowNavigation: m.config.Slider.ShowNavigation,
		ShowPagination: m.config.Slider.ShowPagination,
		Pagination:     m.slider.Pagination(),
		Dragging:       m.slider.Gesture().Tracking(),
		AutoPlaying:    m.slider.AutoPlaying(),
		StatusMessage:  m.statusMessage,
		StatusIsError:  m.statusIsError,
		Prompt:         m.inputHandler.Prompt(),
		HelpView:       m.help.View(m.inputHandler.Keys()),
		Popup:          m.popup,
		PopupIndex:     m.popupIndex,
	}
}

func materializedCards(rendered []slider.Rendered[views.Card]) []views.Card {
	out := make([]views.Card, len(rendered))
	for i, r := range rendered {
		out[i] = r.Value
	}
	return out
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "left":
			m.slider.Gesture().KeyDown(gesture.KeyArrowLeft)
		case "right":
			m.slider.Gesture().KeyDown(gesture.KeyArrowRight)
		case "home":
			m.slider.GoToPage(0)
		case "end":
			m.slider.GoToPage(m.slider.TotalPages() - 1)
		}

	case inputtypes.GoToPageAction:
		m.slider.GoToPage(a.Page)

	case inputtypes.ActivateAction:
		m.slider.ActivateItem(m.slider.Index())

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeJump {
			return m.jumpTo(a.Text)
		}

	case inputtypes.ToggleAutoPlayAction:
		on := !m.slider.Options().AutoPlay
		m.slider.SetAutoPlay(on)
		switch {
		case !on:
			return m.setStatus("Auto-play off", false)
		case !m.slider.AutoPlaying():
			return m.setStatus("Auto-play needs more items than fit on screen", false)
		default:
			return m.setStatus(fmt.Sprintf("Auto-play every %s", m.slider.Options().AutoPlayInterval), false)
		}

	case inputtypes.ToggleWrapAction:
		on := !m.slider.Options().Infinite
		m.slider.SetInfinite(on)
		if on {
			return m.setStatus("Wraparound on", false)
		}
		return m.setStatus("Wraparound off", false)

	case inputtypes.ToggleHelpAction:
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContentPlain())

	case inputtypes.ClosePopupAction:
		m.popup = nil

	case inputtypes.QuitAction:
		m.Close()
		return tea.Quit
	}
	return nil
}

// jumpTo moves to the 1-based item number typed at the prompt
func (m *Model) jumpTo(text string) tea.Cmd {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return m.setStatus(fmt.Sprintf("Not an item number: %s", text), true)
	}
	if !m.slider.JumpTo(n - 1) {
		return m.setStatus(fmt.Sprintf("Item %d cannot lead a full window", n), true)
	}
	return m.setStatus(fmt.Sprintf("Jumped to item %d", n), false)
}

// handleMouse feeds mouse input to the gesture recognizer and resolves
// clicks on controls. A click fires only when press and release land on
// the same control.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	frame := m.frame()
	zone := frame.Hit(msg.X, msg.Y)
	g := m.slider.Gesture()
	px, py := m.pixels(msg.X), m.pixels(msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if zone.Kind == views.ZoneNone {
				// a press off the slider drops any press whose release was lost
				m.cancelPointer()
				return nil
			}
			m.pressZone = zone
			m.pressed = true
			g.PointerDown(px, py)
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			if zone.Kind != views.ZoneNone {
				m.slider.Previous()
			}
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			if zone.Kind != views.ZoneNone {
				m.slider.Next()
			}
		}

	case tea.MouseActionMotion:
		if g.Active() && !frame.OnSurface(msg.X, msg.Y) {
			m.cancelPointer()
		}

	case tea.MouseActionRelease:
		pressed, pressZone := m.pressed, m.pressZone
		m.pressed = false
		m.pressZone = views.Zone{}
		g.PointerUp(px, py)
		if pressed && sameControl(pressZone, zone) {
			m.click(zone)
		}
	}
	return nil
}

func sameControl(a, b views.Zone) bool {
	return a.Kind == b.Kind && a.Value == b.Value && a.Kind != views.ZoneSurface && a.Kind != views.ZoneNone
}

func (m *Model) click(zone views.Zone) {
	switch zone.Kind {
	case views.ZoneItem:
		m.slider.ClickItem(zone.Value)
	case views.ZonePrevious:
		m.slider.Previous()
	case views.ZoneNext:
		m.slider.Next()
	case views.ZonePage:
		m.slider.GoToPage(zone.Value)
	}
}

// cancelPointer abandons any press in progress
func (m *Model) cancelPointer() {
	m.pressed = false
	m.pressZone = views.Zone{}
	m.slider.Gesture().PointerLeave()
}

func (m *Model) pixels(cells int) float64 {
	return float64(cells * m.config.UISettings.CellWidthPx)
}

func (m *Model) cells(pixels int) int {
	return pixels / m.config.UISettings.CellWidthPx
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil {
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	m.statusMessage = msg
	m.statusIsError = isError
	return tea.Tick(statusTimeout, func(t time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

func (m *Model) onSlideChange(index int) {
	m.publish(eventbus.SlideChangedEvent{Index: index, Page: m.slider.Page()})
}

func (m *Model) onItemClick(item domain.Item, index int) {
	m.popup = &item
	m.popupIndex = index
	m.inputHandler.ChangeMode(inputtypes.ModePopup, m.inputCtx)
	m.publish(eventbus.ItemClickedEvent{Index: index, Item: item})
}

func (m *Model) onAutoPlayStart() {
	m.publish(eventbus.AutoPlayStartedEvent{IntervalMS: int(m.slider.Options().AutoPlayInterval / time.Millisecond)})
}
