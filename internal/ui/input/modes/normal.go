package modes

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"spinslider/internal/ui/input/types"
)

const ggTimeout = 500 * time.Millisecond

type NormalMode struct {
	keys        types.KeyMap
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// gg goes to the first page; any other key cancels the prefix
	if msg.String() == "gg" {
		// both presses arrived in one read
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	}
	if msg.String() == "g" {
		if m.lastKeyWasG && time.Since(m.lastGTime) < ggTimeout {
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true
	}
	m.lastKeyWasG = false

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true

	case key.Matches(msg, m.keys.Previous):
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case key.Matches(msg, m.keys.Next):
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case key.Matches(msg, m.keys.First):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case key.Matches(msg, m.keys.Last):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, m.keys.Activate):
		if ctx.TotalItems() == 0 {
			return nil, true
		}
		return []types.Action{types.ActivateAction{}}, true

	case key.Matches(msg, m.keys.Jump):
		if ctx.TotalItems() == 0 {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeJump}}, true

	case key.Matches(msg, m.keys.AutoPlay):
		return []types.Action{types.ToggleAutoPlayAction{}}, true

	case key.Matches(msg, m.keys.Wrap):
		return []types.Action{types.ToggleWrapAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	// digits pick a page directly, 1 being the first
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		page := int(s[0] - '1')
		if page < ctx.TotalPages() {
			return []types.Action{types.GoToPageAction{Page: page}}, true
		}
		return nil, true
	}

	return nil, false
}
