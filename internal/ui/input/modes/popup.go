package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"spinslider/internal/ui/input/types"
)

// PopupMode swallows input while the item details popup is open
type PopupMode struct {
	keys types.KeyMap
}

func NewPopupMode(keys types.KeyMap) *PopupMode {
	return &PopupMode{keys: keys}
}

func (m *PopupMode) Name() string {
	return "popup"
}

func (m *PopupMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *PopupMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.ClosePopupAction{}}
}

func (m *PopupMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.ClosePopup):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}
	return nil, true
}
