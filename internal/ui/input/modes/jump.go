package modes

import (
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"spinslider/internal/ui/input/types"
)

// JumpMode reads a 1-based item number to move to
type JumpMode struct {
	TextInputMode
}

func NewJumpMode(ti *textinput.Model) *JumpMode {
	return &JumpMode{
		TextInputMode: NewTextInputMode(types.ModeJump, "jump", "Go to item: ", ti),
	}
}

func (m *JumpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// only digits reach the text input
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if !unicode.IsDigit(r) {
				return nil, true
			}
		}
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
