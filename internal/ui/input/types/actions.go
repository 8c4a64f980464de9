package types

// Navigation actions
type NavigateAction struct {
	Direction string // "left", "right", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// GoToPageAction jumps to a pagination page
type GoToPageAction struct {
	Page int
}

func (a GoToPageAction) Type() string { return "go_to_page" }

// ActivateAction clicks the leading visible item
type ActivateAction struct{}

func (a ActivateAction) Type() string { return "activate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Toggles
type ToggleAutoPlayAction struct{}

func (a ToggleAutoPlayAction) Type() string { return "toggle_autoplay" }

type ToggleWrapAction struct{}

func (a ToggleWrapAction) Type() string { return "toggle_wrap" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ClosePopupAction struct{}

func (a ClosePopupAction) Type() string { return "close_popup" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
