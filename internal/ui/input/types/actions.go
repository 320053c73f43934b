package types

// Navigation actions

// NavigateAction is a key the selection controller interprets
type NavigateAction struct {
	Key       string // "up", "down", "home", "end" or "a"
	Shift     bool
	Ctrl      bool
	Meta      bool
	FromInput bool // typed while the filter input had focus
}

func (a NavigateAction) Type() string { return "navigate" }

// PageAction scrolls the viewport by whole pages without moving the focus
type PageAction struct {
	Pages int
}

func (a PageAction) Type() string { return "page" }

// Selection actions

// ToggleAction flips the focused item
type ToggleAction struct{}

func (a ToggleAction) Type() string { return "toggle" }

type BlurAction struct{}

func (a BlurAction) Type() string { return "blur" }

// RemoveAction drops the focused item from the list
type RemoveAction struct{}

func (a RemoveAction) Type() string { return "remove" }

type ToggleEnabledAction struct{}

func (a ToggleEnabledAction) Type() string { return "toggle_enabled" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

type ClearFilterAction struct{}

func (a ClearFilterAction) Type() string { return "clear_filter" }

// Search actions
type SearchNextAction struct{}

func (a SearchNextAction) Type() string { return "search_next" }

type SearchPrevAction struct{}

func (a SearchPrevAction) Type() string { return "search_prev" }

type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

// Command actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// CycleSortAction switches to the next sort mode
type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

type SaveConfigAction struct{}

func (a SaveConfigAction) Type() string { return "save_config" }

// AcceptAction ends the program and prints the selection
type AcceptAction struct{}

func (a AcceptAction) Type() string { return "accept" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
