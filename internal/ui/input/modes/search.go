package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"listgrip/internal/ui/input/types"
)

// SearchMode highlights matching items while typing; enter jumps to the
// first match
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}
