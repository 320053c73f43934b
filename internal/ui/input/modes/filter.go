package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"listgrip/internal/controller"
	"listgrip/internal/ui/input/types"
)

// FilterMode edits the list filter live. Arrow keys typed into the input are
// forwarded to the list marked as coming from an input, so the preventInputs
// option decides whether they move the focus.
type FilterMode struct {
	TextInputMode
}

func NewFilterMode(ti *textinput.Model) *FilterMode {
	return &FilterMode{
		TextInputMode: NewTextInputMode(types.ModeFilter, "filter", "Filter: ", ti),
	}
}

func (m *FilterMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Key: controller.KeyUp, FromInput: true}}, true
	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Key: controller.KeyDown, FromInput: true}}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
