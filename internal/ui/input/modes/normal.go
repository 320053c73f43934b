package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"listgrip/internal/controller"
	"listgrip/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
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
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		// Esc drops the filter first, then the search, then the focus
		if ctx.FilterQuery() != "" {
			return []types.Action{types.ClearFilterAction{}}, true
		}
		if ctx.Searching() {
			return []types.Action{types.ClearSearchAction{}}, true
		}
		if ctx.HasFocus() || ctx.HasSelection() {
			return []types.Action{types.BlurAction{}}, true
		}
		return nil, false

	case tea.KeyUp:
		return navigate(controller.KeyUp, msg.Alt), true

	case tea.KeyDown:
		return navigate(controller.KeyDown, msg.Alt), true

	case tea.KeyShiftUp:
		return shiftNavigate(controller.KeyUp), true

	case tea.KeyShiftDown:
		return shiftNavigate(controller.KeyDown), true

	case tea.KeyHome:
		return navigate(controller.KeyHome, msg.Alt), true

	case tea.KeyEnd:
		return navigate(controller.KeyEnd, msg.Alt), true

	case tea.KeyShiftHome:
		return shiftNavigate(controller.KeyHome), true

	case tea.KeyShiftEnd:
		return shiftNavigate(controller.KeyEnd), true

	case tea.KeyPgUp:
		return []types.Action{types.PageAction{Pages: -1}}, true

	case tea.KeyPgDown:
		return []types.Action{types.PageAction{Pages: 1}}, true

	case tea.KeyCtrlA:
		return []types.Action{types.NavigateAction{Key: controller.KeyA, Ctrl: true}}, true

	case tea.KeyCtrlS:
		return []types.Action{types.SaveConfigAction{}}, true

	case tea.KeyEnter:
		return []types.Action{types.AcceptAction{}}, true

	case tea.KeySpace:
		if ctx.HasFocus() {
			return []types.Action{types.ToggleAction{}}, true
		}
		return nil, false
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return navigate(controller.KeyDown, false), true

	case "k":
		return navigate(controller.KeyUp, false), true

	case "J":
		return shiftNavigate(controller.KeyDown), true

	case "K":
		return shiftNavigate(controller.KeyUp), true

	case "g":
		return navigate(controller.KeyHome, false), true

	case "G":
		return navigate(controller.KeyEnd, false), true

	case "/", "ctrl+f", "F":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeFilter, Data: ctx.FilterQuery()}}, true

	case "s":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "n":
		return []types.Action{types.SearchNextAction{}}, true

	case "N":
		return []types.Action{types.SearchPrevAction{}}, true

	case "o":
		return []types.Action{types.CycleSortAction{}}, true

	case "x":
		if ctx.HasFocus() {
			return []types.Action{types.RemoveAction{}}, true
		}
		return nil, false

	case "d":
		return []types.Action{types.ToggleEnabledAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}

// navigate maps alt to the meta modifier, which is what terminals send for it
func navigate(key string, alt bool) []types.Action {
	return []types.Action{types.NavigateAction{Key: key, Meta: alt}}
}

func shiftNavigate(key string) []types.Action {
	return []types.Action{types.NavigateAction{Key: key, Shift: true}}
}
