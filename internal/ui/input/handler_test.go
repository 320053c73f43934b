package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listgrip/internal/ui/input/types"
)

type fakeContext struct {
	focus     bool
	count     int
	filter    string
	searching bool
}

func (c fakeContext) HasFocus() bool      { return c.focus }
func (c fakeContext) HasSelection() bool  { return c.count > 0 }
func (c fakeContext) SelectedCount() int  { return c.count }
func (c fakeContext) FilterQuery() string { return c.filter }
func (c fakeContext) Searching() bool     { return c.searching }
func (c fakeContext) Enabled() bool       { return true }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNormalModeNavigation(t *testing.T) {
	h := New()
	ctx := fakeContext{}

	for _, tc := range []struct {
		msg  tea.KeyMsg
		want types.NavigateAction
	}{
		{tea.KeyMsg{Type: tea.KeyDown}, types.NavigateAction{Key: "down"}},
		{runes("k"), types.NavigateAction{Key: "up"}},
		{tea.KeyMsg{Type: tea.KeyShiftDown}, types.NavigateAction{Key: "down", Shift: true}},
		{runes("K"), types.NavigateAction{Key: "up", Shift: true}},
		{tea.KeyMsg{Type: tea.KeyShiftEnd}, types.NavigateAction{Key: "end", Shift: true}},
		{tea.KeyMsg{Type: tea.KeyHome}, types.NavigateAction{Key: "home"}},
		{tea.KeyMsg{Type: tea.KeyCtrlA}, types.NavigateAction{Key: "a", Ctrl: true}},
		{tea.KeyMsg{Type: tea.KeyUp, Alt: true}, types.NavigateAction{Key: "up", Meta: true}},
	} {
		actions, _ := h.HandleKey(tc.msg, ctx)
		require.Len(t, actions, 1, tc.msg.String())
		assert.Equal(t, tc.want, actions[0], tc.msg.String())
	}
}

func TestNormalModeCommands(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, fakeContext{})
	assert.Empty(t, actions, "space needs a focus")

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, fakeContext{focus: true})
	assert.Equal(t, []types.Action{types.ToggleAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, fakeContext{focus: true, filter: "ab"})
	assert.Equal(t, []types.Action{types.ClearFilterAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, fakeContext{focus: true, searching: true})
	assert.Equal(t, []types.Action{types.ClearSearchAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, fakeContext{focus: true})
	assert.Equal(t, []types.Action{types.BlurAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, fakeContext{})
	assert.Equal(t, []types.Action{types.AcceptAction{}}, actions)

	actions, _ = h.HandleKey(runes("q"), fakeContext{})
	assert.Equal(t, []types.Action{types.QuitAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, fakeContext{})
	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions)

	actions, _ = h.HandleKey(runes("x"), fakeContext{})
	assert.Empty(t, actions, "remove needs a focus")

	actions, _ = h.HandleKey(runes("x"), fakeContext{focus: true})
	assert.Equal(t, []types.Action{types.RemoveAction{}}, actions)

	actions, _ = h.HandleKey(runes("z"), fakeContext{focus: true})
	assert.Empty(t, actions)
}

func TestFilterModeEditsText(t *testing.T) {
	h := New()
	ctx := fakeContext{filter: "ab"}

	actions, cmd := h.HandleKey(runes("/"), ctx)
	assert.Empty(t, actions)
	assert.NotNil(t, cmd)
	assert.Equal(t, types.ModeFilter, h.CurrentMode())
	assert.Equal(t, "Filter: ", h.Prompt())
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "ab", h.TextInput().Value(), "editing starts from the active filter")

	actions, _ = h.HandleKey(runes("c"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "abc", Mode: types.ModeFilter}}, actions)

	actions, _ = h.HandleKey(runes("q"), ctx)
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "abcq", Mode: types.ModeFilter}}, actions, "letters are text in filter mode")

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, ctx)
	assert.Equal(t, []types.Action{types.NavigateAction{Key: "down", FromInput: true}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "abcq", Mode: types.ModeFilter}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestFilterModeEscCancels(t *testing.T) {
	h := New()

	h.HandleKey(runes("/"), fakeContext{})
	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, fakeContext{})

	assert.Equal(t, []types.Action{types.CancelTextAction{Mode: types.ModeFilter}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestSearchMode(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(runes("s"), fakeContext{})
	assert.Empty(t, actions)
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.Equal(t, "Search: ", h.Prompt())
	assert.Empty(t, h.TextInput().Value())

	actions, _ = h.HandleKey(runes("b"), fakeContext{})
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "b", Mode: types.ModeSearch}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, fakeContext{})
	assert.Equal(t, []types.Action{types.SubmitTextAction{Text: "b", Mode: types.ModeSearch}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())

	actions, _ = h.HandleKey(runes("n"), fakeContext{})
	assert.Equal(t, []types.Action{types.SearchNextAction{}}, actions)
	actions, _ = h.HandleKey(runes("N"), fakeContext{})
	assert.Equal(t, []types.Action{types.SearchPrevAction{}}, actions)
}
