package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"listgrip/internal/config"
	"listgrip/internal/controller"
	"listgrip/internal/domain"
	"listgrip/internal/eventbus"
	"listgrip/internal/logic"
	"listgrip/internal/ui/input"
	inputtypes "listgrip/internal/ui/input/types"
	"listgrip/internal/ui/services/navigation"
	"listgrip/internal/ui/services/search"
	"listgrip/internal/ui/services/sorting"
	"listgrip/internal/ui/views"
)

// statusTimeout is how long a status message stays on screen
const statusTimeout = 3 * time.Second

// Model is the terminal host of one selectable list
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc config.ConfigService
	store     logic.ListStore
	ctrl      *controller.Controller
	nav       *navigation.Service
	search    *search.Service
	sorter    *sorting.Service

	width         int
	height        int
	help          help.Model
	keys          views.KeyMap
	statusMessage string
	inPagerMode   bool // tracks if we're currently in pager mode

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler
	helpOps      *HelpOps

	// Terminals report no key releases: shift counts as released as soon as
	// a key arrives without it.
	shiftHeld bool

	// pressed is set between a primary button press and its release
	pressed     bool
	pressedItem *domain.Item

	accepted     bool
	unsubscribes []func()

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates the UI model and attaches a selection controller to store
func NewModel(bus eventbus.EventBus, cfg *config.Config, configSvc config.ConfigService, store logic.ListStore) (*Model, error) {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	m := &Model{
		bus:          bus,
		config:       cfg,
		configSvc:    configSvc,
		store:        store,
		nav:          navigation.NewService(bus),
		help:         help.New(),
		keys:         views.DefaultKeyMap(),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		inputHandler: input.New(),
	}

	sortMode, err := logic.ParseSortMode(cfg.UI.Sort)
	if err != nil {
		return nil, fmt.Errorf("invalid ui settings: %w", err)
	}

	opts := cfg.Selection.Options(controller.DefaultOptions())
	ctrl, err := controller.New(store, opts,
		controller.WithBus(bus),
		controller.WithScroller(controller.ScrollSelf, m.nav),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid selection options: %w", err)
	}
	m.ctrl = ctrl
	m.nav.SetTotalFunction(func() int { return len(ctrl.Source().All()) })
	m.search = search.NewService(bus, func() []*domain.Item { return ctrl.Source().All() })
	m.sorter = sorting.NewService(bus, store)

	m.unsubscribes = append(m.unsubscribes,
		bus.Subscribe(domain.EventStop, eventbus.Observe(m.onStop)),
		bus.Subscribe(domain.EventConfigSaved, eventbus.Observe(m.onConfigSaved)),
		bus.Subscribe(sorting.EventSortModeChanged, eventbus.Observe(m.onSortChanged)),
	)
	m.sorter.SetMode(sortMode)
	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Controller returns the selection controller of the list
func (m *Model) Controller() *controller.Controller {
	return m.ctrl
}

// Result returns the selection and whether it was accepted with enter
func (m *Model) Result() ([]*domain.Item, bool) {
	return m.ctrl.Selected(), m.accepted
}

// Close detaches the controller and drops the bus subscriptions
func (m *Model) Close() {
	m.ctrl.Destroy()
	for _, unsubscribe := range m.unsubscribes {
		unsubscribe()
	}
	m.unsubscribes = nil
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
		m.nav.SetViewportHeight(msg.Height, views.ReservedLines)
		m.scrollToFocus()
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{Controller: m.ctrl, Search: m.search}

		// Handle input through the mode handler
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		// Process actions
		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("Help pager failed: %v", msg.err)
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
		return m, nil
	}

	// Handle non-keyboard messages for the text input (cursor blink)
	return m, m.inputHandler.Update(msg)
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.viewState())
}

func (m *Model) viewState() views.ViewState {
	all := m.ctrl.Source().All()
	offset := m.nav.Offset()
	end := min(offset+m.nav.Height(), len(all))

	focus := m.ctrl.Focused()
	var rows []views.Row
	start := min(offset, end)
	for i, it := range all[start:end] {
		rows = append(rows, views.Row{
			ID:       it.ID,
			Label:    it.Label,
			Focused:  it == focus,
			Selected: m.ctrl.IsSelected(it),
			Match:    m.search.IsMatch(start + i),
		})
	}

	opts := m.ctrl.Options()
	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Rows:           rows,
		VisibleItems:   len(all),
		TotalItems:     len(m.store.Items()),
		SelectedCount:  m.ctrl.SelectedCount(),
		FilterQuery:    opts.FilterQuery,
		SortMode:       m.sortLabel(),
		SearchQuery:    m.search.GetQuery(),
		SearchMatch:    m.search.GetCurrentMatchNumber(),
		SearchMatches:  m.search.GetMatchCount(),
		StatusMessage:  m.statusMessage,
		Disabled:       !m.ctrl.IsEnabled(),
		ShowCounter:    m.config.UI.ShowCounter,
		ShowHelpFooter: m.config.UI.ShowHelpFooter,
		Classes: views.ClassNames{
			List:     opts.ListClass,
			Focus:    opts.FocusClass,
			Selected: opts.SelectedClass,
			Disabled: opts.DisabledClass,
		},
		HelpModel: m.help,
		Keys:      m.keys,
	}
	if ti := m.inputHandler.TextInput(); ti != nil {
		state.InputPrompt = m.inputHandler.Prompt()
		state.TextInput = ti.View()
	}
	return state
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	if nav, ok := action.(inputtypes.NavigateAction); ok {
		m.syncShift(nav.Shift)
		out, _ := m.ctrl.HandleKey(controller.KeyEvent{
			Kind:      controller.KeyPress,
			Key:       nav.Key,
			Shift:     nav.Shift,
			Ctrl:      nav.Ctrl,
			Meta:      nav.Meta,
			FromInput: nav.FromInput,
		})
		return m.outcome(out)
	}
	m.syncShift(false)

	switch a := action.(type) {
	case inputtypes.PageAction:
		m.nav.ScrollBy(a.Pages * m.nav.Height())

	case inputtypes.ToggleAction:
		return m.outcome(m.ctrl.Toggle(m.ctrl.Focused()))

	case inputtypes.BlurAction:
		return m.outcome(m.ctrl.Blur())

	case inputtypes.RemoveAction:
		return m.removeFocused()

	case inputtypes.ToggleEnabledAction:
		if m.ctrl.IsEnabled() {
			m.ctrl.Disable()
			return m.setStatus("List disabled")
		}
		m.ctrl.Enable()
		return m.setStatus("List enabled")

	case inputtypes.UpdateTextAction:
		if a.Mode == inputtypes.ModeSearch {
			m.search.StartSearch(a.Text)
			return nil
		}
		return m.applyFilter(a.Text)

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			m.search.StartSearch(a.Text)
			if a.Text == "" {
				return nil
			}
			return m.jumpTo(m.search.Current())
		}
		return m.applyFilter(a.Text)

	case inputtypes.CancelTextAction:
		if a.Mode == inputtypes.ModeSearch {
			m.search.ClearSearch()
			return nil
		}
		return m.applyFilter("")

	case inputtypes.ClearFilterAction:
		return m.applyFilter("")

	case inputtypes.ClearSearchAction:
		m.search.ClearSearch()

	case inputtypes.SearchNextAction:
		return m.jumpTo(m.search.Next())

	case inputtypes.SearchPrevAction:
		return m.jumpTo(m.search.Previous())

	case inputtypes.CycleSortAction:
		m.sorter.NextMode()
		return m.setStatus(fmt.Sprintf("Sorted by %s", m.sorter.GetModeString()))

	case inputtypes.SaveConfigAction:
		return m.saveConfig()

	case inputtypes.ToggleHelpAction:
		if m.helpOps == nil {
			return m.setStatus("Help is not available")
		}
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())

	case inputtypes.AcceptAction:
		m.accepted = true
		return tea.Quit

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// syncShift releases the shift key for the controller once a key arrives
// without it
func (m *Model) syncShift(held bool) {
	if m.shiftHeld && !held {
		m.ctrl.HandleKey(controller.KeyEvent{Kind: controller.KeyRelease, Key: controller.KeyShift})
	}
	m.shiftHeld = held
}

// handleMouse turns terminal mouse reports into press and click events. A
// release over the item the button went down on is a click.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.nav.ScrollBy(-1)
		return nil
	case tea.MouseButtonWheelDown:
		m.nav.ScrollBy(1)
		return nil
	}

	hit := m.hitTest(msg.X, msg.Y)
	ev := controller.MouseEvent{
		Hit:   hit,
		Shift: msg.Shift,
		Ctrl:  msg.Ctrl,
		Meta:  msg.Alt,
	}

	switch msg.Action {
	case tea.MouseActionPress:
		button, ok := mouseButton(msg.Button)
		if !ok {
			return nil
		}
		m.syncShift(false)
		if button == controller.ButtonPrimary {
			m.pressed = true
			m.pressedItem = hit.Item
		}
		ev.Kind = controller.MousePress
		ev.Button = button
		out, _ := m.ctrl.HandleMouse(ev)
		return m.outcome(out)

	case tea.MouseActionRelease:
		if !m.pressed {
			return nil
		}
		m.pressed = false
		if hit.Item != m.pressedItem {
			return nil
		}
		ev.Kind = controller.MouseClick
		ev.Button = controller.ButtonPrimary
		out, _ := m.ctrl.HandleMouse(ev)
		return m.outcome(out)
	}
	return nil
}

func mouseButton(b tea.MouseButton) (controller.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return controller.ButtonPrimary, true
	case tea.MouseButtonMiddle:
		return controller.ButtonMiddle, true
	case tea.MouseButtonRight:
		return controller.ButtonSecondary, true
	}
	return 0, false
}

// hitTest maps a screen cell to the item row under it
func (m *Model) hitTest(x, y int) controller.Hit {
	index := m.nav.RowAt(views.RowAt(y))
	if index < 0 {
		return controller.Hit{}
	}
	all := m.ctrl.Source().All()
	if index >= len(all) {
		return controller.Hit{}
	}
	zones := views.ZonesAt(x)
	if zones == nil {
		return controller.Hit{}
	}
	return controller.Hit{Item: all[index], Zones: zones}
}

// applyFilter narrows the list to items matching query
func (m *Model) applyFilter(query string) tea.Cmd {
	var value any
	if query != "" {
		value = query
	}
	if err := m.ctrl.SetOption(controller.OptFilter, value); err != nil {
		log.Printf("Failed to apply filter %q: %v", query, err)
		return m.setStatus(fmt.Sprintf("Invalid filter: %v", err))
	}
	m.ctrl.Refresh()
	m.search.Refresh()
	// clamp the viewport to the new row count
	m.nav.ScrollBy(0)
	m.scrollToFocus()
	return nil
}

// removeFocused drops the focused item from the list. Refresh takes it out of
// the selection and clears the focus.
func (m *Model) removeFocused() tea.Cmd {
	item := m.ctrl.Focused()
	if item == nil || !m.store.Remove(item) {
		return nil
	}
	m.ctrl.Refresh()
	m.search.Refresh()
	m.nav.ScrollBy(0)
	return m.setStatus(fmt.Sprintf("Removed %q", item.Label))
}

// jumpTo selects a search match the way a click on it would
func (m *Model) jumpTo(item *domain.Item) tea.Cmd {
	if item == nil {
		if m.search.GetQuery() == "" {
			return nil
		}
		return m.setStatus(fmt.Sprintf("No matches for %q", m.search.GetQuery()))
	}
	cmd := m.outcome(m.ctrl.Select(item))
	m.scrollToFocus()
	return cmd
}

func (m *Model) scrollToFocus() {
	if focus := m.ctrl.Focused(); focus != nil {
		m.nav.ScrollTo(m.ctrl.Source().IndexOf(focus))
	}
}

// saveConfig stores the current options so the next run starts with them
func (m *Model) saveConfig() tea.Cmd {
	if m.configSvc == nil {
		return m.setStatus("No config file")
	}
	m.config.Selection = config.FromOptions(m.ctrl.Options())
	m.config.UI.Sort = m.sorter.GetModeString()
	if err := m.configSvc.Save(m.config); err != nil {
		log.Printf("Failed to save config: %v", err)
		return m.setStatus(fmt.Sprintf("Failed to save config: %v", err))
	}
	return m.clearStatusLater()
}

func (m *Model) outcome(out controller.Outcome) tea.Cmd {
	if out.Cancelled {
		return m.setStatus("Selection change cancelled")
	}
	return nil
}

func (m *Model) onStop(e domain.DomainEvent) {
	stop := e.(domain.StopEvent)
	if stop.Cancelled {
		return
	}
	log.Printf("Selection changed: %d items touched, %d selected", len(stop.Items), m.ctrl.SelectedCount())
}

// onSortChanged keeps the controller and the search in step with the new order
func (m *Model) onSortChanged(domain.DomainEvent) {
	m.ctrl.Refresh()
	m.search.Refresh()
	m.scrollToFocus()
}

// sortLabel names the sort mode for the title, or "" for input order
func (m *Model) sortLabel() string {
	if m.sorter.GetCurrentMode() == logic.SortByInput {
		return ""
	}
	return m.sorter.GetModeString()
}

func (m *Model) onConfigSaved(e domain.DomainEvent) {
	m.statusMessage = fmt.Sprintf("Saved config to %s", e.(domain.ConfigSavedEvent).Path)
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMessage = msg
	return m.clearStatusLater()
}

func (m *Model) clearStatusLater() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{
			err: err,
		}
	}
}
