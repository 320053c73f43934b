// Package controller turns mouse, keyboard and API input into selection
// transactions over an ordered list of items.
//
// A Controller owns the selected markers, the focus and the keyboard shift
// chain of exactly one list. Every change runs as a transaction: a before
// notification, the select/unselect steps, an optional unselectAll and
// focusLost, and a final stop notification. Any notification handler may
// answer eventbus.Cancel (or call Cancel) and the whole transaction is rolled
// back. A controller is not safe for concurrent use; it is meant to be driven
// from the host's event loop.
package controller

import (
	"log"

	"github.com/google/uuid"

	"listgrip/internal/domain"
	"listgrip/internal/eventbus"
	"listgrip/internal/logic"
	"listgrip/internal/ui/services/selection"
)

// Scroller is something the controller can ask to bring a list row into view
type Scroller interface {
	ScrollTo(index int)
}

// Controller is the selection controller of one list
type Controller struct {
	id    string
	opts  Options
	store logic.ItemStore

	source *logic.FilteredSource
	nav    *logic.Navigator
	state  *selection.Service
	bus    eventbus.EventBus

	scrollers map[string]Scroller
	window    Scroller

	focus     *domain.Item
	chain     ShiftChain
	enabled   bool
	attached  bool
	prevented bool // armed veto signal, consumed by the next rollback

	mouseDownPending bool // hybrid trigger: press on a selected item waits for the click
}

// Setting configures a Controller at construction time
type Setting func(*Controller)

// WithBus publishes every notification on bus after the option callbacks
func WithBus(bus eventbus.EventBus) Setting {
	return func(c *Controller) {
		if bus != nil {
			c.bus = bus
		}
	}
}

// WithScroller registers a named auto-scroll target. ScrollSelf names the
// list's own viewport.
func WithScroller(name string, s Scroller) Setting {
	return func(c *Controller) {
		c.scrollers[name] = s
	}
}

// WithWindowScroller registers the outermost scroll target; it is scrolled
// after every keyboard transaction in addition to the auto-scroll target
func WithWindowScroller(s Scroller) Setting {
	return func(c *Controller) {
		c.window = s
	}
}

// New attaches a controller to the list held by store and emits create
func New(store logic.ItemStore, opts Options, settings ...Setting) (*Controller, error) {
	c := &Controller{
		id:        uuid.NewString(),
		store:     store,
		state:     selection.NewService(),
		bus:       eventbus.NullBus{},
		scrollers: make(map[string]Scroller),
		enabled:   true,
	}
	for _, s := range settings {
		s(c)
	}
	if err := c.validate(opts); err != nil {
		return nil, err
	}
	c.opts = opts.clone()
	c.rebuild()
	c.attached = true

	log.Printf("selection %s: attached to list with %d items", c.id, len(c.source.All()))
	c.emit(domain.CreateEvent{ListID: c.id})
	return c, nil
}

// rebuild recreates the views that depend on options
func (c *Controller) rebuild() {
	c.source = logic.NewFilteredSource(c.store, c.opts.Filter)
	c.nav = logic.NewNavigator(c.source, c.opts.Loop)
}

// ID returns the controller instance id
func (c *Controller) ID() string {
	return c.id
}

// Source returns the filtered list the controller works on
func (c *Controller) Source() logic.ItemSource {
	return c.source
}

// emit sends a notification to the option callback and then to the bus.
// An armed Cancel turns the verdict into Cancel.
func (c *Controller) emit(event domain.DomainEvent) eventbus.Verdict {
	verdict := eventbus.Continue
	if cb := c.opts.Callbacks[event.Type()]; cb != nil {
		verdict = cb(event)
	}
	verdict = verdict.Merge(c.bus.Publish(event))
	if c.prevented {
		return eventbus.Cancel
	}
	return verdict
}

// Select runs a programmatic selection of items through the transaction
// pipeline, as a plain click on the first of them would. Items outside the
// list are ignored; when none is left nothing happens.
func (c *Controller) Select(items ...*domain.Item) Outcome {
	if !c.attached {
		return Outcome{}
	}
	var valid []*domain.Item
	for _, it := range items {
		if c.source.Contains(it) {
			valid = append(valid, it)
		}
	}
	if len(valid) == 0 {
		return Outcome{}
	}
	return c.run(&params{target: valid[0], items: valid})
}

// Toggle flips one item the way a ctrl-click does. Without multi it is a
// plain selection of the item.
func (c *Controller) Toggle(item *domain.Item) Outcome {
	if !c.attached || !c.source.Contains(item) {
		return Outcome{}
	}
	p := &params{target: item}
	if c.opts.Multi {
		p.items = c.multiSelect(p)
	} else {
		p.items = []*domain.Item{item}
	}
	return c.run(p)
}

// Blur runs a background transaction that always clears the focus. The
// selection is cleared too when selectionBlur is on.
func (c *Controller) Blur() Outcome {
	if !c.attached {
		return Outcome{}
	}
	return c.run(&params{forceBlur: true})
}

// Selected returns the selected items in list order
func (c *Controller) Selected() []*domain.Item {
	return c.state.Selected(c.store.Items())
}

// SelectedIDs returns the ids of the selected items in list order, "" for
// items without one, or nil when nothing is selected
func (c *Controller) SelectedIDs() []string {
	selected := c.Selected()
	if len(selected) == 0 {
		return nil
	}
	ids := make([]string, len(selected))
	for i, it := range selected {
		ids[i] = it.ID
	}
	return ids
}

// SelectedCount returns the selected counter
func (c *Controller) SelectedCount() int {
	return c.state.Count()
}

// IsSelected reports whether an item is selected
func (c *Controller) IsSelected(item *domain.Item) bool {
	return c.state.IsSelected(item)
}

// Focused returns the focused item or nil
func (c *Controller) Focused() *domain.Item {
	return c.focus
}

// Enable lets input events through again
func (c *Controller) Enable() {
	c.enabled = true
}

// Disable makes HandleKey and HandleMouse ignore events. API calls still work.
func (c *Controller) Disable() {
	c.enabled = false
	c.mouseDownPending = false
}

// IsEnabled reports whether input events are handled
func (c *Controller) IsEnabled() bool {
	return c.enabled
}

// Cancel arms the veto signal. Called from a notification handler it cancels
// the running transaction; called outside one it cancels the next.
func (c *Controller) Cancel() {
	c.prevented = true
}

// Refresh re-syncs the controller with the list after external changes: a
// focus that is no longer in the list is dropped, markers of removed items are
// forgotten and the counter is recomputed.
func (c *Controller) Refresh() {
	if c.focus != nil && !c.source.Contains(c.focus) {
		c.focus = nil
	}
	present := make(map[*domain.Item]bool)
	for _, it := range c.store.Items() {
		present[it] = true
	}
	c.state.Resync(func(it *domain.Item) bool { return present[it] })
}

// AllowTextSelection reports whether the host should let native text
// selection start inside the list
func (c *Controller) AllowTextSelection() bool {
	return c.opts.TextSelection
}

// Destroy emits destroy, clears focus and selection and detaches the
// controller. Later calls do nothing.
func (c *Controller) Destroy() {
	if !c.attached {
		return
	}
	c.emit(domain.DestroyEvent{ListID: c.id})
	c.focus = nil
	c.state.Clear()
	c.chain = ShiftChain{}
	c.mouseDownPending = false
	c.prevented = false
	c.attached = false
	log.Printf("selection %s: detached", c.id)
}

// Options returns a copy of the current options
func (c *Controller) Options() Options {
	return c.opts.clone()
}

// Option returns the value of one named option
func (c *Controller) Option(name string) (any, error) {
	return getOption(c.opts, name)
}

// SetOption changes one named option
func (c *Controller) SetOption(name string, value any) error {
	return c.SetOptions(map[string]any{name: value})
}

// SetOptions changes several named options at once. Nothing is applied when
// any of them is rejected.
func (c *Controller) SetOptions(values map[string]any) error {
	next := c.opts.clone()
	for name, value := range values {
		if err := c.setOption(&next, name, value); err != nil {
			return err
		}
	}
	if err := c.validate(next); err != nil {
		return err
	}
	c.opts = next
	c.rebuild()
	return nil
}
