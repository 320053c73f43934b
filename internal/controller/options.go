package controller

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"listgrip/internal/domain"
	"listgrip/internal/eventbus"
	"listgrip/internal/logic"
)

// MouseMode decides what a plain click does
type MouseMode string

const (
	MouseSelect MouseMode = "select" // click selects, ctrl/meta-click toggles
	MouseToggle MouseMode = "toggle" // every click toggles one item
)

// Trigger is the mouse event that starts a transaction
type Trigger string

const (
	TriggerMouseDown Trigger = "mousedown"
	TriggerClick     Trigger = "click"
	// TriggerHybrid acts on press, except that a press on an already selected
	// item waits for the click
	TriggerHybrid Trigger = "hybrid"
)

// Auto-scroll targets
const (
	ScrollNone = "none"
	ScrollSelf = "self"
)

// Option names accepted by SetOption
const (
	OptFilter        = "filter"
	OptMulti         = "multi"
	OptMouseMode     = "mouseMode"
	OptEvent         = "event"
	OptFocusBlur     = "focusBlur"
	OptSelectionBlur = "selectionBlur"
	OptHandle        = "handle"
	OptTextSelection = "textSelection"
	OptKeyboard      = "keyboard"
	OptAutoScroll    = "autoScroll"
	OptLoop          = "loop"
	OptPreventInputs = "preventInputs"
	OptListClass     = "listClass"
	OptFocusClass    = "focusClass"
	OptSelectedClass = "selectedClass"
	OptDisabledClass = "disabledClass"
)

// callbackOptions maps option names to the notification they receive
var callbackOptions = map[string]domain.EventType{
	"create":      domain.EventCreate,
	"before":      domain.EventBefore,
	"focusLost":   domain.EventFocusLost,
	"select":      domain.EventSelect,
	"unselect":    domain.EventUnselect,
	"unselectAll": domain.EventUnselectAll,
	"stop":        domain.EventStop,
	"destroy":     domain.EventDestroy,
}

// Options configures a Controller
type Options struct {
	// Filter restricts which items of the store are selectable; nil accepts all
	Filter func(*domain.Item) bool
	// FilterQuery is the pattern Filter was built from, when set by name
	FilterQuery string

	Multi         bool
	MouseMode     MouseMode
	Event         Trigger
	FocusBlur     bool   // a background interaction clears the focus
	SelectionBlur bool   // a background interaction clears the selection
	Handle        string // zone of an item row that must be hit to start a gesture
	TextSelection bool   // allow the host's native text selection

	Keyboard      bool
	AutoScroll    string // ScrollNone, ScrollSelf or a registered scroller name
	Loop          bool
	PreventInputs bool // ignore keys typed into an input field

	ListClass     string
	FocusClass    string
	SelectedClass string
	DisabledClass string

	Callbacks map[domain.EventType]eventbus.EventHandler
}

// DefaultOptions returns the default configuration
func DefaultOptions() Options {
	return Options{
		Multi:         true,
		MouseMode:     MouseSelect,
		Event:         TriggerMouseDown,
		AutoScroll:    ScrollSelf,
		PreventInputs: true,
		ListClass:     "selectable",
		FocusClass:    "focused",
		SelectedClass: "selected",
		DisabledClass: "disabled",
	}
}

// clone copies the options, callbacks map included
func (o Options) clone() Options {
	cp := o
	cp.Callbacks = make(map[domain.EventType]eventbus.EventHandler, len(o.Callbacks))
	for k, v := range o.Callbacks {
		cp.Callbacks[k] = v
	}
	return cp
}

// ConfigurationError reports an option that was rejected
type ConfigurationError struct {
	Option string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: option %q %s", e.Option, e.Reason)
}

func configErr(option, format string, args ...any) error {
	return &ConfigurationError{Option: option, Reason: fmt.Sprintf(format, args...)}
}

// OptionNames lists every option name SetOption accepts
func OptionNames() []string {
	names := []string{
		OptFilter, OptMulti, OptMouseMode, OptEvent, OptFocusBlur, OptSelectionBlur,
		OptHandle, OptTextSelection, OptKeyboard, OptAutoScroll, OptLoop,
		OptPreventInputs, OptListClass, OptFocusClass, OptSelectedClass, OptDisabledClass,
	}
	base := len(names)
	for name := range callbackOptions {
		names = append(names, name)
	}
	slices.Sort(names[base:])
	return names
}

// validate checks the values a typed Options literal can get wrong
func (c *Controller) validate(o Options) error {
	switch o.MouseMode {
	case MouseSelect, MouseToggle:
	default:
		return configErr(OptMouseMode, "should be %q or %q, got %q", MouseSelect, MouseToggle, o.MouseMode)
	}
	switch o.Event {
	case TriggerMouseDown, TriggerClick, TriggerHybrid:
	default:
		return configErr(OptEvent, "should be one of mousedown, click, hybrid, got %q", o.Event)
	}
	if err := c.checkScroller(o.AutoScroll); err != nil {
		return err
	}
	classes := map[string]string{
		OptListClass: o.ListClass, OptFocusClass: o.FocusClass,
		OptSelectedClass: o.SelectedClass, OptDisabledClass: o.DisabledClass,
	}
	for name, v := range classes {
		if strings.TrimSpace(v) == "" {
			return configErr(name, "should not be empty")
		}
	}
	return nil
}

func (c *Controller) checkScroller(name string) error {
	switch name {
	case "", ScrollNone, ScrollSelf:
		return nil
	}
	if _, ok := c.scrollers[name]; !ok {
		return configErr(OptAutoScroll, "there is no scroll target named %q", name)
	}
	return nil
}

// setOption applies one named option to o
func (c *Controller) setOption(o *Options, name string, value any) error {
	if ev, ok := callbackOptions[name]; ok {
		h, err := toHandler(name, value)
		if err != nil {
			return err
		}
		if h == nil {
			delete(o.Callbacks, ev)
		} else {
			o.Callbacks[ev] = h
		}
		return nil
	}

	var err error
	switch name {
	case OptFilter:
		switch v := value.(type) {
		case nil:
			o.Filter, o.FilterQuery = nil, ""
		case string:
			o.Filter, o.FilterQuery = logic.FilterFunc(v), strings.TrimSpace(v)
		case func(*domain.Item) bool:
			o.Filter, o.FilterQuery = v, ""
		default:
			return configErr(name, "should be a pattern string or a func(*domain.Item) bool, got %T", value)
		}
	case OptMulti:
		o.Multi, err = toBool(name, value)
	case OptFocusBlur:
		o.FocusBlur, err = toBool(name, value)
	case OptSelectionBlur:
		o.SelectionBlur, err = toBool(name, value)
	case OptTextSelection:
		o.TextSelection, err = toBool(name, value)
	case OptKeyboard:
		o.Keyboard, err = toBool(name, value)
	case OptLoop:
		o.Loop, err = toBool(name, value)
	case OptPreventInputs:
		o.PreventInputs, err = toBool(name, value)
	case OptMouseMode:
		var s string
		if s, err = toString(name, value); err == nil {
			o.MouseMode = MouseMode(s)
		}
	case OptEvent:
		var s string
		if s, err = toString(name, value); err == nil {
			o.Event = Trigger(s)
		}
	case OptHandle:
		if value == nil {
			o.Handle = ""
			return nil
		}
		o.Handle, err = toString(name, value)
	case OptAutoScroll:
		switch v := value.(type) {
		case nil:
			o.AutoScroll = ScrollNone
		case bool:
			o.AutoScroll = ScrollNone
			if v {
				o.AutoScroll = ScrollSelf
			}
		case string:
			o.AutoScroll = strings.TrimSpace(v)
			if b, perr := strconv.ParseBool(o.AutoScroll); perr == nil {
				o.AutoScroll = ScrollNone
				if b {
					o.AutoScroll = ScrollSelf
				}
			}
		default:
			return configErr(name, "should be a bool or a scroll target name, got %T", value)
		}
	case OptListClass, OptFocusClass, OptSelectedClass, OptDisabledClass:
		var s string
		if s, err = toString(name, value); err != nil {
			return err
		}
		field := classField(o, name)
		if c.attached && s != *field {
			return configErr(name, "cannot be changed after the controller is attached")
		}
		*field = s
	default:
		return configErr(name, "is not a known option")
	}
	return err
}

func classField(o *Options, name string) *string {
	switch name {
	case OptListClass:
		return &o.ListClass
	case OptFocusClass:
		return &o.FocusClass
	case OptSelectedClass:
		return &o.SelectedClass
	default:
		return &o.DisabledClass
	}
}

// getOption reads one named option
func getOption(o Options, name string) (any, error) {
	if ev, ok := callbackOptions[name]; ok {
		return o.Callbacks[ev], nil
	}
	switch name {
	case OptFilter:
		if o.FilterQuery != "" {
			return o.FilterQuery, nil
		}
		return o.Filter, nil
	case OptMulti:
		return o.Multi, nil
	case OptMouseMode:
		return o.MouseMode, nil
	case OptEvent:
		return o.Event, nil
	case OptFocusBlur:
		return o.FocusBlur, nil
	case OptSelectionBlur:
		return o.SelectionBlur, nil
	case OptHandle:
		return o.Handle, nil
	case OptTextSelection:
		return o.TextSelection, nil
	case OptKeyboard:
		return o.Keyboard, nil
	case OptAutoScroll:
		return o.AutoScroll, nil
	case OptLoop:
		return o.Loop, nil
	case OptPreventInputs:
		return o.PreventInputs, nil
	case OptListClass, OptFocusClass, OptSelectedClass, OptDisabledClass:
		return *classField(&o, name), nil
	}
	return nil, configErr(name, "is not a known option")
}

func toBool(name string, value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, configErr(name, "should be a bool, got %q", v)
		}
		return b, nil
	}
	return false, configErr(name, "should be a bool, got %T", value)
}

func toString(name string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", configErr(name, "should be a string, got %T", value)
	}
	return strings.TrimSpace(s), nil
}

func toHandler(name string, value any) (eventbus.EventHandler, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case eventbus.EventHandler:
		return v, nil
	case func(domain.DomainEvent) eventbus.Verdict:
		return v, nil
	case func(domain.DomainEvent):
		return eventbus.Observe(v), nil
	}
	return nil, configErr(name, "should be a function or nil, got %T", value)
}
