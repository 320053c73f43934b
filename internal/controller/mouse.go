package controller

import (
	"slices"

	"listgrip/internal/domain"
)

// MouseKind is the phase of a mouse gesture
type MouseKind int

const (
	MousePress MouseKind = iota
	MouseClick           // press and release on the same row
)

// MouseButton identifies the button of a mouse event
type MouseButton int

const (
	ButtonPrimary MouseButton = iota
	ButtonMiddle
	ButtonSecondary
)

// Hit is what the host's hit test found under the pointer
type Hit struct {
	Item *domain.Item // nil when the pointer is outside every item
	// Zones names the parts of the item row the pointer is over
	Zones []string
}

// MouseEvent is a mouse event as seen by the list
type MouseEvent struct {
	Kind   MouseKind
	Button MouseButton
	Hit    Hit
	Shift  bool
	Ctrl   bool
	Meta   bool
}

func (k MouseKind) matches(t Trigger) bool {
	switch t {
	case TriggerMouseDown:
		return k == MousePress
	case TriggerClick:
		return k == MouseClick
	}
	return false
}

// HandleMouse interprets a mouse event. It reports whether the event was used.
func (c *Controller) HandleMouse(ev MouseEvent) (Outcome, bool) {
	if !c.attached || !c.enabled || ev.Button != ButtonPrimary {
		return Outcome{}, false
	}

	p := &params{input: ev}

	if c.opts.Event == TriggerHybrid {
		if ev.Kind == MouseClick && !c.mouseDownPending {
			return Outcome{}, false
		}
		p.target = c.hitTarget(ev.Hit)
		if p.target != nil && ev.Kind == MousePress {
			p.targetWasSelected = c.state.IsSelected(p.target)
			p.targetProbed = true
			if p.targetWasSelected {
				c.mouseDownPending = true
				return Outcome{}, true
			}
		}
		c.mouseDownPending = false
	} else if !ev.Kind.matches(c.opts.Event) {
		return Outcome{}, false
	} else {
		p.target = c.hitTarget(ev.Hit)
	}

	if c.opts.Multi && p.target != nil {
		if ev.Shift && c.focus != nil {
			p.items = c.rangeSelect(p)
		} else if ev.Ctrl || ev.Meta || c.opts.MouseMode == MouseToggle {
			p.items = c.multiSelect(p)
		}
	}
	if p.target != nil && p.items == nil {
		p.items = []*domain.Item{p.target}
	}
	return c.run(p), true
}

// hitTarget returns the selectable item under the pointer. With a handle
// configured the pointer must be over the handle zone too.
func (c *Controller) hitTarget(h Hit) *domain.Item {
	if h.Item == nil || !c.source.Contains(h.Item) {
		return nil
	}
	if c.opts.Handle != "" && !slices.Contains(h.Zones, c.opts.Handle) {
		return nil
	}
	return h.Item
}
