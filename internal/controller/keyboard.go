package controller

import (
	"strings"

	"listgrip/internal/domain"
	"listgrip/internal/logic"
)

// KeyKind tells presses from releases
type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRelease
)

// Keys the controller reacts to
const (
	KeyUp    = "up"
	KeyDown  = "down"
	KeyHome  = "home"
	KeyEnd   = "end"
	KeyA     = "a"
	KeyShift = "shift"
)

// KeyEvent is a keyboard event as seen by the list
type KeyEvent struct {
	Kind  KeyKind
	Key   string
	Shift bool
	Ctrl  bool
	Meta  bool
	// FromInput is set when the key was typed into a text input
	FromInput bool
}

// HandleKey interprets a keyboard event. It reports whether the key was used
// for navigation or selection.
func (c *Controller) HandleKey(ev KeyEvent) (Outcome, bool) {
	if !c.attached || !c.enabled || !c.opts.Keyboard {
		return Outcome{}, false
	}
	if c.opts.PreventInputs && ev.FromInput {
		return Outcome{}, false
	}

	if ev.Kind == KeyRelease {
		if ev.Key == KeyShift {
			c.chain = c.chain.Release()
		}
		return Outcome{}, false
	}

	p := &params{input: ev}
	key := strings.ToLower(ev.Key)

	if key == KeyA && (ev.Ctrl || ev.Meta) && c.opts.Multi {
		all := c.source.All()
		if len(all) == 0 {
			return Outcome{}, false
		}
		p.selectAll = true
		p.target = c.focus
		p.items = all
		return c.runKeyboard(p), true
	}

	var (
		dir    logic.Direction
		target *domain.Item
		edge   bool
	)
	switch key {
	case KeyHome:
		dir, target, edge = logic.DirectionPrev, c.source.First(), true
	case KeyEnd:
		dir, target, edge = logic.DirectionNext, c.source.Last(), true
	case KeyDown:
		dir, target = logic.DirectionNext, c.nav.Step(c.focus, logic.DirectionNext)
	case KeyUp:
		dir, target = logic.DirectionPrev, c.nav.Step(c.focus, logic.DirectionPrev)
	default:
		return Outcome{}, false
	}
	if target == nil {
		return Outcome{}, false
	}

	p.target = target
	p.items = []*domain.Item{target}

	if c.focus != nil && c.opts.Multi && ev.Shift {
		c.shiftStep(p, dir)
		if edge {
			p.items = c.rangeSelect(p)
		} else {
			p.multi = true
		}
	}
	return c.runKeyboard(p), true
}

func (c *Controller) runKeyboard(p *params) Outcome {
	out := c.run(p)
	c.autoScroll()
	return out
}

// autoScroll brings the focus into view in the configured scroller and the
// window scroller
func (c *Controller) autoScroll() {
	if c.focus == nil {
		return
	}
	idx := c.source.IndexOf(c.focus)
	if idx < 0 {
		return
	}
	if s := c.scroller(); s != nil {
		s.ScrollTo(idx)
	}
	if c.window != nil {
		c.window.ScrollTo(idx)
	}
}

func (c *Controller) scroller() Scroller {
	switch c.opts.AutoScroll {
	case "", ScrollNone:
		return nil
	}
	return c.scrollers[c.opts.AutoScroll]
}

// Chain returns the current shift chain
func (c *Controller) Chain() ShiftChain {
	return c.chain
}
