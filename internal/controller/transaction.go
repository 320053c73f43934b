package controller

import (
	"listgrip/internal/domain"
	"listgrip/internal/eventbus"
)

// params describes one transaction. It is built by an input interpreter or an
// API call and discarded when stop has been emitted.
type params struct {
	target *domain.Item   // nil for a background interaction
	items  []*domain.Item // candidates to flip
	input  any            // raw input event, nil for API calls

	multi     bool // toggle one item independent of the others
	rangeSel  bool // contiguous run between focus and target
	selectAll bool // select every candidate, leave the focus alone
	forceBlur bool // clear the focus even when focusBlur is off

	targetProbed      bool
	targetWasSelected bool
	wasSelected       bool

	prevFocus *domain.Item
	ledger    ledger

	selected   []*domain.Item // changed by the last select step
	unselected []*domain.Item // changed by the last unselect step
}

// Outcome reports what a transaction did
type Outcome struct {
	// Changed lists the items whose selected state differs from before the
	// transaction, in the order they were first touched
	Changed   []*domain.Item
	Cancelled bool
}

// run executes one transaction
func (c *Controller) run(p *params) Outcome {
	p.ledger.reset()
	p.prevFocus = c.focus

	if c.emit(domain.BeforeEvent{UI: c.ui(p, p.items)}) == eventbus.Cancel {
		return c.abort(p)
	}

	p.wasSelected = c.state.HasSelection()
	if p.target != nil && !p.targetProbed {
		p.targetWasSelected = c.state.IsSelected(p.target)
		p.targetProbed = true
	}

	if !c.apply(p) {
		return c.abort(p)
	}
	return c.stop(p)
}

// apply runs the selection and focus steps. It returns false as soon as a
// notification vetoes the transaction.
func (c *Controller) apply(p *params) bool {
	ok := true
	switch {
	case p.selectAll:
		ok = c.selectItems(p, p.items, false)

	case p.rangeSel && p.targetWasSelected && p.target == c.focus:
		// anchor click on the selected focus changes nothing

	case p.rangeSel || p.multi:
		if p.targetWasSelected {
			ok = c.unselectItems(p, p.items, false)
		} else {
			ok = c.selectItems(p, p.items, false)
		}

	case p.target != nil:
		if c.state.Count() == 1 && c.state.IsSelected(c.focus) {
			ok = c.unselectItems(p, []*domain.Item{c.focus}, p.targetWasSelected)
		} else if c.state.HasSelection() {
			ok = c.unselectAll(p)
		}
		if ok {
			ok = c.selectItems(p, p.items, p.targetWasSelected)
		}

	default:
		if c.state.HasSelection() && c.opts.SelectionBlur {
			ok = c.unselectAll(p)
		}
	}
	if !ok {
		return false
	}

	if !c.state.HasSelection() && p.wasSelected {
		if c.emit(domain.UnselectAllEvent{UI: c.ui(p, p.unselected)}) == eventbus.Cancel {
			return false
		}
	}

	switch {
	case p.selectAll:
	case p.target == nil && (c.opts.FocusBlur || p.forceBlur):
		return c.blur(p)
	case p.target != nil:
		c.focus = p.target
	}
	return true
}

// forEach marks items and records every real change in the ledger. While a
// plain gesture unselects, the target keeps its state when it was selected.
func (c *Controller) forEach(p *params, items []*domain.Item, selected bool) []*domain.Item {
	var changed []*domain.Item
	for _, it := range items {
		if !selected && it == p.target && p.targetWasSelected && !p.multi && !p.rangeSel {
			continue
		}
		prev := c.state.IsSelected(it)
		if c.state.Mark(it, selected) {
			p.ledger.record(it, prev)
			changed = append(changed, it)
		}
	}
	if selected {
		p.selected = changed
	} else {
		p.unselected = changed
	}
	return changed
}

func (c *Controller) selectItems(p *params, items []*domain.Item, silent bool) bool {
	changed := c.forEach(p, items, true)
	if silent || len(changed) == 0 {
		return !c.prevented
	}
	return c.emit(domain.SelectEvent{UI: c.ui(p, changed)}) == eventbus.Continue
}

func (c *Controller) unselectItems(p *params, items []*domain.Item, silent bool) bool {
	changed := c.forEach(p, items, false)
	if silent || len(changed) == 0 {
		return !c.prevented
	}
	return c.emit(domain.UnselectEvent{UI: c.ui(p, changed)}) == eventbus.Continue
}

// unselectAll clears every selectable item. The notification is silenced
// when the target was the only selected item, since it stays selected.
func (c *Controller) unselectAll(p *params) bool {
	if !c.state.HasSelection() {
		return true
	}
	silent := p.target != nil && p.targetWasSelected && c.state.Count() == 1
	return c.unselectItems(p, c.source.All(), silent)
}

func (c *Controller) blur(p *params) bool {
	if c.focus == nil {
		return true
	}
	verdict := c.emit(domain.FocusLostEvent{UI: c.ui(p, nil)})
	c.focus = nil
	return verdict == eventbus.Continue
}

// stop ends a transaction that ran to completion. A veto from stop itself
// still rolls everything back.
func (c *Controller) stop(p *params) Outcome {
	changed := p.ledger.net(c.state.IsSelected)
	if c.emit(domain.StopEvent{UI: c.ui(p, changed)}) == eventbus.Cancel {
		c.rollback(p)
		return Outcome{Cancelled: true}
	}
	return Outcome{Changed: changed}
}

// abort rolls back a vetoed transaction and emits a cancelled stop
func (c *Controller) abort(p *params) Outcome {
	c.rollback(p)
	c.emit(domain.StopEvent{UI: c.ui(p, nil), Cancelled: true})
	c.prevented = false
	return Outcome{Cancelled: true}
}

func (c *Controller) ui(p *params, items []*domain.Item) domain.UI {
	var cp []*domain.Item
	if len(items) > 0 {
		cp = append(cp, items...)
	}
	return domain.UI{
		Target: p.target,
		Focus:  c.focus,
		Items:  cp,
		Input:  p.input,
	}
}
