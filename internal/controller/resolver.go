package controller

import "listgrip/internal/domain"

// multiSelect makes the target a toggle of its own
func (c *Controller) multiSelect(p *params) []*domain.Item {
	p.multi = true
	return []*domain.Item{p.target}
}

// rangeSelect returns the inclusive run between the focus and the target, in
// list order whichever comes first. A focus that left the list degrades the
// range to the target alone.
func (c *Controller) rangeSelect(p *params) []*domain.Item {
	p.rangeSel = true
	if p.target == c.focus {
		return []*domain.Item{p.target}
	}

	x := c.source.IndexOf(p.target)
	y := c.source.IndexOf(c.focus)
	if x < 0 || y < 0 {
		return []*domain.Item{p.target}
	}
	if x > y {
		x, y = y, x
	}
	all := c.source.All()
	return append([]*domain.Item(nil), all[x:y+1]...)
}
