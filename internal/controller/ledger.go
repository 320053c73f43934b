package controller

import (
	"log"

	"listgrip/internal/domain"
)

// ledger records the previous state of every item a transaction changed
type ledger struct {
	items []*domain.Item
	prev  []bool
}

func (l *ledger) reset() {
	l.items, l.prev = nil, nil
}

func (l *ledger) record(item *domain.Item, prev bool) {
	l.items = append(l.items, item)
	l.prev = append(l.prev, prev)
}

func (l *ledger) len() int {
	return len(l.items)
}

// net returns the items whose current state differs from the state they had
// before their first change, in first-touched order
func (l *ledger) net(isSelected func(*domain.Item) bool) []*domain.Item {
	seen := make(map[*domain.Item]bool, len(l.items))
	var out []*domain.Item
	for i, it := range l.items {
		if seen[it] {
			continue
		}
		seen[it] = true
		if isSelected(it) != l.prev[i] {
			out = append(out, it)
		}
	}
	return out
}

// rollback restores the selection and focus the transaction started from.
// Entries are replayed newest first so an item changed twice ends up in its
// original state. Nothing is emitted and nothing is recorded.
func (c *Controller) rollback(p *params) {
	n := p.ledger.len()
	for i := n - 1; i >= 0; i-- {
		c.state.Mark(p.ledger.items[i], p.ledger.prev[i])
	}
	c.focus = p.prevFocus
	c.prevented = false
	p.ledger.reset()
	p.selected, p.unselected = nil, nil
	log.Printf("selection %s: transaction cancelled, %d changes rolled back", c.id, n)
}
