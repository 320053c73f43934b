package logic

import "listgrip/internal/domain"

// ItemStore provides the raw ordered item list owned by the host
type ItemStore interface {
	Items() []*domain.Item
}

// SortableStore is an ItemStore the host can reorder
type SortableStore interface {
	ItemStore
	SortFunc(cmp func(a, b *domain.Item) int)
}

// ListStore is the store the terminal host owns; it can also drop items
type ListStore interface {
	SortableStore
	Remove(item *domain.Item) bool
}

// ItemSource is the ordered, filtered view of a list the controller works on.
// Every method respects the selectable filter; items outside it behave as if
// they were not in the list.
type ItemSource interface {
	All() []*domain.Item
	First() *domain.Item
	Last() *domain.Item
	Next(item *domain.Item) *domain.Item
	Prev(item *domain.Item) *domain.Item
	IndexOf(item *domain.Item) int
	Contains(item *domain.Item) bool
}

// Direction is the way keyboard navigation walks a list
type Direction int

const (
	DirectionNone Direction = iota
	DirectionNext
	DirectionPrev
)

func (d Direction) String() string {
	switch d {
	case DirectionNext:
		return "next"
	case DirectionPrev:
		return "prev"
	default:
		return "none"
	}
}
