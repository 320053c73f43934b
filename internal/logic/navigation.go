package logic

import "listgrip/internal/domain"

// Navigator finds items relative to the focus for keyboard navigation
type Navigator struct {
	source ItemSource
	loop   bool // wrap around at the list edges
}

// NewNavigator creates a new navigator
func NewNavigator(source ItemSource, loop bool) *Navigator {
	return &Navigator{source: source, loop: loop}
}

// Edge returns the item a walk in direction starts from when there is no
// focus: the first item going forward, the last going backward
func (n *Navigator) Edge(dir Direction) *domain.Item {
	if dir == DirectionPrev {
		return n.source.Last()
	}
	return n.source.First()
}

// Sibling returns the item next to item in direction, or nil at the edge
func (n *Navigator) Sibling(item *domain.Item, dir Direction) *domain.Item {
	if item == nil {
		return nil
	}
	if dir == DirectionPrev {
		return n.source.Prev(item)
	}
	return n.source.Next(item)
}

// Step moves one item from focus. Without a focus it starts at the edge;
// past the edge it wraps when looping is on.
func (n *Navigator) Step(focus *domain.Item, dir Direction) *domain.Item {
	var res *domain.Item
	if focus != nil {
		res = n.Sibling(focus, dir)
	} else {
		res = n.Edge(dir)
	}
	if res == nil && n.loop {
		res = n.Edge(dir)
	}
	return res
}

// SkipWhile walks from item in direction while keep reports true and returns
// the first item where it doesn't, or nil when the edge is reached first
func (n *Navigator) SkipWhile(item *domain.Item, dir Direction, keep func(*domain.Item) bool) *domain.Item {
	for item != nil && keep(item) {
		item = n.Sibling(item, dir)
	}
	return item
}
