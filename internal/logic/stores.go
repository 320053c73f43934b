package logic

import (
	"slices"
	"sync"

	"listgrip/internal/domain"
)

// MemoryItemStore is an in-memory implementation of ItemStore
type MemoryItemStore struct {
	mu    sync.RWMutex
	items []*domain.Item
}

// NewMemoryItemStore creates a new memory-based item store
func NewMemoryItemStore(items ...*domain.Item) *MemoryItemStore {
	s := &MemoryItemStore{}
	s.items = append(s.items, items...)
	return s
}

// NewMemoryItemStoreFromLabels creates a store with one item per label
func NewMemoryItemStoreFromLabels(labels ...string) *MemoryItemStore {
	s := &MemoryItemStore{}
	for _, l := range labels {
		s.items = append(s.items, domain.NewItem("", l))
	}
	return s
}

// Items returns a copy of the ordered item list
func (s *MemoryItemStore) Items() []*domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make([]*domain.Item, len(s.items))
	copy(result, s.items)
	return result
}

// Remove drops an item from the list
func (s *MemoryItemStore) Remove(item *domain.Item) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := domain.IndexOf(s.items, item)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// SortFunc reorders the items with a stable sort
func (s *MemoryItemStore) SortFunc(cmp func(a, b *domain.Item) int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slices.SortStableFunc(s.items, cmp)
}

// FilteredSource is an ItemSource over a store. Hidden items and items
// rejected by the filter are skipped. It reads the store on every call, so
// external changes become visible between transactions.
type FilteredSource struct {
	store  ItemStore
	filter func(*domain.Item) bool
}

// NewFilteredSource creates a source; a nil filter accepts every item
func NewFilteredSource(store ItemStore, filter func(*domain.Item) bool) *FilteredSource {
	return &FilteredSource{store: store, filter: filter}
}

func (f *FilteredSource) accepts(item *domain.Item) bool {
	if item == nil || item.Hidden {
		return false
	}
	return f.filter == nil || f.filter(item)
}

func (f *FilteredSource) All() []*domain.Item {
	var out []*domain.Item
	for _, it := range f.store.Items() {
		if f.accepts(it) {
			out = append(out, it)
		}
	}
	return out
}

func (f *FilteredSource) First() *domain.Item {
	for _, it := range f.store.Items() {
		if f.accepts(it) {
			return it
		}
	}
	return nil
}

func (f *FilteredSource) Last() *domain.Item {
	items := f.store.Items()
	for i := len(items) - 1; i >= 0; i-- {
		if f.accepts(items[i]) {
			return items[i]
		}
	}
	return nil
}

// Next returns the next selectable sibling after item, skipping items outside
// the filter. It returns nil at the end of the list or when item is unknown.
func (f *FilteredSource) Next(item *domain.Item) *domain.Item {
	items := f.store.Items()
	i := domain.IndexOf(items, item)
	if i < 0 {
		return nil
	}
	for _, it := range items[i+1:] {
		if f.accepts(it) {
			return it
		}
	}
	return nil
}

// Prev is the mirror of Next
func (f *FilteredSource) Prev(item *domain.Item) *domain.Item {
	items := f.store.Items()
	i := domain.IndexOf(items, item)
	for j := i - 1; j >= 0; j-- {
		if f.accepts(items[j]) {
			return items[j]
		}
	}
	return nil
}

func (f *FilteredSource) IndexOf(item *domain.Item) int {
	if !f.accepts(item) {
		return -1
	}
	return domain.IndexOf(f.All(), item)
}

func (f *FilteredSource) Contains(item *domain.Item) bool {
	return f.IndexOf(item) >= 0
}
