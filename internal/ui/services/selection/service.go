package selection

import (
	"listgrip/internal/domain"
)

// Service keeps the selected markers of a list and the selected counter
type Service struct {
	state *State
}

// NewService creates a new selection service
func NewService() *Service {
	return &Service{
		state: &State{
			Marked: make(map[*domain.Item]struct{}),
		},
	}
}

// IsSelected checks if an item is selected
func (s *Service) IsSelected(item *domain.Item) bool {
	if item == nil {
		return false
	}
	_, ok := s.state.Marked[item]
	return ok
}

// IsSelectedEach reports the state of every item, in input order
func (s *Service) IsSelectedEach(items []*domain.Item) []bool {
	out := make([]bool, len(items))
	for i, it := range items {
		out[i] = s.IsSelected(it)
	}
	return out
}

// Mark sets the selected marker of an item. The counter moves only when the
// marker actually changes; the return value says whether it did.
func (s *Service) Mark(item *domain.Item, selected bool) bool {
	if item == nil || s.IsSelected(item) == selected {
		return false
	}
	if selected {
		s.state.Marked[item] = struct{}{}
		s.state.Count++
	} else {
		delete(s.state.Marked, item)
		s.state.Count--
	}
	return true
}

// Count returns the number of selected items
func (s *Service) Count() int {
	return s.state.Count
}

// HasSelection returns true if anything is selected
func (s *Service) HasSelection() bool {
	return s.state.Count > 0
}

// Selected returns the selected items among items, in their order
func (s *Service) Selected(items []*domain.Item) []*domain.Item {
	if s.state.Count == 0 {
		return nil
	}
	selected := make([]*domain.Item, 0, s.state.Count)
	for _, it := range items {
		if s.IsSelected(it) {
			selected = append(selected, it)
		}
	}
	return selected
}

// Resync drops markers of items that are no longer in the list and
// recomputes the counter from the markers
func (s *Service) Resync(contains func(*domain.Item) bool) {
	for it := range s.state.Marked {
		if !contains(it) {
			delete(s.state.Marked, it)
		}
	}
	s.state.Count = len(s.state.Marked)
}

// Clear unselects everything
func (s *Service) Clear() {
	s.state.Marked = make(map[*domain.Item]struct{})
	s.state.Count = 0
}
