package search

import (
	"log"
	"slices"

	"listgrip/internal/domain"
	"listgrip/internal/eventbus"
	"listgrip/internal/logic"
)

// Service finds the items of a list matching a query and walks through them
type Service struct {
	state    *State
	bus      eventbus.EventBus
	sourceFn func() []*domain.Item // the visible items, in list order
}

// NewService creates a search over the items sourceFn returns
func NewService(bus eventbus.EventBus, sourceFn func() []*domain.Item) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Service{
		state:    &State{},
		bus:      bus,
		sourceFn: sourceFn,
	}
}

// StartSearch runs a new search. An empty query clears it.
func (s *Service) StartSearch(query string) {
	if query == s.state.Query {
		return // Same search
	}

	s.state.Query = query
	if query == "" {
		s.clearSearch()
		return
	}
	s.performSearch()
}

// Refresh reruns the current query after the list changed
func (s *Service) Refresh() {
	if s.state.Query == "" {
		return
	}
	s.performSearch()
}

// ClearSearch clears the current search
func (s *Service) ClearSearch() {
	if s.state.Query == "" && len(s.state.Matches) == 0 {
		return
	}
	s.clearSearch()
}

// Current returns the item of the current match, or nil
func (s *Service) Current() *domain.Item {
	return s.itemAt(s.GetCurrentMatchIndex())
}

// Next moves to the next match and returns its item, or nil when nothing
// matches
func (s *Service) Next() *domain.Item {
	return s.step(1)
}

// Previous moves to the previous match and returns its item
func (s *Service) Previous() *domain.Item {
	return s.step(-1)
}

func (s *Service) step(delta int) *domain.Item {
	n := len(s.state.Matches)
	if n == 0 {
		return nil
	}

	oldMatch := s.state.CurrentMatch
	s.state.CurrentMatch = (s.state.CurrentMatch + delta + n) % n

	s.bus.Publish(SearchNavigatedEvent{
		OldIndex: s.state.Matches[oldMatch],
		NewIndex: s.state.Matches[s.state.CurrentMatch],
	})
	return s.Current()
}

// GetQuery returns the current search query
func (s *Service) GetQuery() string {
	return s.state.Query
}

// GetMatchCount returns the number of matches
func (s *Service) GetMatchCount() int {
	return len(s.state.Matches)
}

// GetCurrentMatchIndex returns the list position of the current match, or -1
func (s *Service) GetCurrentMatchIndex() int {
	if len(s.state.Matches) == 0 {
		return -1
	}
	return s.state.Matches[s.state.CurrentMatch]
}

// GetCurrentMatchNumber returns the 1-based number of the current match
func (s *Service) GetCurrentMatchNumber() int {
	if len(s.state.Matches) == 0 {
		return 0
	}
	return s.state.CurrentMatch + 1
}

// IsMatch checks if a list position is a search match
func (s *Service) IsMatch(index int) bool {
	for _, match := range s.state.Matches {
		if match == index {
			return true
		}
	}
	return false
}

func (s *Service) performSearch() {
	oldMatches := s.state.Matches

	s.state.Matches = logic.RankMatches(s.state.Query, s.sourceFn())

	if !slices.Equal(oldMatches, s.state.Matches) || s.state.CurrentMatch >= len(s.state.Matches) {
		s.state.CurrentMatch = 0
	}

	log.Printf("Search completed for '%s': found %d matches", s.state.Query, len(s.state.Matches))

	firstMatch := -1
	if len(s.state.Matches) > 0 {
		firstMatch = s.state.Matches[0]
	}
	s.bus.Publish(SearchCompletedEvent{
		Query:      s.state.Query,
		MatchCount: len(s.state.Matches),
		FirstMatch: firstMatch,
	})
}

func (s *Service) clearSearch() {
	s.state.Query = ""
	s.state.Matches = nil
	s.state.CurrentMatch = 0

	s.bus.Publish(SearchClearedEvent{})
}

func (s *Service) itemAt(index int) *domain.Item {
	items := s.sourceFn()
	if index < 0 || index >= len(items) {
		return nil
	}
	return items[index]
}
