package search

import (
	"listgrip/internal/domain"
)

// State holds search state
type State struct {
	Query        string
	Matches      []int // positions of matching items in the visible list
	CurrentMatch int   // Current match index in Matches slice
}

// Event types
const (
	EventSearchCompleted domain.EventType = "search:completed"
	EventSearchCleared   domain.EventType = "search:cleared"
	EventSearchNavigated domain.EventType = "search:navigated"
)

type SearchCompletedEvent struct {
	Query      string
	MatchCount int
	FirstMatch int // position of the first match (-1 if none)
}

func (e SearchCompletedEvent) Type() domain.EventType { return EventSearchCompleted }

type SearchClearedEvent struct{}

func (e SearchClearedEvent) Type() domain.EventType { return EventSearchCleared }

type SearchNavigatedEvent struct {
	OldIndex int
	NewIndex int
}

func (e SearchNavigatedEvent) Type() domain.EventType { return EventSearchNavigated }
