package sorting

import (
	"listgrip/internal/domain"
	"listgrip/internal/logic"
)

// State holds sorting state
type State struct {
	CurrentMode logic.SortMode
}

// EventSortModeChanged is published after the list was reordered
const EventSortModeChanged domain.EventType = "sort:changed"

type SortModeChangedEvent struct {
	OldMode logic.SortMode
	NewMode logic.SortMode
}

func (e SortModeChangedEvent) Type() domain.EventType { return EventSortModeChanged }
