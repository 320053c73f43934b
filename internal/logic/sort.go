package logic

import (
	"fmt"
	"strings"

	"listgrip/internal/domain"
)

// SortMode represents different sort modes
type SortMode int

const (
	SortByInput SortMode = iota // the order the items were given in
	SortByLabel
	SortByID
)

// SortModes lists the modes in cycling order
var SortModes = []SortMode{SortByInput, SortByLabel, SortByID}

func (m SortMode) String() string {
	switch m {
	case SortByLabel:
		return "label"
	case SortByID:
		return "id"
	default:
		return "input"
	}
}

// ParseSortMode reads a mode name; empty means input order
func ParseSortMode(name string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "input":
		return SortByInput, nil
	case "label", "name":
		return SortByLabel, nil
	case "id":
		return SortByID, nil
	}
	return SortByInput, fmt.Errorf("unknown sort mode %q", name)
}

// ItemComparer compares items for a sort mode. seq gives the input position
// of an item and breaks ties.
func ItemComparer(mode SortMode, seq func(*domain.Item) int) func(a, b *domain.Item) int {
	byInput := func(a, b *domain.Item) int { return seq(a) - seq(b) }

	switch mode {
	case SortByLabel:
		return func(a, b *domain.Item) int {
			if c := strings.Compare(strings.ToLower(a.Label), strings.ToLower(b.Label)); c != 0 {
				return c
			}
			return byInput(a, b)
		}
	case SortByID:
		return func(a, b *domain.Item) int {
			// items without an id sort last
			switch {
			case a.ID == "" && b.ID != "":
				return 1
			case a.ID != "" && b.ID == "":
				return -1
			}
			if c := strings.Compare(a.ID, b.ID); c != 0 {
				return c
			}
			return byInput(a, b)
		}
	default:
		return byInput
	}
}
