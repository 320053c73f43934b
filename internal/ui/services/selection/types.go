package selection

import "listgrip/internal/domain"

// State holds selection state
type State struct {
	Marked map[*domain.Item]struct{}
	Count  int // kept in lockstep with Marked
}
