package sorting

import (
	"log"

	"listgrip/internal/domain"
	"listgrip/internal/eventbus"
	"listgrip/internal/logic"
)

// Service keeps a list ordered by the current sort mode
type Service struct {
	state *State
	bus   eventbus.EventBus
	store logic.SortableStore

	// input position of every item seen so far
	seq map[*domain.Item]int
}

// NewService creates a sorting service over store. The order the store has
// now is the input order.
func NewService(bus eventbus.EventBus, store logic.SortableStore) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	s := &Service{
		state: &State{CurrentMode: logic.SortByInput},
		bus:   bus,
		store: store,
		seq:   make(map[*domain.Item]int),
	}
	s.track()
	return s
}

// GetCurrentMode returns the current sort mode
func (s *Service) GetCurrentMode() logic.SortMode {
	return s.state.CurrentMode
}

// SetMode sets the sort mode and reorders the list
func (s *Service) SetMode(mode logic.SortMode) {
	if mode == s.state.CurrentMode {
		return
	}

	oldMode := s.state.CurrentMode
	s.state.CurrentMode = mode
	s.Apply()

	log.Printf("Sort mode changed from %s to %s", oldMode, mode)
	s.bus.Publish(SortModeChangedEvent{
		OldMode: oldMode,
		NewMode: mode,
	})
}

// NextMode cycles to the next sort mode
func (s *Service) NextMode() {
	currentIndex := 0
	for i, mode := range logic.SortModes {
		if mode == s.state.CurrentMode {
			currentIndex = i
			break
		}
	}

	nextIndex := (currentIndex + 1) % len(logic.SortModes)
	s.SetMode(logic.SortModes[nextIndex])
}

// Apply reorders the store by the current mode. Items added since the last
// call keep their place in the input order after the known ones.
func (s *Service) Apply() {
	s.track()
	s.store.SortFunc(logic.ItemComparer(s.state.CurrentMode, func(it *domain.Item) int {
		return s.seq[it]
	}))
}

// GetModeString returns a string representation of the current mode
func (s *Service) GetModeString() string {
	return s.state.CurrentMode.String()
}

func (s *Service) track() {
	for _, it := range s.store.Items() {
		if _, ok := s.seq[it]; !ok {
			s.seq[it] = len(s.seq)
		}
	}
}
