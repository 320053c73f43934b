package navigation

import (
	"listgrip/internal/domain"
	"listgrip/internal/eventbus"
)

// Service keeps a row viewport over a list and scrolls it so a given row
// stays visible. It is the auto-scroll target of the selection controller.
type Service struct {
	state   *State
	bus     eventbus.EventBus
	totalFn func() int // Function to get the current row count
}

// NewService creates a new navigation service
func NewService(bus eventbus.EventBus) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Service{
		state: &State{
			Height: 20, // Default, will be updated
		},
		bus: bus,
	}
}

// SetTotalFunction sets the function to query the row count
func (s *Service) SetTotalFunction(fn func() int) {
	s.totalFn = fn
}

// Offset returns current viewport offset
func (s *Service) Offset() int {
	return s.state.Offset
}

// Height returns current viewport height
func (s *Service) Height() int {
	return s.state.Height
}

// SetViewportHeight updates viewport height, reserving rows for chrome
func (s *Service) SetViewportHeight(height, reserved int) {
	effectiveHeight := height - reserved
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}
	s.state.Height = effectiveHeight
	s.setOffset(s.state.Offset)
}

// ScrollTo moves the viewport the minimum amount that makes index visible
func (s *Service) ScrollTo(index int) {
	if index < 0 {
		return
	}
	if index < s.state.Offset {
		s.setOffset(index)
	} else if index >= s.state.Offset+s.state.Height {
		s.setOffset(index - s.state.Height + 1)
	}
}

// ScrollBy moves the viewport by delta rows
func (s *Service) ScrollBy(delta int) {
	s.setOffset(s.state.Offset + delta)
}

// Visible reports whether a row is inside the viewport
func (s *Service) Visible(index int) bool {
	return index >= s.state.Offset && index < s.state.Offset+s.state.Height
}

// RowAt maps a viewport row to a list index, or -1
func (s *Service) RowAt(row int) int {
	if row < 0 || row >= s.state.Height {
		return -1
	}
	index := s.state.Offset + row
	if index >= s.total() {
		return -1
	}
	return index
}

func (s *Service) total() int {
	if s.totalFn != nil {
		s.state.Total = s.totalFn()
	}
	return s.state.Total
}

func (s *Service) setOffset(offset int) {
	maxOffset := s.total() - s.state.Height
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	if offset == s.state.Offset {
		return
	}
	s.state.Offset = offset
	s.bus.Publish(domain.ViewportMovedEvent{
		Offset: s.state.Offset,
		Height: s.state.Height,
	})
}
