package input

import (
	"listgrip/internal/controller"
	"listgrip/internal/ui/services/search"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Controller *controller.Controller
	Search     *search.Service
}

// HasFocus reports whether the list has a focused item
func (c *ModelContext) HasFocus() bool {
	return c.Controller.Focused() != nil
}

// HasSelection returns true if any items are selected
func (c *ModelContext) HasSelection() bool {
	return c.Controller.SelectedCount() > 0
}

// SelectedCount returns the number of selected items
func (c *ModelContext) SelectedCount() int {
	return c.Controller.SelectedCount()
}

// FilterQuery returns the active filter text
func (c *ModelContext) FilterQuery() string {
	q, _ := c.Controller.Option(controller.OptFilter)
	s, _ := q.(string)
	return s
}

// Enabled reports whether the list takes input
func (c *ModelContext) Enabled() bool {
	return c.Controller.IsEnabled()
}

// Searching reports whether a search query is active
func (c *ModelContext) Searching() bool {
	return c.Search != nil && c.Search.GetQuery() != ""
}
