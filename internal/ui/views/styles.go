package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title    lipgloss.Style
	Dim      lipgloss.Style
	Status   lipgloss.Style
	Filter   lipgloss.Style
	Counter  lipgloss.Style
	Help     lipgloss.Style
	Main     lipgloss.Style
	Marker   lipgloss.Style
	Label    lipgloss.Style
	Focus    lipgloss.Style
	Selected lipgloss.Style
	Disabled lipgloss.Style
	Match    lipgloss.Style

	// Classes styles rows by the class names the selection controller is
	// configured with. Unknown names fall back to the role styles above.
	Classes map[string]lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	s := &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Filter:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Counter: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Help:    lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(PaddingTop, PaddingLeft).
			MaxHeight(100), // Will be dynamically adjusted
		Marker:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Label:    lipgloss.NewStyle(),
		Focus:    lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Disabled: lipgloss.NewStyle().Faint(true),
		Match:    lipgloss.NewStyle().Underline(true),
	}
	s.Classes = map[string]lipgloss.Style{
		"focused":  s.Focus,
		"selected": s.Selected,
		"disabled": s.Disabled,
	}
	return s
}

// ForClass returns the style registered for a class name, or role
func (s *Styles) ForClass(class string, role lipgloss.Style) lipgloss.Style {
	if st, ok := s.Classes[class]; ok {
		return st
	}
	return role
}
