package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Rows           []Row // the rows inside the viewport
	VisibleItems   int   // items that pass the filter
	TotalItems     int
	SelectedCount  int
	FilterQuery    string
	SortMode       string // empty for input order
	SearchQuery    string
	SearchMatch    int // 1-based number of the current match
	SearchMatches  int
	InputPrompt    string // set while a text input is active
	TextInput      string
	StatusMessage  string
	Disabled       bool
	ShowCounter    bool
	ShowHelpFooter bool
	Classes        ClassNames
	HelpModel      help.Model
	Keys           KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles    *Styles
	rowRender *RowRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:    styles,
		rowRender: NewRowRenderer(styles),
	}
}

// Styles returns the styles used for rendering
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	// Use a default width if state.Width is not set
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	availableWidth := termWidth - 2*PaddingLeft

	content.WriteString(r.renderTitleLine(state, availableWidth))
	content.WriteString("\n\n")

	// Input or status line
	switch {
	case state.InputPrompt != "":
		content.WriteString(r.styles.Filter.Render(state.InputPrompt))
		content.WriteString(state.TextInput)
	case state.StatusMessage != "":
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
	}
	content.WriteString("\n")

	// Main content
	switch {
	case state.TotalItems == 0:
		content.WriteString(r.styles.Dim.Render("No items."))
	case len(state.Rows) == 0:
		content.WriteString(r.styles.Dim.Render("No items match the filter."))
	default:
		content.WriteString(r.renderList(state, availableWidth))
	}

	if state.ShowHelpFooter {
		// Count current lines
		currentLines := strings.Count(content.String(), "\n") + 1

		availableLines := state.Height - 2*PaddingTop
		if availableLines <= 0 {
			availableLines = 22 // Default terminal height minus padding
		}

		// Footer takes the help line
		paddingNeeded := availableLines - currentLines - 1
		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}

		helpModel := state.HelpModel
		helpModel.Width = availableWidth
		content.WriteString("\n")
		content.WriteString(helpModel.View(state.Keys))
	}

	// Apply main container style
	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderTitleLine renders the logo with the counter and filter right aligned
func (r *Renderer) renderTitleLine(state ViewState, availableWidth int) string {
	logo := r.styles.Title.Render("listgrip")

	var right []string
	if state.Disabled {
		right = append(right, r.styles.Dim.Render("[disabled]"))
	}
	if state.FilterQuery != "" {
		right = append(right, r.styles.Filter.Render(fmt.Sprintf("[Filter: %s, %d shown]", state.FilterQuery, state.VisibleItems)))
	}
	if state.SortMode != "" {
		right = append(right, r.styles.Dim.Render(fmt.Sprintf("[Sort: %s]", state.SortMode)))
	}
	if state.SearchQuery != "" {
		right = append(right, r.styles.Filter.Render(fmt.Sprintf("[Search: %s, %d/%d]", state.SearchQuery, state.SearchMatch, state.SearchMatches)))
	}
	if state.ShowCounter {
		right = append(right, r.styles.Counter.Render(fmt.Sprintf("%d/%d selected", state.SelectedCount, state.TotalItems)))
	}
	if len(right) == 0 {
		return logo
	}

	rightContent := strings.Join(right, "  ")
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	// If not enough space, just show with minimal spacing
	return logo + "  " + rightContent
}

// renderList renders the rows inside the viewport
func (r *Renderer) renderList(state ViewState, width int) string {
	lines := make([]string, 0, len(state.Rows))
	for _, row := range state.Rows {
		lines = append(lines, r.rowRender.RenderRow(row, state.Classes, state.Disabled, width))
	}
	return strings.Join(lines, "\n")
}
