package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Row is one visible list item
type Row struct {
	ID       string
	Label    string
	Focused  bool
	Selected bool
	Match    bool // matches the active search
}

// ClassNames are the class names the rows are styled by
type ClassNames struct {
	List     string
	Focus    string
	Selected string
	Disabled string
}

// RowRenderer handles rendering of list rows
type RowRenderer struct {
	styles *Styles
}

// NewRowRenderer creates a new row renderer
func NewRowRenderer(styles *Styles) *RowRenderer {
	return &RowRenderer{styles: styles}
}

// RenderRow renders a row as a marker zone followed by the label, cut to width
func (r *RowRenderer) RenderRow(row Row, classes ClassNames, disabled bool, width int) string {
	labelStyle := r.styles.ForClass(classes.List, r.styles.Label)
	markerStyle := r.styles.Marker
	if row.Match {
		labelStyle = r.styles.Match.Inherit(labelStyle)
	}
	if row.Selected {
		sel := r.styles.ForClass(classes.Selected, r.styles.Selected)
		labelStyle = sel.Inherit(labelStyle)
		markerStyle = sel.Inherit(markerStyle)
	}
	if row.Focused {
		focus := r.styles.ForClass(classes.Focus, r.styles.Focus)
		labelStyle = focus.Inherit(labelStyle)
		markerStyle = focus.Inherit(markerStyle)
	}
	if disabled {
		dis := r.styles.ForClass(classes.Disabled, r.styles.Disabled)
		labelStyle = dis.Inherit(labelStyle)
		markerStyle = dis.Inherit(markerStyle)
	}

	marker := "[ ] "
	if row.Selected {
		marker = "[x] "
	}

	label := row.Label
	if width > MarkerWidth {
		label = ansi.Truncate(label, width-MarkerWidth, "…")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, markerStyle.Render(marker), labelStyle.Render(label))
}
