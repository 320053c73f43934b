package views

// Screen layout shared by the renderer and the mouse hit test
const (
	PaddingTop  = 1
	PaddingLeft = 2

	// HeaderLines are the title line, a blank line and the input/status line
	HeaderLines = 3
	// FooterLines are a blank line and the help footer
	FooterLines = 2

	// MarkerWidth is the width of the "[x] " selection marker
	MarkerWidth = 4
)

// Zones of an item row, usable as the selection handle
const (
	ZoneMarker = "marker"
	ZoneLabel  = "label"
)

// ListTop is the screen line of the first list row
const ListTop = PaddingTop + HeaderLines

// ReservedLines is the number of screen lines that are not list rows
const ReservedLines = 2*PaddingTop + HeaderLines + FooterLines

// RowAt maps a screen line to a viewport row, or -1 above the list
func RowAt(y int) int {
	if y < ListTop {
		return -1
	}
	return y - ListTop
}

// ZonesAt returns the zones of an item row under screen column x
func ZonesAt(x int) []string {
	x -= PaddingLeft
	switch {
	case x < 0:
		return nil
	case x < MarkerWidth:
		return []string{ZoneMarker}
	default:
		return []string{ZoneLabel}
	}
}
