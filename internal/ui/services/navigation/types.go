package navigation

// State holds all viewport-related state
type State struct {
	Offset int // index of the first visible row
	Height int // number of visible rows
	Total  int // number of rows in the list
}
