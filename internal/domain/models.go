package domain

// Item is one selectable element of a list.
// Items are compared by pointer identity; the controller never creates or
// destroys them, it only reads and classifies them.
type Item struct {
	ID     string // optional external identifier
	Label  string // text shown by the host
	Hidden bool   // set by the host when the item is not currently visible
}

// NewItem creates an item with the given id and label
func NewItem(id, label string) *Item {
	return &Item{ID: id, Label: label}
}

// IndexOf returns the position of item in items, or -1
func IndexOf(items []*Item, item *Item) int {
	if item == nil {
		return -1
	}
	for i, it := range items {
		if it == item {
			return i
		}
	}
	return -1
}

// Labels returns the labels of the given items in order
func Labels(items []*Item) []string {
	labels := make([]string, 0, len(items))
	for _, it := range items {
		labels = append(labels, it.Label)
	}
	return labels
}
