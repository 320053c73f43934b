package domain

// EventType represents the type of domain event
type EventType string

// Lifecycle notifications, in the order a transaction emits them
const (
	EventBefore      EventType = "before"
	EventSelect      EventType = "select"
	EventUnselect    EventType = "unselect"
	EventUnselectAll EventType = "unselectAll"
	EventFocusLost   EventType = "focusLost"
	EventStop        EventType = "stop"
)

// Structural notifications, outside any transaction
const (
	EventCreate  EventType = "create"
	EventDestroy EventType = "destroy"
)

// Application events
const (
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
	EventViewportMoved EventType = "ViewportMoved"
)

// TransactionEvents lists every event type a transaction can emit
var TransactionEvents = []EventType{
	EventBefore, EventSelect, EventUnselect, EventUnselectAll, EventFocusLost, EventStop,
}

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// UI is the payload shared by the transaction notifications.
// Input holds the raw input event that started the transaction, nil for API calls.
type UI struct {
	Target *Item
	Focus  *Item
	Items  []*Item
	Input  any
}

// BeforeEvent is emitted before any change is applied. Items holds the
// candidate items the transaction is about to flip.
type BeforeEvent struct {
	UI
}

func (e BeforeEvent) Type() EventType { return EventBefore }

// SelectEvent is emitted after a step selected items
type SelectEvent struct {
	UI
}

func (e SelectEvent) Type() EventType { return EventSelect }

// UnselectEvent is emitted after a step unselected items
type UnselectEvent struct {
	UI
}

func (e UnselectEvent) Type() EventType { return EventUnselect }

// UnselectAllEvent is emitted once when the selection became empty
type UnselectAllEvent struct {
	UI
}

func (e UnselectAllEvent) Type() EventType { return EventUnselectAll }

// FocusLostEvent is emitted when the focus is cleared by a background interaction
type FocusLostEvent struct {
	UI
}

func (e FocusLostEvent) Type() EventType { return EventFocusLost }

// StopEvent ends every transaction. Items is the net list of changed items
// and is empty when the transaction was cancelled.
type StopEvent struct {
	UI
	Cancelled bool
}

func (e StopEvent) Type() EventType { return EventStop }

// CreateEvent is emitted once when a controller attaches to a list
type CreateEvent struct {
	ListID string
}

func (e CreateEvent) Type() EventType { return EventCreate }

// DestroyEvent is emitted once when a controller detaches from its list
type DestroyEvent struct {
	ListID string
}

func (e DestroyEvent) Type() EventType { return EventDestroy }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path  string
	Items int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ViewportMovedEvent is emitted when a scroller changes its offset
type ViewportMovedEvent struct {
	Offset int
	Height int
}

func (e ViewportMovedEvent) Type() EventType { return EventViewportMoved }
