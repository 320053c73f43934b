package eventbus

import (
	"listgrip/internal/domain"
	"log"
	"runtime/debug"
	"sync"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Verdict is what a handler answers to a notification
type Verdict int

const (
	// Continue lets the transaction proceed
	Continue Verdict = iota
	// Cancel vetoes the transaction; the controller rolls it back
	Cancel
)

func (v Verdict) String() string {
	if v == Cancel {
		return "cancel"
	}
	return "continue"
}

// Merge returns Cancel if either verdict is Cancel
func (v Verdict) Merge(other Verdict) Verdict {
	if v == Cancel || other == Cancel {
		return Cancel
	}
	return Continue
}

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent) Verdict

// Observe adapts a handler that never vetoes
func Observe(fn func(DomainEvent)) EventHandler {
	return func(e DomainEvent) Verdict {
		fn(e)
		return Continue
	}
}

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent) Verdict
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus.
// Handlers run synchronously on the publishing goroutine, in subscription order.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish delivers an event to every subscriber and merges their verdicts.
// Every subscriber sees the event even after one of them cancelled.
func (b *bus) Publish(event DomainEvent) Verdict {
	// Skip logging for high-frequency events
	switch event.Type() {
	case domain.EventBefore, domain.EventSelect, domain.EventUnselect, domain.EventViewportMoved:
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	// Make a copy to avoid holding lock during handler execution
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	verdict := Continue
	for _, sub := range subs {
		verdict = verdict.Merge(b.call(sub.handler, event))
	}
	return verdict
}

// call runs one handler; a panicking handler is logged and counts as Continue
func (b *bus) call(h EventHandler, event DomainEvent) (v Verdict) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\n%s", event.Type(), r, debug.Stack())
			v = Continue
		}
	}()
	return h(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (NullBus) Publish(event DomainEvent) Verdict                          { return Continue }
func (NullBus) Subscribe(eventType EventType, handler EventHandler) func() { return func() {} }
