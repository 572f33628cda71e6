package common

import (
	"sync"

	"github.com/google/uuid"
)

type EventType string

const (
	EventAppReady       EventType = "app.ready"
	EventAppShutdown    EventType = "app.shutdown"
	EventCommandInvoked EventType = "command.invoked"
	EventCommandFailed  EventType = "command.failed"
)

type Event struct {
	Type EventType      `json:"type"`
	Data map[string]any `json:"data,omitempty"`
}

// EventBus fans host lifecycle and command events out to in-process
// handlers and to subscriber channels. Emit never blocks: subscribers
// that fall behind lose events rather than stalling the host.
type EventBus struct {
	handlers    map[EventType][]func(Event)
	subscribers map[string]chan Event
	mu          sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers:    make(map[EventType][]func(Event)),
		subscribers: make(map[string]chan Event),
	}
}

func (eb *EventBus) On(t EventType, fn func(Event)) {
	eb.mu.Lock()
	eb.handlers[t] = append(eb.handlers[t], fn)
	eb.mu.Unlock()
}

// Subscribe registers a channel that receives every event until
// Unsubscribe is called with the returned id.
func (eb *EventBus) Subscribe() (string, <-chan Event) {
	id := uuid.New().String()
	ch := make(chan Event, 64)

	eb.mu.Lock()
	eb.subscribers[id] = ch
	eb.mu.Unlock()

	return id, ch
}

func (eb *EventBus) Unsubscribe(id string) {
	eb.mu.Lock()
	ch, ok := eb.subscribers[id]
	if ok {
		delete(eb.subscribers, id)
	}
	eb.mu.Unlock()

	if ok {
		close(ch)
	}
}

func (eb *EventBus) Emit(e Event) {
	eb.dispatch(e)
}

func (eb *EventBus) dispatch(e Event) {
	eb.mu.RLock()
	handlers := eb.handlers[e.Type]
	subscribers := make([]chan Event, 0, len(eb.subscribers))
	for _, ch := range eb.subscribers {
		subscribers = append(subscribers, ch)
	}
	eb.mu.RUnlock()

	for _, fn := range handlers {
		fn(e)
	}
	for _, ch := range subscribers {
		select {
		case ch <- e:
		default:
		}
	}
}
