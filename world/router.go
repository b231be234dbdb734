package world

import (
	"github.com/lixenwraith/nazarene/event"
)

// EventHandler processes specific event types
// Handlers are invoked synchronously while the arena drains its queue
type EventHandler interface {
	// HandleEvent processes a single event
	HandleEvent(a *Arena, ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	// An empty slice subscribes to every type
	EventTypes() []event.EventType
}

// Router dispatches drained events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch, so handlers may mutate the arena
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - Events pushed by a handler are dispatched in the same drain
type Router struct {
	handlers map[event.EventType][]EventHandler
	all      []EventHandler
	queue    *event.Queue
}

func NewRouter(queue *event.Queue) *Router {
	return &Router{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(h EventHandler) {
	types := h.EventTypes()
	if len(types) == 0 {
		r.all = append(r.all, h)
		return
	}
	for _, t := range types {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// DispatchAll consumes pending events in FIFO order until the queue is empty
func (r *Router) DispatchAll(a *Arena) int {
	return r.queue.Drain(func(ev event.GameEvent) {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(a, ev)
		}
		for _, h := range r.all {
			h.HandleEvent(a, ev)
		}
	})
}

// HandlerCount returns the number of handlers registered for t, catch-all handlers excluded
func (r *Router) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
