// Package dispatch provides a synchronous in-process dispatcher for domain
// events. Producers publish events after committing state changes and
// subscribers react to them, which keeps cross-domain fan-out (results,
// incidents, alerts into notifications) out of the producing usecases.
package dispatch

import (
	"context"
	"sync"

	pkgLog "ciblsport-api/pkg/log"
)

// EventType identifies a domain event.
type EventType string

const (
	EventTypeResultRecorded   EventType = "result.recorded"
	EventTypeEventCompleted   EventType = "event.completed"
	EventTypeIncidentReported EventType = "incident.reported"
	EventTypeAlertCreated     EventType = "alert.created"
)

// Event is a domain event carried through the dispatcher.
// Payload holds the domain object the event is about.
type Event struct {
	Type    EventType
	Payload interface{}
}

// Handler consumes domain events. Handlers must not publish back into the
// dispatcher from within HandleEvent.
type Handler interface {
	HandleEvent(ctx context.Context, evt Event)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, evt Event)

// HandleEvent calls f(ctx, evt).
func (f HandlerFunc) HandleEvent(ctx context.Context, evt Event) {
	f(ctx, evt)
}

// Dispatcher fans domain events out to subscribers. Delivery is synchronous
// and in subscription order, so state changes driven by an event are visible
// once the publishing operation returns.
type Dispatcher struct {
	l pkgLog.Logger

	mu       sync.RWMutex
	handlers []Handler
}

// New creates a Dispatcher.
func New(l pkgLog.Logger) *Dispatcher {
	return &Dispatcher{l: l}
}

// Subscribe registers a handler for all subsequent events.
func (d *Dispatcher) Subscribe(h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, h)
}

// Publish delivers evt to every subscribed handler in order.
func (d *Dispatcher) Publish(ctx context.Context, evt Event) {
	d.mu.RLock()
	handlers := make([]Handler, len(d.handlers))
	copy(handlers, d.handlers)
	d.mu.RUnlock()

	if d.l != nil {
		d.l.Debugf(ctx, "internal.dispatch.Publish: %s to %d handlers", evt.Type, len(handlers))
	}

	for _, h := range handlers {
		h.HandleEvent(ctx, evt)
	}
}
