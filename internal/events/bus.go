package events

import "sync"

// Handler consumes a published event. Handlers run synchronously on the
// publisher's goroutine; slow consumers should hand off internally.
type Handler func(Event)

// Bus is a synchronous in-process fan-out bus.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for all subsequently published events.
func (b *Bus) Subscribe(h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Publish delivers the event to every registered handler in
// subscription order.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}

// Recorder is a test subscriber that captures published events.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder creates a Recorder and subscribes it to the bus.
func NewRecorder(bus *Bus) *Recorder {
	r := &Recorder{}
	bus.Subscribe(r.record)
	return r
}

func (r *Recorder) record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of all captured events in publish order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// CountKind returns the number of captured events of the given kind.
func (r *Recorder) CountKind(kind string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.EventKind() == kind {
			n++
		}
	}
	return n
}

// LastOfKind returns the most recent captured event of the given kind,
// or nil when none was published.
func (r *Recorder) LastOfKind(kind string) Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].EventKind() == kind {
			return r.events[i]
		}
	}
	return nil
}
