package services

import (
	"sync"

	"github.com/custodia-labs/handbook/internal/core/domain"
)

// KeyHandler handles a key action and reports whether it consumed it.
type KeyHandler func(domain.KeyAction) bool

// Dispatcher routes key actions to registered listeners.
// Listeners are scoped: Listen returns a release func that must be called
// when the listener's owner is torn down.
type Dispatcher struct {
	mu       sync.Mutex
	next     int
	handlers map[int]KeyHandler
	order    []int
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[int]KeyHandler)}
}

// Listen registers h and returns a func that unregisters it.
// The release func is safe to call more than once.
func (d *Dispatcher) Listen(h KeyHandler) (release func()) {
	d.mu.Lock()
	id := d.next
	d.next++
	d.handlers[id] = h
	d.order = append(d.order, id)
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			delete(d.handlers, id)
			for i, v := range d.order {
				if v == id {
					d.order = append(d.order[:i], d.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Dispatch delivers action to listeners in registration order until one
// consumes it. It reports whether any listener did.
func (d *Dispatcher) Dispatch(action domain.KeyAction) bool {
	d.mu.Lock()
	handlers := make([]KeyHandler, 0, len(d.order))
	for _, id := range d.order {
		handlers = append(handlers, d.handlers[id])
	}
	d.mu.Unlock()

	for _, h := range handlers {
		if h(action) {
			return true
		}
	}
	return false
}

// Listeners returns the number of registered listeners.
func (d *Dispatcher) Listeners() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.handlers)
}
