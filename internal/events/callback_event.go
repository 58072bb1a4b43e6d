package events

import (
	"sync"
)

type listener[T any] struct {
	id       uint64
	callback func(T)
}

// CallbackEvent provides pub/sub behavior with type-safe callbacks.
// Listeners are called in registration order, so a listener that writes
// report lines sees them in the order they were published.
type CallbackEvent[T any] struct {
	mu        sync.RWMutex
	listeners []listener[T]
	nextID    uint64
}

// NewCallbackEvent creates a new CallbackEvent instance
func NewCallbackEvent[T any]() *CallbackEvent[T] {
	return &CallbackEvent[T]{}
}

// Listen registers a callback function to be called when Notify is invoked
// Returns a deregistration function that can be called to remove the listener
func (e *CallbackEvent[T]) Listen(callback func(T)) func() {
	if callback == nil {
		panic("callback cannot be nil")
	}

	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id: id, callback: callback})
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, l := range e.listeners {
			if l.id == id {
				e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}

// Notify calls all registered listener callbacks with the provided value
// This operation is thread-safe
func (e *CallbackEvent[T]) Notify(value T) {
	e.mu.RLock()
	// Copy so callbacks run outside the lock and may deregister themselves
	listenersCopy := make([]listener[T], len(e.listeners))
	copy(listenersCopy, e.listeners)
	e.mu.RUnlock()

	for _, l := range listenersCopy {
		l.callback(value)
	}
}

// ListenerCount returns the current number of registered listeners
func (e *CallbackEvent[T]) ListenerCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners)
}
