// Package event provides an ordered in-process multicast.
package event

import "sync"

// Emitter delivers every emitted value to all current subscribers in registration order.
// The zero value is ready to use.
type Emitter[T any] struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// Subscribe registers fn and returns a function that removes it. Calling the
// returned function more than once is harmless.
func (e *Emitter[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	e.mu.Lock()
	e.nextID++
	id := e.nextID
	e.subs = append(e.subs, subscriber[T]{id: id, fn: fn})
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { e.remove(id) })
	}
}

func (e *Emitter[T]) remove(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, s := range e.subs {
		if s.id == id {
			e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
			return
		}
	}
}

// Emit calls every subscriber synchronously with v.
// Subscribers may unsubscribe from within their callback.
func (e *Emitter[T]) Emit(v T) {
	e.mu.RLock()
	subs := e.subs
	e.mu.RUnlock()

	for _, s := range subs {
		s.fn(v)
	}
}

// Len returns the number of current subscribers.
func (e *Emitter[T]) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.subs)
}
