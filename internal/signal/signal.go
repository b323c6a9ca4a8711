// Package signal provides explicit handler registration for controller
// events. Handlers run synchronously on the goroutine that emits, which in
// the browser is the UI event loop.
package signal

import "sync"

// Signal fans a value out to every connected handler in connection order.
type Signal[T any] struct {
	mu       sync.Mutex
	next     int
	handlers []handler[T]
}

type handler[T any] struct {
	id int
	fn func(T)
}

// Connect registers fn and returns a function that disconnects it.
func (s *Signal[T]) Connect(fn func(T)) (disconnect func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	s.handlers = append(s.handlers, handler[T]{id: id, fn: fn})

	return func() { s.disconnect(id) }
}

func (s *Signal[T]) disconnect(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, h := range s.handlers {
		if h.id == id {
			s.handlers = append(s.handlers[:i:i], s.handlers[i+1:]...)
			return
		}
	}
}

// Emit calls every handler with v. Handlers may connect or disconnect
// during Emit; the change applies from the next Emit.
func (s *Signal[T]) Emit(v T) {
	s.mu.Lock()
	snapshot := append([]handler[T](nil), s.handlers...)
	s.mu.Unlock()

	for _, h := range snapshot {
		h.fn(v)
	}
}

// Len reports the number of connected handlers.
func (s *Signal[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handlers)
}
