package board

// Subscription is the handle returned when a callback is registered.
// Dispose unregisters it; calling Dispose more than once is harmless.
type Subscription struct {
	cancel func()
}

// Dispose unregisters the callback.
func (s *Subscription) Dispose() {
	if s == nil || s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
}

// Active reports whether the callback is still registered.
func (s *Subscription) Active() bool {
	return s != nil && s.cancel != nil
}

type handler[T any] struct {
	id  int
	fn  func(T)
	sub *Subscription
}

// event is a list of callbacks invoked in registration order.
type event[T any] struct {
	nextID   int
	handlers []handler[T]
}

func (e *event[T]) subscribe(fn func(T)) *Subscription {
	e.nextID++
	id := e.nextID
	sub := &Subscription{cancel: func() { e.remove(id) }}
	e.handlers = append(e.handlers, handler[T]{id: id, fn: fn, sub: sub})
	return sub
}

func (e *event[T]) remove(id int) {
	for i, h := range e.handlers {
		if h.id == id {
			e.handlers = append(e.handlers[:i], e.handlers[i+1:]...)
			return
		}
	}
}

func (e *event[T]) registered(id int) bool {
	for _, h := range e.handlers {
		if h.id == id {
			return true
		}
	}
	return false
}

// emit calls every handler. A handler removed by an earlier handler during
// the same emit is skipped.
func (e *event[T]) emit(v T) {
	snapshot := make([]handler[T], len(e.handlers))
	copy(snapshot, e.handlers)
	for _, h := range snapshot {
		if e.registered(h.id) {
			h.fn(v)
		}
	}
}

func (e *event[T]) count() int {
	return len(e.handlers)
}

// clear unregisters every handler and cancels the handles given out for them.
func (e *event[T]) clear() {
	for _, h := range e.handlers {
		h.sub.cancel = nil
	}
	e.handlers = nil
}
