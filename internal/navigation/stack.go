package navigation

// History is a floor-protected stack of snapshots backing back navigation.
// It is seeded with one element at construction and never shrinks below
// that element, so Current is always defined.
//
// History is not safe for concurrent use. The application drives it from a
// single goroutine (the bubbletea update loop) and subscribers are notified
// synchronously on that goroutine.
type History[T any] struct {
	entries     []T
	subscribers []func(T)
}

// NewHistory creates a history seeded with initial.
func NewHistory[T any](initial T) *History[T] {
	return &History[T]{
		entries: []T{initial},
	}
}

// Push appends v as the new top and notifies subscribers. Consecutive pushes
// of equal values are not deduplicated; every push produces a notification.
func (h *History[T]) Push(v T) {
	h.entries = append(h.entries, v)
	h.notify()
}

// Pop removes the top entry and notifies subscribers. Popping the seed
// element is absorbed: on a singleton history Pop does nothing, so there is
// always a view to return to.
func (h *History[T]) Pop() {
	if len(h.entries) == 1 {
		return
	}
	h.entries = h.entries[:len(h.entries)-1]
	h.notify()
}

// Current returns the top of the history.
func (h *History[T]) Current() T {
	return h.entries[len(h.entries)-1]
}

// Len returns the number of entries, including the seed.
func (h *History[T]) Len() int {
	return len(h.entries)
}

// Subscribe registers fn to observe the top of the history. fn is called
// immediately with the current value, then once per change in push/pop
// order. Only the latest value is delivered; there is no replay of past
// entries.
func (h *History[T]) Subscribe(fn func(T)) {
	h.subscribers = append(h.subscribers, fn)
	fn(h.Current())
}

func (h *History[T]) notify() {
	top := h.Current()
	for _, fn := range h.subscribers {
		fn(top)
	}
}
