// Package heap provides a generic binary min-heap.
package heap

// Heap is a binary min-heap ordered by the less function given to New.
// It is not safe for concurrent use.
type Heap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// New creates an empty heap.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{less: less}
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// Push adds x to the heap.
func (h *Heap[T]) Push(x T) {
	h.items = append(h.items, x)
	h.shiftUp(len(h.items) - 1)
}

// Peek returns the smallest element without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}

	return h.items[0], true
}

// Pop removes and returns the smallest element.
func (h *Heap[T]) Pop() (T, bool) {
	var zero T
	if len(h.items) == 0 {
		return zero, false
	}

	last := len(h.items) - 1
	min := h.items[0]
	h.items[0] = h.items[last]
	h.items[last] = zero
	h.items = h.items[:last]

	if len(h.items) > 0 {
		h.shiftDown(0)
	}

	return min, true
}

func (h *Heap[T]) shiftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.less(h.items[i], h.items[p]) {
			break
		}
		h.items[p], h.items[i] = h.items[i], h.items[p]
		i = p
	}
}

func (h *Heap[T]) shiftDown(i int) {
	for {
		l, r, smallest := 2*i+1, 2*i+2, i
		if l < len(h.items) && h.less(h.items[l], h.items[smallest]) {
			smallest = l
		}
		if r < len(h.items) && h.less(h.items[r], h.items[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
