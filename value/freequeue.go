package value

// genericHeap is a minimal binary min-heap, adapted from the teacher's
// heap.Heap[T] (heap/heap.go): same bubble-up/bubble-down shape, narrowed
// to the one instantiation this package needs instead of being generic,
// since value is meant to stay dependency-free of its own heap package.
type genericHeap[T any] struct {
	data []T
	less func(a, b T) bool
}

func newGenericHeap[T any](less func(a, b T) bool) *genericHeap[T] {
	return &genericHeap[T]{less: less}
}

func (h *genericHeap[T]) Push(v T) {
	h.data = append(h.data, v)
	h.bubbleUp(len(h.data) - 1)
}

func (h *genericHeap[T]) Pop() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	top := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data = h.data[:last]
	h.bubbleDown(0)
	return top, true
}

func (h *genericHeap[T]) Len() int { return len(h.data) }

func (h *genericHeap[T]) bubbleUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.less(h.data[i], h.data[parent]) {
			h.data[i], h.data[parent] = h.data[parent], h.data[i]
			i = parent
		} else {
			break
		}
	}
}

func (h *genericHeap[T]) bubbleDown(i int) {
	size := len(h.data)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < size && h.less(h.data[left], h.data[smallest]) {
			smallest = left
		}
		if right < size && h.less(h.data[right], h.data[smallest]) {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.data[i], h.data[smallest] = h.data[smallest], h.data[i]
		i = smallest
	}
}

// pendingFree is one entry in the heap's deferred-destructor worklist: an
// object whose refcount just hit zero, ordered by allocation id so that
// teardown of a long container chain proceeds in a deterministic,
// breadth-first order instead of recursing through Go's call stack.
type pendingFree struct {
	id   uint64
	drop func()
}

func newFreeQueue() *genericHeap[pendingFree] {
	return newGenericHeap(func(a, b pendingFree) bool { return a.id < b.id })
}
