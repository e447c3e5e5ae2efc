package value

import (
	"github.com/th3f0rk/betterpython/bpcore"
)

// Array is an ordered, dynamically-growing sequence of Values (spec.md
// §3/§4.A). Capacity at least minArrayCap once allocated, doubling on
// growth.
type Array struct {
	header
	data []Value
}

func (a *Array) sweep() []Value {
	out := a.data
	a.data = nil
	return out
}

func (a *Array) Len() int { return len(a.data) }
func (a *Array) Cap() int { return cap(a.data) }

// At returns the element at index, without bounds checking; callers must
// use the HeapCtx wrapper methods, which enforce the fatal-on-OOB contract.
func (a *Array) At(i int) Value { return a.data[i] }

// selfRef reports whether storing v into container would create a direct
// self-reference (spec.md §9's chosen re-architecture: cycles are made
// unrepresentable rather than collected).
func selfRef(container heapObject, v Value) bool {
	return v.obj != nil && v.obj == container
}

func (h *HeapCtx) arrayGrow(a *Array, minCap int) {
	newCap := a.Cap()
	if newCap < minArrayCap {
		newCap = minArrayCap
	}
	for newCap < minCap {
		newCap *= 2
	}
	if newCap == a.Cap() {
		return
	}
	grown := make([]Value, len(a.data), newCap)
	copy(grown, a.data)
	a.data = grown
}

// Push appends v to the array, retaining it. Fatal on self-reference.
func (h *HeapCtx) Push(arr Value, v Value) {
	a := arr.Array()
	h.mu.Lock()
	defer h.mu.Unlock()
	if selfRef(a, v) {
		panic(bpcore.Fatalf("array_push: value would create a self-referential array"))
	}
	if len(a.data) == a.Cap() {
		h.arrayGrow(a, len(a.data)+1)
	}
	h.retainNoLock(v)
	a.data = append(a.data, v)
}

// Pop removes and returns the last element. Fatal on an empty array.
func (h *HeapCtx) Pop(arr Value) Value {
	a := arr.Array()
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(a.data) == 0 {
		panic(bpcore.Fatalf("array_pop: pop on empty array"))
	}
	last := len(a.data) - 1
	v := a.data[last]
	a.data[last] = Value{}
	a.data = a.data[:last]
	h.releaseNoLock(v)
	return v
}

// Get returns the element at index; per spec.md §4.A array indexing fails
// fatally on out-of-range (unlike map lookups, which return Null).
func (h *HeapCtx) Get(arr Value, index int) Value {
	a := arr.Array()
	if index < 0 || index >= len(a.data) {
		panic(bpcore.Fatalf("array_get: index %d out of range [0,%d)", index, len(a.data)))
	}
	return a.data[index]
}

// Set overwrites the element at index, releasing the old value and
// retaining the new one.
func (h *HeapCtx) Set(arr Value, index int, v Value) {
	a := arr.Array()
	h.mu.Lock()
	defer h.mu.Unlock()
	if index < 0 || index >= len(a.data) {
		panic(bpcore.Fatalf("array_set: index %d out of range [0,%d)", index, len(a.data)))
	}
	if selfRef(a, v) {
		panic(bpcore.Fatalf("array_set: value would create a self-referential array"))
	}
	old := a.data[index]
	h.retainNoLock(v)
	a.data[index] = v
	h.releaseNoLock(old)
}

// InsertAt shifts elements right to make room at index (O(n)).
func (h *HeapCtx) InsertAt(arr Value, index int, v Value) {
	a := arr.Array()
	h.mu.Lock()
	defer h.mu.Unlock()
	if index < 0 || index > len(a.data) {
		panic(bpcore.Fatalf("array_insert: index %d out of range [0,%d]", index, len(a.data)))
	}
	if selfRef(a, v) {
		panic(bpcore.Fatalf("array_insert: value would create a self-referential array"))
	}
	if len(a.data) == a.Cap() {
		h.arrayGrow(a, len(a.data)+1)
	}
	a.data = append(a.data, Value{})
	copy(a.data[index+1:], a.data[index:])
	h.retainNoLock(v)
	a.data[index] = v
}

// RemoveAt shifts elements left to close the gap at index (O(n)).
func (h *HeapCtx) RemoveAt(arr Value, index int) Value {
	a := arr.Array()
	h.mu.Lock()
	defer h.mu.Unlock()
	if index < 0 || index >= len(a.data) {
		panic(bpcore.Fatalf("array_remove: index %d out of range [0,%d)", index, len(a.data)))
	}
	v := a.data[index]
	copy(a.data[index:], a.data[index+1:])
	last := len(a.data) - 1
	a.data[last] = Value{}
	a.data = a.data[:last]
	return v
}

// Slice returns a new array over [start,start+length), clamped like
// Substring (never fails).
func (h *HeapCtx) Slice(arr Value, start, length int) Value {
	a := arr.Array()
	n := len(a.data)
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if length < 0 {
		length = 0
	}
	if start+length > n {
		length = n - start
	}
	out := h.NewArray(length)
	for i := start; i < start+length; i++ {
		h.Push(out, a.data[i])
	}
	return out
}

// Sort performs a stable insertion sort: ints by <, floats by <, strings by
// byte-lexicographic order; any mixed-type pair is left in place (spec.md
// §4.A).
func (h *HeapCtx) Sort(arr Value) {
	a := arr.Array()
	h.mu.Lock()
	defer h.mu.Unlock()
	d := a.data
	for i := 1; i < len(d); i++ {
		j := i
		for j > 0 {
			lt, ok := less(d[j], d[j-1])
			if !ok || !lt {
				break
			}
			d[j], d[j-1] = d[j-1], d[j]
			j--
		}
	}
}

// less reports a<b for comparable (same-kind numeric/string) pairs; ok is
// false for any other pair, meaning "leave relative order as-is".
func less(a, b Value) (lt bool, ok bool) {
	switch a.kind {
	case KindInt:
		if b.kind == KindInt {
			return a.i < b.i, true
		}
	case KindFloat:
		if b.kind == KindFloat {
			return a.f < b.f, true
		}
	case KindStr:
		if b.kind == KindStr {
			as, bs := a.Str(), b.Str()
			return compareBytes(as.Bytes(), bs.Bytes()) < 0, true
		}
	}
	return false, false
}

func compareBytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// ConcatArrays returns a new array holding a's elements then b's.
func (h *HeapCtx) ConcatArrays(a, b Value) Value {
	aa, bb := a.Array(), b.Array()
	out := h.NewArray(len(aa.data) + len(bb.data))
	for _, v := range aa.data {
		h.Push(out, v)
	}
	for _, v := range bb.data {
		h.Push(out, v)
	}
	return out
}

func (h *HeapCtx) Contains(arr Value, needle Value) bool {
	return h.IndexOf(arr, needle) >= 0
}

func (h *HeapCtx) IndexOf(arr Value, needle Value) int {
	a := arr.Array()
	for i, v := range a.data {
		if Equal(v, needle) {
			return i
		}
	}
	return -1
}

func (h *HeapCtx) Reverse(arr Value) {
	a := arr.Array()
	h.mu.Lock()
	defer h.mu.Unlock()
	d := a.data
	for i, j := 0, len(d)-1; i < j; i, j = i+1, j-1 {
		d[i], d[j] = d[j], d[i]
	}
}

// Clear releases every element and empties the array.
func (h *HeapCtx) Clear(arr Value) {
	a := arr.Array()
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, v := range a.data {
		h.releaseNoLock(v)
	}
	a.data = a.data[:0]
}

// Copy returns a shallow copy (a new array, elements retained not cloned).
func (h *HeapCtx) Copy(arr Value) Value {
	a := arr.Array()
	out := h.NewArray(len(a.data))
	for _, v := range a.data {
		h.Push(out, v)
	}
	return out
}

// Fill overwrites every element with v.
func (h *HeapCtx) Fill(arr Value, v Value) {
	a := arr.Array()
	h.mu.Lock()
	defer h.mu.Unlock()
	if selfRef(a, v) {
		panic(bpcore.Fatalf("array_fill: value would create a self-referential array"))
	}
	for i, old := range a.data {
		h.retainNoLock(v)
		a.data[i] = v
		h.releaseNoLock(old)
	}
}
