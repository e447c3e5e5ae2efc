package value

import "sync"

// HeapCtx is the managed heap: it owns allocation ids, the single lock that
// guards every refcount and structural container mutation (spec.md §4.F's
// "minimum acceptable implementation"), and the deferred-free worklist used
// to tear down long container chains iteratively.
type HeapCtx struct {
	mu     sync.Mutex
	nextID uint64
	live   int64
	freeQ  *genericHeap[pendingFree]
}

// NewHeapCtx creates an empty managed heap.
func NewHeapCtx() *HeapCtx {
	return &HeapCtx{freeQ: newFreeQueue()}
}

func (h *HeapCtx) allocID() uint64 {
	h.nextID++
	return h.nextID
}

// LiveCount returns the number of heap-allocated containers/strings that
// currently have at least one live reference. Exposed for the `heap_stats`
// diagnostic built-in and for tests asserting no leaks after a clear.
func (h *HeapCtx) LiveCount() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.live
}

// Retain increments v's refcount if it is a heap-backed value; a no-op for
// scalars, Ptr, and Func.
func (h *HeapCtx) Retain(v Value) {
	if v.obj == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	v.obj.retain()
}

// Release decrements v's refcount if it is a heap-backed value, queuing and
// iteratively sweeping anything that reaches zero (including values it in
// turn held), so a single Release on the head of a long Array/Map chain
// cannot recurse through the Go call stack.
func (h *HeapCtx) Release(v Value) {
	if v.obj == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.releaseNoLock(v)
}

func (h *HeapCtx) enqueueRelease(obj heapObject) {
	if obj.release() == 0 {
		h.live--
		h.freeQ.Push(pendingFree{id: obj.objID(), drop: func() {
			for _, child := range obj.sweep() {
				if child.obj != nil {
					h.enqueueRelease(child.obj)
				}
			}
		}})
	}
}

// retainNoLock/releaseNoLock are used by container mutators (array.go,
// hashmap.go, struct.go) that already hold h.mu while restructuring a
// container's contents.
func (h *HeapCtx) retainNoLock(v Value) {
	if v.obj != nil {
		v.obj.retain()
	}
}

func (h *HeapCtx) releaseNoLock(v Value) {
	if v.obj == nil {
		return
	}
	h.enqueueRelease(v.obj)
	h.drainLocked()
}

func (h *HeapCtx) drainLocked() {
	for {
		item, ok := h.freeQ.Pop()
		if !ok {
			return
		}
		item.drop()
	}
}

func (h *HeapCtx) track(heapObject) {
	h.live++
}

// NewStr allocates an immutable byte-string payload with refcount 1.
func (h *HeapCtx) NewStr(b []byte) Value {
	h.mu.Lock()
	defer h.mu.Unlock()
	cp := make([]byte, len(b))
	copy(cp, b)
	s := &Str{header: header{id: h.allocID(), refs: 1}, bytes: cp}
	h.track(s)
	return Value{kind: KindStr, obj: s}
}

// NewArray allocates an empty array with the given initial capacity
// (clamped to the spec's minimum of 4).
func (h *HeapCtx) NewArray(cap int) Value {
	if cap < minArrayCap {
		cap = minArrayCap
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	a := &Array{header: header{id: h.allocID(), refs: 1}, data: make([]Value, 0, cap)}
	h.track(a)
	return Value{kind: KindArray, obj: a}
}

// NewMap allocates an empty open-addressed hash map with the given initial
// capacity (clamped to the spec's minimum of 8).
func (h *HeapCtx) NewMap(cap int) Value {
	if cap < minMapCap {
		cap = minMapCap
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	m := &Map{header: header{id: h.allocID(), refs: 1}, slots: make([]slot, cap)}
	h.track(m)
	return Value{kind: KindMap, obj: m}
}

// NewStruct allocates a fixed-field-count record.
func (h *HeapCtx) NewStruct(fieldCount int) Value {
	h.mu.Lock()
	defer h.mu.Unlock()
	fields := make([]Value, fieldCount)
	for i := range fields {
		fields[i] = Null()
	}
	s := &Struct{header: header{id: h.allocID(), refs: 1}, fields: fields}
	h.track(s)
	return Value{kind: KindStruct, obj: s}
}

// NewClass allocates a class record (a named Struct used for method/field
// tables by convention; field 0 is still available as a tag slot).
func (h *HeapCtx) NewClass(name string, fieldCount int) Value {
	h.mu.Lock()
	defer h.mu.Unlock()
	fields := make([]Value, fieldCount)
	for i := range fields {
		fields[i] = Null()
	}
	c := &Class{header: header{id: h.allocID(), refs: 1}, name: name, fields: fields}
	h.track(c)
	return Value{kind: KindClass, obj: c}
}

const (
	minArrayCap = 4
	minMapCap   = 8
)
