package value

import (
	"math"

	"github.com/th3f0rk/betterpython/bpcore"
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTombstone
)

type slot struct {
	state slotState
	key   Value
	val   Value
}

// Map is an open-addressed hash table with linear probing and a 0.70 load
// factor resize threshold (spec.md §3/§4.A). Only {Int,Float,Bool,Str,Null}
// are "strong" keys; any other kind hashes to 0 and is accepted, so all
// such weak keys share one probe sequence and are told apart only by
// identity (spec.md calls this out as something tests should avoid
// relying on).
type Map struct {
	header
	slots []slot
	count int
}

func (m *Map) sweep() []Value {
	out := make([]Value, 0, 2*m.count)
	for _, s := range m.slots {
		if s.state == slotOccupied {
			out = append(out, s.key, s.val)
		}
	}
	m.slots = nil
	m.count = 0
	return out
}

func (m *Map) Len() int { return m.count }
func (m *Map) Cap() int { return len(m.slots) }

func hashKey(v Value) uint64 {
	switch v.kind {
	case KindNull:
		return 0
	case KindBool:
		if v.i != 0 {
			return 2
		}
		return 1
	case KindInt:
		u := uint64(v.i)
		// splitmix64-style scramble so small sequential ints don't all
		// collide on small tables.
		u = (u ^ (u >> 30)) * 0xbf58476d1ce4e5b9
		u = (u ^ (u >> 27)) * 0x94d049bb133111eb
		return u ^ (u >> 31)
	case KindFloat:
		return math.Float64bits(v.f)
	case KindStr:
		return v.Str().Hash()
	default:
		return 0
	}
}

// findSlot runs the lookup algorithm from spec.md §4.A: stop on Empty, skip
// Tombstone, return on Occupied+equal. It also reports the first reusable
// slot seen (Empty or Tombstone) for use by insert.
func (m *Map) findSlot(key Value) (occupiedAt int, found bool, insertAt int) {
	n := len(m.slots)
	idx := int(hashKey(key) % uint64(n))
	insertAt = -1
	for i := 0; i < n; i++ {
		s := &m.slots[idx]
		switch s.state {
		case slotEmpty:
			if insertAt < 0 {
				insertAt = idx
			}
			return -1, false, insertAt
		case slotTombstone:
			if insertAt < 0 {
				insertAt = idx
			}
		case slotOccupied:
			if Equal(s.key, key) {
				return idx, true, -1
			}
		}
		idx = (idx + 1) % n
	}
	return -1, false, insertAt
}

func (h *HeapCtx) mapMaybeResize(m *Map) {
	if m.Cap() == 0 || (m.count+1)*100/m.Cap() <= 70 {
		return
	}
	old := m.slots
	newCap := m.Cap() * 2
	m.slots = make([]slot, newCap)
	m.count = 0
	for _, s := range old {
		if s.state == slotOccupied {
			h.mapInsertNoResize(m, s.key, s.val)
		}
	}
}

func (h *HeapCtx) mapInsertNoResize(m *Map, key, val Value) {
	at, found, insertAt := m.findSlot(key)
	if found {
		old := m.slots[at].val
		h.retainNoLock(val)
		m.slots[at].val = val
		h.releaseNoLock(old)
		return
	}
	h.retainNoLock(key)
	h.retainNoLock(val)
	m.slots[insertAt] = slot{state: slotOccupied, key: key, val: val}
	m.count++
}

// Set inserts or overwrites key->val.
func (h *HeapCtx) MapSet(mv Value, key, val Value) {
	m := mv.Map()
	h.mu.Lock()
	defer h.mu.Unlock()
	if selfRef(m, val) || selfRef(m, key) {
		panic(bpcore.Fatalf("map_set: value would create a self-referential map"))
	}
	if _, found, _ := m.findSlot(key); !found {
		h.mapMaybeResize(m)
	}
	h.mapInsertNoResize(m, key, val)
}

// Get returns the value for key, or Null on miss.
func (h *HeapCtx) MapGet(mv Value, key Value) Value {
	m := mv.Map()
	at, found, _ := m.findSlot(key)
	if !found {
		return Null()
	}
	return m.slots[at].val
}

// HasKey distinguishes a missing key from a Null value.
func (h *HeapCtx) MapHasKey(mv Value, key Value) bool {
	m := mv.Map()
	_, found, _ := m.findSlot(key)
	return found
}

// Delete marks the slot a Tombstone and releases key/val.
func (h *HeapCtx) MapDelete(mv Value, key Value) bool {
	m := mv.Map()
	h.mu.Lock()
	defer h.mu.Unlock()
	at, found, _ := m.findSlot(key)
	if !found {
		return false
	}
	old := m.slots[at]
	m.slots[at] = slot{state: slotTombstone}
	m.count--
	h.releaseNoLock(old.key)
	h.releaseNoLock(old.val)
	return true
}

// Keys returns all keys in slot order (not insertion order, per spec.md).
func (h *HeapCtx) MapKeys(mv Value) Value {
	m := mv.Map()
	out := h.NewArray(m.count)
	for _, s := range m.slots {
		if s.state == slotOccupied {
			h.Push(out, s.key)
		}
	}
	return out
}

// Values returns all values in slot order.
func (h *HeapCtx) MapValues(mv Value) Value {
	m := mv.Map()
	out := h.NewArray(m.count)
	for _, s := range m.slots {
		if s.state == slotOccupied {
			h.Push(out, s.val)
		}
	}
	return out
}

// MapEntry is one occupied (key, val) pair, exposed to callers (the JSON
// serializer, the diagnostics dumper) that need slot-order iteration
// without allocating two parallel Arrays.
type MapEntry struct {
	Key Value
	Val Value
}

// Entries returns every occupied slot's key/value pair in slot order.
func (m *Map) Entries() []MapEntry {
	out := make([]MapEntry, 0, m.count)
	for _, s := range m.slots {
		if s.state == slotOccupied {
			out = append(out, MapEntry{Key: s.key, Val: s.val})
		}
	}
	return out
}
