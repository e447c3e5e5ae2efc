package value

import "github.com/th3f0rk/betterpython/bpcore"

// Struct is a heap record with a fixed field count addressed by index. By
// convention field 0 holds a __tag value identifying a tagged-union
// variant (spec.md §3).
type Struct struct {
	header
	fields []Value
}

func (s *Struct) sweep() []Value {
	out := s.fields
	s.fields = nil
	return out
}

func (s *Struct) Len() int { return len(s.fields) }

// Class is a named Struct used for method/field tables; it shares the
// Struct's tagged-union-by-field-0 convention.
type Class struct {
	header
	name   string
	fields []Value
}

func (c *Class) sweep() []Value {
	out := c.fields
	c.fields = nil
	return out
}

func (c *Class) Name() string { return c.name }
func (c *Class) Len() int     { return len(c.fields) }

// StructGet/StructSet fail fatally out of range, mirroring Array indexing.
func (h *HeapCtx) StructGet(sv Value, index int) Value {
	s := sv.Struct()
	if index < 0 || index >= len(s.fields) {
		panic(bpcore.Fatalf("struct field index %d out of range [0,%d)", index, len(s.fields)))
	}
	return s.fields[index]
}

func (h *HeapCtx) StructSet(sv Value, index int, v Value) {
	s := sv.Struct()
	h.mu.Lock()
	defer h.mu.Unlock()
	if index < 0 || index >= len(s.fields) {
		panic(bpcore.Fatalf("struct field index %d out of range [0,%d)", index, len(s.fields)))
	}
	if selfRef(s, v) {
		panic(bpcore.Fatalf("struct field set: value would create a self-referential struct"))
	}
	old := s.fields[index]
	h.retainNoLock(v)
	s.fields[index] = v
	h.releaseNoLock(old)
}

func (h *HeapCtx) ClassGet(cv Value, index int) Value {
	c := cv.Class()
	if index < 0 || index >= len(c.fields) {
		panic(bpcore.Fatalf("class field index %d out of range [0,%d)", index, len(c.fields)))
	}
	return c.fields[index]
}

func (h *HeapCtx) ClassSet(cv Value, index int, v Value) {
	c := cv.Class()
	h.mu.Lock()
	defer h.mu.Unlock()
	if index < 0 || index >= len(c.fields) {
		panic(bpcore.Fatalf("class field index %d out of range [0,%d)", index, len(c.fields)))
	}
	if selfRef(c, v) {
		panic(bpcore.Fatalf("class field set: value would create a self-referential class"))
	}
	old := c.fields[index]
	h.retainNoLock(v)
	c.fields[index] = v
	h.releaseNoLock(old)
}

// Tag reads field 0 of a Struct as its variant tag (the `tag` built-in).
func Tag(sv Value) Value {
	s := sv.Struct()
	if len(s.fields) == 0 {
		return Null()
	}
	return s.fields[0]
}
