package value

// Str is an immutable byte sequence. Identity-by-content equality; hashing
// uses a stable djb2-class byte hash; Len is bytes, not code points
// (spec.md §3 explicitly opts out of UTF-8 correctness).
type Str struct {
	header
	bytes []byte
	hash  uint64
	hashed bool
}

func (s *Str) sweep() []Value { s.bytes = nil; return nil }

func (s *Str) Bytes() []byte { return s.bytes }

func (s *Str) Len() int { return len(s.bytes) }

// Hash returns the cached djb2-class hash of the string's bytes.
func (s *Str) Hash() uint64 {
	if !s.hashed {
		s.hash = djb2(s.bytes)
		s.hashed = true
	}
	return s.hash
}

func djb2(b []byte) uint64 {
	var h uint64 = 5381
	for _, c := range b {
		h = h*33 + uint64(c)
	}
	return h
}

func (s *Str) Equal(o *Str) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil {
		return false
	}
	if len(s.bytes) != len(o.bytes) {
		return false
	}
	for i := range s.bytes {
		if s.bytes[i] != o.bytes[i] {
			return false
		}
	}
	return true
}

// Concat allocates a new Str holding a's bytes followed by b's bytes;
// neither input is mutated.
func (h *HeapCtx) Concat(a, b Value) Value {
	as, bs := a.Str(), b.Str()
	out := make([]byte, 0, as.Len()+bs.Len())
	out = append(out, as.Bytes()...)
	out = append(out, bs.Bytes()...)
	return h.NewStr(out)
}

// Substring clamps start to [0,len] and length to [0, len-start]; never
// fails (spec.md §4.A).
func (h *HeapCtx) Substring(s Value, start, length int) Value {
	str := s.Str()
	n := str.Len()
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
	return h.NewStr(str.Bytes()[start : start+length])
}
