package value

import "testing"

func TestStrEqualAndHash(t *testing.T) {
	h := NewHeapCtx()

	a := h.NewStr([]byte("abc"))
	b := h.NewStr([]byte("abc"))
	c := h.NewStr([]byte("abd"))

	if !a.Str().Equal(b.Str()) {
		t.Error("equal-content strings should compare equal")
	}
	if a.Str().Equal(c.Str()) {
		t.Error("different-content strings should not compare equal")
	}
	if a.Str().Hash() != b.Str().Hash() {
		t.Error("equal-content strings should hash equal")
	}
}

func TestStrConcat(t *testing.T) {
	h := NewHeapCtx()
	a := h.NewStr([]byte("foo"))
	b := h.NewStr([]byte("bar"))
	got := h.Concat(a, b)
	if string(got.Str().Bytes()) != "foobar" {
		t.Errorf("Concat = %q, want %q", got.Str().Bytes(), "foobar")
	}
	// inputs untouched
	if string(a.Str().Bytes()) != "foo" || string(b.Str().Bytes()) != "bar" {
		t.Error("Concat mutated an input")
	}
}

func TestSubstringClamps(t *testing.T) {
	h := NewHeapCtx()
	s := h.NewStr([]byte("hello"))

	tests := []struct {
		name         string
		start, length int
		want         string
	}{
		{"in range", 1, 3, "ell"},
		{"negative start clamps to 0", -5, 2, "he"},
		{"start past end yields empty", 10, 3, ""},
		{"length past end clamps", 3, 100, "lo"},
		{"negative length yields empty", 1, -1, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := h.Substring(s, tt.start, tt.length)
			if string(got.Str().Bytes()) != tt.want {
				t.Errorf("Substring(%d,%d) = %q, want %q", tt.start, tt.length, got.Str().Bytes(), tt.want)
			}
		})
	}
}

func TestStrLenIsBytes(t *testing.T) {
	h := NewHeapCtx()
	// 3-byte UTF-8 encoding of a single code point; Len must count bytes.
	s := h.NewStr([]byte{0xe2, 0x82, 0xac})
	if s.Str().Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Str().Len())
	}
}
