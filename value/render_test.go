package value

import "testing"

func TestRenderScalars(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"int", Int(-42), "-42"},
		{"float shortest round trip", Float(1.5), "1.5"},
		{"float integral", Float(3), "3"},
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
		{"null", Null(), "null"},
		{"func", Func(9), "<func:9>"},
		{"ptr", Ptr(9), "<ptr:9>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.v); got != tt.want {
				t.Errorf("Render(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestRenderArray(t *testing.T) {
	h := NewHeapCtx()
	a := h.NewArray(0)
	h.Push(a, Int(1))
	h.Push(a, Int(2))
	h.Push(a, h.NewStr([]byte("x")))

	if got, want := Render(a), "[1, 2, x]"; got != want {
		t.Errorf("Render(array) = %q, want %q", got, want)
	}
}

func TestRenderNestedArray(t *testing.T) {
	h := NewHeapCtx()
	inner := h.NewArray(0)
	h.Push(inner, Int(1))
	h.Push(inner, Int(2))
	outer := h.NewArray(0)
	h.Push(outer, inner)
	h.Push(outer, Int(3))

	if got, want := Render(outer), "[[1, 2], 3]"; got != want {
		t.Errorf("Render(nested array) = %q, want %q", got, want)
	}
}

func TestRenderClass(t *testing.T) {
	h := NewHeapCtx()
	c := h.NewClass("Point", 0)
	if got, want := Render(c), "<Point>"; got != want {
		t.Errorf("Render(class) = %q, want %q", got, want)
	}
}
