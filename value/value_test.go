package value

import "testing"

func TestEqual(t *testing.T) {
	h := NewHeapCtx()

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"null==null", Null(), Null(), true},
		{"int equal", Int(5), Int(5), true},
		{"int differ", Int(5), Int(6), false},
		{"int vs float", Int(5), Float(5), false},
		{"float equal", Float(1.5), Float(1.5), true},
		{"bool equal", Bool(true), Bool(true), true},
		{"bool differ", Bool(true), Bool(false), false},
		{"func equal", Func(3), Func(3), true},
		{"ptr equal", Ptr(7), Ptr(7), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}

	t.Run("str equal by content not identity", func(t *testing.T) {
		a := h.NewStr([]byte("hi"))
		b := h.NewStr([]byte("hi"))
		if !Equal(a, b) {
			t.Error("expected distinct Str allocations with equal bytes to be Equal")
		}
	})

	t.Run("array equal by identity only", func(t *testing.T) {
		a := h.NewArray(0)
		b := h.NewArray(0)
		if Equal(a, b) {
			t.Error("expected two empty arrays to be unequal (identity semantics)")
		}
		if !Equal(a, a) {
			t.Error("expected an array to equal itself")
		}
	})
}

func TestAccessorPanicsOnWrongKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Int64 on a Str value to panic")
		}
	}()
	h := NewHeapCtx()
	s := h.NewStr([]byte("x"))
	_ = s.Int64()
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Null(), "null"},
		{Int(1), "int"},
		{Float(1), "float"},
		{Bool(true), "bool"},
		{Func(1), "func"},
		{Ptr(1), "ptr"},
	}
	for _, tt := range tests {
		if got := TypeName(tt.v); got != tt.want {
			t.Errorf("TypeName(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
