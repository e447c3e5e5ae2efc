package value

import (
	"testing"

	"github.com/th3f0rk/betterpython/bpcore"
)

func expectFatal(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a fatal panic, got none")
		}
		if err, ok := r.(error); !ok || !bpcore.IsFatal(err) {
			t.Fatalf("expected a *bpcore.FatalError panic, got %v", r)
		}
	}()
	fn()
}

func TestArrayPushPopGetSet(t *testing.T) {
	h := NewHeapCtx()
	a := h.NewArray(0)

	h.Push(a, Int(1))
	h.Push(a, Int(2))
	h.Push(a, Int(3))

	if got := a.Array().Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	if got := h.Get(a, 1).Int64(); got != 2 {
		t.Errorf("Get(1) = %d, want 2", got)
	}

	h.Set(a, 1, Int(20))
	if got := h.Get(a, 1).Int64(); got != 20 {
		t.Errorf("after Set, Get(1) = %d, want 20", got)
	}

	popped := h.Pop(a)
	if popped.Int64() != 3 {
		t.Errorf("Pop() = %d, want 3", popped.Int64())
	}
	if a.Array().Len() != 2 {
		t.Errorf("Len() after Pop = %d, want 2", a.Array().Len())
	}
}

func TestArrayGrowthStartsAtMinimumAndDoubles(t *testing.T) {
	h := NewHeapCtx()
	a := h.NewArray(0)
	if got := a.Array().Cap(); got != minArrayCap {
		t.Fatalf("initial Cap() = %d, want %d", got, minArrayCap)
	}
	for i := 0; i < minArrayCap; i++ {
		h.Push(a, Int(int64(i)))
	}
	if got := a.Array().Cap(); got != minArrayCap {
		t.Fatalf("Cap() after filling to minimum = %d, want %d", got, minArrayCap)
	}
	h.Push(a, Int(99))
	if got := a.Array().Cap(); got != minArrayCap*2 {
		t.Errorf("Cap() after one over minimum = %d, want %d", got, minArrayCap*2)
	}
}

func TestArrayOutOfRangeIsFatal(t *testing.T) {
	h := NewHeapCtx()
	a := h.NewArray(0)
	h.Push(a, Int(1))

	expectFatal(t, func() { h.Get(a, 5) })
	expectFatal(t, func() { h.Get(a, -1) })
	expectFatal(t, func() { h.Set(a, 5, Int(0)) })
}

func TestArrayPopEmptyIsFatal(t *testing.T) {
	h := NewHeapCtx()
	a := h.NewArray(0)
	expectFatal(t, func() { h.Pop(a) })
}

func TestArrayInsertRemoveAt(t *testing.T) {
	h := NewHeapCtx()
	a := h.NewArray(0)
	h.Push(a, Int(1))
	h.Push(a, Int(2))
	h.Push(a, Int(4))

	h.InsertAt(a, 2, Int(3))
	got := []int64{h.Get(a, 0).Int64(), h.Get(a, 1).Int64(), h.Get(a, 2).Int64(), h.Get(a, 3).Int64()}
	want := []int64{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("after InsertAt, elements = %v, want %v", got, want)
		}
	}

	removed := h.RemoveAt(a, 0)
	if removed.Int64() != 1 {
		t.Errorf("RemoveAt(0) = %d, want 1", removed.Int64())
	}
	if a.Array().Len() != 3 {
		t.Errorf("Len() after RemoveAt = %d, want 3", a.Array().Len())
	}
}

func TestArraySelfReferenceIsFatal(t *testing.T) {
	h := NewHeapCtx()
	a := h.NewArray(0)
	expectFatal(t, func() { h.Push(a, a) })
	expectFatal(t, func() { h.Fill(a, a) })
}

func TestArraySortStableAndLeavesMixedTypesInPlace(t *testing.T) {
	h := NewHeapCtx()
	a := h.NewArray(0)
	for _, v := range []Value{Int(3), Int(1), h.NewStr([]byte("x")), Int(2)} {
		h.Push(a, v)
	}
	h.Sort(a)

	// The Str element is incomparable with Int, so insertion stops at it:
	// the ints before it are sorted among themselves, and the int after it
	// stays where it is.
	n := a.Array().Len()
	if n != 4 {
		t.Fatalf("Len() = %d, want 4", n)
	}
	if got, want := Render(a), "[1, 3, x, 2]"; got != want {
		t.Errorf("after Sort, array = %q, want %q", got, want)
	}
}

func TestArraySortInts(t *testing.T) {
	h := NewHeapCtx()
	a := h.NewArray(0)
	for _, v := range []int64{5, 3, 1, 4, 2} {
		h.Push(a, Int(v))
	}
	h.Sort(a)
	want := []int64{1, 2, 3, 4, 5}
	for i, w := range want {
		if got := h.Get(a, i).Int64(); got != w {
			t.Errorf("element %d = %d, want %d", i, got, w)
		}
	}
}

func TestArraySliceClamps(t *testing.T) {
	h := NewHeapCtx()
	a := h.NewArray(0)
	for _, v := range []int64{10, 20, 30, 40, 50} {
		h.Push(a, Int(v))
	}
	got := h.Slice(a, 2, 100)
	if got.Array().Len() != 3 {
		t.Fatalf("Slice length = %d, want 3", got.Array().Len())
	}
	if h.Get(got, 0).Int64() != 30 {
		t.Errorf("Slice()[0] = %d, want 30", h.Get(got, 0).Int64())
	}
}

func TestArrayIndexOfAndContains(t *testing.T) {
	h := NewHeapCtx()
	a := h.NewArray(0)
	h.Push(a, Int(10))
	h.Push(a, Int(20))

	if !h.Contains(a, Int(20)) {
		t.Error("expected Contains(20) to be true")
	}
	if h.Contains(a, Int(30)) {
		t.Error("expected Contains(30) to be false")
	}
	if h.IndexOf(a, Int(20)) != 1 {
		t.Errorf("IndexOf(20) = %d, want 1", h.IndexOf(a, Int(20)))
	}
	if h.IndexOf(a, Int(99)) != -1 {
		t.Errorf("IndexOf(99) = %d, want -1", h.IndexOf(a, Int(99)))
	}
}

func TestArrayReverseAndClear(t *testing.T) {
	h := NewHeapCtx()
	a := h.NewArray(0)
	h.Push(a, Int(1))
	h.Push(a, Int(2))
	h.Push(a, Int(3))

	h.Reverse(a)
	want := []int64{3, 2, 1}
	for i, w := range want {
		if got := h.Get(a, i).Int64(); got != w {
			t.Errorf("after Reverse, element %d = %d, want %d", i, got, w)
		}
	}

	h.Clear(a)
	if a.Array().Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", a.Array().Len())
	}
}

func TestConcatArrays(t *testing.T) {
	h := NewHeapCtx()
	a := h.NewArray(0)
	h.Push(a, Int(1))
	b := h.NewArray(0)
	h.Push(b, Int(2))
	h.Push(b, Int(3))

	got := h.ConcatArrays(a, b)
	want := []int64{1, 2, 3}
	if got.Array().Len() != len(want) {
		t.Fatalf("ConcatArrays length = %d, want %d", got.Array().Len(), len(want))
	}
	for i, w := range want {
		if v := h.Get(got, i).Int64(); v != w {
			t.Errorf("element %d = %d, want %d", i, v, w)
		}
	}
}
