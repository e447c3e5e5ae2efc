package value

import "testing"

func TestGenericHeapOrdersByLess(t *testing.T) {
	h := newGenericHeap(func(a, b int) bool { return a < b })
	for _, v := range []int{5, 3, 8, 1, 9, 2} {
		h.Push(v)
	}
	var out []int
	for h.Len() > 0 {
		v, ok := h.Pop()
		if !ok {
			t.Fatal("Pop reported empty while Len() > 0")
		}
		out = append(out, v)
	}
	want := []int{1, 2, 3, 5, 8, 9}
	for i, w := range want {
		if out[i] != w {
			t.Fatalf("out = %v, want %v", out, want)
		}
	}
}

func TestGenericHeapPopEmpty(t *testing.T) {
	h := newGenericHeap(func(a, b int) bool { return a < b })
	if _, ok := h.Pop(); ok {
		t.Error("expected Pop on empty heap to report false")
	}
}

func TestFreeQueueOrdersByAllocID(t *testing.T) {
	q := newFreeQueue()
	var order []uint64
	q.Push(pendingFree{id: 3, drop: func() { order = append(order, 3) }})
	q.Push(pendingFree{id: 1, drop: func() { order = append(order, 1) }})
	q.Push(pendingFree{id: 2, drop: func() { order = append(order, 2) }})
	for q.Len() > 0 {
		item, _ := q.Pop()
		item.drop()
	}
	want := []uint64{1, 2, 3}
	for i, w := range want {
		if order[i] != w {
			t.Fatalf("drop order = %v, want %v", order, want)
		}
	}
}
