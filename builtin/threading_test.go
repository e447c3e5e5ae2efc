package builtin

import (
	"testing"
	"time"

	"github.com/th3f0rk/betterpython/value"
)

func TestMutexLockUnlockTrylock(t *testing.T) {
	ctx := newTestContext()
	h := mutexNew(ctx, nil)

	mutexLock(ctx, []value.Value{h})
	if mutexTrylock(ctx, []value.Value{h}).Bool() {
		t.Fatal("trylock succeeded on an already-locked mutex")
	}
	mutexUnlock(ctx, []value.Value{h})
	if !mutexTrylock(ctx, []value.Value{h}).Bool() {
		t.Fatal("trylock failed on an unlocked mutex")
	}
	mutexUnlock(ctx, []value.Value{h})
}

func TestCondSignalWakesWaiter(t *testing.T) {
	ctx := newTestContext()
	m := mutexNew(ctx, nil)
	c := condNew(ctx, []value.Value{m})

	woke := make(chan struct{})
	mutexLock(ctx, []value.Value{m})
	go func() {
		mutexLock(ctx, []value.Value{m})
		condWait(ctx, []value.Value{c})
		mutexUnlock(ctx, []value.Value{m})
		close(woke)
	}()
	// give the waiter time to block on cond_wait (which releases m)
	time.Sleep(20 * time.Millisecond)
	condSignal(ctx, []value.Value{c})
	mutexUnlock(ctx, []value.Value{m})

	select {
	case <-woke:
	case <-time.After(time.Second):
		t.Fatal("cond_signal did not wake the waiter")
	}
}

func TestThreadSpawnStubIsFatal(t *testing.T) {
	ctx := newTestContext()
	defer func() {
		if recover() == nil {
			t.Fatal("thread_spawn stub did not panic")
		}
	}()
	threadSpawn(ctx, nil)
}

func TestThreadJoinReturnsRegisteredResult(t *testing.T) {
	ctx := newTestContext()
	id, finish := RegisterThread()
	go finish(value.Int(42))

	got := threadJoin(ctx, []value.Value{value.Ptr(id)})
	if !got.IsInt() || got.Int64() != 42 {
		t.Fatalf("thread_join result = %v, want Int(42)", got)
	}
}

func TestThreadCurrentReflectsContext(t *testing.T) {
	ctx := newTestContext()
	ctx.ThreadID = 7
	got := threadCurrent(ctx, nil)
	if !got.IsPtr() || got.Handle() != 7 {
		t.Fatalf("thread_current = %v, want Ptr(7)", got)
	}
}
