package builtin

import (
	"runtime"
	"time"

	"github.com/th3f0rk/betterpython/bpcore"
	"github.com/th3f0rk/betterpython/concurrency"
	"github.com/th3f0rk/betterpython/value"
)

// Threading built-ins are thin, shape-checked wrappers over the
// concurrency package (Component F): the handle tables, goroutine
// bookkeeping and sync primitives live there, not here.

// RegisterThread exposes concurrency.Spawn under the Value-shaped result
// the VM's thread_spawn opcode needs (it is the only caller with access to
// the captured closure context, per spec.md §4.F).
func RegisterThread() (int64, func(value.Value)) {
	id, finish := concurrency.Spawn()
	return int64(id), func(result value.Value) { finish(result) }
}

// threadSpawn is unreachable from ordinary dispatch: spawning a guest
// closure needs the caller frame's captured context, which only a VM
// opcode has access to. The pure built-in stub exists only to fail loudly
// if the compiler ever wires "thread_spawn" to Dispatch by mistake.
func threadSpawn(ctx *Context, args []value.Value) value.Value {
	panic(bpcore.Fatalf("thread_spawn: must be compiled to a VM opcode, not dispatched as a plain built-in"))
}

func threadCurrent(ctx *Context, args []value.Value) value.Value {
	return value.Ptr(ctx.ThreadID)
}

func threadYield(ctx *Context, args []value.Value) value.Value {
	runtime.Gosched()
	return value.Null()
}

func threadSleep(ctx *Context, args []value.Value) value.Value {
	ms := wantInt("thread_sleep", args, 0)
	time.Sleep(time.Duration(ms) * time.Millisecond)
	return value.Null()
}

func threadJoin(ctx *Context, args []value.Value) value.Value {
	handle := wantPtr("thread_join", args, 0)
	result, err := concurrency.Join(concurrency.Handle(handle))
	if err != nil {
		panic(err)
	}
	v, _ := result.(value.Value)
	return v
}

func threadDetach(ctx *Context, args []value.Value) value.Value {
	handle := wantPtr("thread_detach", args, 0)
	concurrency.Detach(concurrency.Handle(handle))
	return value.Null()
}

func mutexNew(ctx *Context, args []value.Value) value.Value {
	return value.Ptr(int64(concurrency.NewMutex()))
}

func mutexLock(ctx *Context, args []value.Value) value.Value {
	handle := wantPtr("mutex_lock", args, 0)
	if err := concurrency.MutexLock(concurrency.Handle(handle)); err != nil {
		panic(err)
	}
	return value.Null()
}

func mutexTrylock(ctx *Context, args []value.Value) value.Value {
	handle := wantPtr("mutex_trylock", args, 0)
	ok, err := concurrency.MutexTryLock(concurrency.Handle(handle))
	if err != nil {
		panic(err)
	}
	return value.Bool(ok)
}

func mutexUnlock(ctx *Context, args []value.Value) value.Value {
	handle := wantPtr("mutex_unlock", args, 0)
	if err := concurrency.MutexUnlock(concurrency.Handle(handle)); err != nil {
		panic(err)
	}
	return value.Null()
}

func condNew(ctx *Context, args []value.Value) value.Value {
	handle := wantPtr("cond_new", args, 0)
	id, err := concurrency.NewCond(concurrency.Handle(handle))
	if err != nil {
		panic(err)
	}
	return value.Ptr(int64(id))
}

func condWait(ctx *Context, args []value.Value) value.Value {
	handle := wantPtr("cond_wait", args, 0)
	if err := concurrency.CondWait(concurrency.Handle(handle)); err != nil {
		panic(err)
	}
	return value.Null()
}

func condSignal(ctx *Context, args []value.Value) value.Value {
	handle := wantPtr("cond_signal", args, 0)
	if err := concurrency.CondSignal(concurrency.Handle(handle)); err != nil {
		panic(err)
	}
	return value.Null()
}

func condBroadcast(ctx *Context, args []value.Value) value.Value {
	handle := wantPtr("cond_broadcast", args, 0)
	if err := concurrency.CondBroadcast(concurrency.Handle(handle)); err != nil {
		panic(err)
	}
	return value.Null()
}
