// Package concurrency implements the VM's thread, mutex and condition
// variable primitives (spec.md §4.F): OS-level threads exposed to guest
// code as opaque Ptr handles into side tables, rather than raw addresses,
// so lifetime and thread-safety stay under the runtime's control.
package concurrency

import (
	"sync"

	"github.com/th3f0rk/betterpython/bpcore"
)

// Handle is the side-table key carried inside a guest-visible Ptr value.
type Handle int64

var (
	nextHandle int64
	handleMu   sync.Mutex
)

func allocHandle() Handle {
	handleMu.Lock()
	defer handleMu.Unlock()
	nextHandle++
	return Handle(nextHandle)
}

// Thread tracks a spawned goroutine's completion, grounded on
// digest.go's goroutine-plus-done-channel pattern (there: nonce cleanup;
// here: join semantics).
type Thread struct {
	done   chan struct{}
	result any
	Joined bool
}

var threads = bpcore.NewSyncMap[Handle, *Thread]()

// Spawn registers a new thread handle and returns it along with the
// finish callback the VM's thread_spawn opcode calls once the guest
// closure running on the new goroutine returns.
func Spawn() (Handle, func(result any)) {
	id := allocHandle()
	th := &Thread{done: make(chan struct{})}
	threads.Set(id, th)
	return id, func(result any) {
		th.result = result
		close(th.done)
	}
}

func Lookup(id Handle) (*Thread, bool) { return threads.Get(id) }

// Join blocks until the thread finishes and returns its result.
func Join(id Handle) (any, error) {
	th, ok := threads.Get(id)
	if !ok {
		return nil, bpcore.Fatalf("thread_join: unknown thread handle")
	}
	<-th.done
	th.Joined = true
	return th.result, nil
}

// Detach discards the join handle; it does not stop the thread
// (spec.md §5: cancellation is not supported).
func Detach(id Handle) {
	threads.Del(id)
}

var mutexes = bpcore.NewSyncMap[Handle, *sync.Mutex]()

// NewMutex allocates a non-recursive mutex and returns its handle.
func NewMutex() Handle {
	id := allocHandle()
	mutexes.Set(id, &sync.Mutex{})
	return id
}

func lookupMutex(id Handle) (*sync.Mutex, error) {
	m, ok := mutexes.Get(id)
	if !ok {
		return nil, bpcore.Fatalf("mutex: unknown handle")
	}
	return m, nil
}

func MutexLock(id Handle) error {
	m, err := lookupMutex(id)
	if err != nil {
		return err
	}
	m.Lock()
	return nil
}

func MutexTryLock(id Handle) (bool, error) {
	m, err := lookupMutex(id)
	if err != nil {
		return false, err
	}
	return m.TryLock(), nil
}

func MutexUnlock(id Handle) error {
	m, err := lookupMutex(id)
	if err != nil {
		return err
	}
	m.Unlock()
	return nil
}

var conds = bpcore.NewSyncMap[Handle, *sync.Cond]()

// NewCond associates a condition variable with an existing mutex handle,
// following storage/queue.go's sync.NewCond(mut) pairing.
func NewCond(mutexID Handle) (Handle, error) {
	m, err := lookupMutex(mutexID)
	if err != nil {
		return 0, err
	}
	id := allocHandle()
	conds.Set(id, sync.NewCond(m))
	return id, nil
}

func lookupCond(id Handle) (*sync.Cond, error) {
	c, ok := conds.Get(id)
	if !ok {
		return nil, bpcore.Fatalf("cond: unknown handle")
	}
	return c, nil
}

func CondWait(id Handle) error {
	c, err := lookupCond(id)
	if err != nil {
		return err
	}
	c.Wait()
	return nil
}

func CondSignal(id Handle) error {
	c, err := lookupCond(id)
	if err != nil {
		return err
	}
	c.Signal()
	return nil
}

func CondBroadcast(id Handle) error {
	c, err := lookupCond(id)
	if err != nil {
		return err
	}
	c.Broadcast()
	return nil
}
