// Package builtin implements the VM's closed-set primitive dispatch layer:
// roughly 150 named operations reachable from one entry point, grounded on
// the teacher's string/digest/crypto helpers and its glue-style argument
// shape checking.
package builtin

import (
	"sort"

	"github.com/th3f0rk/betterpython/bpcore"
	"github.com/th3f0rk/betterpython/value"
)

// ID identifies a built-in by its closed-set dispatch number, the VM's
// equivalent of a syscall number.
type ID int

// Context bundles the per-process state a built-in may need beyond its
// arguments: the managed heap, process argv/env, the clock, the exit
// signal the VM polls after each dispatch call, and the LCG random state
// (process-wide and not thread-safe, per spec).
type Context struct {
	H         *value.HeapCtx
	Argv      []string
	Getenv    func(string) string
	ClockMs   func() int64
	ExitCode  *int
	Exiting   *bool
	RandState *int64
	ThreadID  int64
}

// NewContext wires a Context to the real environment; tests construct
// their own with injected Getenv/ClockMs/RandState.
func NewContext(h *value.HeapCtx, argv []string) *Context {
	var state int64 = 1
	return &Context{
		H:         h,
		Argv:      argv,
		ExitCode:  new(int),
		Exiting:   new(bool),
		RandState: &state,
	}
}

type fn func(ctx *Context, args []value.Value) value.Value

type entry struct {
	name  string
	arity int // -1 means variadic; validated by the individual built-in instead
	call  fn
}

// Dispatch is the VM's single call-in point: `call(id, args, argc,
// heap_ctx, exit_out, exiting_out) -> Value` from spec.md §4.B. It never
// recovers a fatal panic itself — per spec.md §7 a built-in argument-shape
// or bounds violation is a programmer error in guest code that only the
// driver (or, here, the netshell per-connection handler) is positioned to
// report and terminate on.
func Dispatch(ctx *Context, id ID, args []value.Value) value.Value {
	e, ok := dispatchTable[id]
	if !ok {
		panic(bpcore.Fatalf("builtin: unknown dispatch id %d", id))
	}
	if e.arity >= 0 && len(args) != e.arity {
		panic(argCountError(e.name, e.arity, len(args)))
	}
	return e.call(ctx, args)
}

// Name returns the built-in's guest-visible name, used by diagnostics and
// by dispatch-table-driven tests.
func Name(id ID) string {
	if e, ok := dispatchTable[id]; ok {
		return e.name
	}
	return "<unknown>"
}

var nameToID = func() map[string]ID {
	m := make(map[string]ID, len(dispatchTable))
	for id, e := range dispatchTable {
		m[e.name] = id
	}
	return m
}()

// ByName is the inverse of Name, used by cmd/betterpython-netshell's
// per-connection REPL to resolve a typed command to a dispatch ID without
// requiring a compiler in front of it.
func ByName(name string) (ID, bool) {
	id, ok := nameToID[name]
	return id, ok
}

// Names returns every registered built-in's guest-visible name, sorted,
// for the netshell's "help" listing.
func Names() []string {
	names := make([]string, 0, len(dispatchTable))
	for _, e := range dispatchTable {
		names = append(names, e.name)
	}
	sort.Strings(names)
	return names
}
