// Package exception implements the VM's TRY/THROW/CATCH unwind protocol
// (spec.md §4.E): a fixed-depth checkpoint stack, process-wide, with a
// control-flow return signaling the VM where to resume rather than a
// native Go panic — the same "bounded resource, named sentinel on
// overrun, caller-driven unwind" shape as js/js.go's RunContext timeout
// budget (there: a nanosecond deadline and ErrTimeout; here: a checkpoint
// count and a fatal stack-overflow error).
package exception

import (
	"fmt"
	"io"
	"strconv"

	"github.com/th3f0rk/betterpython/bpcore"
	"github.com/th3f0rk/betterpython/value"
)

// MaxDepth is the fixed exception-frame stack depth (spec.md §4.E).
const MaxDepth = 64

// Checkpoint records the VM stack/frame depth TRY captured at entry, so
// THROW's non-local transfer knows how far to unwind.
type Checkpoint struct {
	FrameDepth int
}

// Stack is the process-wide exception-frame stack. It is not safe for
// concurrent use across threads (spec.md §5 flags this explicitly); a
// single Stack is meant to be owned by one VM instance.
type Stack struct {
	frames           [MaxDepth]Checkpoint
	top              int
	CurrentException value.Value
	HasException     bool
}

// NewStack returns an empty checkpoint stack.
func NewStack() *Stack {
	return &Stack{}
}

// Depth reports how many checkpoints are currently pushed.
func (s *Stack) Depth() int { return s.top }

// Try pushes a checkpoint capturing the VM's current frame depth. A push
// past MaxDepth is a fatal error (spec.md §4.E: "stack overflow of the
// checkpoint stack is itself fatal"), not a guest-observable exception.
func (s *Stack) Try(frameDepth int) {
	if s.top >= MaxDepth {
		panic(bpcore.Fatalf("exception: checkpoint stack overflow (depth %d)", MaxDepth))
	}
	s.frames[s.top] = Checkpoint{FrameDepth: frameDepth}
	s.top++
}

// Throw sets current_exception/has_exception and pops the top checkpoint
// for the VM to unwind to. ok is false if the stack was empty, meaning
// the throw is uncaught and the VM should call ReportUncaught and halt.
func (s *Stack) Throw(v value.Value) (cp Checkpoint, ok bool) {
	s.CurrentException = v
	s.HasException = true
	if s.top == 0 {
		return Checkpoint{}, false
	}
	s.top--
	return s.frames[s.top], true
}

// Catch consumes current_exception and clears has_exception, returning
// the caught value to the guarded region's catch arm.
func (s *Stack) Catch() value.Value {
	v := s.CurrentException
	s.CurrentException = value.Null()
	s.HasException = false
	return v
}

// render implements spec.md §4.E's stderr formatting rule: string content
// if Str, decimal if Int, otherwise the literal "<unknown>".
func render(v value.Value) string {
	switch {
	case v.IsStr():
		return string(v.Str().Bytes())
	case v.IsInt():
		return strconv.FormatInt(v.Int64(), 10)
	default:
		return "<unknown>"
	}
}

// ReportUncaught prints the uncaught exception to w and returns the exit
// code the driver should terminate with (always 1, per spec.md §5's
// "unhandled exception -> exit 1 with stderr message").
func ReportUncaught(w io.Writer, v value.Value) int {
	fmt.Fprintf(w, "Unhandled exception: %s\n", render(v))
	return 1
}
