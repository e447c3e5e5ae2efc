package exception

import (
	"bytes"
	"testing"

	"github.com/th3f0rk/betterpython/bpcore"
	"github.com/th3f0rk/betterpython/value"
)

func TestTryThrowCatchRoundTrip(t *testing.T) {
	s := NewStack()
	s.Try(3)
	if s.Depth() != 1 {
		t.Fatalf("Depth after Try = %d, want 1", s.Depth())
	}

	cp, ok := s.Throw(value.Int(42))
	if !ok {
		t.Fatal("Throw on non-empty stack reported uncaught")
	}
	if cp.FrameDepth != 3 {
		t.Fatalf("Throw checkpoint FrameDepth = %d, want 3", cp.FrameDepth)
	}
	if s.Depth() != 0 {
		t.Fatalf("Depth after Throw = %d, want 0", s.Depth())
	}
	if !s.HasException {
		t.Fatal("HasException = false after Throw")
	}

	caught := s.Catch()
	if caught.Int64() != 42 {
		t.Fatalf("Catch = %v, want 42", caught)
	}
	if s.HasException {
		t.Fatal("HasException = true after Catch")
	}
}

func TestThrowOnEmptyStackIsUncaught(t *testing.T) {
	s := NewStack()
	_, ok := s.Throw(value.Int(1))
	if ok {
		t.Fatal("Throw on empty stack reported caught")
	}
}

func TestTryOverflowIsFatal(t *testing.T) {
	s := NewStack()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a fatal panic on checkpoint stack overflow")
		}
		if err, ok := r.(error); !ok || !bpcore.IsFatal(err) {
			t.Fatalf("expected a *bpcore.FatalError panic, got %v", r)
		}
	}()
	for i := 0; i < MaxDepth+1; i++ {
		s.Try(i)
	}
}

func TestReportUncaughtFormatsByKind(t *testing.T) {
	tests := []struct {
		v    value.Value
		want string
	}{
		{value.Int(7), "Unhandled exception: 7\n"},
		{value.Bool(true), "Unhandled exception: <unknown>\n"},
		{value.Null(), "Unhandled exception: <unknown>\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		code := ReportUncaught(&buf, tt.v)
		if code != 1 {
			t.Fatalf("ReportUncaught exit code = %d, want 1", code)
		}
		if buf.String() != tt.want {
			t.Errorf("ReportUncaught(%v) = %q, want %q", tt.v, buf.String(), tt.want)
		}
	}
}

func TestReportUncaughtStrValue(t *testing.T) {
	h := value.NewHeapCtx()
	s := h.NewStr([]byte("boom"))
	var buf bytes.Buffer
	ReportUncaught(&buf, s)
	if got := buf.String(); got != "Unhandled exception: boom\n" {
		t.Fatalf("ReportUncaught(str) = %q", got)
	}
}

func TestDepthTracksNestedTry(t *testing.T) {
	s := NewStack()
	s.Try(1)
	s.Try(2)
	s.Try(3)
	if s.Depth() != 3 {
		t.Fatalf("Depth = %d, want 3", s.Depth())
	}
}
