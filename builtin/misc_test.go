package builtin

import (
	"testing"

	"github.com/th3f0rk/betterpython/value"
)

func TestTypeOf(t *testing.T) {
	ctx := newTestContext()
	tests := []struct {
		v    value.Value
		want string
	}{
		{value.Int(1), "int"},
		{value.Float(1.5), "float"},
		{value.Bool(true), "bool"},
		{value.Null(), "null"},
		{strOf(ctx, "x"), "str"},
	}
	for _, tt := range tests {
		got := bytesOf(typeOf(ctx, []value.Value{tt.v}))
		if got != tt.want {
			t.Errorf("typeof(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestTagReadsFieldZero(t *testing.T) {
	ctx := newTestContext()
	s := ctx.H.NewStruct(2)
	ctx.H.StructSet(s, 0, value.Int(3))
	ctx.H.StructSet(s, 1, value.Int(99))
	got := tagOf(ctx, []value.Value{s})
	if got.Int64() != 3 {
		t.Fatalf("tag = %v, want 3", got)
	}
}

func TestArgvAndArgc(t *testing.T) {
	ctx := newTestContext()
	if got := argcBuiltin(ctx, nil).Int64(); got != int64(len(ctx.Argv)) {
		t.Fatalf("argc = %d, want %d", got, len(ctx.Argv))
	}
	got := bytesOf(argvBuiltin(ctx, []value.Value{value.Int(1)}))
	if got != ctx.Argv[1] {
		t.Fatalf("argv(1) = %q, want %q", got, ctx.Argv[1])
	}
}

func TestArgvOutOfRangeIsFatal(t *testing.T) {
	ctx := newTestContext()
	defer func() {
		if recover() == nil {
			t.Fatal("argv out of range did not panic")
		}
	}()
	argvBuiltin(ctx, []value.Value{value.Int(99)})
}

func TestExitSignalsViaContext(t *testing.T) {
	ctx := newTestContext()
	exitBuiltin(ctx, []value.Value{value.Int(7)})
	if !*ctx.Exiting || *ctx.ExitCode != 7 {
		t.Fatalf("exit(7) did not set Exiting/ExitCode: exiting=%v code=%d", *ctx.Exiting, *ctx.ExitCode)
	}
}

func TestParseIntBenignOnGarbage(t *testing.T) {
	ctx := newTestContext()
	got := parseInt(ctx, []value.Value{strOf(ctx, "not a number")})
	if !got.IsNull() {
		t.Fatalf("parse_int(garbage) = %v, want Null", got)
	}
	got = parseInt(ctx, []value.Value{strOf(ctx, "42")})
	if got.Int64() != 42 {
		t.Fatalf("parse_int(\"42\") = %v, want 42", got)
	}
}

func TestGetenvUsesContextHook(t *testing.T) {
	ctx := newTestContext()
	ctx.Getenv = func(name string) string {
		if name == "HOME" {
			return "/root"
		}
		return ""
	}
	got := bytesOf(getenvBuiltin(ctx, []value.Value{strOf(ctx, "HOME")}))
	if got != "/root" {
		t.Fatalf("getenv(HOME) = %q, want /root", got)
	}
}
