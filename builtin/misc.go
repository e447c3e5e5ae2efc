package builtin

import (
	"strconv"
	"time"

	"github.com/th3f0rk/betterpython/bpcore"
	"github.com/th3f0rk/betterpython/value"
)

func typeOf(ctx *Context, args []value.Value) value.Value {
	return ctx.H.NewStr([]byte(value.TypeName(args[0])))
}

// tag reads field 0 of a Struct as its variant tag (spec.md §4.D's
// tagged-union discriminant).
func tagOf(ctx *Context, args []value.Value) value.Value {
	sv := wantStruct("tag", args, 0)
	return ctx.H.StructGet(sv, 0)
}

func argvBuiltin(ctx *Context, args []value.Value) value.Value {
	idx := wantInt("argv", args, 0)
	if idx < 0 || int(idx) >= len(ctx.Argv) {
		panic(bpcore.Fatalf("argv: index %d out of range [0,%d)", idx, len(ctx.Argv)))
	}
	return ctx.H.NewStr([]byte(ctx.Argv[idx]))
}

func argcBuiltin(ctx *Context, args []value.Value) value.Value {
	return value.Int(int64(len(ctx.Argv)))
}

func getenvBuiltin(ctx *Context, args []value.Value) value.Value {
	name := string(wantStr("getenv", args, 0).Str().Bytes())
	var v string
	if ctx.Getenv != nil {
		v = ctx.Getenv(name)
	}
	return ctx.H.NewStr([]byte(v))
}

func clockMsBuiltin(ctx *Context, args []value.Value) value.Value {
	if ctx.ClockMs != nil {
		return value.Int(ctx.ClockMs())
	}
	return value.Int(time.Now().UnixMilli())
}

// exitBuiltin signals the VM to halt cooperatively on return from this
// built-in, via exit_out/exiting_out rather than calling os.Exit directly
// (spec.md §5's "process-level terminator").
func exitBuiltin(ctx *Context, args []value.Value) value.Value {
	code := wantInt("exit", args, 0)
	*ctx.ExitCode = int(code)
	*ctx.Exiting = true
	return value.Null()
}

func sleepBuiltin(ctx *Context, args []value.Value) value.Value {
	ms := wantInt("sleep", args, 0)
	time.Sleep(time.Duration(ms) * time.Millisecond)
	return value.Null()
}

// parseInt returns Null (not a fatal error) on malformed input, matching
// the benign-default disposition spec.md §7 gives to other guest-observable
// parse failures.
func parseInt(ctx *Context, args []value.Value) value.Value {
	s := string(wantStr("parse_int", args, 0).Str().Bytes())
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return value.Null()
	}
	return value.Int(n)
}
