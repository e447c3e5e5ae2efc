package builtin

import (
	"github.com/th3f0rk/betterpython/bpcore"
	"github.com/th3f0rk/betterpython/value"
)

// lcgNext advances the process-wide LCG state and extracts a value in
// [0, 32768), per spec.md §4.B. The state pointer lives on Context rather
// than a package global since Context owns all process-wide mutable state;
// callers are responsible for not sharing one Context unsynchronized
// across threads (spec.md §4.F: "LCG random state is process-wide and not
// thread-safe by contract").
func lcgNext(state *int64) int64 {
	u := uint64(*state)*1103515245 + 12345
	*state = int64(u)
	return int64((u / 65536) % 32768)
}

func randInt(ctx *Context, args []value.Value) value.Value {
	return value.Int(lcgNext(ctx.RandState))
}

func randSeed(ctx *Context, args []value.Value) value.Value {
	*ctx.RandState = wantInt("rand_seed", args, 0)
	return value.Null()
}

// randRange standardizes on LCG per spec.md §9's open question:
// lo + lcg_next() % (hi-lo).
func randRange(ctx *Context, args []value.Value) value.Value {
	lo := wantInt("rand_range", args, 0)
	hi := wantInt("rand_range", args, 1)
	if hi <= lo {
		panic(bpcore.Fatalf("rand_range: hi (%d) must be greater than lo (%d)", hi, lo))
	}
	return value.Int(lo + lcgNext(ctx.RandState)%(hi-lo))
}
