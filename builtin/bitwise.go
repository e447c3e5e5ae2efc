package builtin

import "github.com/th3f0rk/betterpython/value"

func bitAnd(ctx *Context, args []value.Value) value.Value {
	return value.Int(wantInt("band", args, 0) & wantInt("band", args, 1))
}

func bitOr(ctx *Context, args []value.Value) value.Value {
	return value.Int(wantInt("bor", args, 0) | wantInt("bor", args, 1))
}

func bitXor(ctx *Context, args []value.Value) value.Value {
	return value.Int(wantInt("bxor", args, 0) ^ wantInt("bxor", args, 1))
}

func bitNot(ctx *Context, args []value.Value) value.Value {
	return value.Int(^wantInt("bnot", args, 0))
}

func bitShl(ctx *Context, args []value.Value) value.Value {
	return value.Int(wantInt("bshl", args, 0) << uint(wantInt("bshl", args, 1)))
}

func bitShr(ctx *Context, args []value.Value) value.Value {
	return value.Int(wantInt("bshr", args, 0) >> uint(wantInt("bshr", args, 1)))
}
