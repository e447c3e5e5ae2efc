package builtin

import (
	"math"

	"github.com/th3f0rk/betterpython/value"
)

func intAbs(ctx *Context, args []value.Value) value.Value {
	i := wantInt("iabs", args, 0)
	if i < 0 {
		i = -i
	}
	return value.Int(i)
}

func intMin(ctx *Context, args []value.Value) value.Value {
	a, b := wantInt("imin", args, 0), wantInt("imin", args, 1)
	if a < b {
		return value.Int(a)
	}
	return value.Int(b)
}

func intMax(ctx *Context, args []value.Value) value.Value {
	a, b := wantInt("imax", args, 0), wantInt("imax", args, 1)
	if a > b {
		return value.Int(a)
	}
	return value.Int(b)
}

func intPow(ctx *Context, args []value.Value) value.Value {
	base, exp := wantInt("ipow", args, 0), wantInt("ipow", args, 1)
	var r int64 = 1
	for ; exp > 0; exp-- {
		r *= base
	}
	return value.Int(r)
}

func intSqrt(ctx *Context, args []value.Value) value.Value {
	i := wantInt("isqrt", args, 0)
	return value.Int(int64(math.Sqrt(float64(i))))
}

// intFloor/intCeil/intRound are identity on int (spec.md §4.B).
func intFloor(ctx *Context, args []value.Value) value.Value { return value.Int(wantInt("ifloor", args, 0)) }
func intCeil(ctx *Context, args []value.Value) value.Value  { return value.Int(wantInt("iceil", args, 0)) }
func intRound(ctx *Context, args []value.Value) value.Value { return value.Int(wantInt("iround", args, 0)) }

func intClamp(ctx *Context, args []value.Value) value.Value {
	v := wantInt("iclamp", args, 0)
	lo := wantInt("iclamp", args, 1)
	hi := wantInt("iclamp", args, 2)
	if v < lo {
		return value.Int(lo)
	}
	if v > hi {
		return value.Int(hi)
	}
	return value.Int(v)
}

func intSign(ctx *Context, args []value.Value) value.Value {
	i := wantInt("isign", args, 0)
	switch {
	case i > 0:
		return value.Int(1)
	case i < 0:
		return value.Int(-1)
	default:
		return value.Int(0)
	}
}

func floatUnary(name string, f func(float64) float64) fn {
	return func(ctx *Context, args []value.Value) value.Value {
		return value.Float(f(wantFloat(name, args, 0)))
	}
}

var (
	fabs   = floatUnary("fabs", math.Abs)
	fsin   = floatUnary("fsin", math.Sin)
	fcos   = floatUnary("fcos", math.Cos)
	ftan   = floatUnary("ftan", math.Tan)
	fasin  = floatUnary("fasin", math.Asin)
	facos  = floatUnary("facos", math.Acos)
	fatan  = floatUnary("fatan", math.Atan)
	fsqrt  = floatUnary("fsqrt", math.Sqrt)
	flog   = floatUnary("flog", math.Log)
	flog10 = floatUnary("flog10", math.Log10)
	fexp   = floatUnary("fexp", math.Exp)
	ffloor = floatUnary("ffloor", math.Floor)
	fceil  = floatUnary("fceil", math.Ceil)
	fround = floatUnary("fround", math.Round)
)

func fpow(ctx *Context, args []value.Value) value.Value {
	base := wantFloat("fpow", args, 0)
	exp := wantFloat("fpow", args, 1)
	return value.Float(math.Pow(base, exp))
}

func fmin(ctx *Context, args []value.Value) value.Value {
	return value.Float(math.Min(wantFloat("fmin", args, 0), wantFloat("fmin", args, 1)))
}

func fmax(ctx *Context, args []value.Value) value.Value {
	return value.Float(math.Max(wantFloat("fmax", args, 0), wantFloat("fmax", args, 1)))
}

func intToFloat(ctx *Context, args []value.Value) value.Value {
	return value.Float(float64(wantInt("int_to_float", args, 0)))
}

func floatToInt(ctx *Context, args []value.Value) value.Value {
	return value.Int(int64(wantFloat("float_to_int", args, 0)))
}

func isNan(ctx *Context, args []value.Value) value.Value {
	return value.Bool(math.IsNaN(wantFloat("is_nan", args, 0)))
}

func isInf(ctx *Context, args []value.Value) value.Value {
	return value.Bool(math.IsInf(wantFloat("is_inf", args, 0), 0))
}
