package builtin

import (
	"bytes"
	"strconv"

	"github.com/th3f0rk/betterpython/bpcore"
	"github.com/th3f0rk/betterpython/value"
)

func strUpper(ctx *Context, args []value.Value) value.Value {
	s := wantStr("str_upper", args, 0)
	return ctx.H.NewStr(bytes.ToUpper(s.Str().Bytes()))
}

func strLower(ctx *Context, args []value.Value) value.Value {
	s := wantStr("str_lower", args, 0)
	return ctx.H.NewStr(bytes.ToLower(s.Str().Bytes()))
}

func strTrim(ctx *Context, args []value.Value) value.Value {
	s := wantStr("str_trim", args, 0)
	return ctx.H.NewStr(bytes.TrimSpace(s.Str().Bytes()))
}

func strStartsWith(ctx *Context, args []value.Value) value.Value {
	s := wantStr("str_starts_with", args, 0)
	prefix := wantStr("str_starts_with", args, 1)
	return value.Bool(bytes.HasPrefix(s.Str().Bytes(), prefix.Str().Bytes()))
}

func strEndsWith(ctx *Context, args []value.Value) value.Value {
	s := wantStr("str_ends_with", args, 0)
	suffix := wantStr("str_ends_with", args, 1)
	return value.Bool(bytes.HasSuffix(s.Str().Bytes(), suffix.Str().Bytes()))
}

// strFind is shared by `find` and `index_of` (an alias per spec.md §4.B):
// byte index, -1 on miss, empty needle matches at 0.
func strFind(ctx *Context, args []value.Value) value.Value {
	s := wantStr("str_find", args, 0)
	needle := wantStr("str_find", args, 1)
	if needle.Str().Len() == 0 {
		return value.Int(0)
	}
	return value.Int(int64(bytes.Index(s.Str().Bytes(), needle.Str().Bytes())))
}

// strReplace replaces the first occurrence only (spec.md §9's chosen
// standardization between two source variants).
func strReplace(ctx *Context, args []value.Value) value.Value {
	s := wantStr("str_replace", args, 0)
	from := wantStr("str_replace", args, 1)
	to := wantStr("str_replace", args, 2)
	return ctx.H.NewStr(bytes.Replace(s.Str().Bytes(), from.Str().Bytes(), to.Str().Bytes(), 1))
}

func strReverse(ctx *Context, args []value.Value) value.Value {
	s := wantStr("str_reverse", args, 0).Str().Bytes()
	out := make([]byte, len(s))
	for i, b := range s {
		out[len(s)-1-i] = b
	}
	return ctx.H.NewStr(out)
}

// strRepeat rejects a count over 1000 (spec.md §4.B) as an argument-shape
// fatal error rather than silently clamping.
func strRepeat(ctx *Context, args []value.Value) value.Value {
	s := wantStr("str_repeat", args, 0)
	count := wantInt("str_repeat", args, 1)
	if count < 0 || count > 1000 {
		panic(bpcore.Fatalf("str_repeat: count %d out of range [0,1000]", count))
	}
	return ctx.H.NewStr(bytes.Repeat(s.Str().Bytes(), int(count)))
}

func padCycle(s []byte, width int, pad []byte, left bool) []byte {
	need := width - len(s)
	if need <= 0 || len(pad) == 0 {
		return s
	}
	filler := make([]byte, need)
	for i := range filler {
		filler[i] = pad[i%len(pad)]
	}
	if left {
		return append(filler, s...)
	}
	out := make([]byte, 0, len(s)+need)
	out = append(out, s...)
	return append(out, filler...)
}

func strPadLeft(ctx *Context, args []value.Value) value.Value {
	s := wantStr("str_pad_left", args, 0)
	width := wantInt("str_pad_left", args, 1)
	pad := wantStr("str_pad_left", args, 2)
	return ctx.H.NewStr(padCycle(s.Str().Bytes(), int(width), pad.Str().Bytes(), true))
}

func strPadRight(ctx *Context, args []value.Value) value.Value {
	s := wantStr("str_pad_right", args, 0)
	width := wantInt("str_pad_right", args, 1)
	pad := wantStr("str_pad_right", args, 2)
	return ctx.H.NewStr(padCycle(s.Str().Bytes(), int(width), pad.Str().Bytes(), false))
}

func strContains(ctx *Context, args []value.Value) value.Value {
	s := wantStr("str_contains", args, 0)
	needle := wantStr("str_contains", args, 1)
	return value.Bool(bytes.Contains(s.Str().Bytes(), needle.Str().Bytes()))
}

// strCount counts non-overlapping occurrences.
func strCount(ctx *Context, args []value.Value) value.Value {
	s := wantStr("str_count", args, 0)
	needle := wantStr("str_count", args, 1)
	return value.Int(int64(bytes.Count(s.Str().Bytes(), needle.Str().Bytes())))
}

// strCharAt returns a 1-byte Str, or empty Str on out-of-range (a benign
// default, unlike array indexing).
func strCharAt(ctx *Context, args []value.Value) value.Value {
	s := wantStr("str_char_at", args, 0)
	idx := wantInt("str_char_at", args, 1)
	b := s.Str().Bytes()
	if idx < 0 || int(idx) >= len(b) {
		return ctx.H.NewStr(nil)
	}
	return ctx.H.NewStr(b[idx : idx+1])
}

// strChr accepts only 0..127 (spec.md §4.B); anything else is fatal.
func strChr(ctx *Context, args []value.Value) value.Value {
	code := wantInt("chr", args, 0)
	if code < 0 || code > 127 {
		panic(bpcore.Fatalf("chr: code point %d out of range [0,127]", code))
	}
	return ctx.H.NewStr([]byte{byte(code)})
}

// strOrd returns the first byte's value.
func strOrd(ctx *Context, args []value.Value) value.Value {
	s := wantStr("ord", args, 0).Str().Bytes()
	if len(s) == 0 {
		panic(bpcore.Fatalf("ord: empty string has no first byte"))
	}
	return value.Int(int64(s[0]))
}

func intToHex(ctx *Context, args []value.Value) value.Value {
	i := wantInt("int_to_hex", args, 0)
	return ctx.H.NewStr([]byte(strconv.FormatInt(i, 16)))
}

func hexToInt(ctx *Context, args []value.Value) value.Value {
	s := wantStr("hex_to_int", args, 0)
	n, err := strconv.ParseInt(string(s.Str().Bytes()), 16, 64)
	if err != nil {
		panic(bpcore.Fatalf("hex_to_int: invalid hex literal %q", s.Str().Bytes()))
	}
	return value.Int(n)
}

// strSplit splits on a separator; an empty separator splits per-byte
// (spec.md §4.B).
func strSplit(ctx *Context, args []value.Value) value.Value {
	s := wantStr("split_str", args, 0).Str().Bytes()
	sep := wantStr("split_str", args, 1).Str().Bytes()

	out := ctx.H.NewArray(0)
	if len(sep) == 0 {
		for _, b := range s {
			ctx.H.Push(out, ctx.H.NewStr([]byte{b}))
		}
		return out
	}
	for _, part := range bytes.Split(s, sep) {
		ctx.H.Push(out, ctx.H.NewStr(part))
	}
	return out
}

// strJoinArr joins an array of Str values with a separator.
func strJoinArr(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("join_arr", args, 0)
	sep := wantStr("join_arr", args, 1).Str().Bytes()

	a := arr.Array()
	parts := make([][]byte, a.Len())
	for i := 0; i < a.Len(); i++ {
		el := a.At(i)
		if !el.IsStr() {
			panic(bpcore.Fatalf("join_arr: element %d is not a str", i))
		}
		parts[i] = el.Str().Bytes()
	}
	return ctx.H.NewStr(bytes.Join(parts, sep))
}

// strConcatAll concatenates a variadic list of Str arguments.
func strConcatAll(ctx *Context, args []value.Value) value.Value {
	var buf bytes.Buffer
	for i, a := range args {
		if !a.IsStr() {
			panic(argShapeError("concat_all", i, "str", a))
		}
		buf.Write(a.Str().Bytes())
	}
	return ctx.H.NewStr(buf.Bytes())
}

// strFromChars builds a Str from an array of single-byte code points.
func strFromChars(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("str_from_chars", args, 0).Array()
	out := make([]byte, arr.Len())
	for i := 0; i < arr.Len(); i++ {
		el := arr.At(i)
		if !el.IsInt() {
			panic(bpcore.Fatalf("str_from_chars: element %d is not an int", i))
		}
		out[i] = byte(el.Int64())
	}
	return ctx.H.NewStr(out)
}

// strBytes returns an array of ints, one per byte.
func strBytes(ctx *Context, args []value.Value) value.Value {
	b := wantStr("str_bytes", args, 0).Str().Bytes()
	out := ctx.H.NewArray(len(b))
	for _, c := range b {
		ctx.H.Push(out, value.Int(int64(c)))
	}
	return out
}
