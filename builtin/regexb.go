package builtin

import (
	"regexp"

	"github.com/th3f0rk/betterpython/value"
)

// No third-party regex engine appears anywhere in the retrieved corpus
// (the teacher and every other example use stdlib regexp); POSIX extended
// semantics map directly onto regexp.CompilePOSIX, so compilations stay
// per-call as spec.md §5 requires ("regex compilations are per-call, not
// cached").

func compilePOSIX(pattern []byte) (*regexp.Regexp, bool) {
	re, err := regexp.CompilePOSIX(string(pattern))
	return re, err == nil
}

// regexMatch checks for any match, not full-string anchoring.
func regexMatch(ctx *Context, args []value.Value) value.Value {
	pattern := wantStr("regex_match", args, 0).Str().Bytes()
	input := wantStr("regex_match", args, 1).Str().Bytes()
	re, ok := compilePOSIX(pattern)
	if !ok {
		return value.Bool(false)
	}
	return value.Bool(re.Match(input))
}

// regexSearch returns the byte offset of the first match, or -1.
func regexSearch(ctx *Context, args []value.Value) value.Value {
	pattern := wantStr("regex_search", args, 0).Str().Bytes()
	input := wantStr("regex_search", args, 1).Str().Bytes()
	re, ok := compilePOSIX(pattern)
	if !ok {
		return value.Int(-1)
	}
	loc := re.FindIndex(input)
	if loc == nil {
		return value.Int(-1)
	}
	return value.Int(int64(loc[0]))
}

// regexReplace replaces all non-overlapping matches with a literal
// replacement (spec.md §9 standardizes on all-matches); a zero-length
// match advances by one byte to avoid looping forever.
func regexReplace(ctx *Context, args []value.Value) value.Value {
	pattern := wantStr("regex_replace", args, 0).Str().Bytes()
	input := wantStr("regex_replace", args, 1).Str().Bytes()
	repl := wantStr("regex_replace", args, 2).Str().Bytes()
	re, ok := compilePOSIX(pattern)
	if !ok {
		return ctx.H.NewStr(input)
	}
	var out []byte
	pos := 0
	for pos <= len(input) {
		loc := re.FindIndex(input[pos:])
		if loc == nil {
			out = append(out, input[pos:]...)
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		out = append(out, input[pos:start]...)
		out = append(out, repl...)
		if end == start {
			if end < len(input) {
				out = append(out, input[end])
			}
			pos = end + 1
		} else {
			pos = end
		}
	}
	return ctx.H.NewStr(out)
}

// regexSplit splits input on matches of pattern; an invalid pattern yields
// a singleton array holding the unmodified input.
func regexSplit(ctx *Context, args []value.Value) value.Value {
	pattern := wantStr("regex_split", args, 0).Str().Bytes()
	input := wantStr("regex_split", args, 1).Str().Bytes()
	re, ok := compilePOSIX(pattern)
	out := ctx.H.NewArray(0)
	if !ok {
		ctx.H.Push(out, ctx.H.NewStr(input))
		return out
	}
	pos := 0
	for pos <= len(input) {
		loc := re.FindIndex(input[pos:])
		if loc == nil {
			ctx.H.Push(out, ctx.H.NewStr(input[pos:]))
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		ctx.H.Push(out, ctx.H.NewStr(input[pos:start]))
		if end == start {
			end++
		}
		pos = end
	}
	return out
}

// regexFindAll returns every non-overlapping match; invalid pattern yields
// an empty array.
func regexFindAll(ctx *Context, args []value.Value) value.Value {
	pattern := wantStr("regex_find_all", args, 0).Str().Bytes()
	input := wantStr("regex_find_all", args, 1).Str().Bytes()
	out := ctx.H.NewArray(0)
	re, ok := compilePOSIX(pattern)
	if !ok {
		return out
	}
	for _, m := range re.FindAll(input, -1) {
		ctx.H.Push(out, ctx.H.NewStr(m))
	}
	return out
}
