package builtin

import (
	"testing"

	"github.com/th3f0rk/betterpython/value"
)

func TestJsonParseIntVsFloatLane(t *testing.T) {
	ctx := newTestContext()
	i := jsonParseBuiltin(ctx, []value.Value{strOf(ctx, "42")})
	if !i.IsInt() || i.Int64() != 42 {
		t.Fatalf("json_parse(42) = %v, want int 42", i)
	}
	f := jsonParseBuiltin(ctx, []value.Value{strOf(ctx, "42.5")})
	if !f.IsFloat() || f.Float64() != 42.5 {
		t.Fatalf("json_parse(42.5) = %v, want float 42.5", f)
	}
	e := jsonParseBuiltin(ctx, []value.Value{strOf(ctx, "4e2")})
	if !e.IsFloat() || e.Float64() != 400 {
		t.Fatalf("json_parse(4e2) = %v, want float 400", e)
	}
	neg := jsonParseBuiltin(ctx, []value.Value{strOf(ctx, "-7")})
	if !neg.IsInt() || neg.Int64() != -7 {
		t.Fatalf("json_parse(-7) = %v, want int -7", neg)
	}
}

func TestJsonParseLiteralsAndStrings(t *testing.T) {
	ctx := newTestContext()
	if got := jsonParseBuiltin(ctx, []value.Value{strOf(ctx, "true")}); !got.IsBool() || !got.Bool() {
		t.Fatalf("json_parse(true) = %v", got)
	}
	if got := jsonParseBuiltin(ctx, []value.Value{strOf(ctx, "false")}); !got.IsBool() || got.Bool() {
		t.Fatalf("json_parse(false) = %v", got)
	}
	if got := jsonParseBuiltin(ctx, []value.Value{strOf(ctx, "null")}); !got.IsNull() {
		t.Fatalf("json_parse(null) = %v", got)
	}
	got := bytesOf(jsonParseBuiltin(ctx, []value.Value{strOf(ctx, `"hi"`)}))
	if got != "hi" {
		t.Fatalf("json_parse(\"hi\") = %q, want hi", got)
	}
}

func TestJsonParseNonAsciiUnicodeEscapeRendersAsQuestionMark(t *testing.T) {
	ctx := newTestContext()
	got := bytesOf(jsonParseBuiltin(ctx, []value.Value{strOf(ctx, "\"\\u00e9\"")}))
	if got != "?" {
		t.Fatalf("json_parse(\"\\u00e9\") = %q, want \"?\"", got)
	}
}

func TestJsonParseAsciiUnicodeEscapePassesThrough(t *testing.T) {
	ctx := newTestContext()
	got := bytesOf(jsonParseBuiltin(ctx, []value.Value{strOf(ctx, "\"\\u0041\"")}))
	if got != "A" {
		t.Fatalf("json_parse(\"\\u0041\") = %q, want A", got)
	}
}

func TestJsonParseArrayAndObject(t *testing.T) {
	ctx := newTestContext()
	arr := jsonParseBuiltin(ctx, []value.Value{strOf(ctx, "[1,2,3]")}).Array()
	if arr.Len() != 3 || arr.At(1).Int64() != 2 {
		t.Fatalf("json_parse array = %v", arr)
	}
	obj := jsonParseBuiltin(ctx, []value.Value{strOf(ctx, `{"a":1,"b":2}`)})
	if !obj.IsMap() {
		t.Fatalf("json_parse object = %v, want a map", obj)
	}
	got := mapGet(ctx, []value.Value{obj, strOf(ctx, "a")}).Int64()
	if got != 1 {
		t.Fatalf("json_parse object field a = %d, want 1", got)
	}
}

func TestJsonParseTrailingDataIsFatal(t *testing.T) {
	ctx := newTestContext()
	defer func() {
		if recover() == nil {
			t.Fatal("json_parse with trailing data did not panic")
		}
	}()
	jsonParseBuiltin(ctx, []value.Value{strOf(ctx, "1 2")})
}

func TestJsonParseUnterminatedStringIsFatal(t *testing.T) {
	ctx := newTestContext()
	defer func() {
		if recover() == nil {
			t.Fatal("json_parse with an unterminated string did not panic")
		}
	}()
	jsonParseBuiltin(ctx, []value.Value{strOf(ctx, `"abc`)})
}

func TestJsonStringifyScalarsAndEscapes(t *testing.T) {
	ctx := newTestContext()
	if got := bytesOf(jsonStringifyBuiltin(ctx, []value.Value{value.Int(42)})); got != "42" {
		t.Fatalf("json_stringify(42) = %q, want 42", got)
	}
	if got := bytesOf(jsonStringifyBuiltin(ctx, []value.Value{value.Bool(true)})); got != "true" {
		t.Fatalf("json_stringify(true) = %q, want true", got)
	}
	if got := bytesOf(jsonStringifyBuiltin(ctx, []value.Value{value.Null()})); got != "null" {
		t.Fatalf("json_stringify(null) = %q, want null", got)
	}
	got := bytesOf(jsonStringifyBuiltin(ctx, []value.Value{strOf(ctx, "a\"b\\c\nd")}))
	want := `"a\"b\\c\nd"`
	if got != want {
		t.Fatalf("json_stringify(escapes) = %q, want %q", got, want)
	}
}

func TestJsonStringifyArrayAndMap(t *testing.T) {
	ctx := newTestContext()
	arr := ctx.H.NewArray(0)
	ctx.H.Push(arr, value.Int(1))
	ctx.H.Push(arr, value.Int(2))
	if got := bytesOf(jsonStringifyBuiltin(ctx, []value.Value{arr})); got != "[1,2]" {
		t.Fatalf("json_stringify(array) = %q, want [1,2]", got)
	}

	m := ctx.H.NewMap(0)
	mapSet(ctx, []value.Value{m, strOf(ctx, "a"), value.Int(1)})
	if got := bytesOf(jsonStringifyBuiltin(ctx, []value.Value{m})); got != `{"a":1}` {
		t.Fatalf("json_stringify(map) = %q, want {\"a\":1}", got)
	}
}

func TestJsonStringifyRoundTripsThroughParse(t *testing.T) {
	ctx := newTestContext()
	original := jsonParseBuiltin(ctx, []value.Value{strOf(ctx, `{"x":[1,2.5,"s"]}`)})
	got := bytesOf(jsonStringifyBuiltin(ctx, []value.Value{original}))
	reparsed := jsonParseBuiltin(ctx, []value.Value{strOf(ctx, got)})
	if !reparsed.IsMap() {
		t.Fatalf("re-parsed json_stringify output is not a map: %v", reparsed)
	}
}

func TestJsonStringifyNonRepresentableIsFatal(t *testing.T) {
	ctx := newTestContext()
	defer func() {
		if recover() == nil {
			t.Fatal("json_stringify of a struct did not panic")
		}
	}()
	jsonStringifyBuiltin(ctx, []value.Value{ctx.H.NewStruct(1)})
}
