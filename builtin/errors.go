package builtin

import (
	"github.com/gertd/go-pluralize"

	"github.com/th3f0rk/betterpython/bpcore"
	"github.com/th3f0rk/betterpython/value"
)

var plur = pluralize.NewClient()

// argCountError matches spec.md §4.B's "fatal error with a message naming
// the built-in and expected shape", using the teacher's pluralization
// client (lang.Card's grammar) so the message reads "expected 1 argument"
// vs "expected 3 arguments" rather than a raw count.
func argCountError(name string, want, got int) *bpcore.FatalError {
	return bpcore.Fatalf("%s: expected %s, got %d", name, plur.Pluralize("argument", want, true), got)
}

func argShapeError(name string, index int, wantKind string, got value.Value) *bpcore.FatalError {
	return bpcore.Fatalf("%s: argument %d must be %s, got %s", name, index, wantKind, value.TypeName(got))
}

func wantInt(name string, args []value.Value, i int) int64 {
	if !args[i].IsInt() {
		panic(argShapeError(name, i, "int", args[i]))
	}
	return args[i].Int64()
}

func wantFloat(name string, args []value.Value, i int) float64 {
	if args[i].IsFloat() {
		return args[i].Float64()
	}
	if args[i].IsInt() {
		return float64(args[i].Int64())
	}
	panic(argShapeError(name, i, "float", args[i]))
}

func wantBool(name string, args []value.Value, i int) bool {
	if !args[i].IsBool() {
		panic(argShapeError(name, i, "bool", args[i]))
	}
	return args[i].Bool()
}

func wantStr(name string, args []value.Value, i int) value.Value {
	if !args[i].IsStr() {
		panic(argShapeError(name, i, "str", args[i]))
	}
	return args[i]
}

func wantArray(name string, args []value.Value, i int) value.Value {
	if !args[i].IsArray() {
		panic(argShapeError(name, i, "array", args[i]))
	}
	return args[i]
}

func wantMap(name string, args []value.Value, i int) value.Value {
	if !args[i].IsMap() {
		panic(argShapeError(name, i, "map", args[i]))
	}
	return args[i]
}

func wantStruct(name string, args []value.Value, i int) value.Value {
	if !args[i].IsStruct() {
		panic(argShapeError(name, i, "struct", args[i]))
	}
	return args[i]
}

func wantPtr(name string, args []value.Value, i int) int64 {
	if !args[i].IsPtr() {
		panic(argShapeError(name, i, "ptr", args[i]))
	}
	return args[i].Handle()
}
