// Package value implements BetterPython's tagged value model and managed
// heap (spec.md §3, §4.A): a cheap-to-copy Value union over Int/Float/Bool/
// Null/Str/Array/Map/Struct/Class/Ptr/Func, with reference-counted
// container payloads.
package value

import "fmt"

// Kind tags which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindBool
	KindStr
	KindArray
	KindMap
	KindStruct
	KindClass
	KindPtr
	KindFunc
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindStr:
		return "str"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindStruct:
		return "struct"
	case KindClass:
		return "class"
	case KindPtr:
		return "ptr"
	case KindFunc:
		return "func"
	default:
		return "unknown"
	}
}

// heapObject is satisfied by every ref-counted container payload.
type heapObject interface {
	objID() uint64
	retain()
	release() int32
	// sweep is called exactly once, after release() returns 0. It returns
	// the child Values the object held (so the caller can release them in
	// turn) and clears the object's own storage.
	sweep() []Value
}

// header is embedded by every heap payload type; refcounts are only ever
// mutated while holding the owning HeapCtx's lock (spec.md §4.F's "single
// heap lock" minimum).
type header struct {
	id   uint64
	refs int32
}

func (h *header) objID() uint64  { return h.id }
func (h *header) retain()        { h.refs++ }
func (h *header) release() int32 { h.refs--; return h.refs }

// Value is the tagged union the rest of the core passes around by value.
type Value struct {
	kind Kind
	i    int64
	f    float64
	obj  heapObject
}

func (v Value) Kind() Kind { return v.kind }

func Null() Value        { return Value{kind: KindNull} }
func Int(i int64) Value  { return Value{kind: KindInt, i: i} }
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }
func Bool(b bool) Value {
	var i int64
	if b {
		i = 1
	}
	return Value{kind: KindBool, i: i}
}
func Func(id int64) Value { return Value{kind: KindFunc, i: id} }
func Ptr(handle int64) Value { return Value{kind: KindPtr, i: handle} }

func (v Value) IsNull() bool  { return v.kind == KindNull }
func (v Value) IsInt() bool   { return v.kind == KindInt }
func (v Value) IsFloat() bool { return v.kind == KindFloat }
func (v Value) IsBool() bool  { return v.kind == KindBool }
func (v Value) IsStr() bool   { return v.kind == KindStr }
func (v Value) IsArray() bool { return v.kind == KindArray }
func (v Value) IsMap() bool   { return v.kind == KindMap }
func (v Value) IsStruct() bool { return v.kind == KindStruct }
func (v Value) IsClass() bool { return v.kind == KindClass }
func (v Value) IsPtr() bool   { return v.kind == KindPtr }
func (v Value) IsFunc() bool  { return v.kind == KindFunc }

// Int64 returns the Int payload. Panics if Kind() != KindInt; callers in
// builtin already validate shape before calling this.
func (v Value) Int64() int64 {
	if v.kind != KindInt {
		panic(fmt.Sprintf("value: Int64 called on a %v", v.kind))
	}
	return v.i
}

func (v Value) Float64() float64 {
	if v.kind != KindFloat {
		panic(fmt.Sprintf("value: Float64 called on a %v", v.kind))
	}
	return v.f
}

func (v Value) Bool() bool {
	if v.kind != KindBool {
		panic(fmt.Sprintf("value: Bool called on a %v", v.kind))
	}
	return v.i != 0
}

func (v Value) FuncID() int64 {
	if v.kind != KindFunc {
		panic(fmt.Sprintf("value: FuncID called on a %v", v.kind))
	}
	return v.i
}

func (v Value) Handle() int64 {
	if v.kind != KindPtr {
		panic(fmt.Sprintf("value: Handle called on a %v", v.kind))
	}
	return v.i
}

func (v Value) Str() *Str {
	s, _ := v.obj.(*Str)
	return s
}

func (v Value) Array() *Array {
	a, _ := v.obj.(*Array)
	return a
}

func (v Value) Map() *Map {
	m, _ := v.obj.(*Map)
	return m
}

func (v Value) Struct() *Struct {
	s, _ := v.obj.(*Struct)
	return s
}

func (v Value) Class() *Class {
	c, _ := v.obj.(*Class)
	return c
}

// sameObj reports whether a and b refer to the identical heap payload
// (pointer identity).
func sameObj(a, b Value) bool {
	return a.obj != nil && a.obj == b.obj
}

// Equal implements Value equality: identity-by-content for Str, by-value
// for scalars, by-identity for containers (matching map-key semantics in
// §4.B, where only scalar kinds are "strong" keys).
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindInt, KindFunc, KindPtr:
		return a.i == b.i
	case KindFloat:
		return a.f == b.f
	case KindBool:
		return a.i == b.i
	case KindStr:
		return a.Str().Equal(b.Str())
	default:
		return a.obj == b.obj
	}
}

// TypeName is the string the `typeof` built-in returns.
func TypeName(v Value) string { return v.kind.String() }
