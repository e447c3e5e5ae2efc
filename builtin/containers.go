package builtin

import "github.com/th3f0rk/betterpython/value"

// Container built-ins are thin argument-shape-checked wrappers over the
// value package's HeapCtx methods; the container algorithms themselves
// (resize, tombstones, stable sort) live in value, not here.

func arrayLen(ctx *Context, args []value.Value) value.Value {
	return value.Int(int64(wantArray("array_len", args, 0).Array().Len()))
}

func arrayPush(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("array_push", args, 0)
	ctx.H.Push(arr, args[1])
	return value.Null()
}

func arrayPop(ctx *Context, args []value.Value) value.Value {
	return ctx.H.Pop(wantArray("array_pop", args, 0))
}

func arrayGet(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("array_get", args, 0)
	idx := wantInt("array_get", args, 1)
	return ctx.H.Get(arr, int(idx))
}

func arraySet(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("array_set", args, 0)
	idx := wantInt("array_set", args, 1)
	ctx.H.Set(arr, int(idx), args[2])
	return value.Null()
}

func arrayInsert(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("array_insert", args, 0)
	idx := wantInt("array_insert", args, 1)
	ctx.H.InsertAt(arr, int(idx), args[2])
	return value.Null()
}

func arrayRemove(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("array_remove", args, 0)
	idx := wantInt("array_remove", args, 1)
	return ctx.H.RemoveAt(arr, int(idx))
}

func arraySlice(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("array_slice", args, 0)
	start := wantInt("array_slice", args, 1)
	length := wantInt("array_slice", args, 2)
	return ctx.H.Slice(arr, int(start), int(length))
}

func arraySort(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("array_sort", args, 0)
	ctx.H.Sort(arr)
	return value.Null()
}

func arrayConcat(ctx *Context, args []value.Value) value.Value {
	a := wantArray("array_concat", args, 0)
	b := wantArray("array_concat", args, 1)
	return ctx.H.ConcatArrays(a, b)
}

func arrayCopy(ctx *Context, args []value.Value) value.Value {
	return ctx.H.Copy(wantArray("array_copy", args, 0))
}

func arrayClear(ctx *Context, args []value.Value) value.Value {
	ctx.H.Clear(wantArray("array_clear", args, 0))
	return value.Null()
}

func arrayIndexOf(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("array_index_of", args, 0)
	return value.Int(int64(ctx.H.IndexOf(arr, args[1])))
}

func arrayContains(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("array_contains", args, 0)
	return value.Bool(ctx.H.Contains(arr, args[1]))
}

func arrayReverse(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("array_reverse", args, 0)
	ctx.H.Reverse(arr)
	return value.Null()
}

func arrayFill(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("array_fill", args, 0)
	ctx.H.Fill(arr, args[1])
	return value.Null()
}

func mapLen(ctx *Context, args []value.Value) value.Value {
	return value.Int(int64(wantMap("map_len", args, 0).Map().Len()))
}

func mapSet(ctx *Context, args []value.Value) value.Value {
	m := wantMap("map_set", args, 0)
	ctx.H.MapSet(m, args[1], args[2])
	return value.Null()
}

func mapGet(ctx *Context, args []value.Value) value.Value {
	m := wantMap("map_get", args, 0)
	return ctx.H.MapGet(m, args[1])
}

func mapHasKey(ctx *Context, args []value.Value) value.Value {
	m := wantMap("map_has_key", args, 0)
	return value.Bool(ctx.H.MapHasKey(m, args[1]))
}

func mapDelete(ctx *Context, args []value.Value) value.Value {
	m := wantMap("map_delete", args, 0)
	return value.Bool(ctx.H.MapDelete(m, args[1]))
}

func mapKeys(ctx *Context, args []value.Value) value.Value {
	return ctx.H.MapKeys(wantMap("map_keys", args, 0))
}

func mapValues(ctx *Context, args []value.Value) value.Value {
	return ctx.H.MapValues(wantMap("map_values", args, 0))
}

func structGet(ctx *Context, args []value.Value) value.Value {
	sv := wantStruct("struct_get", args, 0)
	idx := wantInt("struct_get", args, 1)
	return ctx.H.StructGet(sv, int(idx))
}

func structSet(ctx *Context, args []value.Value) value.Value {
	sv := wantStruct("struct_set", args, 0)
	idx := wantInt("struct_set", args, 1)
	ctx.H.StructSet(sv, int(idx), args[2])
	return value.Null()
}
