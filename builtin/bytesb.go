package builtin

import (
	"encoding/binary"

	"github.com/th3f0rk/betterpython/bpcore"
	"github.com/th3f0rk/betterpython/value"
)

// bytesNew allocates a zero-filled array of int 0..255.
func bytesNew(ctx *Context, args []value.Value) value.Value {
	n := wantInt("bytes_new", args, 0)
	out := ctx.H.NewArray(int(n))
	for i := int64(0); i < n; i++ {
		ctx.H.Push(out, value.Int(0))
	}
	return out
}

func bytesGet(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("bytes_get", args, 0)
	idx := wantInt("bytes_get", args, 1)
	return ctx.H.Get(arr, int(idx))
}

func bytesSet(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("bytes_set", args, 0)
	idx := wantInt("bytes_set", args, 1)
	v := wantInt("bytes_set", args, 2)
	ctx.H.Set(arr, int(idx), value.Int(v&0xFF))
	return value.Null()
}

func bytesLen(ctx *Context, args []value.Value) value.Value {
	return value.Int(int64(wantArray("bytes_len", args, 0).Array().Len()))
}

func bytesAppend(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("bytes_append", args, 0)
	v := wantInt("bytes_append", args, 1)
	ctx.H.Push(arr, value.Int(v&0xFF))
	return value.Null()
}

func bytesWriteU16(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("bytes_write_u16", args, 0)
	off := wantInt("bytes_write_u16", args, 1)
	v := wantInt("bytes_write_u16", args, 2)
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], uint16(v))
	ctx.H.Set(arr, int(off), value.Int(int64(buf[0])))
	ctx.H.Set(arr, int(off)+1, value.Int(int64(buf[1])))
	return value.Null()
}

func bytesReadU16(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("bytes_read_u16", args, 0)
	off := wantInt("bytes_read_u16", args, 1)
	b0 := byte(ctx.H.Get(arr, int(off)).Int64())
	b1 := byte(ctx.H.Get(arr, int(off)+1).Int64())
	return value.Int(int64(binary.LittleEndian.Uint16([]byte{b0, b1})))
}

func bytesWriteU32(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("bytes_write_u32", args, 0)
	off := int(wantInt("bytes_write_u32", args, 1))
	v := wantInt("bytes_write_u32", args, 2)
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(v))
	for i, b := range buf {
		ctx.H.Set(arr, off+i, value.Int(int64(b)))
	}
	return value.Null()
}

func bytesReadU32(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("bytes_read_u32", args, 0)
	off := int(wantInt("bytes_read_u32", args, 1))
	var buf [4]byte
	for i := range buf {
		buf[i] = byte(ctx.H.Get(arr, off+i).Int64())
	}
	return value.Int(int64(binary.LittleEndian.Uint32(buf[:])))
}

func bytesWriteI64(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("bytes_write_i64", args, 0)
	off := int(wantInt("bytes_write_i64", args, 1))
	v := wantInt("bytes_write_i64", args, 2)
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	for i, b := range buf {
		ctx.H.Set(arr, off+i, value.Int(int64(b)))
	}
	return value.Null()
}

func bytesReadI64(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("bytes_read_i64", args, 0)
	off := int(wantInt("bytes_read_i64", args, 1))
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(ctx.H.Get(arr, off+i).Int64())
	}
	return value.Int(int64(binary.LittleEndian.Uint64(buf[:])))
}

// intToBytes produces a big-endian byte array of the given size (1..8).
func intToBytes(ctx *Context, args []value.Value) value.Value {
	v := wantInt("int_to_bytes", args, 0)
	size := wantInt("int_to_bytes", args, 1)
	if size < 1 || size > 8 {
		panic(bpcore.Fatalf("int_to_bytes: size %d out of range [1,8]", size))
	}
	out := ctx.H.NewArray(int(size))
	u := uint64(v)
	for i := size - 1; i >= 0; i-- {
		ctx.H.Push(out, value.Int(int64((u>>(uint(i)*8))&0xFF)))
	}
	return out
}

// intFromBytes reads a big-endian integer of the given size from arr at off.
func intFromBytes(ctx *Context, args []value.Value) value.Value {
	arr := wantArray("int_from_bytes", args, 0)
	off := wantInt("int_from_bytes", args, 1)
	size := wantInt("int_from_bytes", args, 2)
	if size < 1 || size > 8 {
		panic(bpcore.Fatalf("int_from_bytes: size %d out of range [1,8]", size))
	}
	var u uint64
	for i := int64(0); i < size; i++ {
		b := ctx.H.Get(arr, int(off+i))
		if !b.IsInt() {
			panic(bpcore.Fatalf("int_from_bytes: element %d is not an int", off+i))
		}
		u = (u << 8) | uint64(b.Int64()&0xFF)
	}
	return value.Int(int64(u))
}
