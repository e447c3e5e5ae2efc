package builtin

import (
	"io"
	"os"

	"github.com/th3f0rk/betterpython/bpcore"
	"github.com/th3f0rk/betterpython/value"
)

// fileRead returns the file's contents, or an empty string on open failure
// (spec.md §7 — a recoverable runtime condition, not fatal).
func fileRead(ctx *Context, args []value.Value) value.Value {
	path := wantStr("file_read", args, 0).Str().Bytes()
	b, err := os.ReadFile(string(path))
	if err != nil {
		return ctx.H.NewStr(nil)
	}
	return ctx.H.NewStr(b)
}

// fileWrite truncates and writes; open/write failure is fatal (spec.md §7).
func fileWrite(ctx *Context, args []value.Value) value.Value {
	path := wantStr("file_write", args, 0).Str().Bytes()
	data := wantStr("file_write", args, 1).Str().Bytes()
	if err := os.WriteFile(string(path), data, 0644); err != nil {
		panic(bpcore.Fatalf("file_write: %v", err))
	}
	return value.Null()
}

func fileAppend(ctx *Context, args []value.Value) value.Value {
	path := wantStr("file_append", args, 0).Str().Bytes()
	data := wantStr("file_append", args, 1).Str().Bytes()
	f, err := os.OpenFile(string(path), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		panic(bpcore.Fatalf("file_append: %v", err))
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		panic(bpcore.Fatalf("file_append: %v", err))
	}
	return value.Null()
}

func fileExists(ctx *Context, args []value.Value) value.Value {
	path := wantStr("file_exists", args, 0).Str().Bytes()
	_, err := os.Stat(string(path))
	return value.Bool(err == nil)
}

func fileDelete(ctx *Context, args []value.Value) value.Value {
	path := wantStr("file_delete", args, 0).Str().Bytes()
	return value.Bool(os.Remove(string(path)) == nil)
}

func fileSize(ctx *Context, args []value.Value) value.Value {
	path := wantStr("file_size", args, 0).Str().Bytes()
	st, err := os.Stat(string(path))
	if err != nil {
		return value.Int(-1)
	}
	return value.Int(st.Size())
}

func fileCopy(ctx *Context, args []value.Value) value.Value {
	src := string(wantStr("file_copy", args, 0).Str().Bytes())
	dst := string(wantStr("file_copy", args, 1).Str().Bytes())
	in, err := os.Open(src)
	if err != nil {
		return value.Bool(false)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return value.Bool(false)
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return value.Bool(false)
	}
	return value.Bool(true)
}

// fileReadBytes mirrors fileRead but returns an array of ints 0..255.
func fileReadBytes(ctx *Context, args []value.Value) value.Value {
	path := wantStr("file_read_bytes", args, 0).Str().Bytes()
	b, err := os.ReadFile(string(path))
	if err != nil {
		return ctx.H.NewArray(0)
	}
	out := ctx.H.NewArray(len(b))
	for _, c := range b {
		ctx.H.Push(out, value.Int(int64(c)))
	}
	return out
}

func fileWriteBytes(ctx *Context, args []value.Value) value.Value {
	path := wantStr("file_write_bytes", args, 0).Str().Bytes()
	arr := wantArray("file_write_bytes", args, 1).Array()
	buf := make([]byte, arr.Len())
	for i := 0; i < arr.Len(); i++ {
		el := arr.At(i)
		if !el.IsInt() {
			panic(bpcore.Fatalf("file_write_bytes: element %d is not an int", i))
		}
		buf[i] = byte(el.Int64())
	}
	if err := os.WriteFile(string(path), buf, 0644); err != nil {
		panic(bpcore.Fatalf("file_write_bytes: %v", err))
	}
	return value.Null()
}
