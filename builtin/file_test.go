package builtin

import (
	"path/filepath"
	"testing"

	"github.com/th3f0rk/betterpython/value"
)

func TestFileWriteReadAppendRoundTrip(t *testing.T) {
	ctx := newTestContext()
	path := filepath.Join(t.TempDir(), "f.txt")

	fileWrite(ctx, []value.Value{strOf(ctx, path), strOf(ctx, "hello")})
	if got := bytesOf(fileRead(ctx, []value.Value{strOf(ctx, path)})); got != "hello" {
		t.Fatalf("file_read after file_write = %q, want hello", got)
	}

	fileAppend(ctx, []value.Value{strOf(ctx, path), strOf(ctx, " world")})
	if got := bytesOf(fileRead(ctx, []value.Value{strOf(ctx, path)})); got != "hello world" {
		t.Fatalf("file_read after file_append = %q, want \"hello world\"", got)
	}
}

func TestFileReadMissingIsEmptyNotFatal(t *testing.T) {
	ctx := newTestContext()
	path := filepath.Join(t.TempDir(), "missing.txt")
	got := bytesOf(fileRead(ctx, []value.Value{strOf(ctx, path)}))
	if got != "" {
		t.Fatalf("file_read(missing) = %q, want empty", got)
	}
}

func TestFileWriteMissingDirIsFatal(t *testing.T) {
	ctx := newTestContext()
	defer func() {
		if recover() == nil {
			t.Fatal("file_write into a missing directory did not panic")
		}
	}()
	fileWrite(ctx, []value.Value{strOf(ctx, filepath.Join(t.TempDir(), "nope", "f.txt")), strOf(ctx, "x")})
}

func TestFileExistsDelete(t *testing.T) {
	ctx := newTestContext()
	path := filepath.Join(t.TempDir(), "f.txt")
	if fileExists(ctx, []value.Value{strOf(ctx, path)}).Bool() {
		t.Fatal("file_exists before creation = true")
	}
	fileWrite(ctx, []value.Value{strOf(ctx, path), strOf(ctx, "x")})
	if !fileExists(ctx, []value.Value{strOf(ctx, path)}).Bool() {
		t.Fatal("file_exists after creation = false")
	}
	if !fileDelete(ctx, []value.Value{strOf(ctx, path)}).Bool() {
		t.Fatal("file_delete on existing file returned false")
	}
	if fileExists(ctx, []value.Value{strOf(ctx, path)}).Bool() {
		t.Fatal("file_exists after delete = true")
	}
}

func TestFileSizeMissingIsNegativeOne(t *testing.T) {
	ctx := newTestContext()
	path := filepath.Join(t.TempDir(), "missing.txt")
	if got := fileSize(ctx, []value.Value{strOf(ctx, path)}).Int64(); got != -1 {
		t.Fatalf("file_size(missing) = %d, want -1", got)
	}
}

func TestFileSizeMatchesContentLength(t *testing.T) {
	ctx := newTestContext()
	path := filepath.Join(t.TempDir(), "f.txt")
	fileWrite(ctx, []value.Value{strOf(ctx, path), strOf(ctx, "hello")})
	if got := fileSize(ctx, []value.Value{strOf(ctx, path)}).Int64(); got != 5 {
		t.Fatalf("file_size = %d, want 5", got)
	}
}

func TestFileCopy(t *testing.T) {
	ctx := newTestContext()
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	fileWrite(ctx, []value.Value{strOf(ctx, src), strOf(ctx, "payload")})

	if !fileCopy(ctx, []value.Value{strOf(ctx, src), strOf(ctx, dst)}).Bool() {
		t.Fatal("file_copy returned false")
	}
	if got := bytesOf(fileRead(ctx, []value.Value{strOf(ctx, dst)})); got != "payload" {
		t.Fatalf("file_read(dst) after copy = %q, want payload", got)
	}
}

func TestFileCopyMissingSourceReturnsFalse(t *testing.T) {
	ctx := newTestContext()
	dir := t.TempDir()
	got := fileCopy(ctx, []value.Value{strOf(ctx, filepath.Join(dir, "nope.txt")), strOf(ctx, filepath.Join(dir, "dst.txt"))}).Bool()
	if got {
		t.Fatal("file_copy from a missing source returned true")
	}
}

func TestFileReadWriteBytesRoundTrip(t *testing.T) {
	ctx := newTestContext()
	path := filepath.Join(t.TempDir(), "bytes.bin")
	arr := ctx.H.NewArray(0)
	for _, b := range []int64{0, 1, 255, 128} {
		ctx.H.Push(arr, value.Int(b))
	}
	fileWriteBytes(ctx, []value.Value{strOf(ctx, path), arr})

	got := fileReadBytes(ctx, []value.Value{strOf(ctx, path)}).Array()
	if got.Len() != 4 {
		t.Fatalf("file_read_bytes length = %d, want 4", got.Len())
	}
	want := []int64{0, 1, 255, 128}
	for i, w := range want {
		if got.At(i).Int64() != w {
			t.Fatalf("file_read_bytes[%d] = %d, want %d", i, got.At(i).Int64(), w)
		}
	}
}

func TestFileReadBytesMissingIsEmptyArray(t *testing.T) {
	ctx := newTestContext()
	path := filepath.Join(t.TempDir(), "missing.bin")
	got := fileReadBytes(ctx, []value.Value{strOf(ctx, path)}).Array()
	if got.Len() != 0 {
		t.Fatalf("file_read_bytes(missing) length = %d, want 0", got.Len())
	}
}
