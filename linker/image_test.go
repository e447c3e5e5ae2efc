package linker

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestImageMarshalUnmarshalRoundTrip(t *testing.T) {
	img := &Image{
		Functions: []CompiledFunction{{Name: "__main__", Exported: true, Code: []byte{1, 2, 3}}},
		Symbols: []SymbolEntry{
			{ShortName: "__main__", QualifiedName: "__main__$__main__", OriginModule: "__main__", MergedFnIndex: 0, Exported: true},
		},
		Constants: []Constant{{Bytes: []byte("hi")}},
		EntryFn:   0,
	}
	b, err := img.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got Image
	if err := got.Unmarshal(b); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(*img, got); diff != "" {
		t.Fatalf("round-tripped Image differs (-want +got):\n%s", diff)
	}
}

func TestImageSizeMatchesMarshaledLength(t *testing.T) {
	img := &Image{Functions: []CompiledFunction{{Name: "f"}}}
	b, err := img.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	size, err := img.Size()
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if size != len(b) {
		t.Fatalf("Size() = %d, want %d", size, len(b))
	}
}

func TestPrintSymbolsRendersEveryRow(t *testing.T) {
	img := &Image{
		Symbols: []SymbolEntry{
			{ShortName: "f", QualifiedName: "a$f", OriginModule: "a", MergedFnIndex: 0, Exported: false},
			{ShortName: "g", QualifiedName: "b$g", OriginModule: "b", MergedFnIndex: 1, Exported: true},
		},
	}
	var buf bytes.Buffer
	img.PrintSymbols(&buf)
	out := buf.String()
	if !strings.Contains(out, "a$f") || !strings.Contains(out, "b$g") {
		t.Fatalf("PrintSymbols output missing a symbol: %q", out)
	}
}
