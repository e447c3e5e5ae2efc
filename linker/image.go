package linker

import (
	"io"

	goccy "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rodaine/table"
)

// imageJSON is the JSON-dump shape of an Image; Code and constant bytes
// are carried as-is since goccy/go-json base64-encodes []byte by default,
// matching structs/structs.go's Serializable contract of a self-contained
// Marshal/Unmarshal pair rather than a human-editable format.
type imageJSON struct {
	Functions []CompiledFunction
	Symbols   []SymbolEntry
	Constants []Constant
	EntryFn   int
}

// Marshal renders img as JSON and returns the encoded bytes — unlike
// structs/structs.go's Serializable[T] interface, whose Marshal writes
// into a caller-supplied []byte, since Image's encoded size isn't known
// up front the way a fixed-layout capnp record's is.
func (img *Image) Marshal() ([]byte, error) {
	out, err := goccy.Marshal((*imageJSON)(img))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return out, nil
}

// Unmarshal decodes a previously-Marshal'd image.
func (img *Image) Unmarshal(b []byte) error {
	return errors.WithStack(goccy.Unmarshal(b, (*imageJSON)(img)))
}

// Size reports the encoded length, echoing the third leg of
// structs/structs.go's Serializable[T] shape (Marshal/Unmarshal/Size); it
// returns an error too, unlike that interface's `Size() int`, since
// computing Image's size means marshaling it and marshaling can fail.
func (img *Image) Size() (int, error) {
	b, err := img.Marshal()
	if err != nil {
		return 0, err
	}
	return len(b), nil
}

// PrintSymbols renders the linked symbol table to w, in the rodaine/table
// style game/wizcommands.go uses for its `/intervals` and `/skills`
// listings.
func (img *Image) PrintSymbols(w io.Writer) {
	t := table.New("Merged Index", "Qualified Name", "Origin Module", "Exported").WithWriter(w)
	for _, sym := range img.Symbols {
		t.AddRow(sym.MergedFnIndex, sym.QualifiedName, sym.OriginModule, sym.Exported)
	}
	t.Print()
}
