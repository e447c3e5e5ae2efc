// Package linker merges N topologically-ordered, independently-compiled
// modules into one bytecode image (spec.md §4.D): qualified symbol names,
// a single contiguous function table, a de-duplicated constant pool, and
// rewritten cross-module call targets.
package linker

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/th3f0rk/betterpython/modgraph"
)

// CompiledFunction is a per-module function already lowered to bytecode by
// the external compiler (spec.md §1's non-goal); the linker only needs its
// name, exported-ness, raw instruction bytes, and the two kinds of
// in-Code reference that need patching once merged positions are known.
type CompiledFunction struct {
	Name        string
	Exported    bool
	Code        []byte
	CallTargets []CallTarget
	ConstRefs   []ConstRef
	// Constants is this function's own pre-merge constant pool; ConstRefs
	// index into it by position, and Link rewrites those references to
	// point into the merged, de-duplicated pool instead.
	Constants []Constant
}

// CallTarget is one call-site inside a CompiledFunction's Code that needs
// rewriting to a merged function index once its callee's merged position
// is known.
type CallTarget struct {
	// CodeOffset is the byte offset inside Code where the 4-byte merged
	// function index must be written (little-endian, matching A's byte
	// codecs).
	CodeOffset int
	// CalleeModule is empty for a same-module call (ShortName resolves
	// within the caller's own module); otherwise it names the imported
	// module the ShortName must be exported from.
	CalleeModule string
	ShortName    string
}

// ConstRef is one load-constant site inside Code referencing Constants by
// local index, rewritten to the merged pool's index at link time.
type ConstRef struct {
	CodeOffset int
	LocalIndex int
}

// Constant is a single constant-pool entry; Bytes is compared byte-for-byte
// when de-duplicating across modules (spec.md §4.D step 4).
type Constant struct {
	Bytes []byte
}

// CompiledModule pairs a resolved module name with its compiled functions,
// the shape the linker consumes from the external compiler.
type CompiledModule struct {
	Name      string
	Functions []CompiledFunction
}

// SymbolEntry records one merged function's identity (spec.md §3).
type SymbolEntry struct {
	ShortName     string
	QualifiedName string
	OriginModule  string
	MergedFnIndex int
	Exported      bool
}

// CollisionError reports a second function claiming an already-taken
// qualified name ({module}${short}), i.e. two functions of one module with
// the same short name (spec.md §4.D step 2: "symbol collision"). Link does
// not check whether two different modules export the same short name.
type CollisionError struct {
	QualifiedName string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("symbol collision: %q already defined", e.QualifiedName)
}

// qualify produces "{module}${short}" (spec.md §3's SymbolEntry shape).
func qualify(module, short string) string {
	return module + "$" + short
}

// Image is the linked, single bytecode module (spec.md §4.D step 4): one
// contiguous function table, a de-duplicated constant pool, a symbol
// table, and the merged entry index for __main__'s top-level function.
type Image struct {
	Functions []CompiledFunction
	Symbols   []SymbolEntry
	Constants []Constant
	EntryFn   int
}

// Link merges modules (already topologically ordered by modgraph.Sort, so
// a module's dependencies occupy indices before it does) into one Image.
func Link(modules []CompiledModule) (*Image, error) {
	img := &Image{}

	// qualifiedIndex maps "{module}${short}" -> merged function index, for
	// same-module call resolution.
	qualifiedIndex := map[string]int{}
	// exportedShort maps module -> short name -> merged function index,
	// for resolving a bare ShortName against an explicitly named importee.
	exportedShort := map[string]map[string]int{}

	for _, mod := range modules {
		for _, fn := range mod.Functions {
			qname := qualify(mod.Name, fn.Name)
			if _, taken := qualifiedIndex[qname]; taken {
				return nil, &CollisionError{QualifiedName: qname}
			}
			idx := len(img.Functions)
			qualifiedIndex[qname] = idx

			img.Functions = append(img.Functions, fn)
			img.Symbols = append(img.Symbols, SymbolEntry{
				ShortName:     fn.Name,
				QualifiedName: qname,
				OriginModule:  mod.Name,
				MergedFnIndex: idx,
				Exported:      fn.Exported,
			})

			if fn.Exported {
				if exportedShort[mod.Name] == nil {
					exportedShort[mod.Name] = map[string]int{}
				}
				exportedShort[mod.Name][fn.Name] = idx
			}
		}
	}

	constRefMap, pool := dedupeConstants(modules)
	img.Constants = pool

	if err := rewriteReferences(img, modules, qualifiedIndex, exportedShort, constRefMap); err != nil {
		return nil, err
	}

	entryIdx, ok := qualifiedIndex[qualify(modgraph.EntryModuleName, "__main__")]
	if !ok {
		return nil, errors.Errorf("linker: no %s$__main__ entry function found", modgraph.EntryModuleName)
	}
	img.EntryFn = entryIdx

	return img, nil
}

// resolveCallTarget finds the merged function index a CallTarget names,
// either within the caller's own module or via an exported short name from
// CalleeModule.
func resolveCallTarget(callerModule string, ct CallTarget, qualifiedIndex map[string]int, exportedShort map[string]map[string]int) (int, error) {
	module := ct.CalleeModule
	if module == "" {
		module = callerModule
	}
	if module == callerModule {
		if idx, ok := qualifiedIndex[qualify(module, ct.ShortName)]; ok {
			return idx, nil
		}
	}
	if byName, ok := exportedShort[module]; ok {
		if idx, ok := byName[ct.ShortName]; ok {
			return idx, nil
		}
	}
	return 0, errors.Errorf("linker: unresolved call target %q in module %q (callee module %q)", ct.ShortName, callerModule, module)
}

// rewriteReferences patches each call site's merged function index and
// each constant-load site's merged pool index in place. constRefMap is
// indexed the same way img.Functions is: one entry per merged function.
func rewriteReferences(img *Image, modules []CompiledModule, qualifiedIndex map[string]int, exportedShort map[string]map[string]int, constRefMap []map[int]int) error {
	fnCursor := 0
	for _, mod := range modules {
		for range mod.Functions {
			fn := &img.Functions[fnCursor]
			for _, ct := range fn.CallTargets {
				idx, err := resolveCallTarget(mod.Name, ct, qualifiedIndex, exportedShort)
				if err != nil {
					return err
				}
				if err := patchIndex(fn.Code, ct.CodeOffset, idx); err != nil {
					return err
				}
			}
			for _, cr := range fn.ConstRefs {
				merged, ok := constRefMap[fnCursor][cr.LocalIndex]
				if !ok {
					return errors.Errorf("linker: constant ref %d out of range in function %q (module %q)", cr.LocalIndex, fn.Name, mod.Name)
				}
				if err := patchIndex(fn.Code, cr.CodeOffset, merged); err != nil {
					return err
				}
			}
			fnCursor++
		}
	}
	return nil
}

// patchIndex writes idx as a little-endian uint32 at Code[offset:offset+4].
func patchIndex(code []byte, offset, idx int) error {
	if offset < 0 || offset+4 > len(code) {
		return errors.Errorf("linker: patch offset %d out of range for %d-byte function body", offset, len(code))
	}
	code[offset+0] = byte(idx)
	code[offset+1] = byte(idx >> 8)
	code[offset+2] = byte(idx >> 16)
	code[offset+3] = byte(idx >> 24)
	return nil
}
