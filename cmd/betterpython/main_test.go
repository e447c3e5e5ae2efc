package main

import "testing"

func TestScanImportsCollectsImportLines(t *testing.T) {
	src := []byte("import utils\n\n# not an import\nimport net \nfn main() {}\n")
	mod, err := scanImports(src)
	if err != nil {
		t.Fatalf("scanImports: %v", err)
	}
	if len(mod.Imports) != 2 {
		t.Fatalf("len(Imports) = %d, want 2: %+v", len(mod.Imports), mod.Imports)
	}
	if mod.Imports[0].ModuleName != "utils" || mod.Imports[1].ModuleName != "net" {
		t.Fatalf("Imports = %+v", mod.Imports)
	}
}

func TestScanImportsEmptySourceHasNoImports(t *testing.T) {
	mod, err := scanImports([]byte("fn main() {}\n"))
	if err != nil {
		t.Fatalf("scanImports: %v", err)
	}
	if len(mod.Imports) != 0 {
		t.Fatalf("len(Imports) = %d, want 0", len(mod.Imports))
	}
}
