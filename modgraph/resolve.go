package modgraph

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ParseFunc parses raw source bytes into a Module and the list of import
// names it declares. The core treats this as an external collaborator
// (spec.md §1) — modgraph only drives when and in what order it's called.
type ParseFunc func(sourceBytes []byte) (*Module, error)

// ReadFunc loads raw source bytes for an absolute path.
type ReadFunc func(absPath string) ([]byte, error)

// StdlibSearchPaths are tried in order after BETTERPYTHON_PATH components;
// the first one that exists on disk wins (spec.md §4.C's Find algorithm).
var StdlibSearchPaths = []string{
	"/usr/local/lib/betterpython/stdlib",
	"/usr/lib/betterpython/stdlib",
	"./stdlib",
}

// PackagesSearchPath is tried last, unconditionally (spec.md §4.C).
const PackagesSearchPath = "./packages"

// SearchPathsFromEnv splits BETTERPYTHON_PATH (colon-separated) and appends
// the first existing stdlib candidate, then PackagesSearchPath, matching
// spec.md §4.C's Find algorithm order.
func SearchPathsFromEnv(getenv func(string) string) []string {
	var paths []string
	if raw := getenv("BETTERPYTHON_PATH"); raw != "" {
		for _, p := range strings.Split(raw, ":") {
			if p != "" {
				paths = append(paths, p)
			}
		}
	}
	for _, cand := range StdlibSearchPaths {
		if _, err := os.Stat(cand); err == nil {
			paths = append(paths, cand)
			break
		}
	}
	return append(paths, PackagesSearchPath)
}

// Find implements spec.md §4.C's Find algorithm: for name N, form file
// "N.bp"; search (a) callerDir, then (b) each searchPaths entry in order.
// First match wins; returns an error naming N if nothing matches.
func Find(name, callerDir string, searchPaths []string) (string, error) {
	file := name + ".bp"
	candidate := filepath.Join(callerDir, file)
	if _, err := os.Stat(candidate); err == nil {
		return filepath.Clean(candidate), nil
	}
	for _, dir := range searchPaths {
		candidate = filepath.Join(dir, file)
		if _, err := os.Stat(candidate); err == nil {
			return filepath.Clean(candidate), nil
		}
	}
	return "", errors.Errorf("module %q not found (searched %q and %d search path(s))", name, callerDir, len(searchPaths))
}

// resolver holds the DFS visit-stack and cache state for one ResolveAll run,
// the same split imports.go's resolveContext uses between "on the stack"
// and "fully resolved" (imports.go calls these inProgress and included).
type resolver struct {
	graph      *ModuleGraph
	read       ReadFunc
	parse      ParseFunc
	byName     map[string]int
	inProgress map[string]bool
}

// ResolveAll builds a ModuleGraph from entryPath (spec.md §4.C):
//  1. canonicalize entryPath and add its directory to the search paths
//  2. register it as "__main__" at index 0 (EntryIdx)
//  3. recursively resolve every import declaration by name
func ResolveAll(entryPath string, extraSearchPaths []string, read ReadFunc, parse ParseFunc) (*ModuleGraph, error) {
	absEntry, err := filepath.Abs(entryPath)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	entryDir := filepath.Dir(absEntry)

	g := &ModuleGraph{}
	g.addSearchPath(entryDir)
	for _, p := range extraSearchPaths {
		g.addSearchPath(p)
	}

	r := &resolver{
		graph:      g,
		read:       read,
		parse:      parse,
		byName:     map[string]int{},
		inProgress: map[string]bool{},
	}

	idx, err := r.resolveNamed(EntryModuleName, absEntry, entryDir)
	if err != nil {
		return nil, err
	}
	g.EntryIdx = idx
	return g, nil
}

// resolveNamed loads, parses and registers the module at absPath under the
// given name, recursing into its imports. It returns the module's index
// (possibly an existing one, for a cache hit on an already-resolved name).
func (r *resolver) resolveNamed(name, absPath, callerDir string) (int, error) {
	if idx, ok := r.byName[name]; ok {
		return idx, nil
	}
	if r.inProgress[name] {
		return 0, &DependencyCycleError{Name: name}
	}
	r.inProgress[name] = true
	defer delete(r.inProgress, name)

	sourceBytes, err := r.read(absPath)
	if err != nil {
		return 0, errors.Wrapf(err, "reading module %q", name)
	}

	mi := &ModuleInfo{
		Name:         name,
		AbsolutePath: absPath,
		SourceBytes:  sourceBytes,
	}

	mod, err := r.parse(sourceBytes)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing module %q", name)
	}
	mi.AST = mod
	mi.ParsedFlag = true

	idx := r.graph.appendModule(mi)
	r.byName[name] = idx

	dir := filepath.Dir(absPath)
	for _, imp := range mod.Imports {
		depPath, err := Find(imp.ModuleName, dir, r.graph.SearchPaths)
		if err != nil {
			return 0, errors.Wrapf(err, "in module %q", name)
		}
		depIdx, err := r.resolveNamed(imp.ModuleName, depPath, dir)
		if err != nil {
			return 0, err
		}
		mi.DepIndices = append(mi.DepIndices, depIdx)
	}

	return idx, nil
}
