// Package modgraph discovers and resolves BetterPython source modules into
// an acyclic dependency graph (spec.md §4.C). It does not parse source
// itself — parsing is an external collaborator (spec.md §1's non-goals) —
// it calls a supplied ParseFunc and works with whatever Module{imports[],
// functions[], ...} shape that function returns.
package modgraph

// EntryModuleName is the fixed name given to the resolution root
// (spec.md §4.C step 2).
const EntryModuleName = "__main__"

// Import is a single import declaration found in a module's AST.
type Import struct {
	ModuleName string
}

// Module is the shape the core receives from the external parser
// (spec.md §3's "Module (as consumed from parser)").
type Module struct {
	Imports   []Import
	Functions []Function
}

// Function is an opaque per-function compiled-or-compilable unit; the core
// only needs to move it around and rewrite its call targets (Component D),
// never interpret its body.
type Function struct {
	Name string
	Body any
}

// ModuleInfo is one resolved node of a ModuleGraph (spec.md §3).
type ModuleInfo struct {
	Name         string
	AbsolutePath string
	SourceBytes  []byte
	AST          *Module
	ParsedFlag   bool
	CompiledFlag bool
	DepIndices   []int
}

// ModuleGraph is the append-only result of resolution (spec.md §3): indices
// never change once assigned, and after a successful ResolveAll the graph
// is acyclic.
type ModuleGraph struct {
	Modules     []*ModuleInfo
	SearchPaths []string
	EntryIdx    int
}

// MaxSearchPaths bounds search_paths[≤16] (spec.md §3).
const MaxSearchPaths = 16

// byName indexes Modules by name for cache-hit lookups during resolution.
func (g *ModuleGraph) byName() map[string]int {
	m := make(map[string]int, len(g.Modules))
	for i, mi := range g.Modules {
		m[mi.Name] = i
	}
	return m
}

// addSearchPath appends dir to SearchPaths if not already present and under
// the MaxSearchPaths bound; silently caps rather than failing, since the
// entry module's own directory is always added by ResolveAll and a long
// BETTERPYTHON_PATH is a configuration choice, not a resolver error.
func (g *ModuleGraph) addSearchPath(dir string) {
	for _, p := range g.SearchPaths {
		if p == dir {
			return
		}
	}
	if len(g.SearchPaths) >= MaxSearchPaths {
		return
	}
	g.SearchPaths = append(g.SearchPaths, dir)
}

// appendModule registers mi as a new module and returns its assigned index.
func (g *ModuleGraph) appendModule(mi *ModuleInfo) int {
	idx := len(g.Modules)
	g.Modules = append(g.Modules, mi)
	return idx
}

// DependencyCycleError reports a name that resolves back onto the DFS
// visit-stack before it finished parsing (spec.md §4.C).
type DependencyCycleError struct {
	Name string
}

func (e *DependencyCycleError) Error() string {
	return "circular dependency detected: " + e.Name
}
