package modgraph

import "github.com/pkg/errors"

// color marks a node's DFS state for Sort's cycle guard.
type color int

const (
	white color = iota
	grey
	black
)

// Sort topologically orders g's modules by DFS from EntryIdx over
// DepIndices, appending each node in post-order so dependencies strictly
// precede dependents (spec.md §4.C). A grey node revisited indicates a
// cycle; ResolveAll's own cycle detection should have already prevented
// this, so Sort treats it as an internal invariant violation, not a normal
// error path.
func Sort(g *ModuleGraph) ([]int, error) {
	colors := make([]color, len(g.Modules))
	var order []int

	var visit func(idx int) error
	visit = func(idx int) error {
		switch colors[idx] {
		case black:
			return nil
		case grey:
			return errors.Errorf("modgraph: cycle detected at module %q during topological sort", g.Modules[idx].Name)
		}
		colors[idx] = grey
		for _, dep := range g.Modules[idx].DepIndices {
			if err := visit(dep); err != nil {
				return err
			}
		}
		colors[idx] = black
		order = append(order, idx)
		return nil
	}

	if err := visit(g.EntryIdx); err != nil {
		return nil, err
	}
	return order, nil
}
