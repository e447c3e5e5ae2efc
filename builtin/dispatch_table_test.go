package builtin

import (
	"testing"

	"github.com/th3f0rk/betterpython/bpcore"
	"github.com/th3f0rk/betterpython/value"
)

func TestDispatchRoutesToNamedBuiltin(t *testing.T) {
	ctx := newTestContext()
	got := Dispatch(ctx, IDIAbs, []value.Value{value.Int(-5)})
	if got.Int64() != 5 {
		t.Fatalf("Dispatch(IDIAbs, -5) = %v, want 5", got)
	}
}

func TestNameReturnsGuestVisibleName(t *testing.T) {
	if got := Name(IDIAbs); got != "iabs" {
		t.Fatalf("Name(IDIAbs) = %q, want %q", got, "iabs")
	}
	if got := Name(ID(999999)); got != "<unknown>" {
		t.Fatalf("Name(unknown) = %q, want <unknown>", got)
	}
}

func TestDispatchUnknownIDIsFatal(t *testing.T) {
	ctx := newTestContext()
	defer expectFatalPanic(t)
	Dispatch(ctx, ID(999999), nil)
}

func TestDispatchArityMismatchIsFatal(t *testing.T) {
	ctx := newTestContext()
	defer expectFatalPanic(t)
	Dispatch(ctx, IDIAbs, []value.Value{value.Int(1), value.Int(2)})
}

func TestDispatchTableEntriesHaveUniqueNames(t *testing.T) {
	seen := map[string]ID{}
	for id, e := range dispatchTable {
		if other, dup := seen[e.name]; dup {
			t.Fatalf("duplicate built-in name %q for IDs %d and %d", e.name, id, other)
		}
		seen[e.name] = id
	}
}

func TestByNameResolvesRegisteredBuiltin(t *testing.T) {
	id, ok := ByName("iabs")
	if !ok || id != IDIAbs {
		t.Fatalf("ByName(%q) = (%v, %v), want (%v, true)", "iabs", id, ok, IDIAbs)
	}
	if _, ok := ByName("not_a_builtin"); ok {
		t.Fatal("ByName(unknown) = true, want false")
	}
}

func TestNamesCoversEveryDispatchEntrySorted(t *testing.T) {
	names := Names()
	if len(names) != len(dispatchTable) {
		t.Fatalf("len(Names()) = %d, want %d", len(names), len(dispatchTable))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("Names() not sorted at index %d: %q > %q", i, names[i-1], names[i])
		}
	}
}

func expectFatalPanic(t *testing.T) {
	t.Helper()
	r := recover()
	if r == nil {
		t.Fatal("expected a fatal panic, got none")
	}
	if err, ok := r.(error); !ok || !bpcore.IsFatal(err) {
		t.Fatalf("expected a *bpcore.FatalError panic, got %v", r)
	}
}
