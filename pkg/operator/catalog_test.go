package operator_test

import (
	"sort"
	"testing"

	"github.com/sandrolain/goalgebra/pkg/operator"
)

func TestCatalogCompleteness(t *testing.T) {
	// Every name the enumeration advertises resolves back to an entry
	// with that name.
	for _, op := range operator.All() {
		got, err := operator.ByName(op.Name())
		if err != nil {
			t.Fatalf("ByName(%q) error: %v", op.Name(), err)
		}
		if got != op {
			t.Fatalf("ByName(%q) resolved to %s", op.Name(), got)
		}
	}
}

func TestCatalogNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, op := range operator.All() {
		if seen[op.Name()] {
			t.Fatalf("duplicate catalog name %q", op.Name())
		}
		seen[op.Name()] = true
	}
}

func TestByNameNotFound(t *testing.T) {
	_, err := operator.ByName("matmul")
	if err == nil {
		t.Fatal("expected lookup error for unknown name")
	}
	opErr, ok := err.(*operator.Error)
	if !ok {
		t.Fatalf("expected *operator.Error, got %T", err)
	}
	if opErr.Code != operator.ErrNameNotFound {
		t.Fatalf("code = %s, want %s", opErr.Code, operator.ErrNameNotFound)
	}
}

func TestByFunc(t *testing.T) {
	for _, op := range operator.All() {
		got, err := operator.ByFunc(op.Func())
		if err != nil {
			t.Fatalf("ByFunc for %s error: %v", op, err)
		}
		if got != op {
			t.Fatalf("ByFunc for %s resolved to %s", op, got)
		}
	}
}

func TestByFuncNotFound(t *testing.T) {
	other := func(args ...interface{}) (interface{}, error) { return nil, nil }
	if _, err := operator.ByFunc(other); err == nil {
		t.Fatal("expected lookup error for a non-catalog function")
	}
	if _, err := operator.ByFunc(nil); err == nil {
		t.Fatal("expected lookup error for nil function")
	}
}

func TestSorted(t *testing.T) {
	sorted := operator.Sorted()
	if len(sorted) != len(operator.All()) {
		t.Fatalf("Sorted() has %d entries, All() has %d", len(sorted), len(operator.All()))
	}
	if !sort.SliceIsSorted(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) }) {
		t.Fatal("Sorted() is not in ascending precedence order")
	}

	// Sorting [pow, mul, add] yields [add, mul, pow].
	ops := []operator.Operator{operator.Pow, operator.Mul, operator.Add}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Less(ops[j]) })
	want := []operator.Operator{operator.Add, operator.Mul, operator.Pow}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("sorted[%d] = %s, want %s", i, ops[i], want[i])
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := operator.All()
	a[0] = operator.Pow
	if operator.All()[0] != operator.Pos {
		t.Fatal("mutating All()'s result must not affect the catalog")
	}
}

func TestArityContract(t *testing.T) {
	if got := operator.Add.Arity(); got != 2 {
		t.Fatalf("Add.Arity() = %d, want 2", got)
	}
	if got := operator.Neg.Arity(); got != 1 {
		t.Fatalf("Neg.Arity() = %d, want 1", got)
	}
}
