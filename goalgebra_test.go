package goalgebra_test

import (
	"errors"
	"testing"

	"github.com/sandrolain/goalgebra"
	"github.com/sandrolain/goalgebra/pkg/operator"
)

func TestFacadeConstantsMatchCatalog(t *testing.T) {
	if goalgebra.Add != operator.Add || goalgebra.Pow != operator.Pow {
		t.Fatal("facade constants must be the pkg/operator singletons")
	}
	if len(goalgebra.All()) != len(operator.All()) {
		t.Fatal("facade enumeration must match the catalog")
	}
}

func TestFacadeInvoke(t *testing.T) {
	r, err := goalgebra.Add.Invoke(1.0, 2.0)
	if err != nil {
		t.Fatal(err)
	}
	if r != 3.0 {
		t.Fatalf("Add.Invoke(1, 2) = %v, want 3", r)
	}
}

func TestFacadeLookups(t *testing.T) {
	op, err := goalgebra.ByName("pow")
	if err != nil {
		t.Fatal(err)
	}
	if op != goalgebra.Pow {
		t.Fatalf(`ByName("pow") = %s`, op)
	}

	op, err = goalgebra.ByFunc(goalgebra.Mul.Func())
	if err != nil {
		t.Fatal(err)
	}
	if op != goalgebra.Mul {
		t.Fatalf("ByFunc(Mul.Func()) = %s", op)
	}

	_, err = goalgebra.ByName("frobnicate")
	var opErr *goalgebra.Error
	if !errors.As(err, &opErr) {
		t.Fatalf("expected *goalgebra.Error, got %T", err)
	}
}

func TestFacadeSorted(t *testing.T) {
	sorted := goalgebra.Sorted()
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Less(sorted[i-1]) {
			t.Fatalf("Sorted() out of order at %d: %s before %s", i, sorted[i-1], sorted[i])
		}
	}
}

func TestVersion(t *testing.T) {
	if goalgebra.Version() == "" {
		t.Fatal("Version() must be non-empty")
	}
}
