package operator

import (
	"fmt"
	"reflect"
	"sort"
)

// The catalog. One singleton per supported operator, constructed once at
// package init. Precedence ranks: abs binds tightest, then pow, then the
// multiplicative operators, then the additive operators and unary sign;
// the logical operators sit below the whole arithmetic ladder.
var (
	// Pos is the identity operator: Pos.Invoke(2) == 2.
	Pos = mustOp(KindPos, "pos", 1, 0)
	// Neg is the negation operator: Neg.Invoke(2) == -2.
	Neg = mustOp(KindNeg, "neg", 1, 0)
	// Abs is the absolute value operator: Abs.Invoke(-2) == 2.
	Abs = mustOp(KindAbs, "abs", 1, 3)
	// Add is the addition operator: Add.Invoke(1, 2) == 3.
	Add = mustOp(KindAdd, "add", 2, 0)
	// Sub is the subtraction operator: Sub.Invoke(3, 2) == 1.
	Sub = mustOp(KindSub, "sub", 2, 0)
	// Mul is the multiplication operator: Mul.Invoke(2, 3) == 6.
	Mul = mustOp(KindMul, "mul", 2, 1)
	// TrueDiv is the division operator: TrueDiv.Invoke(4, 2) == 2.
	TrueDiv = mustOp(KindTrueDiv, "truediv", 2, 1)
	// FloorDiv is the integer division operator: FloorDiv.Invoke(3, 2) == 1.
	FloorDiv = mustOp(KindFloorDiv, "floordiv", 2, 1)
	// Mod is the modulus operator: Mod.Invoke(7, 4) == 3.
	Mod = mustOp(KindMod, "mod", 2, 1)
	// Pow is the exponentiation operator: Pow.Invoke(2, 3) == 8.
	Pow = mustOp(KindPow, "pow", 2, 2)
	// Not is the logical negation operator: Not.Invoke(true) == false.
	Not = mustOp(KindNot, "not", 1, -1)
	// And is the logical conjunction operator.
	And = mustOp(KindAnd, "and", 2, -2)
	// Xor is the exclusive disjunction operator.
	Xor = mustOp(KindXor, "xor", 2, -3)
	// Or is the logical disjunction operator.
	Or = mustOp(KindOr, "or", 2, -4)
)

// catalog lists every entry in stable authoring order.
var catalog = []Operator{
	Pos, Neg, Abs,
	Add, Sub, Mul, TrueDiv, FloorDiv, Mod, Pow,
	Not, And, Xor, Or,
}

// byName indexes the catalog for O(1) name lookup.
var byName = func() map[string]Operator {
	m := make(map[string]Operator, len(catalog))
	for _, op := range catalog {
		if _, dup := m[op.Name()]; dup {
			panic(fmt.Sprintf("operator: duplicate catalog name %q", op.Name()))
		}
		m[op.Name()] = op
	}
	return m
}()

// All returns every catalog entry in stable order.
// The returned slice is a copy and may be freely modified.
func All() []Operator {
	out := make([]Operator, len(catalog))
	copy(out, catalog)
	return out
}

// Sorted returns every catalog entry from lowest to highest precedence
// (ties broken by name, per Compare).
func Sorted() []Operator {
	out := All()
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// ByName resolves a canonical name to its catalog entry.
// Returns an L0101 error for names outside the catalog.
func ByName(name string) (Operator, error) {
	op, ok := byName[name]
	if !ok {
		return Operator{}, NewError(ErrNameNotFound, fmt.Sprintf("no operator named %q", name))
	}
	return op, nil
}

// ByFunc resolves a raw computation back to its catalog entry by
// function identity. Returns an L0102 error when fn is not the
// computation of any catalog entry.
func ByFunc(fn Func) (Operator, error) {
	if fn == nil {
		return Operator{}, NewError(ErrFuncNotFound, "no operator for nil function")
	}
	ptr := reflect.ValueOf(fn).Pointer()
	for _, op := range catalog {
		if reflect.ValueOf(op.Func()).Pointer() == ptr {
			return op, nil
		}
	}
	return Operator{}, NewError(ErrFuncNotFound, "no operator for the given function")
}
