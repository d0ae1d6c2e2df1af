// Package goalgebra provides a closed catalog of algebraic operators as
// first-class Go values.
//
// Each operator is an immutable, comparable, totally ordered, callable
// value pairing a pure computation with a canonical name, an arity and a
// precedence rank. Operators can be invoked, sorted by precedence, used
// as map keys or set members, and resolved by name or by underlying
// function.
//
// # Quick Start
//
//	// Invoke an operator
//	sum, err := goalgebra.Add.Invoke(1.0, 2.0) // 3
//
//	// Compare by precedence
//	goalgebra.Pow.Less(goalgebra.Mul) // false: pow binds tighter
//
//	// Use operators as map keys
//	costs := map[goalgebra.Operator]int{goalgebra.Add: 0, goalgebra.Mul: 1}
//
//	// Resolve by name
//	op, err := goalgebra.ByName("pow")
//	result, _ := op.Invoke(2.0, 3.0) // 8
//
// # Catalog
//
// Arithmetic: Pos, Neg, Abs, Add, Sub, Mul, TrueDiv, FloorDiv, Mod, Pow.
// Logical: Not, And, Xor, Or. Exponentiation binds tighter than the
// multiplicative operators, which bind tighter than the additive ones;
// the logical operators rank below the arithmetic ladder. Absolute value
// binds tightest of all.
//
// # Concurrency
//
// Every value is immutable and every computation pure, so operators may
// be shared across goroutines without synchronization.
//
// # More Information
//
// For the full API, see github.com/sandrolain/goalgebra/pkg/operator.
package goalgebra

import "github.com/sandrolain/goalgebra/pkg/operator"

// Version returns the current version of goalgebra.
func Version() string {
	return "v0.1.0-dev"
}

// Operator is one algebraic operator as an immutable value.
// See [operator.Operator].
type Operator = operator.Operator

// Func is the signature of an operator's underlying pure computation.
type Func = operator.Func

// Error is the structured error type every failure in this module uses.
type Error = operator.Error

// The catalog constants, re-exported from pkg/operator.
var (
	Pos      = operator.Pos
	Neg      = operator.Neg
	Abs      = operator.Abs
	Add      = operator.Add
	Sub      = operator.Sub
	Mul      = operator.Mul
	TrueDiv  = operator.TrueDiv
	FloorDiv = operator.FloorDiv
	Mod      = operator.Mod
	Pow      = operator.Pow
	Not      = operator.Not
	And      = operator.And
	Xor      = operator.Xor
	Or       = operator.Or
)

// All returns every catalog entry in stable order.
func All() []Operator {
	return operator.All()
}

// Sorted returns every catalog entry from lowest to highest precedence.
func Sorted() []Operator {
	return operator.Sorted()
}

// ByName resolves a canonical name (e.g. "add") to its catalog entry.
func ByName(name string) (Operator, error) {
	return operator.ByName(name)
}

// ByFunc resolves a raw computation back to its catalog entry by
// function identity.
func ByFunc(fn Func) (Operator, error) {
	return operator.ByFunc(fn)
}
