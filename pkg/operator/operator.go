// Package operator represents algebraic operators as first-class,
// immutable, comparable, totally ordered, callable values.
//
// Each Operator pairs a pure computation with a canonical name, an arity
// and a precedence rank. Values are plain comparable structs: == tests
// catalog identity, map keys and set membership work directly, and
// Compare orders any two operators by precedence.
//
//	sum, err := operator.Add.Invoke(1.0, 2.0) // 3
//	operator.Pow.Less(operator.Mul)           // false
package operator

import (
	"fmt"
	"strings"
)

// Kind selects the computation an Operator dispatches to.
type Kind uint8

const (
	KindPos Kind = iota
	KindNeg
	KindAbs
	KindAdd
	KindSub
	KindMul
	KindTrueDiv
	KindFloorDiv
	KindMod
	KindPow
	KindNot
	KindAnd
	KindXor
	KindOr

	kindCount
)

// kernel binds a Kind to its computation and the operand count the
// computation accepts. newOperator validates catalog entries against it.
type kernel struct {
	arity int
	fn    Func
}

var kernels = [kindCount]kernel{
	KindPos:      {1, opPos},
	KindNeg:      {1, opNeg},
	KindAbs:      {1, opAbs},
	KindAdd:      {2, opAdd},
	KindSub:      {2, opSub},
	KindMul:      {2, opMul},
	KindTrueDiv:  {2, opTrueDiv},
	KindFloorDiv: {2, opFloorDiv},
	KindMod:      {2, opMod},
	KindPow:      {2, opPow},
	KindNot:      {1, opNot},
	KindAnd:      {2, opAnd},
	KindXor:      {2, opXor},
	KindOr:       {2, opOr},
}

// Operator is one algebraic operator as an immutable value.
//
// The zero value is not a valid operator; obtain instances from the
// package-level catalog constants or the lookup helpers. The struct
// contains no reference fields, so two Operator values are == exactly
// when they denote the same catalog entry, and equal values behave
// identically as map keys.
type Operator struct {
	kind       Kind
	name       string
	arity      int
	precedence int
}

// newOperator constructs a catalog entry, validating that the name is
// non-empty, the arity is positive and the arity matches the operand
// count of the kind's computation.
func newOperator(kind Kind, name string, arity, precedence int) (Operator, error) {
	if name == "" {
		return Operator{}, NewError(ErrEmptyName, "operator name must be non-empty")
	}
	if arity <= 0 {
		return Operator{}, NewError(ErrBadArity, fmt.Sprintf("arity must be positive, got %d", arity)).WithOp(name)
	}
	if kind >= kindCount {
		return Operator{}, NewError(ErrUnknownKind, fmt.Sprintf("unknown kind %d", kind)).WithOp(name)
	}
	if want := kernels[kind].arity; arity != want {
		return Operator{}, NewError(ErrArityConflict, fmt.Sprintf("declared arity %d but computation takes %d operands", arity, want)).WithOp(name)
	}
	return Operator{kind: kind, name: name, arity: arity, precedence: precedence}, nil
}

// mustOp is newOperator for catalog initialization; authoring mistakes
// panic at package init rather than surfacing to consumers.
func mustOp(kind Kind, name string, arity, precedence int) Operator {
	op, err := newOperator(kind, name, arity, precedence)
	if err != nil {
		panic(fmt.Sprintf("operator: invalid catalog entry %q: %v", name, err))
	}
	return op
}

// Invoke applies the operator's computation to the given operands.
//
// The number of operands must equal Arity; otherwise an I0101 error is
// returned and the computation is not run. Errors raised by the
// computation itself (invalid operand types, division by zero, result
// out of range) are propagated unchanged.
func (op Operator) Invoke(operands ...interface{}) (interface{}, error) {
	if len(operands) != op.arity {
		return nil, NewError(ErrArityMismatch, fmt.Sprintf("takes %d operands, got %d", op.arity, len(operands))).WithOp(op.name)
	}
	return kernels[op.kind].fn(operands...)
}

// Name returns the canonical concise name, e.g. "mul".
func (op Operator) Name() string { return op.name }

// Arity returns the number of operands the operator consumes.
func (op Operator) Arity() int { return op.arity }

// Precedence returns the rank used for ordering. A higher rank binds
// tighter in conventional notation.
func (op Operator) Precedence() int { return op.precedence }

// Kind returns the tag selecting the operator's computation.
func (op Operator) Kind() Kind { return op.kind }

// Func returns the underlying pure computation.
func (op Operator) Func() Func { return kernels[op.kind].fn }

// Compare orders two operators by precedence, returning -1, 0 or +1.
// Operators of equal precedence are ordered lexicographically by name,
// so the ordering is total and only identical entries compare equal.
func (op Operator) Compare(other Operator) int {
	switch {
	case op.precedence < other.precedence:
		return -1
	case op.precedence > other.precedence:
		return 1
	}
	return strings.Compare(op.name, other.name)
}

// Less reports whether op binds less tightly than other.
func (op Operator) Less(other Operator) bool { return op.Compare(other) < 0 }

// String returns the operator's printed form, the canonical name with a
// trailing underscore, e.g. "mul_".
func (op Operator) String() string { return op.name + "_" }
