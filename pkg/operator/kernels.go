package operator

import (
	"fmt"
	"math"
)

// Func is the signature of the pure computation wrapped by an Operator.
// args contains exactly the operator's arity operands.
type Func func(args ...interface{}) (interface{}, error)

// toNumber coerces a numeric operand to float64.
// Returns a D0101 error for any non-numeric operand.
func toNumber(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, NewError(ErrInvalidOperandType, fmt.Sprintf("operand of type %T is not a number", v))
	}
}

// toBool coerces a logical operand to bool.
// Returns a D0101 error for any non-boolean operand.
func toBool(v interface{}) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, NewError(ErrInvalidOperandType, fmt.Sprintf("operand of type %T is not a boolean", v))
	}
	return b, nil
}

// checkFinite validates that an arithmetic result is a finite number.
// Returns a D0103 error for NaN, +Infinity, or -Infinity.
func checkFinite(result float64) (interface{}, error) {
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return nil, NewError(ErrResultOutOfRange, "result out of range")
	}
	return result, nil
}

func opPos(args ...interface{}) (interface{}, error) {
	n, err := toNumber(args[0])
	if err != nil {
		return nil, err
	}
	return n, nil
}

func opNeg(args ...interface{}) (interface{}, error) {
	n, err := toNumber(args[0])
	if err != nil {
		return nil, err
	}
	return -n, nil
}

func opAbs(args ...interface{}) (interface{}, error) {
	n, err := toNumber(args[0])
	if err != nil {
		return nil, err
	}
	return math.Abs(n), nil
}

func opAdd(args ...interface{}) (interface{}, error) {
	l, r, err := numericPair(args)
	if err != nil {
		return nil, err
	}
	return checkFinite(l + r)
}

func opSub(args ...interface{}) (interface{}, error) {
	l, r, err := numericPair(args)
	if err != nil {
		return nil, err
	}
	return checkFinite(l - r)
}

func opMul(args ...interface{}) (interface{}, error) {
	l, r, err := numericPair(args)
	if err != nil {
		return nil, err
	}
	return checkFinite(l * r)
}

func opTrueDiv(args ...interface{}) (interface{}, error) {
	l, r, err := numericPair(args)
	if err != nil {
		return nil, err
	}
	if r == 0 {
		return nil, NewError(ErrDivisionByZero, "division by zero")
	}
	return checkFinite(l / r)
}

func opFloorDiv(args ...interface{}) (interface{}, error) {
	l, r, err := numericPair(args)
	if err != nil {
		return nil, err
	}
	if r == 0 {
		return nil, NewError(ErrDivisionByZero, "division by zero")
	}
	return checkFinite(math.Floor(l / r))
}

func opMod(args ...interface{}) (interface{}, error) {
	l, r, err := numericPair(args)
	if err != nil {
		return nil, err
	}
	if r == 0 {
		return nil, NewError(ErrDivisionByZero, "division by zero")
	}
	// Result takes the sign of the divisor, matching the remainder
	// semantics of floor division (floordiv(l, r)*r + mod(l, r) == l).
	m := math.Mod(l, r)
	if m != 0 && (m < 0) != (r < 0) {
		m += r
	}
	return checkFinite(m)
}

func opPow(args ...interface{}) (interface{}, error) {
	l, r, err := numericPair(args)
	if err != nil {
		return nil, err
	}
	return checkFinite(math.Pow(l, r))
}

func opNot(args ...interface{}) (interface{}, error) {
	b, err := toBool(args[0])
	if err != nil {
		return nil, err
	}
	return !b, nil
}

func opAnd(args ...interface{}) (interface{}, error) {
	l, r, err := booleanPair(args)
	if err != nil {
		return nil, err
	}
	return l && r, nil
}

func opXor(args ...interface{}) (interface{}, error) {
	l, r, err := booleanPair(args)
	if err != nil {
		return nil, err
	}
	return l != r, nil
}

func opOr(args ...interface{}) (interface{}, error) {
	l, r, err := booleanPair(args)
	if err != nil {
		return nil, err
	}
	return l || r, nil
}

func numericPair(args []interface{}) (float64, float64, error) {
	l, err := toNumber(args[0])
	if err != nil {
		return 0, 0, err
	}
	r, err := toNumber(args[1])
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}

func booleanPair(args []interface{}) (bool, bool, error) {
	l, err := toBool(args[0])
	if err != nil {
		return false, false, err
	}
	r, err := toBool(args[1])
	if err != nil {
		return false, false, err
	}
	return l, r, nil
}
