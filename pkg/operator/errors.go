package operator

import "fmt"

// ErrorCode identifies a class of operator error.
type ErrorCode string

const (
	// C01xx: catalog construction errors. These only occur while the
	// catalog is being authored and surface as panics at package init,
	// never as runtime errors for consumers.
	ErrEmptyName     ErrorCode = "C0101"
	ErrBadArity      ErrorCode = "C0102"
	ErrArityConflict ErrorCode = "C0103"
	ErrUnknownKind   ErrorCode = "C0104"

	// I01xx: invocation errors.
	ErrArityMismatch ErrorCode = "I0101"

	// L01xx: lookup errors.
	ErrNameNotFound ErrorCode = "L0101"
	ErrFuncNotFound ErrorCode = "L0102"

	// D01xx: operand/domain errors raised by the underlying computations.
	ErrInvalidOperandType ErrorCode = "D0101"
	ErrDivisionByZero     ErrorCode = "D0102"
	ErrResultOutOfRange   ErrorCode = "D0103"
)

// Error is a structured operator error.
type Error struct {
	Code    ErrorCode
	Message string
	Op      string // canonical operator name, when known
	Err     error
}

// NewError creates a new operator error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s %s: %s", e.Code, e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithOp attaches the operator name to the error.
func (e *Error) WithOp(name string) *Error {
	e.Op = name
	return e
}

// WithCause wraps another error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}
