package interp

import (
	"fmt"
	"strings"
)

// UnknownVariableError reports a name that resolved nowhere along the parent
// chain. Ctx holds a snapshot of the lookup context, taken at failure time,
// so drivers can show which names were in scope.
type UnknownVariableError struct {
	Name string
	Ctx  *Context
}

// Error implements the error interface.
func (e *UnknownVariableError) Error() string {
	names := e.Ctx.boundNames()
	if len(names) == 0 {
		return fmt.Sprintf("unknown variable %s (empty scope)", e.Name)
	}
	return fmt.Sprintf("unknown variable %s (in scope: %s)", e.Name, strings.Join(names, " "))
}

// TypeMismatchError reports an operand with the wrong value variant for an
// operator, such as a quoted form leaking into arithmetic unevaluated.
type TypeMismatchError struct {
	Operator string
	Got      Value
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	if e.Got == nil {
		return fmt.Sprintf("operand of %s has no value", e.Operator)
	}
	return fmt.Sprintf("operand of %s is %s, not INTEGER", e.Operator, e.Got.Type())
}

// DivisionByZeroError reports an integer division with a zero divisor.
type DivisionByZeroError struct{}

// Error implements the error interface.
func (e *DivisionByZeroError) Error() string {
	return "division by zero"
}
