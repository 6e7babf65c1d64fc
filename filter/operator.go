package filter

import (
	"fmt"
	"time"
)

// Operator is a comparison operator applied as "reference OP candidate",
// with the reference date on the left-hand side.
type Operator string

const (
	OpEq  Operator = "=="
	OpNeq Operator = "!="
	OpLt  Operator = "<"
	OpLte Operator = "<="
	OpGt  Operator = ">"
	OpGte Operator = ">="
)

// DefaultOperator is used when the caller omits the operator argument.
const DefaultOperator = OpEq

// UnsupportedOperatorError reports an operator symbol outside the six
// recognized comparison operators.
type UnsupportedOperatorError struct {
	Operator string
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported operator %q: want one of == != < <= > >=", e.Operator)
}

// ParseOperator validates an operator symbol.
// The empty string maps to DefaultOperator.
func ParseOperator(s string) (Operator, error) {
	if s == "" {
		return DefaultOperator, nil
	}
	switch op := Operator(s); op {
	case OpEq, OpNeq, OpLt, OpLte, OpGt, OpGte:
		return op, nil
	}
	return "", &UnsupportedOperatorError{Operator: s}
}

func (op Operator) compare(reference, candidate time.Time) bool {
	switch op {
	case OpEq:
		return reference.Equal(candidate)
	case OpNeq:
		return !reference.Equal(candidate)
	case OpLt:
		return reference.Before(candidate)
	case OpLte:
		return !reference.After(candidate)
	case OpGt:
		return reference.After(candidate)
	case OpGte:
		return !reference.Before(candidate)
	}
	return false
}
