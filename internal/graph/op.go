package graph

import (
	"fmt"
	"math"
)

// Op identifies a differentiable operation in the computation graph.
//
// The set is closed: nodes are only produced by Graph constructors,
// which pick the tag and record operands matching its arity. Keeping
// operations as plain data (one dispatcher for forward evaluation,
// one for local derivatives) avoids dynamic dispatch and keeps the
// catalog trivially testable.
type Op uint8

const (
	// Identity is a leaf node: its value is fixed at construction and
	// it has no operands.
	Identity Op = iota
	// Add computes a + b.
	Add
	// Negate computes -a.
	Negate
	// Multiply computes a * b.
	Multiply
	// Power computes a^p for an exponent p captured as a constant at
	// construction time. The exponent is never a differentiable
	// operand, even if it equals the value of some other node.
	Power
)

// Arity returns the number of operands the operation consumes.
func (op Op) Arity() int {
	switch op {
	case Identity:
		return 0
	case Negate, Power:
		return 1
	case Add, Multiply:
		return 2
	default:
		panic(fmt.Sprintf("graph: unknown operation %d", uint8(op)))
	}
}

// String returns a human-readable name for the operation.
func (op Op) String() string {
	switch op {
	case Identity:
		return "Identity"
	case Add:
		return "Add"
	case Negate:
		return "Negate"
	case Multiply:
		return "Multiply"
	case Power:
		return "Power"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// forward evaluates the operation at the operand values a and b.
// Unary operations read only a; p is the Power exponent and is
// ignored by every other operation.
//
// Power follows math.Pow semantics: a negative base raised to a
// fractional exponent yields NaN, which propagates through later
// operations and gradients rather than aborting.
func forward(op Op, a, b, p float64) float64 {
	switch op {
	case Add:
		return a + b
	case Negate:
		return -a
	case Multiply:
		return a * b
	case Power:
		return math.Pow(a, p)
	default:
		panic(fmt.Sprintf("graph: forward pass on %s node", op))
	}
}

// localGrad returns the partial derivative of the operation's output
// with respect to the operand whose value is a. For binary operations
// other is the value of the remaining operand; it is ignored
// otherwise. p is the Power exponent.
//
//	Add:      d(a+b)/da = 1
//	Negate:   d(-a)/da  = -1
//	Multiply: d(a*b)/da = b
//	Power:    d(a^p)/da = p * a^(p-1)
func localGrad(op Op, a, other, p float64) float64 {
	switch op {
	case Add:
		return 1
	case Negate:
		return -1
	case Multiply:
		return other
	case Power:
		return p * math.Pow(a, p-1)
	default:
		panic(fmt.Sprintf("graph: local derivative on %s node", op))
	}
}
