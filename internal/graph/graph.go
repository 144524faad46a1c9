// Package graph implements a scalar reverse-mode automatic
// differentiation engine.
//
// Values form a directed acyclic computation graph. Every operation
// evaluates its forward value eagerly at construction time and
// records its operands, so a single backward pass over the graph can
// later compute the gradient of an output with respect to every
// ancestor via reverse accumulation of local derivatives.
//
// All nodes live inside a Graph arena and are addressed through Value
// handles. Operand indices always point at strictly earlier arena
// entries, which keeps the graph acyclic by construction and
// guarantees that operands outlive every node referencing them; the
// whole arena is torn down at once when the Graph is collected.
//
// A Graph is not safe for concurrent use.
package graph

// noOperand marks an absent operand slot.
const noOperand int32 = -1

// node is a single vertex in the computation graph.
//
// value is computed once, eagerly, when the node is constructed and
// never mutated afterwards. grad is accumulated (always by addition,
// never overwrite) during a backward pass: a node shared by several
// parents receives one contribution per parent edge.
type node struct {
	value float64
	grad  float64
	op    Op
	exp   float64 // Power exponent; unused by other operations
	a, b  int32   // operand indices into the arena, noOperand when absent
}

// Graph is an arena of nodes forming a scalar computation DAG.
//
// Graphs only grow: constructors append nodes that reference earlier
// ones, and nodes are never removed individually (removing one while
// others reference it would break the operand-liveness invariant).
type Graph struct {
	nodes []node
}

// New creates an empty computation graph.
func New() *Graph {
	return &Graph{
		nodes: make([]node, 0, 64), // Pre-allocate for common case
	}
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Value is a handle to a node in a Graph.
//
// Handles are only produced by Graph constructors; the zero Value is
// invalid. A Value is a cheap two-word struct and is passed by value.
type Value struct {
	graph *Graph
	index int32
}

// Data returns the node's forward value. The value is fixed when the
// node is constructed and never drifts afterwards.
func (v Value) Data() float64 {
	return v.graph.nodes[v.index].value
}

// Grad returns the gradient accumulated by the most recent backward
// pass that reached this node, or 0 otherwise.
func (v Value) Grad() float64 {
	return v.graph.nodes[v.index].grad
}

// Op returns the operation that produced this node.
func (v Value) Op() Op {
	return v.graph.nodes[v.index].op
}

// Exponent returns the constant exponent of a Power node, or 0 for
// any other operation.
func (v Value) Exponent() float64 {
	n := &v.graph.nodes[v.index]
	if n.op != Power {
		return 0
	}
	return n.exp
}

// Operands returns handles to the node's operands, in order. Leaves
// return nil.
func (v Value) Operands() []Value {
	n := &v.graph.nodes[v.index]
	switch {
	case n.a == noOperand:
		return nil
	case n.b == noOperand:
		return []Value{{graph: v.graph, index: n.a}}
	default:
		return []Value{{graph: v.graph, index: n.a}, {graph: v.graph, index: n.b}}
	}
}

// push appends a node to the arena and returns its handle.
func (g *Graph) push(n node) Value {
	g.nodes = append(g.nodes, n)
	return Value{graph: g, index: int32(len(g.nodes) - 1)}
}

// check panics if the handle was issued by a different graph. Handles
// are indices into one arena and are meaningless in any other.
func (g *Graph) check(v Value) {
	if v.graph != g {
		panic("graph: value belongs to a different graph (did you mix arenas?)")
	}
}

// Leaf creates an input node holding the given value.
//
// Leaves are the only nodes created directly from a number; every
// other node is produced by combining existing values.
func (g *Graph) Leaf(value float64) Value {
	return g.push(node{value: value, op: Identity, a: noOperand, b: noOperand})
}

// Add creates a node computing x + y.
func (g *Graph) Add(x, y Value) Value {
	g.check(x)
	g.check(y)
	return g.push(node{
		value: forward(Add, x.Data(), y.Data(), 0),
		op:    Add,
		a:     x.index,
		b:     y.index,
	})
}

// Negate creates a node computing -x.
func (g *Graph) Negate(x Value) Value {
	g.check(x)
	return g.push(node{
		value: forward(Negate, x.Data(), 0, 0),
		op:    Negate,
		a:     x.index,
		b:     noOperand,
	})
}

// Mul creates a node computing x * y.
func (g *Graph) Mul(x, y Value) Value {
	g.check(x)
	g.check(y)
	return g.push(node{
		value: forward(Multiply, x.Data(), y.Data(), 0),
		op:    Multiply,
		a:     x.index,
		b:     y.index,
	})
}

// Pow creates a node computing x^p.
//
// The exponent is captured as a constant: gradients flow only to x.
// math.Pow semantics apply, so a negative base with a fractional
// exponent produces NaN, which propagates.
func (g *Graph) Pow(x Value, p float64) Value {
	g.check(x)
	return g.push(node{
		value: forward(Power, x.Data(), 0, p),
		op:    Power,
		exp:   p,
		a:     x.index,
		b:     noOperand,
	})
}

// Sub creates nodes computing x - y as x + (-y). It is a convenience
// composed from the catalog, not a new operation.
func (g *Graph) Sub(x, y Value) Value {
	return g.Add(x, g.Negate(y))
}
