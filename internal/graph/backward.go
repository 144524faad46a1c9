package graph

// Backward computes the gradient of root with respect to every node
// reachable from it, using reverse-mode accumulation.
//
// Algorithm:
//  1. Mark the subgraph reachable from root by following operand edges.
//  2. Reset the gradients of the reachable set to zero.
//  3. Seed root.grad = 1.
//  4. Walk the reachable set in reverse topological order, pushing
//     each node's gradient into its operands weighted by the local
//     derivative. Each parent→operand edge contributes exactly once.
//
// Operand indices are always strictly smaller than the index of any
// node referencing them, so descending index order over the reachable
// set is a topological order: a node is processed only after every
// one of its parents has pushed into it. This matters for shared
// subexpressions: a node with several parents must have all incoming
// contributions summed before its own gradient flows further down,
// otherwise downstream nodes would receive a premature partial sum.
//
// Gradients of nodes outside the reachable subgraph are left
// untouched. Backward runs to completion synchronously; repeating it
// over the same graph yields identical gradients because of the reset
// in step 2.
func (g *Graph) Backward(root Value) {
	g.check(root)

	reachable := g.markReachable(root.index)

	for i, r := range reachable {
		if r {
			g.nodes[i].grad = 0
		}
	}
	g.nodes[root.index].grad = 1

	for i := root.index; i >= 0; i-- {
		if !reachable[i] {
			continue
		}
		n := &g.nodes[i]
		if n.a == noOperand {
			// Leaves absorb contributions and propagate nothing.
			continue
		}
		av := g.nodes[n.a].value
		if n.b == noOperand {
			g.nodes[n.a].grad += n.grad * localGrad(n.op, av, 0, n.exp)
			continue
		}
		bv := g.nodes[n.b].value
		g.nodes[n.a].grad += n.grad * localGrad(n.op, av, bv, n.exp)
		g.nodes[n.b].grad += n.grad * localGrad(n.op, bv, av, n.exp)
	}
}

// markReachable flags every node reachable from start by following
// operand edges. The marks are per-pass scratch state, not part of
// the nodes themselves.
func (g *Graph) markReachable(start int32) []bool {
	reachable := make([]bool, len(g.nodes))
	reachable[start] = true

	stack := make([]int32, 0, 16)
	stack = append(stack, start)
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &g.nodes[i]
		if n.a != noOperand && !reachable[n.a] {
			reachable[n.a] = true
			stack = append(stack, n.a)
		}
		if n.b != noOperand && !reachable[n.b] {
			reachable[n.b] = true
			stack = append(stack, n.b)
		}
	}
	return reachable
}

// ZeroGrad resets the gradient of every node in the graph.
//
// Backward already zeroes the subgraph it touches, so ZeroGrad is
// only needed when a caller wants untouched nodes cleared as well.
func (g *Graph) ZeroGrad() {
	for i := range g.nodes {
		g.nodes[i].grad = 0
	}
}
