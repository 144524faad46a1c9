// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides scalar reverse-mode automatic differentiation.
//
// # Overview
//
// A Graph is an arena of scalar values connected by differentiable
// operations. Every operation evaluates its forward value eagerly at
// construction time; a single Backward call then computes the
// gradient of a chosen output with respect to every value it was
// computed from.
//
// # Basic Usage
//
//	import "github.com/born-ml/grad/graph"
//
//	func main() {
//	    g := graph.New()
//
//	    a := g.Leaf(4.0)
//	    x := g.Leaf(3.0)
//	    b := g.Leaf(10.0)
//
//	    // t = a*x + b
//	    t := g.Add(g.Mul(a, x), b)
//
//	    g.Backward(t)
//
//	    _ = t.Data() // 22
//	    _ = x.Grad() // 4 (dt/dx = a)
//	    _ = a.Grad() // 3 (dt/da = x)
//	    _ = b.Grad() // 1
//	}
//
// # Operation Set
//
// The catalog is closed: Leaf (Identity), Add, Negate, Mul (Multiply)
// and Pow (Power with a constant exponent). Sub is a convenience
// composed from Add and Negate. Forward evaluation follows IEEE-754
// semantics; domain-invalid results such as a negative base raised to
// a fractional power produce NaN, which propagates through values and
// gradients.
//
// # Shared Subexpressions
//
// A value may feed any number of consumers. Backward propagates in
// topological order, so a shared value has all incoming gradient
// contributions summed before its own operands are updated:
//
//	y := g.Leaf(2.0)
//	s := g.Add(y, y)
//	g.Backward(s)
//	_ = y.Grad() // 2, one contribution per edge
//
// # Ownership
//
// The arena owns every node. Value handles stay valid for the life of
// their Graph and the whole graph is released together. Graphs are
// append-only and not safe for concurrent use.
package graph
