// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package graph

import (
	"github.com/born-ml/grad/internal/graph"
)

// Graph is an arena of scalar values forming a computation DAG.
type Graph = graph.Graph

// Value is a handle to a node in a Graph.
type Value = graph.Value

// Op identifies a differentiable operation.
type Op = graph.Op

// Operation catalog tags.
const (
	Identity Op = graph.Identity
	Add      Op = graph.Add
	Negate   Op = graph.Negate
	Multiply Op = graph.Multiply
	Power    Op = graph.Power
)

// New creates an empty computation graph.
//
// Example:
//
//	g := graph.New()
//	x := g.Leaf(3.0)
//	y := g.Pow(x, 2)
//	g.Backward(y)
func New() *Graph {
	return graph.New()
}
