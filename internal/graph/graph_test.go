package graph_test

import (
	"math"
	"testing"

	"github.com/born-ml/grad/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLeaf_Construction tests leaf node postconditions.
func TestLeaf_Construction(t *testing.T) {
	g := graph.New()

	v := g.Leaf(4.5)

	assert.Equal(t, 4.5, v.Data())
	assert.Equal(t, 0.0, v.Grad())
	assert.Equal(t, graph.Identity, v.Op())
	assert.Empty(t, v.Operands())
	assert.Equal(t, 1, g.Len())
}

// TestCombinators_EagerForward tests that every combinator evaluates
// its forward value at construction time.
func TestCombinators_EagerForward(t *testing.T) {
	g := graph.New()
	x := g.Leaf(3.0)
	y := g.Leaf(-2.0)

	tests := []struct {
		name string
		got  graph.Value
		want float64
		op   graph.Op
	}{
		{"add", g.Add(x, y), 1.0, graph.Add},
		{"negate", g.Negate(x), -3.0, graph.Negate},
		{"mul", g.Mul(x, y), -6.0, graph.Multiply},
		{"pow", g.Pow(x, 2), 9.0, graph.Power},
		{"sub", g.Sub(x, y), 5.0, graph.Add},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got.Data(), "%s forward value", tt.name)
		assert.Equal(t, 0.0, tt.got.Grad(), "%s grad must start at 0", tt.name)
		assert.Equal(t, tt.op, tt.got.Op(), "%s op tag", tt.name)
	}
}

// TestCombinators_OperandIdentity tests that combinators record the
// exact argument handles, not copies of their values.
func TestCombinators_OperandIdentity(t *testing.T) {
	g := graph.New()
	x := g.Leaf(1.0)
	y := g.Leaf(2.0)

	sum := g.Add(x, y)
	ops := sum.Operands()
	require.Len(t, ops, 2)
	assert.Equal(t, x, ops[0])
	assert.Equal(t, y, ops[1])

	neg := g.Negate(x)
	ops = neg.Operands()
	require.Len(t, ops, 1)
	assert.Equal(t, x, ops[0])
}

// TestPow_ExponentIsConstant tests that the exponent is captured on
// the node and never appears as an operand.
func TestPow_ExponentIsConstant(t *testing.T) {
	g := graph.New()
	x := g.Leaf(2.0)
	p := g.Leaf(3.0) // same value as the exponent, still not an operand

	f := g.Pow(x, 3)

	require.Len(t, f.Operands(), 1)
	assert.Equal(t, x, f.Operands()[0])
	assert.Equal(t, 3.0, f.Exponent())
	assert.Equal(t, 0.0, p.Exponent(), "non-Power nodes report exponent 0")

	g.Backward(f)
	assert.Equal(t, 0.0, p.Grad(), "exponent look-alike leaf must receive no gradient")
}

// TestPow_NaNPropagates tests that domain-invalid exponentiation
// yields NaN and flows through instead of aborting.
func TestPow_NaNPropagates(t *testing.T) {
	g := graph.New()
	x := g.Leaf(-2.0)

	f := g.Pow(x, 0.5)
	require.True(t, math.IsNaN(f.Data()))

	// NaN keeps propagating through later operations and gradients.
	y := g.Add(f, g.Leaf(1.0))
	require.True(t, math.IsNaN(y.Data()))

	g.Backward(y)
	assert.True(t, math.IsNaN(x.Grad()))
}

// TestMixedGraphs_Panics tests that combining handles from different
// arenas panics.
func TestMixedGraphs_Panics(t *testing.T) {
	g1 := graph.New()
	g2 := graph.New()
	x := g1.Leaf(1.0)
	y := g2.Leaf(2.0)

	assert.Panics(t, func() { g1.Add(x, y) })
	assert.Panics(t, func() { g2.Negate(x) })
	assert.Panics(t, func() { g2.Backward(x) })
}

// TestOp_Metadata tests arity and name reporting for the catalog.
func TestOp_Metadata(t *testing.T) {
	tests := []struct {
		op    graph.Op
		arity int
		name  string
	}{
		{graph.Identity, 0, "Identity"},
		{graph.Add, 2, "Add"},
		{graph.Negate, 1, "Negate"},
		{graph.Multiply, 2, "Multiply"},
		{graph.Power, 1, "Power"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.arity, tt.op.Arity(), "%s arity", tt.name)
		assert.Equal(t, tt.name, tt.op.String())
	}
}

// TestValueRoundTrip tests that a node's value always equals the
// catalog function applied to its recorded operand values, before and
// after a backward pass.
func TestValueRoundTrip(t *testing.T) {
	g := graph.New()
	a := g.Leaf(4.0)
	x := g.Leaf(3.0)
	b := g.Leaf(10.0)
	r := g.Mul(a, x)
	s := g.Pow(r, 2)
	out := g.Add(s, g.Negate(b))

	check := func() {
		assert.Equal(t, a.Data()*x.Data(), r.Data())
		assert.Equal(t, math.Pow(r.Data(), s.Exponent()), s.Data())
		ops := out.Operands()
		require.Len(t, ops, 2)
		assert.Equal(t, ops[0].Data()+ops[1].Data(), out.Data())
	}

	check()
	g.Backward(out)
	check() // values never drift, only grads change
}
