package graph_test

import (
	"math"
	"testing"

	"github.com/born-ml/grad/internal/graph"
)

// numericalGradient computes the gradient using central finite
// differences.
func numericalGradient(f func(float64) float64, x, epsilon float64) float64 {
	return (f(x+epsilon) - f(x-epsilon)) / (2 * epsilon)
}

// checkGradient builds the expression with build at the given point,
// runs backward, and compares the leaf gradient against the finite
// difference of eval.
func checkGradient(t *testing.T, name string, build func(g *graph.Graph, x graph.Value) graph.Value, eval func(float64) float64, point float64) {
	t.Helper()

	g := graph.New()
	x := g.Leaf(point)
	root := build(g, x)
	g.Backward(root)
	autodiffGrad := x.Grad()

	numericalGrad := numericalGradient(eval, point, 1e-6)

	// Finite differences carry inherent truncation error.
	if math.Abs(autodiffGrad-numericalGrad) > 1e-4 {
		t.Errorf("%s at x=%f: autodiff grad (%f) differs from numerical grad (%f)",
			name, point, autodiffGrad, numericalGrad)
	}
}

// TestGradientCheck_Square tests f(x) = x².
func TestGradientCheck_Square(t *testing.T) {
	checkGradient(t, "x^2",
		func(g *graph.Graph, x graph.Value) graph.Value {
			return g.Mul(x, x)
		},
		func(x float64) float64 { return x * x },
		3.0)
}

// TestGradientCheck_Polynomial tests f(x) = x³ - 2x² + x.
func TestGradientCheck_Polynomial(t *testing.T) {
	checkGradient(t, "x^3 - 2x^2 + x",
		func(g *graph.Graph, x graph.Value) graph.Value {
			cube := g.Pow(x, 3)
			square := g.Mul(g.Leaf(2), g.Pow(x, 2))
			return g.Add(g.Sub(cube, square), x)
		},
		func(x float64) float64 { return x*x*x - 2*x*x + x },
		2.0)
}

// TestGradientCheck_SharedSubexpression tests f(x) = (x² + x) * x²,
// where x² feeds two different consumers.
func TestGradientCheck_SharedSubexpression(t *testing.T) {
	checkGradient(t, "(x^2 + x) * x^2",
		func(g *graph.Graph, x graph.Value) graph.Value {
			sq := g.Mul(x, x)
			return g.Mul(g.Add(sq, x), sq)
		},
		func(x float64) float64 { return (x*x + x) * x * x },
		1.5)
}

// TestGradientCheck_FractionalPower tests f(x) = x^2.5 on a positive
// base.
func TestGradientCheck_FractionalPower(t *testing.T) {
	checkGradient(t, "x^2.5",
		func(g *graph.Graph, x graph.Value) graph.Value {
			return g.Pow(x, 2.5)
		},
		func(x float64) float64 { return math.Pow(x, 2.5) },
		4.0)
}

// TestGradientCheck_Negation tests f(x) = -(x * 3) + x.
func TestGradientCheck_Negation(t *testing.T) {
	checkGradient(t, "-(3x) + x",
		func(g *graph.Graph, x graph.Value) graph.Value {
			return g.Add(g.Negate(g.Mul(x, g.Leaf(3))), x)
		},
		func(x float64) float64 { return -(x * 3) + x },
		-1.25)
}
