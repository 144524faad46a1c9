package optim

import (
	"github.com/born-ml/grad/internal/graph"
)

// Parameter represents a trainable scalar value.
//
// A Parameter outlives any single computation graph: each training
// step binds the parameter's current value into a fresh graph as a
// leaf, runs backward, and lets the optimizer fold the resulting
// gradient back into the parameter.
//
// Example:
//
//	w := optim.NewParameter("w", 0.5)
//
//	g := graph.New()
//	wv := w.Bind(g)
//	loss := buildLoss(g, wv)
//	g.Backward(loss)
//
//	grad := w.Grad() // gradient of loss w.r.t. w
type Parameter struct {
	name  string
	data  float64
	node  graph.Value // leaf bound by the latest Bind
	bound bool
}

// NewParameter creates a named trainable parameter with an initial
// value.
func NewParameter(name string, data float64) *Parameter {
	return &Parameter{name: name, data: data}
}

// Name returns the parameter's name (e.g. "w", "layer1.bias").
func (p *Parameter) Name() string {
	return p.name
}

// Data returns the parameter's current value.
func (p *Parameter) Data() float64 {
	return p.data
}

// SetData overwrites the parameter's value. The change takes effect
// on the next Bind; leaves already built keep the value they were
// constructed with.
func (p *Parameter) SetData(v float64) {
	p.data = v
}

// Bind creates a leaf for the parameter's current value in g and
// returns its handle. The handle is remembered so Grad reflects the
// next backward pass over g. Binding again replaces the remembered
// leaf.
func (p *Parameter) Bind(g *graph.Graph) graph.Value {
	p.node = g.Leaf(p.data)
	p.bound = true
	return p.node
}

// Grad returns the gradient accumulated for the parameter's bound
// leaf, or 0 if the parameter is not bound to a graph.
func (p *Parameter) Grad() float64 {
	if !p.bound {
		return 0
	}
	return p.node.Grad()
}

// ZeroGrad drops the bound leaf so Grad reports 0 until the next
// Bind.
func (p *Parameter) ZeroGrad() {
	p.node = graph.Value{}
	p.bound = false
}
