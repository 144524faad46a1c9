// Package optim implements gradient-descent algorithms over scalar
// parameters.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Graph nodes are immutable once constructed, so training rebuilds
// the computation graph every step. Parameter carries a value across
// steps and binds a fresh leaf into each step's graph:
//
//	w := optim.NewParameter("w", 0)
//	optimizer := optim.NewSGD([]*optim.Parameter{w}, optim.SGDConfig{LR: 0.01})
//
//	for epoch := range epochs {
//	    g := graph.New()
//	    wv := w.Bind(g)
//	    loss := buildLoss(g, wv)
//	    g.Backward(loss)
//	    optimizer.Step()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear parameter gradients
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies one gradient update to all parameters, reading
	// each parameter's gradient from the leaf bound by the most
	// recent backward pass. Parameters that were never bound are
	// skipped.
	Step()

	// ZeroGrad drops the bound leaves so parameter gradients read as
	// zero until the next Bind.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}
