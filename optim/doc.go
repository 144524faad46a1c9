// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-descent optimizers for the scalar
// autograd engine.
//
// # Overview
//
// Graph nodes are immutable once constructed, so training rebuilds
// the computation graph every step. A Parameter carries a value
// across steps: Bind creates a fresh leaf for the current value, and
// after a backward pass the optimizer folds the resulting gradient
// back into the parameter.
//
// # Training Loop
//
//	w := optim.NewParameter("w", 0)
//	b := optim.NewParameter("b", 0)
//	sgd := optim.NewSGD([]*optim.Parameter{w, b}, optim.SGDConfig{LR: 0.01})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    g := graph.New()
//	    wv, bv := w.Bind(g), b.Bind(g)
//	    loss := buildLoss(g, wv, bv)
//	    g.Backward(loss)
//	    sgd.Step()
//	}
//
// # Optimizers
//
//   - SGD: plain gradient descent with optional momentum
//   - Adam: adaptive moments with bias correction
package optim
