// Copyright 2025 Slate ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the stochastic gradient descent optimizer
// used to train networks.
//
// # Basic Usage
//
//	sgd := optim.NewSGD(optim.Config{LR: 0.01, Decay: 0.95})
//
//	loss, grads, err := net.Loss(x, y, reg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sgd.Step(net.W1, grads.W1)
//	sgd.StepVec(net.B1, grads.B1)
//	sgd.Step(net.W2, grads.W2)
//	sgd.StepVec(net.B2, grads.B2)
//
//	sgd.DecayLR() // once per epoch
package optim

import (
	"github.com/slate-ml/slate/internal/optim"
)

// SGD applies vanilla stochastic gradient descent updates.
type SGD = optim.SGD

// Config configures an SGD optimizer. Zero values select the
// documented defaults.
type Config = optim.Config

// NewSGD creates an SGD optimizer.
//
// Example:
//
//	sgd := optim.NewSGD(optim.Config{LR: 0.01})
func NewSGD(config Config) *SGD {
	return optim.NewSGD(config)
}
