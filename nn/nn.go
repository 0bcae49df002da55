// Copyright 2025 Slate ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand/v2"

	"github.com/slate-ml/slate/internal/nn"
)

// TwoLayerNet is a fully-connected network with one hidden ReLU layer
// and a softmax cross-entropy loss.
type TwoLayerNet = nn.TwoLayerNet

// Gradients holds per-parameter loss gradients, shaped like the
// parameters they correspond to.
type Gradients = nn.Gradients

// TrainConfig configures a training run. Zero values select the
// documented defaults.
type TrainConfig = nn.TrainConfig

// History records per-iteration losses and per-epoch accuracies of a
// training run.
type History = nn.History

// ShapeError reports an input whose width does not match the network.
type ShapeError = nn.ShapeError

// LabelError reports a class label outside [0, NumClasses).
type LabelError = nn.LabelError

// Errors returned by network operations.
var (
	ErrEmptyInput     = nn.ErrEmptyInput
	ErrLengthMismatch = nn.ErrLengthMismatch
	ErrBadConfig      = nn.ErrBadConfig
)

// DefaultInitScale is the weight initialization scale used when
// NewTwoLayerNet receives initScale <= 0.
const DefaultInitScale = nn.DefaultInitScale

// NewTwoLayerNet creates a network for inputDim features, hiddenDim
// hidden units and numClasses classes. Weights start as small
// zero-mean Gaussian noise with standard deviation initScale.
//
// Example:
//
//	net := nn.NewTwoLayerNet(4, 10, 3, 1e-4)
//	history, err := net.Train(x, y, xVal, yVal, nn.TrainConfig{
//	    LearningRate: 1e-3,
//	    NumIters:     1000,
//	})
func NewTwoLayerNet(inputDim, hiddenDim, numClasses int, initScale float64) *TwoLayerNet {
	return nn.NewTwoLayerNet(inputDim, hiddenDim, numClasses, initScale)
}

// NewTwoLayerNetFrom is NewTwoLayerNet with an explicit random source
// for reproducible initialization.
//
// Example:
//
//	net := nn.NewTwoLayerNetFrom(4, 10, 3, 1e-4, rand.NewPCG(1, 2))
func NewTwoLayerNetFrom(inputDim, hiddenDim, numClasses int, initScale float64, src rand.Source) *TwoLayerNet {
	return nn.NewTwoLayerNetFrom(inputDim, hiddenDim, numClasses, initScale, src)
}

// Accuracy returns the fraction of predictions matching the labels.
func Accuracy(pred, labels []int) float64 {
	return nn.Accuracy(pred, labels)
}
